package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
)

var libraryColumns = []string{"id", "name", "unique_id", "created_at"}

// CreateLibrary inserts the library and makes the creator its admin member in
// one transaction.
func (r *repository) CreateLibrary(ctx context.Context, name, uniqueID string, creatorID int) (model.Library, error) {
	var created model.Library
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		q, args, err := qb.Insert(librariesTableName).
			Columns("name", "unique_id").
			Values(name, uniqueID).
			Suffix("returning " + columns(libraryColumns)).
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &created, q, args...); err != nil {
			return wrapPgErr(err)
		}

		q, args, err = qb.Insert(libraryUsersTableName).
			Columns("user_id", "library_id", "is_admin").
			Values(creatorID, created.ID, true).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return wrapPgErr(err)
		}
		return nil
	})
	if err != nil {
		return model.Library{}, err
	}
	return created, nil
}

func (r *repository) GetLibrary(ctx context.Context, libraryID int) (model.Library, error) {
	q, args, err := qb.Select(libraryColumns...).
		From(librariesTableName).
		Where(sq.Eq{"id": libraryID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Library{}, err
	}
	var lib model.Library
	if err := r.db.GetContext(ctx, &lib, q, args...); err != nil {
		return model.Library{}, wrapPgErr(err)
	}
	return lib, nil
}

func (r *repository) GetLibraryByUniqueID(ctx context.Context, uniqueID string) (model.Library, error) {
	q, args, err := qb.Select(libraryColumns...).
		From(librariesTableName).
		Where(sq.Eq{"unique_id": uniqueID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Library{}, err
	}
	var lib model.Library
	if err := r.db.GetContext(ctx, &lib, q, args...); err != nil {
		return model.Library{}, wrapPgErr(err)
	}
	return lib, nil
}

func (r *repository) ListLibrariesForUser(ctx context.Context, userID int) ([]model.Library, error) {
	q, args, err := qb.Select("l.id", "l.name", "l.unique_id", "l.created_at").
		From(librariesTableName + " l").
		Join(libraryUsersTableName + " lu on lu.library_id = l.id").
		Where(sq.Eq{"lu.user_id": userID}).
		OrderBy("l.name").
		ToSql()
	if err != nil {
		return nil, err
	}
	var libs []model.Library
	if err := r.db.SelectContext(ctx, &libs, q, args...); err != nil {
		return nil, err
	}
	return libs, nil
}

func (r *repository) AddMember(ctx context.Context, libraryID, userID int, isAdmin bool) error {
	q, args, err := qb.Insert(libraryUsersTableName).
		Columns("user_id", "library_id", "is_admin").
		Values(userID, libraryID, isAdmin).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return wrapPgErr(err)
	}
	return nil
}

func (r *repository) Membership(ctx context.Context, libraryID, userID int) (model.LibraryUser, error) {
	q, args, err := qb.Select("id", "user_id", "library_id", "is_admin").
		From(libraryUsersTableName).
		Where(sq.Eq{"library_id": libraryID, "user_id": userID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.LibraryUser{}, err
	}
	var member model.LibraryUser
	if err := r.db.GetContext(ctx, &member, q, args...); err != nil {
		return model.LibraryUser{}, wrapPgErr(err)
	}
	return member, nil
}
