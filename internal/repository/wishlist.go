package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/ophelieturenne/cloud-bookshelf/internal/errs"
	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
)

var wishlistColumns = []string{"id", "user_id", "book_id", "library_id", "created_at"}

func (r *repository) CreateWishlist(ctx context.Context, entry model.Wishlist) (model.Wishlist, error) {
	q, args, err := qb.Insert(wishlistsTableName).
		Columns("user_id", "book_id", "library_id").
		Values(entry.UserID, entry.BookID, entry.LibraryID).
		Suffix("returning " + columns(wishlistColumns)).
		ToSql()
	if err != nil {
		return model.Wishlist{}, err
	}
	var created model.Wishlist
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		return model.Wishlist{}, wrapPgErr(err)
	}
	return created, nil
}

func (r *repository) DeleteWishlist(ctx context.Context, userID, bookID int) error {
	q, args, err := qb.Delete(wishlistsTableName).
		Where(sq.Eq{"user_id": userID, "book_id": bookID}).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, q, args...)
	if err != nil {
		return wrapPgErr(err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

func (r *repository) ListWishlistsForUser(ctx context.Context, userID int) ([]model.Wishlist, error) {
	q, args, err := qb.Select(wishlistColumns...).
		From(wishlistsTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var entries []model.Wishlist
	if err := r.db.SelectContext(ctx, &entries, q, args...); err != nil {
		return nil, err
	}
	return entries, nil
}
