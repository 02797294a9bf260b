package repository

import (
	"context"

	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
)

var userColumns = []string{"id", "username", "email", "password_hash", "phone_number", "admin", "created_at"}

func (r *repository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	q, args, err := qb.Insert(usersTableName).
		Columns("username", "email", "password_hash", "phone_number", "admin").
		Values(user.Username, user.Email, user.PasswordHash, user.PhoneNumber, user.Admin).
		Suffix("returning " + columns(userColumns)).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var created model.User
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		return model.User{}, wrapPgErr(err)
	}
	return created, nil
}

func (r *repository) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	q, args, err := qb.Select(userColumns...).
		From(usersTableName).
		Where("lower(username) = lower(?)", username).
		Limit(1).
		ToSql()
	if err != nil {
		return model.User{}, err
	}
	var user model.User
	if err := r.db.GetContext(ctx, &user, q, args...); err != nil {
		return model.User{}, wrapPgErr(err)
	}
	return user, nil
}
