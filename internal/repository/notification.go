package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
)

var notificationColumns = []string{"id", "user_id", "library_id", "content", "created_at"}

func (r *repository) CreateNotification(ctx context.Context, n model.Notification) error {
	q, args, err := qb.Insert(notificationsTableName).
		Columns("user_id", "library_id", "content").
		Values(n.UserID, n.LibraryID, n.Content).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
		return wrapPgErr(err)
	}
	return nil
}

// ListNotificationsForUser returns the user's notifications, newest first.
func (r *repository) ListNotificationsForUser(ctx context.Context, userID int) ([]model.Notification, error) {
	q, args, err := qb.Select(notificationColumns...).
		From(notificationsTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Notification
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
