package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/ophelieturenne/cloud-bookshelf/internal/errs"
	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
)

var reviewColumns = []string{"id", "user_id", "book_id", "rating", "comment", "created_at"}

func (r *repository) CreateReview(ctx context.Context, review model.Review) (model.Review, error) {
	q, args, err := qb.Insert(reviewsTableName).
		Columns("user_id", "book_id", "rating", "comment").
		Values(review.UserID, review.BookID, review.Rating, review.Comment).
		Suffix("returning " + columns(reviewColumns)).
		ToSql()
	if err != nil {
		return model.Review{}, err
	}
	var created model.Review
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		return model.Review{}, wrapPgErr(err)
	}
	return created, nil
}

// DeleteReview removes the user's own review only.
func (r *repository) DeleteReview(ctx context.Context, reviewID, userID int) error {
	q, args, err := qb.Delete(reviewsTableName).
		Where(sq.Eq{"id": reviewID, "user_id": userID}).
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

func (r *repository) ListReviewsForBook(ctx context.Context, bookID int) ([]model.Review, error) {
	q, args, err := qb.Select(reviewColumns...).
		From(reviewsTableName).
		Where(sq.Eq{"book_id": bookID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var reviews []model.Review
	if err := r.db.SelectContext(ctx, &reviews, q, args...); err != nil {
		return nil, err
	}
	return reviews, nil
}
