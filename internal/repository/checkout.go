package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/ophelieturenne/cloud-bookshelf/internal/errs"
	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
)

var checkoutColumns = []string{"id", "checkout_uid", "book_id", "user_id", "library_id", "status", "start_date", "due_date", "approved_at", "created_at"}

func (r *repository) countByStatus(ctx context.Context, tx *sqlx.Tx, bookID int, status model.CheckoutStatus) (int, error) {
	q, args, err := qb.Select("count(*)").
		From(checkoutsTableName).
		Where(sq.Eq{"book_id": bookID, "status": status}).
		ToSql()
	if err != nil {
		return 0, err
	}
	var count int
	if err := tx.QueryRowContext(ctx, q, args...).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

// getCheckoutForUpdate re-reads the checkout under a row lock so the status
// precondition can be checked inside the transaction (two admins resolving
// the same request must not both succeed).
func (r *repository) getCheckoutForUpdate(ctx context.Context, tx *sqlx.Tx, checkoutUID string) (model.Checkout, error) {
	q, args, err := qb.Select(checkoutColumns...).
		From(checkoutsTableName).
		Where(sq.Eq{"checkout_uid": checkoutUID}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.Checkout{}, err
	}
	var c model.Checkout
	if err := tx.GetContext(ctx, &c, q, args...); err != nil {
		return model.Checkout{}, wrapPgErr(err)
	}
	return c, nil
}

func (r *repository) setCheckoutStatus(ctx context.Context, tx *sqlx.Tx, id int, status model.CheckoutStatus, approvedAt *time.Time) error {
	b := qb.Update(checkoutsTableName).
		Set("status", status).
		Where(sq.Eq{"id": id})
	if approvedAt != nil {
		b = b.Set("approved_at", *approvedAt)
	}
	q, args, err := b.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, q, args...)
	return err
}

// CreateCheckout inserts a pending checkout and flips the book to
// reserve_pending once the pending count reaches the quantity. The
// reservable check runs against the locked book row, not the caller's
// possibly stale read.
func (r *repository) CreateCheckout(ctx context.Context, libraryID, bookID, userID int, start, due time.Time) (model.Checkout, error) {
	var created model.Checkout
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		book, err := r.getBookForUpdate(ctx, tx, bookID)
		if err != nil {
			return err
		}
		if book.LibraryID != libraryID {
			return errs.ErrNotFound
		}
		if !book.Reservable() {
			return errs.ErrNotReservable
		}

		q, args, err := qb.Insert(checkoutsTableName).
			Columns("checkout_uid", "book_id", "user_id", "library_id", "status", "start_date", "due_date").
			Values(uuid.New(), book.ID, userID, book.LibraryID, model.CheckoutPending, start, due).
			Suffix("returning " + columns(checkoutColumns)).
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &created, q, args...); err != nil {
			r.log.Error("CreateCheckout", zap.String("q", q), zap.Any("args", args))
			return wrapPgErr(err)
		}

		pending, err := r.countByStatus(ctx, tx, book.ID, model.CheckoutPending)
		if err != nil {
			return err
		}
		if next := book.NextStatus(pending); next != book.Status {
			return r.setBookState(ctx, tx, book.ID, nil, next)
		}
		return nil
	})
	if err != nil {
		return model.Checkout{}, err
	}
	return created, nil
}

// ApproveCheckout moves a pending checkout to approved, hands out one copy
// and marks the book not_available when the last copy goes.
func (r *repository) ApproveCheckout(ctx context.Context, checkoutUID string) (model.Checkout, error) {
	var out model.Checkout
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		c, err := r.getCheckoutForUpdate(ctx, tx, checkoutUID)
		if err != nil {
			return err
		}
		if c.Status != model.CheckoutPending {
			return errs.ErrStateConflict
		}
		book, err := r.getBookForUpdate(ctx, tx, c.BookID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if err := r.setCheckoutStatus(ctx, tx, c.ID, model.CheckoutApproved, &now); err != nil {
			return err
		}

		quantity := 0
		if book.Quantity != nil && *book.Quantity > 0 {
			quantity = *book.Quantity - 1
		}
		pending, err := r.countByStatus(ctx, tx, book.ID, model.CheckoutPending)
		if err != nil {
			return err
		}
		book.Quantity = &quantity
		if err := r.setBookState(ctx, tx, book.ID, &quantity, book.NextStatus(pending)); err != nil {
			return err
		}

		c.Status = model.CheckoutApproved
		c.ApprovedAt = &now
		out = c
		return nil
	})
	if err != nil {
		return model.Checkout{}, err
	}
	return out, nil
}

// DenyCheckout resolves a pending checkout without touching the quantity;
// the book reverts to available once no pending requests are left against it.
func (r *repository) DenyCheckout(ctx context.Context, checkoutUID string) (model.Checkout, error) {
	var out model.Checkout
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		c, err := r.getCheckoutForUpdate(ctx, tx, checkoutUID)
		if err != nil {
			return err
		}
		if c.Status != model.CheckoutPending {
			return errs.ErrStateConflict
		}
		book, err := r.getBookForUpdate(ctx, tx, c.BookID)
		if err != nil {
			return err
		}

		if err := r.setCheckoutStatus(ctx, tx, c.ID, model.CheckoutDenied, nil); err != nil {
			return err
		}
		pending, err := r.countByStatus(ctx, tx, book.ID, model.CheckoutPending)
		if err != nil {
			return err
		}
		if next := book.NextStatus(pending); next != book.Status {
			if err := r.setBookState(ctx, tx, book.ID, nil, next); err != nil {
				return err
			}
		}

		c.Status = model.CheckoutDenied
		out = c
		return nil
	})
	if err != nil {
		return model.Checkout{}, err
	}
	return out, nil
}

// ReturnCheckout closes an approved checkout. The quantity is resynchronized
// to the count of still-approved checkouts and the book goes back to
// available.
func (r *repository) ReturnCheckout(ctx context.Context, checkoutUID string) (model.Checkout, error) {
	var out model.Checkout
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		c, err := r.getCheckoutForUpdate(ctx, tx, checkoutUID)
		if err != nil {
			return err
		}
		if c.Status != model.CheckoutApproved {
			return errs.ErrStateConflict
		}
		if _, err := r.getBookForUpdate(ctx, tx, c.BookID); err != nil {
			return err
		}

		if err := r.setCheckoutStatus(ctx, tx, c.ID, model.CheckoutReturned, nil); err != nil {
			return err
		}
		approved, err := r.countByStatus(ctx, tx, c.BookID, model.CheckoutApproved)
		if err != nil {
			return err
		}
		if err := r.setBookState(ctx, tx, c.BookID, &approved, model.BookAvailable); err != nil {
			return err
		}

		c.Status = model.CheckoutReturned
		out = c
		return nil
	})
	if err != nil {
		return model.Checkout{}, err
	}
	return out, nil
}

// CancelCheckout deletes a pending checkout owned by the user. Cancellation
// is only meaningful before the request is resolved.
func (r *repository) CancelCheckout(ctx context.Context, checkoutUID string, userID int) error {
	return r.withTx(ctx, func(tx *sqlx.Tx) error {
		c, err := r.getCheckoutForUpdate(ctx, tx, checkoutUID)
		if err != nil {
			return err
		}
		if c.UserID != userID {
			return errs.ErrNotFound
		}
		if c.Status != model.CheckoutPending {
			return errs.ErrStateConflict
		}
		book, err := r.getBookForUpdate(ctx, tx, c.BookID)
		if err != nil {
			return err
		}

		q, args, err := qb.Delete(checkoutsTableName).
			Where(sq.Eq{"id": c.ID}).
			ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return err
		}

		pending, err := r.countByStatus(ctx, tx, book.ID, model.CheckoutPending)
		if err != nil {
			return err
		}
		if next := book.NextStatus(pending); next != book.Status {
			return r.setBookState(ctx, tx, book.ID, nil, next)
		}
		return nil
	})
}

// ExpireCheckout force-returns a stale pending checkout. Calling it on an
// already resolved checkout, or on a pending one still inside the TTL, is a
// no-op; the bool reports whether anything changed.
func (r *repository) ExpireCheckout(ctx context.Context, checkoutUID string, now time.Time) (model.Checkout, bool, error) {
	var out model.Checkout
	expired := false
	err := r.withTx(ctx, func(tx *sqlx.Tx) error {
		c, err := r.getCheckoutForUpdate(ctx, tx, checkoutUID)
		if err != nil {
			return err
		}
		out = c
		if !c.Expired(now) {
			return nil
		}
		book, err := r.getBookForUpdate(ctx, tx, c.BookID)
		if err != nil {
			return err
		}

		if err := r.setCheckoutStatus(ctx, tx, c.ID, model.CheckoutReturned, nil); err != nil {
			return err
		}
		pending, err := r.countByStatus(ctx, tx, book.ID, model.CheckoutPending)
		if err != nil {
			return err
		}
		if next := book.NextStatus(pending); next != book.Status {
			if err := r.setBookState(ctx, tx, book.ID, nil, next); err != nil {
				return err
			}
		}
		out.Status = model.CheckoutReturned
		expired = true
		return nil
	})
	if err != nil {
		return model.Checkout{}, false, err
	}
	return out, expired, nil
}

func (r *repository) ListStalePending(ctx context.Context, olderThan time.Time) ([]string, error) {
	q, args, err := qb.Select("checkout_uid").
		From(checkoutsTableName).
		Where(sq.Eq{"status": model.CheckoutPending}).
		Where(sq.Lt{"created_at": olderThan}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	var uids []string
	if err := r.db.SelectContext(ctx, &uids, q, args...); err != nil {
		return nil, err
	}
	return uids, nil
}

func (r *repository) GetCheckout(ctx context.Context, checkoutUID string) (model.Checkout, error) {
	q, args, err := qb.Select(checkoutColumns...).
		From(checkoutsTableName).
		Where(sq.Eq{"checkout_uid": checkoutUID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.Checkout{}, err
	}
	var c model.Checkout
	if err := r.db.GetContext(ctx, &c, q, args...); err != nil {
		return model.Checkout{}, wrapPgErr(err)
	}
	return c, nil
}

func (r *repository) ListCheckoutsForUser(ctx context.Context, userID int) ([]model.Checkout, error) {
	q, args, err := qb.Select(checkoutColumns...).
		From(checkoutsTableName).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at desc").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Checkout
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repository) ListPendingForLibrary(ctx context.Context, libraryID int) ([]model.Checkout, error) {
	q, args, err := qb.Select(checkoutColumns...).
		From(checkoutsTableName).
		Where(sq.Eq{"library_id": libraryID, "status": model.CheckoutPending}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Checkout
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}
