package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/ophelieturenne/cloud-bookshelf/internal/errs"
	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
)

type Repository interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUserByUsername(ctx context.Context, username string) (model.User, error)

	CreateLibrary(ctx context.Context, name, uniqueID string, creatorID int) (model.Library, error)
	GetLibrary(ctx context.Context, libraryID int) (model.Library, error)
	GetLibraryByUniqueID(ctx context.Context, uniqueID string) (model.Library, error)
	ListLibrariesForUser(ctx context.Context, userID int) ([]model.Library, error)
	AddMember(ctx context.Context, libraryID, userID int, isAdmin bool) error
	Membership(ctx context.Context, libraryID, userID int) (model.LibraryUser, error)

	CreateBook(ctx context.Context, book model.Book) (model.Book, error)
	GetBook(ctx context.Context, libraryID, bookID int) (model.BookWithCounts, error)
	ListBooks(ctx context.Context, libraryID int) ([]model.BookWithCounts, error)
	UpdateBook(ctx context.Context, book model.Book) (model.Book, error)
	DeleteBook(ctx context.Context, libraryID, bookID int) error

	CreateCheckout(ctx context.Context, libraryID, bookID, userID int, start, due time.Time) (model.Checkout, error)
	GetCheckout(ctx context.Context, checkoutUID string) (model.Checkout, error)
	ApproveCheckout(ctx context.Context, checkoutUID string) (model.Checkout, error)
	DenyCheckout(ctx context.Context, checkoutUID string) (model.Checkout, error)
	ReturnCheckout(ctx context.Context, checkoutUID string) (model.Checkout, error)
	CancelCheckout(ctx context.Context, checkoutUID string, userID int) error
	ExpireCheckout(ctx context.Context, checkoutUID string, now time.Time) (model.Checkout, bool, error)
	ListStalePending(ctx context.Context, olderThan time.Time) ([]string, error)
	ListCheckoutsForUser(ctx context.Context, userID int) ([]model.Checkout, error)
	ListPendingForLibrary(ctx context.Context, libraryID int) ([]model.Checkout, error)

	CreateReview(ctx context.Context, review model.Review) (model.Review, error)
	DeleteReview(ctx context.Context, reviewID, userID int) error
	ListReviewsForBook(ctx context.Context, bookID int) ([]model.Review, error)

	CreateWishlist(ctx context.Context, entry model.Wishlist) (model.Wishlist, error)
	DeleteWishlist(ctx context.Context, userID, bookID int) error
	ListWishlistsForUser(ctx context.Context, userID int) ([]model.Wishlist, error)

	CreateNotification(ctx context.Context, n model.Notification) error
	ListNotificationsForUser(ctx context.Context, userID int) ([]model.Notification, error)
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	usersTableName         = `users`
	librariesTableName     = `libraries`
	libraryUsersTableName  = `library_users`
	booksTableName         = `books`
	checkoutsTableName     = `checkouts`
	wishlistsTableName     = `wishlists`
	reviewsTableName       = `reviews`
	notificationsTableName = `notifications`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func columns(cols []string) string {
	return strings.Join(cols, ", ")
}

func (r *repository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.log.Error("tx rollback", zap.Error(rbErr))
		}
		return err
	}
	return errors.Wrap(tx.Commit(), "commit tx")
}

// wrapPgErr maps integrity-constraint violations onto the sentinel errors the
// handler reports to the user; anything else passes through untouched.
func wrapPgErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return errs.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		switch pgErr.ConstraintName {
		case "library_users_user_library_key":
			return errs.ErrAlreadyMember
		case "wishlists_user_book_key":
			return errs.ErrWishlistExists
		case "libraries_name_uindex":
			return errs.ErrLibraryExists
		case "users_username_uindex", "users_email_uindex":
			return errs.ErrUserExists
		}
		return &errs.ConstraintError{
			Constraint: pgErr.ConstraintName,
			Message:    pgErr.Message,
		}
	}
	return err
}
