package repository

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/ophelieturenne/cloud-bookshelf/internal/errs"
	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
)

var bookColumns = []string{"id", "library_id", "user_id", "title", "author", "genre", "year", "format", "quantity", "status", "created_at"}

func pendingCountExpr() string {
	return fmt.Sprintf("(select count(*) from %s c where c.book_id = b.id and c.status = %d) as pending_count",
		checkoutsTableName, model.CheckoutPending)
}

func approvedCountExpr() string {
	return fmt.Sprintf("(select count(*) from %s c where c.book_id = b.id and c.status = %d) as approved_count",
		checkoutsTableName, model.CheckoutApproved)
}

func (r *repository) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("library_id", "user_id", "title", "author", "genre", "year", "format", "quantity", "status").
		Values(book.LibraryID, book.UserID, book.Title, book.Author, book.Genre, book.Year, book.Format, book.Quantity, model.BookAvailable).
		Suffix("returning " + columns(bookColumns)).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var created model.Book
	if err := r.db.GetContext(ctx, &created, q, args...); err != nil {
		return model.Book{}, wrapPgErr(err)
	}
	return created, nil
}

func (r *repository) GetBook(ctx context.Context, libraryID, bookID int) (model.BookWithCounts, error) {
	cols := make([]string, 0, len(bookColumns)+2)
	for _, c := range bookColumns {
		cols = append(cols, "b."+c)
	}
	cols = append(cols, pendingCountExpr(), approvedCountExpr())

	q, args, err := qb.Select(cols...).
		From(booksTableName + " b").
		Where(sq.Eq{"b.id": bookID, "b.library_id": libraryID}).
		Limit(1).
		ToSql()
	if err != nil {
		return model.BookWithCounts{}, err
	}
	var book model.BookWithCounts
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		return model.BookWithCounts{}, wrapPgErr(err)
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, libraryID int) ([]model.BookWithCounts, error) {
	cols := make([]string, 0, len(bookColumns)+2)
	for _, c := range bookColumns {
		cols = append(cols, "b."+c)
	}
	cols = append(cols, pendingCountExpr(), approvedCountExpr())

	q, args, err := qb.Select(cols...).
		From(booksTableName + " b").
		Where(sq.Eq{"b.library_id": libraryID}).
		OrderBy("b.title").
		ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.BookWithCounts
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) UpdateBook(ctx context.Context, book model.Book) (model.Book, error) {
	q, args, err := qb.Update(booksTableName).
		Set("title", book.Title).
		Set("author", book.Author).
		Set("genre", book.Genre).
		Set("year", book.Year).
		Set("format", book.Format).
		Set("quantity", book.Quantity).
		Where(sq.Eq{"id": book.ID, "library_id": book.LibraryID}).
		Suffix("returning " + columns(bookColumns)).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var updated model.Book
	if err := r.db.GetContext(ctx, &updated, q, args...); err != nil {
		return model.Book{}, wrapPgErr(err)
	}
	return updated, nil
}

// DeleteBook removes the book; checkouts and reviews cascade with it.
func (r *repository) DeleteBook(ctx context.Context, libraryID, bookID int) error {
	q, args, err := qb.Delete(booksTableName).
		Where(sq.Eq{"id": bookID, "library_id": libraryID}).
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

// getBookForUpdate locks the book row so that (quantity, status) is updated
// as a single unit within the surrounding transaction.
func (r *repository) getBookForUpdate(ctx context.Context, tx *sqlx.Tx, bookID int) (model.Book, error) {
	q, args, err := qb.Select(bookColumns...).
		From(booksTableName).
		Where(sq.Eq{"id": bookID}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := tx.GetContext(ctx, &book, q, args...); err != nil {
		return model.Book{}, wrapPgErr(err)
	}
	return book, nil
}

func (r *repository) setBookState(ctx context.Context, tx *sqlx.Tx, bookID int, quantity *int, status model.BookStatus) error {
	b := qb.Update(booksTableName).
		Set("status", status).
		Where(sq.Eq{"id": bookID})
	if quantity != nil {
		b = b.Set("quantity", *quantity)
	}
	q, args, err := b.ToSql()
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, q, args...)
	return err
}
