package errs

import (
	"errors"
)

var (
	// ErrNotFound: the referenced library, book or checkout does not exist or
	// is outside the caller's library scope.
	ErrNotFound = errors.New("not found")

	// ErrStateConflict: a transition was attempted against a checkout that is
	// not in the required precondition state.
	ErrStateConflict = errors.New("checkout is not in the required state")

	// ErrNotReservable: the book is not a hardcover with free copies in
	// available status.
	ErrNotReservable = errors.New("book is not reservable")

	ErrNotMember      = errors.New("user is not a member of this library")
	ErrNotAdmin       = errors.New("user is not an admin of this library")
	ErrAlreadyMember  = errors.New("is already a member of this library")
	ErrWishlistExists = errors.New("already added this book to wishlist")
	ErrLibraryExists  = errors.New("library with this name already exists")
	ErrUserExists     = errors.New("user with this name or email already exists")
)

// ConstraintError carries the human-readable message of a uniqueness or
// foreign-key violation reported by the database.
type ConstraintError struct {
	Constraint string
	Message    string
}

func (e *ConstraintError) Error() string {
	return e.Message
}
