package model

import (
	"time"

	"github.com/pkg/errors"
)

var (
	ErrYearInFuture     = errors.New("year cannot be in the future")
	ErrQuantityRequired = errors.New("quantity is required for hardcover books")
)

type UserCreateRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phoneNumber"`
}

type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
}

type CreateLibraryRequest struct {
	Name string `json:"name" validate:"required"`
}

type AccessLibraryRequest struct {
	UniqueID string `json:"uniqueId" validate:"required,uuid"`
}

type CreateBookRequest struct {
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Genre    string `json:"genre" validate:"required"`
	Year     int    `json:"year" validate:"required"`
	Format   Format `json:"format" validate:"required,oneof=ebook hardcover researchpaper"`
	Quantity *int   `json:"quantity,omitempty" validate:"omitempty,min=0"`
}

// Validate covers the rules that tags cannot express: the year bound and the
// format/quantity coupling.
func (r *CreateBookRequest) Validate(now time.Time) error {
	if r.Year > now.Year() {
		return ErrYearInFuture
	}
	if r.Format == FormatHardcover && r.Quantity == nil {
		return ErrQuantityRequired
	}
	return nil
}

// Normalize drops the quantity for formats that do not track inventory.
func (r *CreateBookRequest) Normalize() {
	if r.Format != FormatHardcover {
		r.Quantity = nil
	}
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment" validate:"required"`
}

type BookWithCounts struct {
	Book          `json:",inline"`
	PendingCount  int `json:"pendingCount" db:"pending_count"`
	ApprovedCount int `json:"approvedCount" db:"approved_count"`
}

// AvailableCount is the zero-floored display quantity.
func (b *BookWithCounts) AvailableCount() int {
	return b.AvailableQuantity(b.ApprovedCount)
}
