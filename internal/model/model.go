package model

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

type Format string

const (
	FormatEbook         Format = "ebook"
	FormatHardcover     Format = "hardcover"
	FormatResearchPaper Format = "researchpaper"
)

type BookStatus string

const (
	BookAvailable      BookStatus = "available"
	BookReservePending BookStatus = "reserve_pending"
	BookReserved       BookStatus = "reserved"
	BookNotAvailable   BookStatus = "not_available"
)

// CheckoutStatus is stored as the ordinal, not the name.
type CheckoutStatus int

const (
	CheckoutPending CheckoutStatus = iota
	CheckoutApproved
	CheckoutReturned
	CheckoutDenied
)

var checkoutStatusNames = map[CheckoutStatus]string{
	CheckoutPending:  "pending",
	CheckoutApproved: "approved",
	CheckoutReturned: "returned",
	CheckoutDenied:   "denied",
}

func (s CheckoutStatus) String() string {
	if name, ok := checkoutStatusNames[s]; ok {
		return name
	}
	return "unknown"
}

func (s CheckoutStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *CheckoutStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	for status, n := range checkoutStatusNames {
		if n == name {
			*s = status
			return nil
		}
	}
	return errors.Errorf("unknown checkout status %q", name)
}

const (
	// ReservationPeriod is the span between start and due date of a new checkout.
	ReservationPeriod = 7 * 24 * time.Hour
	// PendingTTL is how long a pending checkout may sit unapproved before the
	// sweeper forces it to returned.
	PendingTTL = 4 * 24 * time.Hour
)

type Library struct {
	ID        int       `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	UniqueID  string    `json:"uniqueId" db:"unique_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type User struct {
	ID           int       `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	PhoneNumber  string    `json:"phoneNumber,omitempty" db:"phone_number"`
	Admin        bool      `json:"admin" db:"admin"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type LibraryUser struct {
	ID        int  `json:"id" db:"id"`
	UserID    int  `json:"userId" db:"user_id"`
	LibraryID int  `json:"libraryId" db:"library_id"`
	IsAdmin   bool `json:"isAdmin" db:"is_admin"`
}

type Book struct {
	ID        int        `json:"id" db:"id"`
	LibraryID int        `json:"libraryId" db:"library_id"`
	UserID    int        `json:"-" db:"user_id"`
	Title     string     `json:"title" db:"title"`
	Author    string     `json:"author" db:"author"`
	Genre     string     `json:"genre" db:"genre"`
	Year      int        `json:"year" db:"year"`
	Format    Format     `json:"format" db:"format"`
	Quantity  *int       `json:"quantity,omitempty" db:"quantity"`
	Status    BookStatus `json:"status" db:"status"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

type Checkout struct {
	ID          int            `json:"id" db:"id"`
	CheckoutUID string         `json:"checkoutUid" db:"checkout_uid"`
	BookID      int            `json:"bookId" db:"book_id"`
	UserID      int            `json:"userId" db:"user_id"`
	LibraryID   int            `json:"libraryId" db:"library_id"`
	Status      CheckoutStatus `json:"status" db:"status"`
	StartDate   time.Time      `json:"startDate" db:"start_date"`
	DueDate     time.Time      `json:"dueDate" db:"due_date"`
	ApprovedAt  *time.Time     `json:"approvedAt,omitempty" db:"approved_at"`
	CreatedAt   time.Time      `json:"createdAt" db:"created_at"`
}

type Review struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"userId" db:"user_id"`
	BookID    int       `json:"bookId" db:"book_id"`
	Rating    int       `json:"rating" db:"rating"`
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Wishlist struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"userId" db:"user_id"`
	BookID    int       `json:"bookId" db:"book_id"`
	LibraryID int       `json:"libraryId" db:"library_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Notification struct {
	ID        int       `json:"id" db:"id"`
	UserID    int       `json:"userId" db:"user_id"`
	LibraryID int       `json:"libraryId" db:"library_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

func (b *Book) copies() int {
	if b.Quantity == nil {
		return 0
	}
	return *b.Quantity
}

// Reservable reports whether a new reservation may be requested. Only
// hardcover books with at least one copy and available status qualify.
func (b *Book) Reservable() bool {
	return b.Format == FormatHardcover && b.copies() > 0 && b.Status == BookAvailable
}

// AllReserved reports whether every copy is claimed by an unresolved
// pending checkout.
func (b *Book) AllReserved(pending int) bool {
	return b.Format == FormatHardcover && pending >= b.copies()
}

// AvailableQuantity is the displayed copy count: stored quantity minus
// outstanding approved checkouts, floored at zero.
func (b *Book) AvailableQuantity(approved int) int {
	if b.Format != FormatHardcover {
		return 0
	}
	if n := b.copies() - approved; n > 0 {
		return n
	}
	return 0
}

// NextStatus recomputes the book status from the stored quantity and the
// current pending-checkout count. not_available is only reachable once an
// approval has exhausted the quantity; below that, the status flips between
// available and reserve_pending as the pending count crosses the quantity.
func (b *Book) NextStatus(pending int) BookStatus {
	if b.Format != FormatHardcover {
		return BookAvailable
	}
	switch {
	case b.copies() == 0:
		return BookNotAvailable
	case pending >= b.copies():
		return BookReservePending
	default:
		return BookAvailable
	}
}

// Expired reports whether a pending checkout has outlived PendingTTL and
// should be swept to returned.
func (c *Checkout) Expired(now time.Time) bool {
	return c.Status == CheckoutPending && c.CreatedAt.Before(now.Add(-PendingTTL))
}
