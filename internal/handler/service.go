package handler

import (
	"context"
	"time"

	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
	"github.com/ophelieturenne/cloud-bookshelf/internal/service"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type BookshelfService interface {
	RegisterUser(ctx context.Context, req model.UserCreateRequest) (model.User, error)
	Authenticate(ctx context.Context, username, password string) (model.User, error)

	CreateLibrary(ctx context.Context, name string, creatorID int) (model.Library, error)
	GetLibrary(ctx context.Context, libraryID int) (model.Library, error)
	GetLibraries(ctx context.Context, userID int) ([]model.Library, error)
	AccessLibrary(ctx context.Context, uniqueID string, userID int) (model.Library, error)
	IsMember(ctx context.Context, libraryID, userID int) (bool, error)
	IsLibraryAdmin(ctx context.Context, libraryID, userID int) (bool, error)

	CreateBook(ctx context.Context, libraryID, creatorID int, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, libraryID, bookID int) (model.BookWithCounts, error)
	GetBooks(ctx context.Context, libraryID int) ([]model.BookWithCounts, error)
	UpdateBook(ctx context.Context, libraryID, bookID int, req model.CreateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, libraryID, bookID int) error

	RequestReservation(ctx context.Context, libraryID, bookID, userID int) (model.Checkout, error)
	CancelReservation(ctx context.Context, checkoutUID string, userID int) error
	ApproveReservation(ctx context.Context, checkoutUID string) (model.Checkout, error)
	DenyReservation(ctx context.Context, checkoutUID string) (model.Checkout, error)
	MarkReturned(ctx context.Context, checkoutUID string) (model.Checkout, error)
	GetCheckout(ctx context.Context, checkoutUID string) (model.Checkout, error)
	GetCheckouts(ctx context.Context, userID int) ([]model.Checkout, error)
	GetPendingCheckouts(ctx context.Context, libraryID int) ([]model.Checkout, error)
	ExpireStalePending(ctx context.Context, now time.Time) (int, error)

	CreateReview(ctx context.Context, userID, bookID int, req model.CreateReviewRequest) (model.Review, error)
	DeleteReview(ctx context.Context, reviewID, userID int) error
	GetReviews(ctx context.Context, bookID int) ([]model.Review, error)

	AddToWishlist(ctx context.Context, userID, libraryID, bookID int) (model.Wishlist, error)
	RemoveFromWishlist(ctx context.Context, userID, bookID int) error
	GetWishlists(ctx context.Context, userID int) ([]model.Wishlist, error)

	GetNotifications(ctx context.Context, userID int) ([]model.Notification, error)
}

var _ BookshelfService = (*service.Service)(nil)
