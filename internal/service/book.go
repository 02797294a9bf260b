package service

import (
	"context"
	"time"

	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
)

func (s *Service) CreateBook(ctx context.Context, libraryID, creatorID int, req model.CreateBookRequest) (model.Book, error) {
	req.Normalize()
	if err := req.Validate(time.Now()); err != nil {
		return model.Book{}, err
	}
	return s.repo.CreateBook(ctx, model.Book{
		LibraryID: libraryID,
		UserID:    creatorID,
		Title:     req.Title,
		Author:    req.Author,
		Genre:     req.Genre,
		Year:      req.Year,
		Format:    req.Format,
		Quantity:  req.Quantity,
	})
}

func (s *Service) GetBook(ctx context.Context, libraryID, bookID int) (model.BookWithCounts, error) {
	return s.repo.GetBook(ctx, libraryID, bookID)
}

func (s *Service) GetBooks(ctx context.Context, libraryID int) ([]model.BookWithCounts, error) {
	return s.repo.ListBooks(ctx, libraryID)
}

func (s *Service) UpdateBook(ctx context.Context, libraryID, bookID int, req model.CreateBookRequest) (model.Book, error) {
	req.Normalize()
	if err := req.Validate(time.Now()); err != nil {
		return model.Book{}, err
	}
	return s.repo.UpdateBook(ctx, model.Book{
		ID:        bookID,
		LibraryID: libraryID,
		Title:     req.Title,
		Author:    req.Author,
		Genre:     req.Genre,
		Year:      req.Year,
		Format:    req.Format,
		Quantity:  req.Quantity,
	})
}

func (s *Service) DeleteBook(ctx context.Context, libraryID, bookID int) error {
	return s.repo.DeleteBook(ctx, libraryID, bookID)
}

func (s *Service) CreateReview(ctx context.Context, userID, bookID int, req model.CreateReviewRequest) (model.Review, error) {
	return s.repo.CreateReview(ctx, model.Review{
		UserID:  userID,
		BookID:  bookID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
}

func (s *Service) DeleteReview(ctx context.Context, reviewID, userID int) error {
	return s.repo.DeleteReview(ctx, reviewID, userID)
}

func (s *Service) GetReviews(ctx context.Context, bookID int) ([]model.Review, error) {
	return s.repo.ListReviewsForBook(ctx, bookID)
}

func (s *Service) AddToWishlist(ctx context.Context, userID, libraryID, bookID int) (model.Wishlist, error) {
	return s.repo.CreateWishlist(ctx, model.Wishlist{
		UserID:    userID,
		BookID:    bookID,
		LibraryID: libraryID,
	})
}

func (s *Service) RemoveFromWishlist(ctx context.Context, userID, bookID int) error {
	return s.repo.DeleteWishlist(ctx, userID, bookID)
}

func (s *Service) GetWishlists(ctx context.Context, userID int) ([]model.Wishlist, error) {
	return s.repo.ListWishlistsForUser(ctx, userID)
}
