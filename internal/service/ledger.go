package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
)

// IsReservable reports whether a new reservation may be requested for the
// book. Pure read, no side effects; CreateCheckout re-checks under lock.
func (s *Service) IsReservable(ctx context.Context, libraryID, bookID int) (bool, error) {
	book, err := s.repo.GetBook(ctx, libraryID, bookID)
	if err != nil {
		return false, err
	}
	return book.Reservable(), nil
}

// RequestReservation opens a pending checkout running from today for seven
// days.
func (s *Service) RequestReservation(ctx context.Context, libraryID, bookID, userID int) (model.Checkout, error) {
	start := time.Now().UTC().Truncate(24 * time.Hour)
	due := start.Add(model.ReservationPeriod)

	checkout, err := s.repo.CreateCheckout(ctx, libraryID, bookID, userID, start, due)
	if err != nil {
		return model.Checkout{}, err
	}
	s.notify(userID, libraryID, "Your reservation request has been received.")
	return checkout, nil
}

func (s *Service) CancelReservation(ctx context.Context, checkoutUID string, userID int) error {
	return s.repo.CancelCheckout(ctx, checkoutUID, userID)
}

func (s *Service) ApproveReservation(ctx context.Context, checkoutUID string) (model.Checkout, error) {
	checkout, err := s.repo.ApproveCheckout(ctx, checkoutUID)
	if err != nil {
		return model.Checkout{}, err
	}
	s.notify(checkout.UserID, checkout.LibraryID,
		fmt.Sprintf("Your reservation has been approved. The book is due on %s.", checkout.DueDate.Format(time.DateOnly)))
	return checkout, nil
}

func (s *Service) DenyReservation(ctx context.Context, checkoutUID string) (model.Checkout, error) {
	checkout, err := s.repo.DenyCheckout(ctx, checkoutUID)
	if err != nil {
		return model.Checkout{}, err
	}
	s.notify(checkout.UserID, checkout.LibraryID, "Your reservation has been denied.")
	return checkout, nil
}

func (s *Service) MarkReturned(ctx context.Context, checkoutUID string) (model.Checkout, error) {
	checkout, err := s.repo.ReturnCheckout(ctx, checkoutUID)
	if err != nil {
		return model.Checkout{}, err
	}
	s.notify(checkout.UserID, checkout.LibraryID, "Thank you, your return has been registered.")
	return checkout, nil
}

func (s *Service) GetCheckout(ctx context.Context, checkoutUID string) (model.Checkout, error) {
	return s.repo.GetCheckout(ctx, checkoutUID)
}

func (s *Service) GetCheckouts(ctx context.Context, userID int) ([]model.Checkout, error) {
	return s.repo.ListCheckoutsForUser(ctx, userID)
}

func (s *Service) GetPendingCheckouts(ctx context.Context, libraryID int) ([]model.Checkout, error) {
	return s.repo.ListPendingForLibrary(ctx, libraryID)
}

// ExpireStalePending sweeps pending checkouts older than the TTL and
// force-returns each one. Safe to run repeatedly; already resolved checkouts
// are skipped.
func (s *Service) ExpireStalePending(ctx context.Context, now time.Time) (int, error) {
	uids, err := s.repo.ListStalePending(ctx, now.Add(-model.PendingTTL))
	if err != nil {
		return 0, err
	}
	expired := 0
	for _, uid := range uids {
		checkout, done, err := s.repo.ExpireCheckout(ctx, uid, now)
		if err != nil {
			s.log.Error("expire checkout", zap.String("checkoutUid", uid), zap.Error(err))
			continue
		}
		if done {
			expired++
			s.notify(checkout.UserID, checkout.LibraryID,
				"Your reservation request has expired and was closed.")
		}
	}
	return expired, nil
}
