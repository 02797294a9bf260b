package service

import (
	"context"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/ophelieturenne/cloud-bookshelf/internal/errs"
	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
	"github.com/ophelieturenne/cloud-bookshelf/internal/repository"
	"github.com/ophelieturenne/cloud-bookshelf/pkg/kafka"
)

// repoStub overrides only the methods a test needs; calling anything else
// panics through the embedded nil interface.
type repoStub struct {
	repository.Repository
	createCheckout    func(ctx context.Context, libraryID, bookID, userID int, start, due time.Time) (model.Checkout, error)
	listStalePending  func(ctx context.Context, olderThan time.Time) ([]string, error)
	expireCheckout    func(ctx context.Context, checkoutUID string, now time.Time) (model.Checkout, bool, error)
	getUserByUsername func(ctx context.Context, username string) (model.User, error)
	membership        func(ctx context.Context, libraryID, userID int) (model.LibraryUser, error)
	getBook           func(ctx context.Context, libraryID, bookID int) (model.BookWithCounts, error)
}

func (s *repoStub) CreateCheckout(ctx context.Context, libraryID, bookID, userID int, start, due time.Time) (model.Checkout, error) {
	return s.createCheckout(ctx, libraryID, bookID, userID, start, due)
}

func (s *repoStub) ListStalePending(ctx context.Context, olderThan time.Time) ([]string, error) {
	return s.listStalePending(ctx, olderThan)
}

func (s *repoStub) ExpireCheckout(ctx context.Context, checkoutUID string, now time.Time) (model.Checkout, bool, error) {
	return s.expireCheckout(ctx, checkoutUID, now)
}

func (s *repoStub) GetBook(ctx context.Context, libraryID, bookID int) (model.BookWithCounts, error) {
	return s.getBook(ctx, libraryID, bookID)
}

// producerStub records published messages; the transactional methods stay on
// the embedded nil interface.
type producerStub struct {
	sarama.SyncProducer
	sent []*sarama.ProducerMessage
}

func (p *producerStub) SendMessage(msg *sarama.ProducerMessage) (int32, int64, error) {
	p.sent = append(p.sent, msg)
	return 0, 0, nil
}

func (s *repoStub) GetUserByUsername(ctx context.Context, username string) (model.User, error) {
	return s.getUserByUsername(ctx, username)
}

func (s *repoStub) Membership(ctx context.Context, libraryID, userID int) (model.LibraryUser, error) {
	return s.membership(ctx, libraryID, userID)
}

func newTestService(repo repository.Repository) *Service {
	// nil producer: notifications are skipped, not sent
	return NewService(repo, nil, zap.NewNop())
}

func TestService_RequestReservation_Window(t *testing.T) {
	t.Parallel()

	var gotStart, gotDue time.Time
	repo := &repoStub{
		createCheckout: func(_ context.Context, libraryID, bookID, userID int, start, due time.Time) (model.Checkout, error) {
			gotStart, gotDue = start, due
			return model.Checkout{
				CheckoutUID: "uid-1",
				BookID:      bookID,
				UserID:      userID,
				LibraryID:   libraryID,
				Status:      model.CheckoutPending,
				StartDate:   start,
				DueDate:     due,
			}, nil
		},
	}
	svc := newTestService(repo)

	checkout, err := svc.RequestReservation(context.Background(), 1, 3, 42)
	require.NoError(t, err)
	require.Equal(t, model.CheckoutPending, checkout.Status)

	require.Equal(t, gotStart.Truncate(24*time.Hour), gotStart, "start date is midnight UTC")
	require.Equal(t, gotStart.Add(model.ReservationPeriod), gotDue)
}

func TestService_RequestReservation_NotReservable(t *testing.T) {
	t.Parallel()

	repo := &repoStub{
		createCheckout: func(context.Context, int, int, int, time.Time, time.Time) (model.Checkout, error) {
			return model.Checkout{}, errs.ErrNotReservable
		},
	}
	svc := newTestService(repo)

	_, err := svc.RequestReservation(context.Background(), 1, 3, 42)
	require.ErrorIs(t, err, errs.ErrNotReservable)
}

func TestService_ExpireStalePending(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	repo := &repoStub{
		listStalePending: func(_ context.Context, olderThan time.Time) ([]string, error) {
			require.Equal(t, now.Add(-model.PendingTTL), olderThan)
			return []string{"stale", "raced", "broken"}, nil
		},
		expireCheckout: func(_ context.Context, uid string, _ time.Time) (model.Checkout, bool, error) {
			switch uid {
			case "stale":
				return model.Checkout{
					CheckoutUID: uid,
					UserID:      42,
					LibraryID:   1,
					Status:      model.CheckoutReturned,
				}, true, nil
			case "raced":
				// resolved between listing and expiring
				return model.Checkout{CheckoutUID: uid, Status: model.CheckoutApproved}, false, nil
			default:
				return model.Checkout{}, false, errors.New("db down")
			}
		},
	}
	producer := &producerStub{}
	svc := NewService(repo, producer, zap.NewNop())

	expired, err := svc.ExpireStalePending(context.Background(), now)
	require.NoError(t, err)
	require.Equal(t, 1, expired)

	// only the actually expired checkout produces a notification event
	require.Len(t, producer.sent, 1)
	require.Equal(t, kafka.NotificationTopic, producer.sent[0].Topic)
	value, err := producer.sent[0].Value.Encode()
	require.NoError(t, err)
	require.Contains(t, string(value), `"userId":42`)
	require.Contains(t, string(value), "expired")
}

func TestService_IsReservable(t *testing.T) {
	t.Parallel()

	books := map[int]model.BookWithCounts{
		3: {Book: model.Book{ID: 3, Format: model.FormatHardcover, Quantity: intPtr(1), Status: model.BookAvailable}},
		4: {Book: model.Book{ID: 4, Format: model.FormatEbook, Status: model.BookAvailable}},
		5: {Book: model.Book{ID: 5, Format: model.FormatHardcover, Quantity: intPtr(1), Status: model.BookReservePending}},
	}
	repo := &repoStub{
		getBook: func(_ context.Context, _, bookID int) (model.BookWithCounts, error) {
			book, ok := books[bookID]
			if !ok {
				return model.BookWithCounts{}, errs.ErrNotFound
			}
			return book, nil
		},
	}
	svc := newTestService(repo)
	ctx := context.Background()

	ok, err := svc.IsReservable(ctx, 1, 3)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.IsReservable(ctx, 1, 4)
	require.NoError(t, err)
	require.False(t, ok, "ebooks are never reservable")

	ok, err = svc.IsReservable(ctx, 1, 5)
	require.NoError(t, err)
	require.False(t, ok, "all copies claimed by pending requests")

	_, err = svc.IsReservable(ctx, 1, 404)
	require.ErrorIs(t, err, errs.ErrNotFound)
}

func intPtr(n int) *int { return &n }

func TestService_Authenticate(t *testing.T) {
	t.Parallel()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct horse battery"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &repoStub{
		getUserByUsername: func(_ context.Context, username string) (model.User, error) {
			if username != "reader" {
				return model.User{}, errs.ErrNotFound
			}
			return model.User{ID: 42, Username: "reader", PasswordHash: string(hash)}, nil
		},
	}
	svc := newTestService(repo)

	t.Run("ok", func(t *testing.T) {
		user, err := svc.Authenticate(context.Background(), "reader", "correct horse battery")
		require.NoError(t, err)
		require.Equal(t, 42, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "reader", "wrong")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Authenticate(context.Background(), "nobody", "whatever")
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_Membership(t *testing.T) {
	t.Parallel()

	repo := &repoStub{
		membership: func(_ context.Context, libraryID, userID int) (model.LibraryUser, error) {
			switch userID {
			case 1:
				return model.LibraryUser{UserID: 1, LibraryID: libraryID, IsAdmin: true}, nil
			case 2:
				return model.LibraryUser{UserID: 2, LibraryID: libraryID}, nil
			default:
				return model.LibraryUser{}, errs.ErrNotFound
			}
		},
	}
	svc := newTestService(repo)
	ctx := context.Background()

	ok, err := svc.IsMember(ctx, 1, 2)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = svc.IsMember(ctx, 1, 99)
	require.NoError(t, err)
	require.False(t, ok)

	admin, err := svc.IsLibraryAdmin(ctx, 1, 1)
	require.NoError(t, err)
	require.True(t, admin)

	admin, err = svc.IsLibraryAdmin(ctx, 1, 2)
	require.NoError(t, err)
	require.False(t, admin)

	admin, err = svc.IsLibraryAdmin(ctx, 1, 99)
	require.NoError(t, err)
	require.False(t, admin)
}
