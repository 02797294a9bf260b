package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/ophelieturenne/cloud-bookshelf/internal/model"
	"github.com/ophelieturenne/cloud-bookshelf/internal/repository"
	"github.com/ophelieturenne/cloud-bookshelf/pkg/circuit_breaker"
	"github.com/ophelieturenne/cloud-bookshelf/pkg/kafka"
)

type Service struct {
	log      *zap.Logger
	repo     repository.Repository
	producer sarama.SyncProducer
	cb       circuit_breaker.CircuitBreaker
}

func NewService(repo repository.Repository, producer sarama.SyncProducer, log *zap.Logger) *Service {
	return &Service{
		log:      log,
		repo:     repo,
		producer: producer,
		cb:       circuit_breaker.New(20, 30*time.Second, 0.5, 3),
	}
}

// notify publishes a notification event for the user. Delivery is best
// effort: a broker outage must not fail the checkout transition that
// triggered it.
func (s *Service) notify(userID, libraryID int, content string) {
	if s.producer == nil {
		return
	}
	event := kafka.EventNotification{
		Timestamp: time.Now().UTC(),
		UserID:    userID,
		LibraryID: libraryID,
		Content:   content,
	}
	value, err := json.Marshal(event)
	if err != nil {
		s.log.Error("notify marshal", zap.Error(err))
		return
	}
	err = s.cb.Call(func() error {
		_, _, err := s.producer.SendMessage(&sarama.ProducerMessage{
			Topic: kafka.NotificationTopic,
			Value: sarama.ByteEncoder(value),
		})
		return err
	})
	if err != nil {
		s.log.Warn("notify publish", zap.Error(err), zap.Int("userID", userID))
	}
}

// SaveNotification persists a consumed notification event.
func (s *Service) SaveNotification(ctx context.Context, event kafka.EventNotification) error {
	return s.repo.CreateNotification(ctx, model.Notification{
		UserID:    event.UserID,
		LibraryID: event.LibraryID,
		Content:   event.Content,
	})
}

func (s *Service) GetNotifications(ctx context.Context, userID int) ([]model.Notification, error) {
	return s.repo.ListNotificationsForUser(ctx, userID)
}
