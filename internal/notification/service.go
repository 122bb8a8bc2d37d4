package notification

import (
	"context"

	"rich-catering-be/internal/logger"
	"rich-catering-be/internal/metrics"

	"go.uber.org/zap"
)

// AdminDirectory resolves the users that receive admin notifications.
type AdminDirectory interface {
	AdminIDs(ctx context.Context) ([]uint, error)
}

type Service interface {
	// Notify and NotifyAdmins never fail the caller. Storage and publish
	// errors are logged and counted.
	Notify(ctx context.Context, userID uint, typ Type, message string)
	NotifyAdmins(ctx context.Context, typ Type, message string)

	ListForUser(ctx context.Context, userID uint) ([]*Notification, error)
	MarkRead(ctx context.Context, id, userID uint) (*Notification, error)
	Stats() Stats
}

type service struct {
	repo      Repository
	admins    AdminDirectory
	publisher Publisher

	delivered metrics.Counter
	failed    metrics.Counter
	published metrics.Counter
}

func NewService(repo Repository, admins AdminDirectory, publisher Publisher) Service {
	if publisher == nil {
		publisher = NewNoopPublisher()
	}
	return &service{
		repo:      repo,
		admins:    admins,
		publisher: publisher,
	}
}

func (s *service) Notify(ctx context.Context, userID uint, typ Type, message string) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Notify"),
		zap.Uint("user_id", userID),
		zap.String("type", string(typ)),
	)

	n := &Notification{UserID: userID, Type: typ, Message: message}
	if err := s.repo.Create(ctx, n); err != nil {
		s.failed.Inc()
		log.Error("failed to store notification", zap.Error(err))
		return
	}
	s.delivered.Inc()

	if err := s.publisher.Publish(ctx, n); err != nil {
		log.Warn("failed to publish notification",
			zap.Uint("notification_id", n.ID),
			zap.Error(err),
		)
		return
	}
	s.published.Inc()
}

func (s *service) NotifyAdmins(ctx context.Context, typ Type, message string) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "NotifyAdmins"),
	)

	if s.admins == nil {
		log.Warn("no admin directory configured")
		return
	}

	ids, err := s.admins.AdminIDs(ctx)
	if err != nil {
		s.failed.Inc()
		log.Error("failed to resolve admins", zap.Error(err))
		return
	}
	if len(ids) == 0 {
		log.Warn("no admin users found")
		return
	}

	for _, id := range ids {
		s.Notify(ctx, id, typ, message)
	}
}

func (s *service) ListForUser(ctx context.Context, userID uint) ([]*Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) MarkRead(ctx context.Context, id, userID uint) (*Notification, error) {
	n, err := s.repo.MarkRead(ctx, id, userID)
	if err != nil {
		logger.FromCtx(ctx).Info("mark read failed",
			zap.String("layer", "service"),
			zap.Uint("notification_id", id),
			zap.Uint("user_id", userID),
			zap.Error(err),
		)
		return nil, err
	}
	return n, nil
}

func (s *service) Stats() Stats {
	return Stats{
		Delivered: s.delivered.Load(),
		Failed:    s.failed.Load(),
		Published: s.published.Load(),
	}
}
