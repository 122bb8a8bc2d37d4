package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rich-catering-be/internal/ledger"
	"rich-catering-be/internal/logger"
	"rich-catering-be/internal/notification"

	"go.uber.org/zap"
)

// Notifier receives one customer message per successful mutation.
type Notifier interface {
	Notify(ctx context.Context, userID uint, typ notification.Type, message string)
}

type Service interface {
	Checkout(ctx context.Context, userID uint, input CheckoutInput) (*Order, error)
	ListForUser(ctx context.Context, userID uint) ([]*Order, error)
	ListAll(ctx context.Context) ([]*Order, error)
	UpdateByAdmin(ctx context.Context, id uint, update ledger.Update) (*Order, error)
	RecordPayment(ctx context.Context, id uint, input AdminPaymentInput) (*Order, error)
	Pay(ctx context.Context, userID, id uint, input PaymentInput) (*Order, error)
}

type service struct {
	repo     Repository
	notifier Notifier
	now      func() time.Time
}

func NewService(repo Repository, notifier Notifier) Service {
	return &service{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
	}
}

func (s *service) Checkout(ctx context.Context, userID uint, input CheckoutInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Checkout"),
		zap.Uint("user_id", userID),
	)

	if len(input.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if err := ledger.Validate(input); err != nil {
		log.Info("invalid checkout input", zap.Error(err))
		return nil, err
	}

	items := make([]Item, len(input.Items))
	copy(items, input.Items)

	o := &Order{
		UserID:    userID,
		Items:     items,
		Total:     input.Total,
		Address:   strings.TrimSpace(input.Address),
		Lifecycle: ledger.NewLifecycle(input.PaymentMethod, input.Total),
	}
	if err := s.repo.Create(ctx, o); err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	log.Info("order created",
		zap.Uint("order_id", o.ID),
		zap.Float64("total", o.Total),
		zap.String("payment_status", string(o.PaymentStatus)),
	)
	s.notifier.Notify(ctx, userID, notification.TypeOrder,
		fmt.Sprintf("Order #%d placed successfully", o.ID))
	return o, nil
}

func (s *service) ListForUser(ctx context.Context, userID uint) ([]*Order, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]*Order, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) UpdateByAdmin(ctx context.Context, id uint, update ledger.Update) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateByAdmin"),
		zap.Uint("order_id", id),
	)

	if update.Empty() {
		return nil, fmt.Errorf("%w: status or adminApproval is required", ledger.ErrValidation)
	}

	o, err := s.repo.Update(ctx, id, func(o *Order) error {
		return update.Apply(&o.Lifecycle, Statuses)
	})
	if err != nil {
		log.Info("admin update rejected", zap.Error(err))
		return nil, err
	}

	log.Info("order updated",
		zap.String("status", string(o.Status)),
		zap.String("admin_approval", string(o.AdminApproval)),
	)
	s.notifier.Notify(ctx, o.UserID, notification.TypeOrder,
		fmt.Sprintf("Order #%d %s", o.ID, update.Describe()))
	return o, nil
}

func (s *service) RecordPayment(ctx context.Context, id uint, input AdminPaymentInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "RecordPayment"),
		zap.Uint("order_id", id),
	)

	if err := input.PaidAmount.Validate(); err != nil {
		return nil, err
	}

	o, err := s.repo.Update(ctx, id, func(o *Order) error {
		return o.ApplyPayment(o.Total, input.PaidAmount, input.PaymentNotes, s.now())
	})
	if err != nil {
		log.Info("payment not recorded", zap.Error(err))
		return nil, err
	}

	log.Info("payment recorded",
		zap.Float64("amount", float64(input.PaidAmount)),
		zap.Float64("paid_amount", o.PaidAmount),
		zap.String("payment_status", string(o.PaymentStatus)),
	)
	s.notifier.Notify(ctx, o.UserID, notification.TypeOrder,
		fmt.Sprintf("Payment recorded for order #%d. Amount: ₹%s", o.ID, input.PaidAmount))
	return o, nil
}

// Pay records a customer payment. Orders owned by someone else are
// reported as missing.
func (s *service) Pay(ctx context.Context, userID, id uint, input PaymentInput) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Pay"),
		zap.Uint("order_id", id),
		zap.Uint("user_id", userID),
	)

	if err := input.Amount.Validate(); err != nil {
		return nil, err
	}

	o, err := s.repo.Update(ctx, id, func(o *Order) error {
		if o.UserID != userID {
			return ErrOrderNotFound
		}
		if method := strings.TrimSpace(input.PaymentMethod); method != "" {
			o.PaymentMethod = method
		}
		return o.ApplyPayment(o.Total, input.Amount, "", s.now())
	})
	if err != nil {
		log.Info("customer payment rejected", zap.Error(err))
		return nil, err
	}

	log.Info("customer payment applied",
		zap.Float64("amount", float64(input.Amount)),
		zap.String("payment_status", string(o.PaymentStatus)),
	)
	s.notifier.Notify(ctx, userID, notification.TypeOrder,
		fmt.Sprintf("Payment of ₹%s received for order #%d", input.Amount, o.ID))
	return o, nil
}
