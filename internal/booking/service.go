package booking

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

type Notifier interface {
	Notify(ctx context.Context, userID uint, typ notification.Type, message string)
	NotifyAdmins(ctx context.Context, typ notification.Type, message string)
}

// QuoteVerifier checks a submitted estimate against catalog pricing.
type QuoteVerifier interface {
	VerifyQuote(ctx context.Context, packageID uint, guestCount int, addOnIDs []uint, estimate float64) error
}

type Service interface {
	Create(ctx context.Context, userID uint, input CreateInput) (*Booking, error)
	CheckAvailability(ctx context.Context, date, timeSlot string) (*Availability, error)
	ListForUser(ctx context.Context, userID uint) ([]*Booking, error)
	ListAll(ctx context.Context) ([]*Booking, error)
	UpdateByAdmin(ctx context.Context, id uint, update ledger.Update) (*Booking, error)
	RecordPayment(ctx context.Context, id uint, input AdminPaymentInput) (*Booking, error)
	Pay(ctx context.Context, userID, id uint, input PaymentInput) (*Booking, error)
}

type service struct {
	repo     Repository
	notifier Notifier
	quotes   QuoteVerifier
	now      func() time.Time
}

// NewService builds the booking service. A nil quotes verifier trusts the
// caller supplied totalEstimate.
func NewService(repo Repository, notifier Notifier, quotes QuoteVerifier) Service {
	return &service{
		repo:     repo,
		notifier: notifier,
		quotes:   quotes,
		now:      time.Now,
	}
}

func (s *service) Create(ctx context.Context, userID uint, input CreateInput) (*Booking, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Create"),
		zap.Uint("user_id", userID),
	)

	if err := ledger.Validate(input); err != nil {
		log.Info("invalid booking input", zap.Error(err))
		return nil, err
	}

	if s.quotes != nil {
		if err := s.quotes.VerifyQuote(ctx, input.PackageID, input.GuestCount, input.AddOns, input.TotalEstimate); err != nil {
			return nil, err
		}
	}

	addOns := make([]uint, len(input.AddOns))
	copy(addOns, input.AddOns)

	b := &Booking{
		UserID:         userID,
		PackageID:      input.PackageID,
		Date:           input.Date,
		TimeSlot:       strings.TrimSpace(input.TimeSlot),
		GuestCount:     input.GuestCount,
		AddOns:         addOns,
		TotalEstimate:  input.TotalEstimate,
		ContactDetails: input.ContactDetails,
		Lifecycle:      ledger.NewLifecycle(input.PaymentMethod, input.TotalEstimate),
	}
	if err := s.repo.Create(ctx, b); err != nil {
		log.Error("failed to create booking", zap.Error(err))
		return nil, err
	}

	log.Info("booking created",
		zap.Uint("booking_id", b.ID),
		zap.String("date", b.Date),
		zap.String("time_slot", b.TimeSlot),
	)
	s.notifier.NotifyAdmins(ctx, notification.TypeBooking,
		fmt.Sprintf("New booking request #%d - %s %s", b.ID, b.Date, b.TimeSlot))
	s.notifier.Notify(ctx, userID, notification.TypeBooking,
		fmt.Sprintf("Booking request #%d submitted. Awaiting admin approval.", b.ID))
	return b, nil
}

// CheckAvailability is advisory. A blank or malformed date or slot matches
// nothing.
func (s *service) CheckAvailability(ctx context.Context, date, timeSlot string) (*Availability, error) {
	if !validSlot(date, timeSlot) {
		return &Availability{Available: true, Conflicts: []*Booking{}}, nil
	}

	candidates, err := s.repo.ListBySlot(ctx, date, timeSlot)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to list bookings for slot",
			zap.String("layer", "service"),
			zap.String("date", date),
			zap.String("time_slot", timeSlot),
			zap.Error(err),
		)
		return nil, err
	}

	conflicts := Conflicts(candidates, date, timeSlot)
	return &Availability{Available: len(conflicts) == 0, Conflicts: conflicts}, nil
}

func (s *service) ListForUser(ctx context.Context, userID uint) ([]*Booking, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *service) ListAll(ctx context.Context) ([]*Booking, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) UpdateByAdmin(ctx context.Context, id uint, update ledger.Update) (*Booking, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateByAdmin"),
		zap.Uint("booking_id", id),
	)

	if update.Empty() {
		return nil, fmt.Errorf("%w: status or adminApproval is required", ledger.ErrValidation)
	}

	b, err := s.repo.Update(ctx, id, func(b *Booking) error {
		return update.Apply(&b.Lifecycle, Statuses)
	})
	if err != nil {
		log.Info("admin update rejected", zap.Error(err))
		return nil, err
	}

	log.Info("booking updated",
		zap.String("status", string(b.Status)),
		zap.String("admin_approval", string(b.AdminApproval)),
	)
	s.notifier.Notify(ctx, b.UserID, notification.TypeBooking,
		fmt.Sprintf("Booking #%d %s", b.ID, update.Describe()))
	return b, nil
}

func (s *service) RecordPayment(ctx context.Context, id uint, input AdminPaymentInput) (*Booking, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "RecordPayment"),
		zap.Uint("booking_id", id),
	)

	if err := input.PaidAmount.Validate(); err != nil {
		return nil, err
	}

	b, err := s.repo.Update(ctx, id, func(b *Booking) error {
		return b.ApplyPayment(b.TotalEstimate, input.PaidAmount, input.PaymentNotes, s.now())
	})
	if err != nil {
		log.Info("payment not recorded", zap.Error(err))
		return nil, err
	}

	log.Info("payment recorded",
		zap.Float64("amount", float64(input.PaidAmount)),
		zap.Float64("paid_amount", b.PaidAmount),
		zap.String("payment_status", string(b.PaymentStatus)),
	)
	s.notifier.Notify(ctx, b.UserID, notification.TypeBooking,
		fmt.Sprintf("Payment recorded for booking #%d. Amount: ₹%s", b.ID, input.PaidAmount))
	return b, nil
}

func (s *service) Pay(ctx context.Context, userID, id uint, input PaymentInput) (*Booking, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Pay"),
		zap.Uint("booking_id", id),
		zap.Uint("user_id", userID),
	)

	if err := input.Amount.Validate(); err != nil {
		return nil, err
	}

	b, err := s.repo.Update(ctx, id, func(b *Booking) error {
		if b.UserID != userID {
			return ErrBookingNotFound
		}
		if method := strings.TrimSpace(input.PaymentMethod); method != "" {
			b.PaymentMethod = method
		}
		return b.ApplyPayment(b.TotalEstimate, input.Amount, "", s.now())
	})
	if err != nil {
		log.Info("customer payment rejected", zap.Error(err))
		return nil, err
	}

	log.Info("customer payment applied",
		zap.Float64("amount", float64(input.Amount)),
		zap.String("payment_status", string(b.PaymentStatus)),
	)
	s.notifier.Notify(ctx, userID, notification.TypeBooking,
		fmt.Sprintf("Payment of ₹%s received for booking #%d", input.Amount, b.ID))
	return b, nil
}
