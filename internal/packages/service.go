package packages

import (
	"context"
	"errors"
	"fmt"

	"rich-catering-be/internal/ledger"
	"rich-catering-be/internal/logger"

	"go.uber.org/zap"
)

type Service interface {
	// VerifyQuote fails with a validation error when the package is
	// unknown or the estimate does not match its pricing.
	VerifyQuote(ctx context.Context, packageID uint, guestCount int, addOnIDs []uint, estimate float64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) VerifyQuote(ctx context.Context, packageID uint, guestCount int, addOnIDs []uint, estimate float64) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "VerifyQuote"),
		zap.Uint("package_id", packageID),
		zap.Int("guest_count", guestCount),
	)

	pkg, err := s.repo.GetByID(ctx, packageID)
	if errors.Is(err, ErrPackageNotFound) {
		return fmt.Errorf("%w: package %d does not exist", ledger.ErrValidation, packageID)
	}
	if err != nil {
		log.Error("failed to load package", zap.Error(err))
		return err
	}

	if err := pkg.VerifyEstimate(guestCount, addOnIDs, estimate); err != nil {
		log.Info("quote rejected", zap.Float64("estimate", estimate), zap.Error(err))
		return err
	}
	return nil
}
