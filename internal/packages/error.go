package packages

import (
	"fmt"

	"rich-catering-be/internal/ledger"
)

var (
	ErrPackageNotFound      = fmt.Errorf("package %w", ledger.ErrNotFound)
	ErrGuestCountOutOfRange = fmt.Errorf("%w: guest count outside package range", ledger.ErrValidation)
	ErrUnknownAddOn         = fmt.Errorf("%w: unknown add-on", ledger.ErrValidation)
	ErrQuoteMismatch        = fmt.Errorf("%w: total estimate does not match package quote", ledger.ErrValidation)
)
