package order

import (
	"fmt"

	"rich-catering-be/internal/ledger"
)

var (
	ErrOrderNotFound = fmt.Errorf("order %w", ledger.ErrNotFound)
	ErrEmptyCart     = fmt.Errorf("%w: cart is empty", ledger.ErrValidation)
)
