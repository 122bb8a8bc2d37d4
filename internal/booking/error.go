package booking

import (
	"fmt"

	"rich-catering-be/internal/ledger"
)

var ErrBookingNotFound = fmt.Errorf("booking %w", ledger.ErrNotFound)
