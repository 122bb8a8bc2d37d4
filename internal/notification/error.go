package notification

import (
	"fmt"

	"rich-catering-be/internal/ledger"
)

var ErrNotificationNotFound = fmt.Errorf("notification %w", ledger.ErrNotFound)
