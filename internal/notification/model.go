package notification

import "time"

type Type string

const (
	TypeOrder   Type = "order"
	TypeBooking Type = "booking"
)

type Notification struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"userId"`
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// Stats reports delivery counters since process start.
type Stats struct {
	Delivered uint64 `json:"delivered"`
	Failed    uint64 `json:"failed"`
	Published uint64 `json:"published"`
}
