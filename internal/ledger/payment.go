package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

const (
	PaymentMethodCash   = "cash"
	PaymentMethodOnline = "online"
)

// noteTimeLayout stamps each payment note line.
const noteTimeLayout = "2006-01-02 15:04:05"

// MaxAmount is the largest value the NUMERIC(12, 2) money columns hold.
const MaxAmount = 9_999_999_999.99

// RoundCents rounds f to the two decimals money is stored with.
func RoundCents(f float64) float64 {
	return math.Round(f*100) / 100
}

// IsCents reports whether f has at most two decimal places.
func IsCents(f float64) bool {
	return math.Abs(f*100-math.Round(f*100)) < 1e-6
}

// DerivePaymentStatus is the only source of truth for payment status. Both
// sides are compared at cent precision so the result matches a stored row.
func DerivePaymentStatus(paid, due float64) PaymentStatus {
	paid, due = RoundCents(paid), RoundCents(due)
	switch {
	case paid >= due:
		return PaymentStatusPaid
	case paid > 0:
		return PaymentStatusPartial
	default:
		return PaymentStatusPending
	}
}

// Lifecycle holds the approval, fulfillment and payment fields shared by
// orders and bookings.
type Lifecycle struct {
	PaymentMethod string        `json:"paymentMethod"`
	Status        Status        `json:"status"`
	AdminApproval Approval      `json:"adminApproval"`
	PaymentStatus PaymentStatus `json:"paymentStatus"`
	PaidAmount    float64       `json:"paidAmount"`
	PaymentNotes  string        `json:"paymentNotes"`
}

// NewLifecycle returns the initial state of a freshly submitted record.
// Online payments are treated as captured in full at submission.
func NewLifecycle(paymentMethod string, due float64) Lifecycle {
	if strings.TrimSpace(paymentMethod) == "" {
		paymentMethod = PaymentMethodCash
	}

	l := Lifecycle{
		PaymentMethod: paymentMethod,
		Status:        StatusPending,
		AdminApproval: ApprovalPending,
	}
	if paymentMethod == PaymentMethodOnline {
		l.PaidAmount = RoundCents(due)
	}
	l.PaymentStatus = DerivePaymentStatus(l.PaidAmount, due)
	return l
}

// ApplyPayment adds amount to the paid total and recomputes the payment
// status against due. A non-blank note is appended as a new timestamped line.
// Paying more than due is allowed.
func (l *Lifecycle) ApplyPayment(due float64, amount Amount, note string, at time.Time) error {
	if err := amount.Validate(); err != nil {
		return err
	}

	l.PaidAmount = RoundCents(l.PaidAmount + float64(amount))
	l.PaymentStatus = DerivePaymentStatus(l.PaidAmount, due)

	if note = strings.TrimSpace(note); note != "" {
		line := fmt.Sprintf("[%s] %s", at.Format(noteTimeLayout), note)
		if l.PaymentNotes == "" {
			l.PaymentNotes = line
		} else {
			l.PaymentNotes += "\n" + line
		}
	}
	return nil
}

// Amount is a payment delta. It decodes from a JSON number or a numeric
// string; anything else leaves it marked invalid.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = Amount(math.NaN())
		return nil
	}

	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	switch v := raw.(type) {
	case float64:
		*a = Amount(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, v)
		}
		*a = Amount(f)
	default:
		return fmt.Errorf("%w: unsupported amount type", ErrInvalidAmount)
	}
	return nil
}

// String renders the amount without trailing zeros, e.g. 250 or 99.5.
func (a Amount) String() string {
	return strconv.FormatFloat(float64(a), 'f', -1, 64)
}

func (a Amount) Validate() error {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fmt.Errorf("%w: amount must be a positive number", ErrInvalidAmount)
	}
	if !IsCents(f) {
		return fmt.Errorf("%w: amount %s has more than two decimal places", ErrInvalidAmount, a)
	}
	if f > MaxAmount {
		return fmt.Errorf("%w: amount %s exceeds %.2f", ErrInvalidAmount, a, MaxAmount)
	}
	return nil
}
