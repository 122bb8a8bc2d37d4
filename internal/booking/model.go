package booking

import (
	"time"

	"rich-catering-be/internal/ledger"
)

// DateLayout is the calendar date format of Booking.Date.
const DateLayout = "2006-01-02"

const (
	StatusPending    ledger.Status = ledger.StatusPending
	StatusConfirmed  ledger.Status = "confirmed"
	StatusInProgress ledger.Status = "in progress"
	StatusCompleted  ledger.Status = "completed"
	StatusCancelled  ledger.Status = "cancelled"
)

var Statuses = ledger.NewFreeStatusMachine("booking",
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
	StatusCompleted,
	StatusCancelled,
)

type ContactDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type Booking struct {
	ID             uint           `json:"id"`
	UserID         uint           `json:"userId"`
	PackageID      uint           `json:"packageId"`
	Date           string         `json:"date"`
	TimeSlot       string         `json:"timeSlot"`
	GuestCount     int            `json:"guestCount"`
	AddOns         []uint         `json:"addOns"`
	TotalEstimate  float64        `json:"totalEstimate"`
	ContactDetails ContactDetails `json:"contactDetails"`
	ledger.Lifecycle
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateInput struct {
	PackageID      uint           `json:"packageId" validate:"gt=0"`
	Date           string         `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot       string         `json:"timeSlot" validate:"notblank"`
	GuestCount     int            `json:"guestCount" validate:"gt=0"`
	AddOns         []uint         `json:"addOns" validate:"dive,gt=0"`
	TotalEstimate  float64        `json:"totalEstimate" validate:"gt=0,lte=9999999999.99,cents"`
	ContactDetails ContactDetails `json:"contactDetails"`
	PaymentMethod  string         `json:"paymentMethod" validate:"max=32"`
}

type AdminPaymentInput struct {
	PaidAmount   ledger.Amount `json:"paidAmount"`
	PaymentNotes string        `json:"paymentNotes"`
}

type PaymentInput struct {
	Amount        ledger.Amount `json:"amount"`
	PaymentMethod string        `json:"paymentMethod"`
}
