package order

import (
	"time"

	"rich-catering-be/internal/ledger"
)

const (
	StatusPending   ledger.Status = ledger.StatusPending
	StatusConfirmed ledger.Status = "confirmed"
	StatusPreparing ledger.Status = "preparing"
	StatusReady     ledger.Status = "ready"
	StatusDelivered ledger.Status = "delivered"
	StatusCancelled ledger.Status = "cancelled"
)

// Statuses is the order fulfillment table. Admins may set any state.
var Statuses = ledger.NewFreeStatusMachine("order",
	StatusPending,
	StatusConfirmed,
	StatusPreparing,
	StatusReady,
	StatusDelivered,
	StatusCancelled,
)

type Item struct {
	MenuItemID uint    `json:"menuItemId" validate:"gt=0"`
	Name       string  `json:"name" validate:"notblank"`
	Qty        int     `json:"qty" validate:"gt=0"`
	Price      float64 `json:"price" validate:"gte=0"`
}

type Order struct {
	ID      uint    `json:"id"`
	UserID  uint    `json:"userId"`
	Items   []Item  `json:"items"`
	Total   float64 `json:"total"`
	Address string  `json:"address"`
	ledger.Lifecycle
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CheckoutInput is the cart submitted by a customer. Total is taken as given.
type CheckoutInput struct {
	Items         []Item  `json:"items" validate:"required,min=1,dive"`
	Total         float64 `json:"total" validate:"gt=0,lte=9999999999.99,cents"`
	Address       string  `json:"address" validate:"notblank"`
	PaymentMethod string  `json:"paymentMethod" validate:"max=32"`
}

// AdminPaymentInput records a manual payment delta against an order.
type AdminPaymentInput struct {
	PaidAmount   ledger.Amount `json:"paidAmount"`
	PaymentNotes string        `json:"paymentNotes"`
}

// PaymentInput is a customer self-service payment delta.
type PaymentInput struct {
	Amount        ledger.Amount `json:"amount"`
	PaymentMethod string        `json:"paymentMethod"`
}
