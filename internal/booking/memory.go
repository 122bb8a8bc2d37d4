package booking

import (
	"context"
	"errors"
	"time"

	"rich-catering-be/internal/store"
)

type memoryRepository struct {
	bookings *store.Collection[Booking]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		bookings: store.NewCollection(func(b *Booking) *uint { return &b.ID }),
	}
}

func (r *memoryRepository) Create(_ context.Context, b *Booking) error {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now
	r.bookings.Insert(b)
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id uint) (*Booking, error) {
	b, err := r.bookings.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	return b, err
}

func (r *memoryRepository) ListByUser(_ context.Context, userID uint) ([]*Booking, error) {
	return r.bookings.Filter(func(b *Booking) bool { return b.UserID == userID }), nil
}

func (r *memoryRepository) ListAll(_ context.Context) ([]*Booking, error) {
	return r.bookings.Filter(nil), nil
}

func (r *memoryRepository) ListBySlot(_ context.Context, date, timeSlot string) ([]*Booking, error) {
	return r.bookings.Filter(func(b *Booking) bool {
		return b.Date == date && b.TimeSlot == timeSlot
	}), nil
}

func (r *memoryRepository) Update(_ context.Context, id uint, fn func(*Booking) error) (*Booking, error) {
	b, err := r.bookings.Update(id, func(b *Booking) error {
		if err := fn(b); err != nil {
			return err
		}
		b.UpdatedAt = time.Now().UTC()
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrBookingNotFound
	}
	return b, err
}
