package order

import (
	"context"
	"errors"
	"time"

	"rich-catering-be/internal/store"
)

type memoryRepository struct {
	orders *store.Collection[Order]
}

// NewMemoryRepository keeps orders in process memory behind one lock.
func NewMemoryRepository() Repository {
	return &memoryRepository{
		orders: store.NewCollection(func(o *Order) *uint { return &o.ID }),
	}
}

func (r *memoryRepository) Create(_ context.Context, o *Order) error {
	now := time.Now().UTC()
	o.CreatedAt = now
	o.UpdatedAt = now
	r.orders.Insert(o)
	return nil
}

func (r *memoryRepository) GetByID(_ context.Context, id uint) (*Order, error) {
	o, err := r.orders.Get(id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}

func (r *memoryRepository) ListByUser(_ context.Context, userID uint) ([]*Order, error) {
	return r.orders.Filter(func(o *Order) bool { return o.UserID == userID }), nil
}

func (r *memoryRepository) ListAll(_ context.Context) ([]*Order, error) {
	return r.orders.Filter(nil), nil
}

func (r *memoryRepository) Update(_ context.Context, id uint, fn func(*Order) error) (*Order, error) {
	o, err := r.orders.Update(id, func(o *Order) error {
		if err := fn(o); err != nil {
			return err
		}
		o.UpdatedAt = time.Now().UTC()
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrOrderNotFound
	}
	return o, err
}
