package notification

import (
	"context"
	"errors"
	"slices"
	"time"

	"rich-catering-be/internal/store"
)

type memoryRepository struct {
	items *store.Collection[Notification]
}

func NewMemoryRepository() Repository {
	return &memoryRepository{
		items: store.NewCollection(func(n *Notification) *uint { return &n.ID }),
	}
}

func (r *memoryRepository) Create(_ context.Context, n *Notification) error {
	n.CreatedAt = time.Now().UTC()
	r.items.Insert(n)
	return nil
}

// ListByUser returns newest first, matching the postgres ordering.
func (r *memoryRepository) ListByUser(_ context.Context, userID uint) ([]*Notification, error) {
	list := r.items.Filter(func(n *Notification) bool { return n.UserID == userID })
	slices.Reverse(list)
	return list, nil
}

func (r *memoryRepository) MarkRead(_ context.Context, id, userID uint) (*Notification, error) {
	n, err := r.items.Update(id, func(n *Notification) error {
		if n.UserID != userID {
			return ErrNotificationNotFound
		}
		n.Read = true
		return nil
	})
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNotificationNotFound
	}
	return n, err
}
