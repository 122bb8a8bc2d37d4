// Package store holds the in-memory record collections used when the service
// runs without PostgreSQL.
package store

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("record not found")

// Collection is an insertion-ordered record set with a monotonic id
// generator. All reads and writes go through one mutex, so an Update is a
// serialized read-modify-write. Records are copied in and out; callers never
// hold a pointer into the collection.
type Collection[T any] struct {
	mu     sync.Mutex
	nextID uint
	order  []uint
	items  map[uint]*T
	id     func(*T) *uint
}

// NewCollection takes an accessor returning a pointer to the record's id field.
func NewCollection[T any](id func(*T) *uint) *Collection[T] {
	return &Collection[T]{
		nextID: 1,
		items:  make(map[uint]*T),
		id:     id,
	}
}

func clone[T any](v *T) *T {
	c := *v
	return &c
}

// Insert assigns the next id to v and stores a copy.
func (c *Collection[T]) Insert(v *T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	*c.id(v) = c.nextID
	c.nextID++

	stored := clone(v)
	c.items[*c.id(stored)] = stored
	c.order = append(c.order, *c.id(stored))
}

func (c *Collection[T]) Get(id uint) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	v, ok := c.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return clone(v), nil
}

// Filter returns copies of every record accepted by keep, in insertion order.
// A nil keep returns everything.
func (c *Collection[T]) Filter(keep func(*T) bool) []*T {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]*T, 0, len(c.order))
	for _, id := range c.order {
		v := c.items[id]
		if keep == nil || keep(v) {
			out = append(out, clone(v))
		}
	}
	return out
}

// Update applies fn to a copy of the record and stores the copy only if fn
// succeeds. The id cannot be changed by fn.
func (c *Collection[T]) Update(id uint, fn func(*T) error) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, ok := c.items[id]
	if !ok {
		return nil, ErrNotFound
	}

	next := clone(current)
	if err := fn(next); err != nil {
		return nil, err
	}
	*c.id(next) = id

	c.items[id] = next
	return clone(next), nil
}

