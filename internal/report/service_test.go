package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"rich-catering-be/internal/booking"
	"rich-catering-be/internal/ledger"
	"rich-catering-be/internal/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrders struct {
	list []*order.Order
	err  error
}

func (s stubOrders) ListAll(context.Context) ([]*order.Order, error) { return s.list, s.err }

type stubBookings struct {
	list []*booking.Booking
	err  error
}

func (s stubBookings) ListAll(context.Context) ([]*booking.Booking, error) { return s.list, s.err }

var now = time.Date(2024, 12, 20, 15, 0, 0, 0, time.UTC)

func newOrder(total float64, status ledger.Status, created time.Time, items ...order.Item) *order.Order {
	return &order.Order{
		Total:     total,
		Items:     items,
		Lifecycle: ledger.Lifecycle{Status: status},
		CreatedAt: created,
	}
}

func TestService_Summary(t *testing.T) {
	yesterday := now.Add(-24 * time.Hour)
	tikka := func(q int) order.Item { return order.Item{MenuItemID: 1, Name: "Paneer Tikka", Qty: q, Price: 250} }
	naan := func(q int) order.Item { return order.Item{MenuItemID: 2, Name: "Butter Naan", Qty: q, Price: 40} }

	orders := []*order.Order{
		newOrder(500, order.StatusPending, now, tikka(2)),
		newOrder(160, order.StatusDelivered, now.Add(-time.Hour), naan(4)),
		newOrder(1000, order.StatusPending, yesterday, tikka(4)),
	}
	for id := uint(3); id <= 8; id++ {
		orders = append(orders, newOrder(10, order.StatusCancelled, yesterday, order.Item{MenuItemID: id, Name: "x", Qty: 1}))
	}

	bookings := []*booking.Booking{
		{Date: "2024-12-20", Lifecycle: ledger.Lifecycle{Status: booking.StatusConfirmed}},
		{Date: "2024-12-25", Lifecycle: ledger.Lifecycle{Status: booking.StatusConfirmed}},
		{Date: "2024-12-19", Lifecycle: ledger.Lifecycle{Status: booking.StatusConfirmed}},
		{Date: "2024-12-25", Lifecycle: ledger.Lifecycle{Status: booking.StatusPending}},
	}

	svc := NewService(stubOrders{list: orders}, stubBookings{list: bookings}).(*service)
	svc.now = func() time.Time { return now }

	sum, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 660.0, sum.TodayRevenue)
	assert.Equal(t, 2, sum.TodayOrders)
	assert.Equal(t, 2, sum.PendingOrders)
	assert.Equal(t, 2, sum.UpcomingBookings)

	require.Len(t, sum.PopularItems, 5)
	assert.Equal(t, PopularItem{MenuItemID: 1, Name: "Paneer Tikka", OrderCount: 6}, *sum.PopularItems[0])
	assert.Equal(t, PopularItem{MenuItemID: 2, Name: "Butter Naan", OrderCount: 4}, *sum.PopularItems[1])
	assert.Equal(t, uint(3), sum.PopularItems[2].MenuItemID)
}

func TestService_SummaryEmpty(t *testing.T) {
	sum, err := NewService(stubOrders{}, stubBookings{}).Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, sum.TodayRevenue)
	assert.NotNil(t, sum.PopularItems)
	assert.Empty(t, sum.PopularItems)
}

func TestService_SummaryErrors(t *testing.T) {
	_, err := NewService(stubOrders{err: errors.New("orders down")}, stubBookings{}).Summary(context.Background())
	assert.EqualError(t, err, "orders down")

	_, err = NewService(stubOrders{}, stubBookings{err: errors.New("bookings down")}).Summary(context.Background())
	assert.EqualError(t, err, "bookings down")
}
