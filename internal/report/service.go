package report

import (
	"context"
	"sort"
	"time"

	"rich-catering-be/internal/booking"
	"rich-catering-be/internal/logger"
	"rich-catering-be/internal/order"

	"go.uber.org/zap"
)

const popularItemsLimit = 5

type Summary struct {
	TodayRevenue     float64        `json:"todayRevenue"`
	TodayOrders      int            `json:"todayOrders"`
	UpcomingBookings int            `json:"upcomingBookings"`
	PendingOrders    int            `json:"pendingOrders"`
	PopularItems     []*PopularItem `json:"popularItems"`
}

type PopularItem struct {
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	OrderCount int    `json:"orderCount"`
}

type OrderLister interface {
	ListAll(ctx context.Context) ([]*order.Order, error)
}

type BookingLister interface {
	ListAll(ctx context.Context) ([]*booking.Booking, error)
}

type Service interface {
	Summary(ctx context.Context) (*Summary, error)
}

type service struct {
	orders   OrderLister
	bookings BookingLister
	now      func() time.Time
}

func NewService(orders OrderLister, bookings BookingLister) Service {
	return &service{orders: orders, bookings: bookings, now: time.Now}
}

func (s *service) Summary(ctx context.Context) (*Summary, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Summary"),
	)

	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		log.Error("failed to list orders", zap.Error(err))
		return nil, err
	}
	bookings, err := s.bookings.ListAll(ctx)
	if err != nil {
		log.Error("failed to list bookings", zap.Error(err))
		return nil, err
	}

	return summarize(orders, bookings, s.now().UTC().Format(booking.DateLayout)), nil
}

// summarize buckets "today" by the UTC calendar date of createdAt.
func summarize(orders []*order.Order, bookings []*booking.Booking, today string) *Summary {
	sum := &Summary{}

	counts := map[uint]*PopularItem{}
	for _, o := range orders {
		if o.CreatedAt.UTC().Format(booking.DateLayout) == today {
			sum.TodayOrders++
			sum.TodayRevenue += o.Total
		}
		if o.Status == order.StatusPending {
			sum.PendingOrders++
		}
		for _, it := range o.Items {
			p, ok := counts[it.MenuItemID]
			if !ok {
				p = &PopularItem{MenuItemID: it.MenuItemID, Name: it.Name}
				counts[it.MenuItemID] = p
			}
			p.OrderCount += it.Qty
		}
	}

	for _, b := range bookings {
		// dates are YYYY-MM-DD so string order is calendar order
		if b.Status == booking.StatusConfirmed && b.Date >= today {
			sum.UpcomingBookings++
		}
	}

	popular := make([]*PopularItem, 0, len(counts))
	for _, p := range counts {
		popular = append(popular, p)
	}
	sort.Slice(popular, func(i, j int) bool {
		if popular[i].OrderCount != popular[j].OrderCount {
			return popular[i].OrderCount > popular[j].OrderCount
		}
		return popular[i].MenuItemID < popular[j].MenuItemID
	})
	if len(popular) > popularItemsLimit {
		popular = popular[:popularItemsLimit]
	}
	sum.PopularItems = popular

	return sum
}
