package handler

import (
	"net/http"

	"rich-catering-be/internal/logger"
	"rich-catering-be/internal/middleware"

	"github.com/gorilla/mux"
)

type RouterConfig struct {
	JWTSecret  string
	CORSOrigin string
	Limiter    *middleware.RateLimiter
}

// NewRouter mounts every route under /api. Cross-cutting middleware wraps
// the mux so that preflight and unmatched requests still pass through it.
func NewRouter(h *Handler, cfg RouterConfig) http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	api.HandleFunc("/bookings/availability", h.CheckAvailability).Methods(http.MethodGet)

	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/orders", h.AdminOrders).Methods(http.MethodGet)
	admin.HandleFunc("/orders/{id}", h.AdminUpdateOrder).Methods(http.MethodPut)
	admin.HandleFunc("/orders/{id}/payment", h.AdminOrderPayment).Methods(http.MethodPut)
	admin.HandleFunc("/bookings", h.AdminBookings).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{id}", h.AdminUpdateBooking).Methods(http.MethodPut)
	admin.HandleFunc("/bookings/{id}/payment", h.AdminBookingPayment).Methods(http.MethodPut)
	admin.HandleFunc("/reports", h.AdminReports).Methods(http.MethodGet)

	customer := api.NewRoute().Subrouter()
	customer.Use(middleware.RequireAuth)
	customer.HandleFunc("/orders", h.Checkout).Methods(http.MethodPost)
	customer.HandleFunc("/cart/checkout", h.Checkout).Methods(http.MethodPost)
	customer.HandleFunc("/orders", h.MyOrders).Methods(http.MethodGet)
	customer.HandleFunc("/bookings", h.CreateBooking).Methods(http.MethodPost)
	customer.HandleFunc("/bookings", h.MyBookings).Methods(http.MethodGet)
	customer.HandleFunc("/payments/order/{id}", h.PayOrder).Methods(http.MethodPost)
	customer.HandleFunc("/payments/booking/{id}", h.PayBooking).Methods(http.MethodPost)
	customer.HandleFunc("/notifications", h.MyNotifications).Methods(http.MethodGet)
	customer.HandleFunc("/notifications/{id}/read", h.MarkNotificationRead).Methods(http.MethodPut)

	var next http.Handler = r
	if cfg.Limiter != nil {
		next = cfg.Limiter.Middleware(next)
	}
	next = middleware.LoggingMiddleware(next)
	next = middleware.AuthMiddleware(cfg.JWTSecret)(next)
	next = middleware.CORS(cfg.CORSOrigin)(next)
	return logger.RequestIDMiddleware(next)
}
