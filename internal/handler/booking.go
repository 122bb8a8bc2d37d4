package handler

import (
	"net/http"

	"rich-catering-be/internal/booking"
	"rich-catering-be/internal/ledger"
	"rich-catering-be/internal/utils"
)

// slotSummary is what the public availability check reveals about a
// conflicting booking.
type slotSummary struct {
	ID         uint   `json:"id"`
	Date       string `json:"date"`
	TimeSlot   string `json:"timeSlot"`
	GuestCount int    `json:"guestCount"`
}

func (h *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	a, err := h.Bookings.CheckAvailability(r.Context(), q.Get("date"), q.Get("timeSlot"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	conflicts := make([]slotSummary, 0, len(a.Conflicts))
	for _, b := range a.Conflicts {
		conflicts = append(conflicts, slotSummary{
			ID:         b.ID,
			Date:       b.Date,
			TimeSlot:   b.TimeSlot,
			GuestCount: b.GuestCount,
		})
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"available":           a.Available,
		"conflictingBookings": conflicts,
	})
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input booking.CreateInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	b, err := h.Bookings.Create(r.Context(), userID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]any{
		"success":   true,
		"bookingId": b.ID,
		"booking":   b,
	})
}

func (h *Handler) MyBookings(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	bookings, err := h.Bookings.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, bookings)
}

func (h *Handler) PayBooking(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r, "booking")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input booking.PaymentInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	b, err := h.Bookings.Pay(r.Context(), userID, id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "booking": b})
}

func (h *Handler) AdminBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.Bookings.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, bookings)
}

func (h *Handler) AdminUpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "booking")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update ledger.Update
	if err := decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	b, err := h.Bookings.UpdateByAdmin(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "booking": b})
}

func (h *Handler) AdminBookingPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "booking")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input booking.AdminPaymentInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	b, err := h.Bookings.RecordPayment(r.Context(), id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "booking": b})
}
