package handler

import (
	"net/http"

	"rich-catering-be/internal/ledger"
	"rich-catering-be/internal/order"
	"rich-catering-be/internal/utils"
)

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input order.CheckoutInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	o, err := h.Orders.Checkout(r.Context(), userID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"orderId": o.ID,
		"order":   o,
	})
}

func (h *Handler) MyOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	orders, err := h.Orders.ListForUser(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

func (h *Handler) PayOrder(w http.ResponseWriter, r *http.Request) {
	userID, err := callerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	id, err := pathID(r, "order")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input order.PaymentInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	o, err := h.Orders.Pay(r.Context(), userID, id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "order": o})
}

func (h *Handler) AdminOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListAll(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, orders)
}

func (h *Handler) AdminUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "order")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var update ledger.Update
	if err := decodeJSON(w, r, &update); err != nil {
		writeError(w, r, err)
		return
	}

	o, err := h.Orders.UpdateByAdmin(r.Context(), id, update)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "order": o})
}

func (h *Handler) AdminOrderPayment(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "order")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input order.AdminPaymentInput
	if err := decodeJSON(w, r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	o, err := h.Orders.RecordPayment(r.Context(), id, input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, map[string]any{"success": true, "order": o})
}
