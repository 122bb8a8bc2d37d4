package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"rich-catering-be/internal/booking"
	"rich-catering-be/internal/ledger"
	"rich-catering-be/internal/logger"
	"rich-catering-be/internal/notification"
	"rich-catering-be/internal/order"
	"rich-catering-be/internal/report"
	"rich-catering-be/internal/utils"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

type Handler struct {
	Orders        order.Service
	Bookings      booking.Service
	Notifications notification.Service
	Reports       report.Service
}

func NewHandler(orders order.Service, bookings booking.Service, notifications notification.Service, reports report.Service) *Handler {
	return &Handler{
		Orders:        orders,
		Bookings:      bookings,
		Notifications: notifications,
		Reports:       reports,
	}
}

var statusByKind = map[string]int{
	"Unauthorized":    http.StatusUnauthorized,
	"Forbidden":       http.StatusForbidden,
	"NotFound":        http.StatusNotFound,
	"InvalidAmount":   http.StatusBadRequest,
	"ValidationError": http.StatusBadRequest,
}

// writeError maps a service error to its kind and HTTP status. Internal
// errors are logged and their message hidden.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := ledger.Kind(err)
	status, ok := statusByKind[kind]
	if !ok {
		logger.FromCtx(r.Context()).Error("request failed",
			zap.String("layer", "handler"),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		utils.WriteJSONError(w, kind, "internal server error", http.StatusInternalServerError)
		return
	}
	utils.WriteJSONError(w, kind, err.Error(), status)
}

// decodeJSON reads a single JSON object. Malformed amounts keep their
// InvalidAmount kind; any other decode failure is a validation error.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, ledger.ErrInvalidAmount) {
			return err
		}
		return fmt.Errorf("%w: invalid JSON body: %v", ledger.ErrValidation, err)
	}
	return nil
}

// pathID parses the {id} route variable. Ids that cannot exist are not found.
func pathID(r *http.Request, resource string) (uint, error) {
	id, err := utils.ToUint(mux.Vars(r)["id"])
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%s %w", resource, ledger.ErrNotFound)
	}
	return id, nil
}

// callerID returns the authenticated user. Routes are guarded by
// RequireAuth, so a missing id is an unauthorized request.
func callerID(r *http.Request) (uint, error) {
	id, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, ledger.ErrUnauthorized
	}
	return id, nil
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"status":        "OK",
		"notifications": h.Notifications.Stats(),
	})
}
