package get_booked_slots

import (
	"net/http"

	"github.com/nangenlabs/NGL-SiteService/internal/api/handlers"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/booked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListBookedSlots(r.Context())
	if err != nil {
		h.logger.Error("GET /booked-slots - Failed to list booked slots: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /booked-slots - %d booked slots returned", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
