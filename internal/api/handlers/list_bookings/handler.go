package list_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/nangenlabs/NGL-SiteService/internal/api/handlers"
	"github.com/nangenlabs/NGL-SiteService/internal/domain"
	"github.com/nangenlabs/NGL-SiteService/internal/service/bookings"
	"github.com/nangenlabs/NGL-SiteService/internal/service/bookings/models"
)

const (
	msgInvalidDate   = "invalid date, expected YYYY-MM-DD"
	msgInvalidPeriod = "invalid period"
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

// Handle GET /api/v1/admin/bookings?date=YYYY-MM-DD&from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListBookingsRequest{}
	query := r.URL.Query()

	for param, target := range map[string]**time.Time{
		"date": &req.SlotDate,
		"from": &req.From,
		"to":   &req.To,
	} {
		value := query.Get(param)
		if value == "" {
			continue
		}
		parsed, err := time.Parse(domain.DateFormat, value)
		if err != nil {
			h.logger.Warn("GET /admin/bookings - Invalid %s=%q: %v", param, value, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		*target = &parsed
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - %d bookings returned", len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
