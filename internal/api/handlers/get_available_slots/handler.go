package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/nangenlabs/NGL-SiteService/internal/api/handlers"
	"github.com/nangenlabs/NGL-SiteService/internal/domain"
	getSlots "github.com/nangenlabs/NGL-SiteService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate    = "date query parameter is required"
	msgInvalidDate    = "invalid date, expected YYYY-MM-DD"
	msgBookingsClosed = "bookings are temporarily closed"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Дата якорится в бизнес-таймзоне: полночь UTC для западных
	// таймзон попадает на предыдущий локальный день.
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date %q: %v", dateStr, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrBookingsClosed):
			h.logger.Warn("GET /slots - Bookings are closed")
			handlers.RespondServiceUnavailable(w, msgBookingsClosed)

		case errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - %d slots returned for date=%s", len(result.Slots), dateStr)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
