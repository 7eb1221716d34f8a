package get_booked_slots

import (
	"context"

	"github.com/nangenlabs/NGL-SiteService/internal/service/bookings/models"
)

type BookingService interface {
	ListBookedSlots(ctx context.Context) (*models.BookedSlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
