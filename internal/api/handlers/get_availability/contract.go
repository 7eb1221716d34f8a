package get_availability

import (
	"context"

	"github.com/nangenlabs/NGL-SiteService/internal/service/settings/models"
)

type SettingsService interface {
	GetAvailability(ctx context.Context) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
