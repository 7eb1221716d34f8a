package update_availability

import (
	"context"

	"github.com/nangenlabs/NGL-SiteService/internal/service/settings/models"
)

type SettingsService interface {
	SetAvailability(ctx context.Context, req *models.UpdateAvailabilityRequest) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
