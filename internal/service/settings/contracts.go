package settings

import (
	"context"

	"github.com/nangenlabs/NGL-SiteService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек сайта
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SiteSettings, error)
	SetAcceptingBookings(ctx context.Context, accepting bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
