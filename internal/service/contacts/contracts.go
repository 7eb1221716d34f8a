package contacts

import (
	"context"

	"github.com/nangenlabs/NGL-SiteService/internal/domain"
	"github.com/nangenlabs/NGL-SiteService/internal/integrations/mailer"
)

// ContactRepository интерфейс репозитория обращений
type ContactRepository interface {
	Create(ctx context.Context, c *domain.ContactMessage) (*domain.ContactMessage, error)
	GetByID(ctx context.Context, id int64) (*domain.ContactMessage, error)
	List(ctx context.Context, filter domain.ContactsFilter) ([]*domain.ContactMessage, error)
	Count(ctx context.Context, filter domain.ContactsFilter) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ContactStatus) error
}

// Mailer интерфейс почтового клиента
type Mailer interface {
	SendContactNotification(data *mailer.ContactEmailData) error
	SendContactConfirmation(data *mailer.ContactEmailData) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
