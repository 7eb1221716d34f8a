package create_contact

import (
	"context"

	"github.com/nangenlabs/NGL-SiteService/internal/service/contacts/models"
)

type ContactService interface {
	Create(ctx context.Context, req *models.CreateContactRequest) (*models.CreateContactResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
