package update_contact_status

import (
	"context"

	"github.com/nangenlabs/NGL-SiteService/internal/service/contacts/models"
)

type ContactService interface {
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ContactResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
