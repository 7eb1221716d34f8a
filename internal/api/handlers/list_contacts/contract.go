package list_contacts

import (
	"context"

	"github.com/nangenlabs/NGL-SiteService/internal/service/contacts/models"
)

type ContactService interface {
	List(ctx context.Context, req *models.ListContactsRequest) (*models.ContactListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
