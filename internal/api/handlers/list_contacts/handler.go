package list_contacts

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/nangenlabs/NGL-SiteService/internal/api/handlers"
	"github.com/nangenlabs/NGL-SiteService/internal/service/contacts"
	"github.com/nangenlabs/NGL-SiteService/internal/service/contacts/models"
)

const (
	msgInvalidStatus = "invalid status filter"
	msgInvalidPaging = "invalid pagination parameters"
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/contacts?status=new&page=1&pageSize=20
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.ListContactsRequest{}
	query := r.URL.Query()

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	for param, target := range map[string]*int{
		"page":     &req.Page,
		"pageSize": &req.PageSize,
	} {
		value := query.Get(param)
		if value == "" {
			continue
		}
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed < 0 {
			h.logger.Warn("GET /admin/contacts - Invalid %s=%q", param, value)
			handlers.RespondBadRequest(w, msgInvalidPaging)
			return
		}
		*target = parsed
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, contacts.ErrInvalidStatus):
			h.logger.Warn("GET /admin/contacts - Invalid status filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/contacts - Failed to list contacts: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/contacts - %d of %d contacts returned", len(result.Contacts), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
