package update_contact_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/nangenlabs/NGL-SiteService/internal/api/handlers"
	"github.com/nangenlabs/NGL-SiteService/internal/service/contacts"
	"github.com/nangenlabs/NGL-SiteService/internal/service/contacts/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidContactID   = "invalid contact id"
	msgInvalidStatus      = "invalid contact status"
	msgNotFound           = "contact message not found"
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

// Handle PATCH /api/v1/admin/contacts/{contactId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	contactID, err := strconv.ParseInt(vars["contactId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /admin/contacts/{id}/status - Invalid contact ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidContactID)
		return
	}

	var req models.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/contacts/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateStatus(r.Context(), contactID, &req)
	if err != nil {
		switch {
		case errors.Is(err, contacts.ErrContactNotFound):
			h.logger.Warn("PATCH /admin/contacts/{id}/status - Contact not found: contact_id=%d", contactID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, contacts.ErrInvalidStatus):
			h.logger.Warn("PATCH /admin/contacts/{id}/status - Invalid status %q: contact_id=%d", req.Status, contactID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("PATCH /admin/contacts/{id}/status - Failed to update status: contact_id=%d, error=%v", contactID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/contacts/{id}/status - Status updated: contact_id=%d, status=%s",
		contactID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
