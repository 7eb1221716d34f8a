package create_contact

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/nangenlabs/NGL-SiteService/internal/api/handlers"
	"github.com/nangenlabs/NGL-SiteService/internal/service/contacts"
	"github.com/nangenlabs/NGL-SiteService/internal/service/contacts/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
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

// Handle POST /api/v1/contacts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contacts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Метаданные запроса для разбора злоупотреблений
	if ip := clientIP(r); ip != "" {
		req.IPAddress = &ip
	}
	if ua := r.UserAgent(); ua != "" {
		req.UserAgent = &ua
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, contacts.ErrInvalidInput):
			h.logger.Warn("POST /contacts - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /contacts - Failed to create contact: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /contacts - Contact created successfully: contact_id=%d, emailSent=%t",
		result.Contact.ID, result.EmailSent)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// clientIP берет адрес из X-Forwarded-For (первый hop), иначе из RemoteAddr
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		parts := strings.Split(fwd, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
