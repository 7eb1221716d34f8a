package contacts

import (
	"fmt"
	"strings"

	"github.com/nangenlabs/NGL-SiteService/internal/domain"
	"github.com/nangenlabs/NGL-SiteService/internal/service/contacts/models"
)

// validateCreateRequest применяет правила контактной формы. Проверки на
// клиенте не считаются пройденными, все правила применяются здесь заново.
func validateCreateRequest(req *models.CreateContactRequest) error {
	name := strings.TrimSpace(req.FullName)
	if len(name) < domain.MinNameLength {
		return fmt.Errorf("%w: fullname must be at least %d characters", ErrInvalidInput, domain.MinNameLength)
	}
	if len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: fullname must be at most %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if !domain.ValidEmail(req.Email) {
		return fmt.Errorf("%w: invalid email address", ErrInvalidInput)
	}

	message := strings.TrimSpace(req.Message)
	if len(message) < domain.MinMessageLength {
		return fmt.Errorf("%w: message must be at least %d characters", ErrInvalidInput, domain.MinMessageLength)
	}
	if len(message) > domain.MaxMessageLength {
		return fmt.Errorf("%w: message must be at most %d characters", ErrInvalidInput, domain.MaxMessageLength)
	}

	if req.Phone != nil && len(strings.TrimSpace(*req.Phone)) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone number is too long", ErrInvalidInput)
	}
	if req.Company != nil && len(strings.TrimSpace(*req.Company)) > domain.MaxCompanyLength {
		return fmt.Errorf("%w: company name is too long", ErrInvalidInput)
	}

	return nil
}
