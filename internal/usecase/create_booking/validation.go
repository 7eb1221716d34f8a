package create_booking

import (
	"fmt"

	"github.com/nangenlabs/NGL-SiteService/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// Проверки формы на клиенте - только UX; авторитетная валидация здесь.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	// Единая доменная валидация клиентских полей - та же функция, что и
	// у контактной формы
	if err := req.ClientInfo.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateTimeSlotLabel сверяет отображаемую метку слота с временем инстанта.
// Метка избыточна; расхождение означает рассинхронизацию клиента.
func validateTimeSlotLabel(label string, start types.TimeString) error {
	if label == "" {
		return nil
	}

	parsed, err := types.NewTimeStringFromLabel(label)
	if err != nil {
		return fmt.Errorf("%w: invalid timeSlot format: %v", ErrInvalidInput, err)
	}

	if parsed != start {
		return fmt.Errorf("%w: timeSlot %q does not match date time %s", ErrInvalidInput, label, start)
	}

	return nil
}
