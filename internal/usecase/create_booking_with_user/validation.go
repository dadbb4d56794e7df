package create_booking_with_user

import (
	"fmt"
	"strings"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
)

// validateRequest проверяет форму запроса до обращения к БД
func validateRequest(req *Request) error {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if !domain.ValidPhoneNumber(req.PhoneNumber) {
		return fmt.Errorf("%w: invalid phone number format", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.Timeslot.IsZero() {
		return fmt.Errorf("%w: timeslot is required", ErrInvalidInput)
	}
	if err := req.Timeslot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeslot format: %v", ErrInvalidInput, err)
	}
	return nil
}
