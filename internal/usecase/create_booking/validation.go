package create_booking

import "fmt"

// validateRequest проверяет форму запроса до обращения к БД
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: user_id must be positive", ErrInvalidInput)
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
