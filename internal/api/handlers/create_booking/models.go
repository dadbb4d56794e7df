package create_booking

import (
	"time"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	createBooking "github.com/m04kA/MMC-AppointmentService/internal/usecase/create_booking"
	"github.com/m04kA/MMC-AppointmentService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	UserID   int64  `json:"user_id"`
	Date     string `json:"date"`     // "2026-09-01"
	Timeslot string `json:"timeslot"` // "10:05"
}

// BookingUser владелец бронирования в ответе
type BookingUser struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64        `json:"id"`
	UserID      int64        `json:"user_id"`
	Date        string       `json:"date"`
	Timeslot    string       `json:"timeslot"`
	Session     string       `json:"session"`
	OrderNumber int          `json:"order_number"`
	TurnNumber  int          `json:"turn_number"`
	User        *BookingUser `json:"user"`
	CreatedAt   string       `json:"created_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	timeslot, err := types.NewTimeStringFromString(r.Timeslot)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:   r.UserID,
		Date:     date,
		Timeslot: timeslot,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	out := &BookingResponse{
		ID:          resp.ID,
		UserID:      resp.UserID,
		Date:        resp.Date.Format(domain.DateFormat),
		Timeslot:    resp.Timeslot.String(),
		Session:     resp.Session,
		OrderNumber: resp.OrderNumber,
		TurnNumber:  resp.TurnNumber,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
	if resp.User != nil {
		out.User = &BookingUser{
			ID:          resp.User.ID,
			Name:        resp.User.Name,
			PhoneNumber: resp.User.PhoneNumber,
		}
	}
	return out
}
