package get_slots

import (
	"time"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	getSlots "github.com/m04kA/MMC-AppointmentService/internal/usecase/get_slots"
)

// BookingUser владелец бронирования в ответе
type BookingUser struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// BookingItem бронирование в списке
type BookingItem struct {
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

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date     string         `json:"date"`
	Bookings []*BookingItem `json:"bookings"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSlots.Response) *SlotsResponse {
	items := make([]*BookingItem, 0, len(resp.Bookings))
	for _, b := range resp.Bookings {
		item := &BookingItem{
			ID:          b.ID,
			UserID:      b.UserID,
			Date:        b.Date.Format(domain.DateFormat),
			Timeslot:    b.Timeslot.String(),
			Session:     b.Session,
			OrderNumber: b.OrderNumber,
			TurnNumber:  b.TurnNumber,
			CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		}
		if b.User != nil {
			item.User = &BookingUser{
				ID:          b.User.ID,
				Name:        b.User.Name,
				PhoneNumber: b.User.PhoneNumber,
			}
		}
		items = append(items, item)
	}

	return &SlotsResponse{
		Date:     resp.Date.Format(domain.DateFormat),
		Bookings: items,
	}
}
