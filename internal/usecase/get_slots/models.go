package get_slots

import (
	"time"

	"github.com/m04kA/MMC-AppointmentService/pkg/types"
)

// Request запрос списка бронирований на дату
type Request struct {
	Date time.Time
}

// Response список бронирований на дату в порядке создания
type Response struct {
	Date     time.Time
	Bookings []*BookingItem
}

// BookingItem бронирование в списке
type BookingItem struct {
	ID          int64
	UserID      int64
	Date        time.Time
	Timeslot    types.TimeString
	Session     string
	OrderNumber int
	TurnNumber  int
	User        *UserItem
	CreatedAt   time.Time
}

// UserItem данные владельца бронирования
type UserItem struct {
	ID          int64
	Name        string
	PhoneNumber string
}
