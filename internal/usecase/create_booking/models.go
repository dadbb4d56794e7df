package create_booking

import (
	"time"

	"github.com/m04kA/MMC-AppointmentService/pkg/types"
)

// Request запрос на создание бронирования для существующего пользователя
type Request struct {
	UserID   int64
	Date     time.Time
	Timeslot types.TimeString
}

// Response результат создания бронирования
type Response struct {
	ID          int64
	UserID      int64
	Date        time.Time
	Timeslot    types.TimeString
	Session     string
	OrderNumber int
	TurnNumber  int
	User        *ResponseUser
	CreatedAt   time.Time
}

// ResponseUser данные владельца бронирования
type ResponseUser struct {
	ID          int64
	Name        string
	PhoneNumber string
}
