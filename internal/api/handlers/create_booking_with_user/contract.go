package create_booking_with_user

import (
	"context"

	createBookingWithUser "github.com/m04kA/MMC-AppointmentService/internal/usecase/create_booking_with_user"
)

// CreateBookingWithUserUseCase интерфейс use case создания бронирования с регистрацией
type CreateBookingWithUserUseCase interface {
	Execute(ctx context.Context, req *createBookingWithUser.Request) (*createBookingWithUser.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
