package notify_booking

import "context"

// NotificationsService интерфейс сервиса уведомлений
type NotificationsService interface {
	NotifyBooking(ctx context.Context, bookingID int64) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
