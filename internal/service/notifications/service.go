package notifications

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/m04kA/MMC-AppointmentService/internal/infra/storage/booking"
	"github.com/m04kA/MMC-AppointmentService/internal/integrations/textlk"
)

// Шаблон SMS-напоминания пациенту
const reminderTemplate = "Hi %s, this is a reminder from Maryam Medicare. " +
	"Your turn number (%d) is approaching. " +
	"Your appointment is at %s. Please be ready."

// Service отправка SMS-напоминаний о приближении очереди
// Выполняется вне каких-либо блокировок аллокации: вызов шлюза ограничен
// таймаутом HTTP-клиента и при неудаче не повторяется
type Service struct {
	bookingRepo BookingRepository
	smsClient   SMSClient
	logger      Logger
}

// NewService создает новый экземпляр сервиса уведомлений
func NewService(bookingRepo BookingRepository, smsClient SMSClient, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		smsClient:   smsClient,
		logger:      logger,
	}
}

// NotifyBooking отправляет пациенту напоминание о его номере очереди и времени приема
// Возвращает статусное сообщение шлюза
func (s *Service) NotifyBooking(ctx context.Context, bookingID int64) (string, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("NotifyBooking: booking id=%d not found", bookingID)
			return "", ErrBookingNotFound
		}
		s.logger.Error("NotifyBooking: repository error for booking id=%d: %v", bookingID, err)
		return "", fmt.Errorf("%w: NotifyBooking - repository error: %v", ErrInternal, err)
	}

	if booking.User == nil {
		s.logger.Error("NotifyBooking: booking id=%d has no owner loaded", bookingID)
		return "", fmt.Errorf("%w: NotifyBooking - booking has no owner", ErrInternal)
	}

	message := fmt.Sprintf(reminderTemplate,
		booking.User.Name,
		booking.TurnNumber,
		booking.Timeslot.Format12Hour(),
	)

	recipient := textlk.FormatPhoneNumber(booking.User.PhoneNumber)

	status, err := s.smsClient.Send(ctx, recipient, message)
	if err != nil {
		s.logger.Error("NotifyBooking: failed to send SMS for booking id=%d: %v", bookingID, err)
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	s.logger.Info("NotifyBooking: reminder sent for booking id=%d (turn=%d)", bookingID, booking.TurnNumber)
	return status, nil
}
