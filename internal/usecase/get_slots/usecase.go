package get_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
)

// UseCase use case для получения бронирований на дату
type UseCase struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute возвращает все бронирования на дату в порядке создания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	bookings, err := uc.bookingRepo.ListByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetSlots: failed to list bookings for %s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	items := make([]*BookingItem, 0, len(bookings))
	for _, b := range bookings {
		item := &BookingItem{
			ID:          b.ID,
			UserID:      b.UserID,
			Date:        b.Date,
			Timeslot:    b.Timeslot,
			Session:     b.Session,
			OrderNumber: b.OrderNumber,
			TurnNumber:  b.TurnNumber,
			CreatedAt:   b.CreatedAt,
		}
		if b.User != nil {
			item.User = &UserItem{
				ID:          b.User.ID,
				Name:        b.User.Name,
				PhoneNumber: b.User.PhoneNumber,
			}
		}
		items = append(items, item)
	}

	return &Response{Date: req.Date, Bookings: items}, nil
}
