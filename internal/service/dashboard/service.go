package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	"github.com/m04kA/MMC-AppointmentService/internal/service/dashboard/models"
)

// Service агрегатор данных панели администратора, только чтение
type Service struct {
	bookingRepo  BookingRepository
	schedule     domain.Schedule
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр агрегатора
func NewService(bookingRepo BookingRepository, schedule domain.Schedule, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetDashboardData собирает данные панели на указанную дату:
// счетчики по сессиям, список броней дня в порядке очереди и тренд
// за последние domain.TrendDays дней (включая сегодня, от старых к новым)
func (s *Service) GetDashboardData(ctx context.Context, date time.Time) (*models.DashboardData, error) {
	bookings, err := s.bookingRepo.ListByDateOrderedByTurn(ctx, date)
	if err != nil {
		s.logger.Error("GetDashboardData: failed to list bookings for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDashboardData - list bookings: %v", ErrInternal, err)
	}

	perSession := make(map[string]int, len(s.schedule.Sessions()))
	for _, sr := range s.schedule.Sessions() {
		perSession[sr.Name] = 0
	}

	// Счетчики считаются через классификатор по слоту, а не по сохраненному
	// имени сессии: панель отражает актуальную конфигурацию расписания
	for _, b := range bookings {
		if session, ok := s.schedule.Classify(b.Timeslot); ok {
			perSession[session]++
		}
	}

	trend, err := s.weeklyTrend(ctx)
	if err != nil {
		return nil, err
	}

	return &models.DashboardData{
		Stats: models.Stats{
			TotalBookings: len(bookings),
			PerSession:    perSession,
		},
		Bookings:    bookings,
		WeeklyTrend: trend,
	}, nil
}

func (s *Service) weeklyTrend(ctx context.Context) ([]models.TrendItem, error) {
	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	trend := make([]models.TrendItem, 0, domain.TrendDays)
	for i := domain.TrendDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)

		count, err := s.bookingRepo.CountByDate(ctx, day)
		if err != nil {
			s.logger.Error("GetDashboardData: failed to count bookings for %s: %v", day.Format(domain.DateFormat), err)
			return nil, fmt.Errorf("%w: GetDashboardData - count bookings: %v", ErrInternal, err)
		}

		trend = append(trend, models.TrendItem{
			Date:     day.Format(domain.DateFormat),
			Bookings: count,
		})
	}

	return trend, nil
}
