package dashboard

import (
	"time"

	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	"github.com/m04kA/MMC-AppointmentService/internal/service/dashboard/models"
)

// BookingUser владелец бронирования в ответе
type BookingUser struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// BookingItem бронирование дня в порядке очереди
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

// TrendItem количество бронирований за день
type TrendItem struct {
	Date     string `json:"date"`
	Bookings int    `json:"bookings"`
}

// DashboardResponse HTTP response model
// stats содержит totalBookings и счетчик по каждой сессии расписания
type DashboardResponse struct {
	Stats       map[string]int `json:"stats"`
	Bookings    []*BookingItem `json:"bookings"`
	WeeklyTrend []TrendItem    `json:"weeklyTrend"`
}

// FromServiceData конвертирует данные сервиса в HTTP response
func FromServiceData(data *models.DashboardData) *DashboardResponse {
	stats := make(map[string]int, len(data.Stats.PerSession)+1)
	stats["totalBookings"] = data.Stats.TotalBookings
	for session, count := range data.Stats.PerSession {
		stats[session] = count
	}

	bookings := make([]*BookingItem, 0, len(data.Bookings))
	for _, b := range data.Bookings {
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
		bookings = append(bookings, item)
	}

	trend := make([]TrendItem, 0, len(data.WeeklyTrend))
	for _, t := range data.WeeklyTrend {
		trend = append(trend, TrendItem{
			Date:     t.Date,
			Bookings: t.Bookings,
		})
	}

	return &DashboardResponse{
		Stats:       stats,
		Bookings:    bookings,
		WeeklyTrend: trend,
	}
}
