package models

import "github.com/m04kA/MMC-AppointmentService/internal/domain"

// Stats счетчики бронирований за день по сессиям
type Stats struct {
	TotalBookings int
	PerSession    map[string]int
}

// TrendItem количество бронирований за один календарный день
type TrendItem struct {
	Date     string
	Bookings int
}

// DashboardData агрегированные данные для панели администратора
type DashboardData struct {
	Stats       Stats
	Bookings    []*domain.Booking
	WeeklyTrend []TrendItem
}
