package dashboard

import (
	"context"
	"time"

	"github.com/m04kA/MMC-AppointmentService/internal/service/dashboard/models"
)

// DashboardService интерфейс агрегатора данных панели
type DashboardService interface {
	GetDashboardData(ctx context.Context, date time.Time) (*models.DashboardData, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
