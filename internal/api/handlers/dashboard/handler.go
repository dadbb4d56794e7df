package dashboard

import (
	"net/http"
	"time"

	"github.com/m04kA/MMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MMC-AppointmentService/internal/domain"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	service DashboardService
	logger  Logger
}

func NewHandler(service DashboardService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /admin/dashboard-data?date=YYYY-MM-DD
// Без параметра date берется текущая дата
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := time.Now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /admin/dashboard-data - Invalid date: %s", raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	data, err := h.service.GetDashboardData(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/dashboard-data - Failed to get dashboard data for %s: %v",
			date.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceData(data))
}
