package get_slots

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/MMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	getSlots "github.com/m04kA/MMC-AppointmentService/internal/usecase/get_slots"
)

const msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"

type Handler struct {
	useCase GetSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /slots/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /slots/{date} - Invalid date: %s", vars["date"])
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{Date: date})
	if err != nil {
		h.logger.Error("GET /slots/{date} - Failed to list bookings for %s: %v", vars["date"], err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
