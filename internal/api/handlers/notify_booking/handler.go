package notify_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MMC-AppointmentService/internal/service/notifications"
)

const (
	msgInvalidBookingID = "некорректный идентификатор бронирования"
	msgBookingNotFound  = "бронирование не найдено"
	msgGatewayFailure   = "не удалось отправить SMS"
)

type Handler struct {
	service NotificationsService
	logger  Logger
}

func NewHandler(service NotificationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// NotifyResponse HTTP response model
type NotifyResponse struct {
	Status string `json:"status"`
}

// Handle POST /admin/notify/{booking_id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["booking_id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("POST /admin/notify/{booking_id} - Invalid booking id: %s", vars["booking_id"])
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	status, err := h.service.NotifyBooking(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrBookingNotFound):
			h.logger.Warn("POST /admin/notify/{booking_id} - Booking not found: id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, notifications.ErrGateway):
			h.logger.Error("POST /admin/notify/{booking_id} - Gateway failure for booking id=%d: %v", id, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgGatewayFailure)

		default:
			h.logger.Error("POST /admin/notify/{booking_id} - Failed to notify booking id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/notify/{booking_id} - Reminder sent: booking_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, &NotifyResponse{Status: status})
}
