package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/MMC-AppointmentService/internal/api/handlers"
	createBooking "github.com/m04kA/MMC-AppointmentService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgBookingNotOpen     = "запись на прием еще не открыта"
	msgPastDate           = "нельзя записаться на прошедшую дату"
	msgPastTime           = "выбранное время уже прошло"
	msgInvalidInterval    = "время должно быть кратно длительности слота"
	msgOutsideHours       = "время вне часов приема"
	msgUserNotFound       = "пользователь не найден"
	msgSlotTaken          = "выбранный временной слот уже занят"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /bookings/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrBookingNotOpen):
			h.logger.Warn("POST /bookings - Booking not open: user_id=%d", req.UserID)
			handlers.RespondForbidden(w, msgBookingNotOpen)

		case errors.Is(err, createBooking.ErrPastDate):
			h.logger.Warn("POST /bookings - Past date: user_id=%d, date=%s", req.UserID, req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBooking.ErrPastTime):
			h.logger.Warn("POST /bookings - Past time: user_id=%d, timeslot=%s", req.UserID, req.Timeslot)
			handlers.RespondBadRequest(w, msgPastTime)

		case errors.Is(err, createBooking.ErrInvalidInterval):
			h.logger.Warn("POST /bookings - Invalid interval: user_id=%d, timeslot=%s", req.UserID, req.Timeslot)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createBooking.ErrOutsideHours):
			h.logger.Warn("POST /bookings - Outside booking hours: user_id=%d, timeslot=%s", req.UserID, req.Timeslot)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrSlotTaken):
			h.logger.Warn("POST /bookings - Slot taken: date=%s, timeslot=%s", req.Date, req.Timeslot)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: id=%d, user_id=%d, order=%d, turn=%d",
		result.ID, result.UserID, result.OrderNumber, result.TurnNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
