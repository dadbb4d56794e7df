package create_booking_with_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/MMC-AppointmentService/internal/api/handlers"
	createBookingWithUser "github.com/m04kA/MMC-AppointmentService/internal/usecase/create_booking_with_user"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidInput       = "некорректные имя или номер телефона"
	msgBookingNotOpen     = "запись на прием еще не открыта"
	msgPastDate           = "нельзя записаться на прошедшую дату"
	msgPastTime           = "выбранное время уже прошло"
	msgInvalidInterval    = "время должно быть кратно длительности слота"
	msgOutsideHours       = "время вне часов приема"
	msgSlotTaken          = "выбранный временной слот уже занят"
)

type Handler struct {
	useCase CreateBookingWithUserUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingWithUserUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /bookings/create_with_user
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingWithUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/create_with_user - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/create_with_user - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBookingWithUser.ErrBookingNotOpen):
			h.logger.Warn("POST /bookings/create_with_user - Booking not open: phone=%s", req.PhoneNumber)
			handlers.RespondForbidden(w, msgBookingNotOpen)

		case errors.Is(err, createBookingWithUser.ErrPastDate):
			h.logger.Warn("POST /bookings/create_with_user - Past date: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgPastDate)

		case errors.Is(err, createBookingWithUser.ErrPastTime):
			h.logger.Warn("POST /bookings/create_with_user - Past time: timeslot=%s", req.Timeslot)
			handlers.RespondBadRequest(w, msgPastTime)

		case errors.Is(err, createBookingWithUser.ErrInvalidInterval):
			h.logger.Warn("POST /bookings/create_with_user - Invalid interval: timeslot=%s", req.Timeslot)
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, createBookingWithUser.ErrOutsideHours):
			h.logger.Warn("POST /bookings/create_with_user - Outside booking hours: timeslot=%s", req.Timeslot)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBookingWithUser.ErrSlotTaken):
			h.logger.Warn("POST /bookings/create_with_user - Slot taken: date=%s, timeslot=%s", req.Date, req.Timeslot)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, createBookingWithUser.ErrInvalidInput):
			h.logger.Warn("POST /bookings/create_with_user - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/create_with_user - Failed to create booking: phone=%s, error=%v",
				req.PhoneNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/create_with_user - Booking created: id=%d, user_id=%d, order=%d, turn=%d",
		result.ID, result.UserID, result.OrderNumber, result.TurnNumber)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
