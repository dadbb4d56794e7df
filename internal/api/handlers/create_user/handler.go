package create_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/MMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MMC-AppointmentService/internal/service/users"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные имя или номер телефона"
	msgPhoneTaken         = "номер телефона уже зарегистрирован"
)

type Handler struct {
	service UsersService
	logger  Logger
}

func NewHandler(service UsersService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /users/
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Register(r.Context(), req.Name, req.PhoneNumber)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, users.ErrPhoneTaken):
			h.logger.Warn("POST /users - Phone already registered: %s", req.PhoneNumber)
			handlers.RespondConflict(w, msgPhoneTaken)

		default:
			h.logger.Error("POST /users - Failed to register user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User registered: id=%d", user.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromDomain(user))
}
