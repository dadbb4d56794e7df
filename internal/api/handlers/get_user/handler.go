package get_user

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MMC-AppointmentService/internal/service/users"
)

const (
	msgInvalidUserID = "некорректный идентификатор пользователя"
	msgUserNotFound  = "пользователь не найден"
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

// UserResponse HTTP response model
type UserResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

// Handle GET /users/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("GET /users/{id} - Invalid user id: %s", vars["id"])
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	user, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("GET /users/{id} - User not found: id=%d", id)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("GET /users/{id} - Failed to get user id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		PhoneNumber: user.PhoneNumber,
	})
}
