package create_admin

import (
	"errors"
	"net/http"

	"github.com/m04kA/MMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MMC-AppointmentService/internal/service/admins"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные имя пользователя или пароль"
	msgUsernameTaken      = "имя пользователя уже занято"
)

type Handler struct {
	service AdminsService
	logger  Logger
}

func NewHandler(service AdminsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CreateAdminRequest HTTP request model
type CreateAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminResponse HTTP response model
type AdminResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Handle POST /admin/create-admin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAdminRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/create-admin - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	admin, err := h.service.CreateAdmin(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, admins.ErrInvalidInput):
			h.logger.Warn("POST /admin/create-admin - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, admins.ErrUsernameTaken):
			h.logger.Warn("POST /admin/create-admin - Username taken: %s", req.Username)
			handlers.RespondBadRequest(w, msgUsernameTaken)

		default:
			h.logger.Error("POST /admin/create-admin - Failed to create admin username=%s: %v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/create-admin - Admin created: id=%d, username=%s", admin.ID, admin.Username)
	handlers.RespondJSON(w, http.StatusCreated, &AdminResponse{
		ID:       admin.ID,
		Username: admin.Username,
	})
}
