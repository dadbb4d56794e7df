package admin_login

import (
	"errors"
	"net/http"

	"github.com/m04kA/MMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MMC-AppointmentService/internal/domain"
	"github.com/m04kA/MMC-AppointmentService/internal/service/admins"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCredentials = "неверные имя пользователя или пароль"
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

// LoginRequest HTTP request model
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginResponse HTTP response model
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Handle POST /admin/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	role, ok := domain.ParseRole(req.Role)
	if !ok {
		// Неизвестная роль неотличима от неверного пароля
		h.logger.Warn("POST /admin/login - Unknown role: %s", req.Role)
		handlers.RespondUnauthorized(w, msgInvalidCredentials)
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password, role)
	if err != nil {
		switch {
		case errors.Is(err, admins.ErrInvalidCredentials):
			h.logger.Warn("POST /admin/login - Invalid credentials: username=%s, role=%s", req.Username, req.Role)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /admin/login - Failed to login username=%s: %v", req.Username, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/login - Authenticated: username=%s, role=%s", req.Username, req.Role)
	handlers.RespondJSON(w, http.StatusOK, &LoginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
