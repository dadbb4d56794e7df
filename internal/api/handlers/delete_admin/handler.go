package delete_admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/MMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/MMC-AppointmentService/internal/service/admins"
)

const (
	msgInvalidAdminID = "некорректный идентификатор администратора"
	msgAdminNotFound  = "администратор не найден"
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

// Handle DELETE /admin/delete-admin/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("DELETE /admin/delete-admin/{id} - Invalid admin id: %s", vars["id"])
		handlers.RespondBadRequest(w, msgInvalidAdminID)
		return
	}

	if err := h.service.DeleteAdmin(r.Context(), id); err != nil {
		switch {
		case errors.Is(err, admins.ErrAdminNotFound):
			h.logger.Warn("DELETE /admin/delete-admin/{id} - Admin not found: id=%d", id)
			handlers.RespondNotFound(w, msgAdminNotFound)

		default:
			h.logger.Error("DELETE /admin/delete-admin/{id} - Failed to delete admin id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/delete-admin/{id} - Admin deleted: id=%d", id)
	handlers.RespondNoContent(w)
}
