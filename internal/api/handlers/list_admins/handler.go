package list_admins

import (
	"net/http"

	"github.com/m04kA/MMC-AppointmentService/internal/api/handlers"
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

// AdminItem администратор в списке
type AdminItem struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Handle GET /admin/list-admins
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	admins, err := h.service.ListAdmins(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/list-admins - Failed to list admins: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	items := make([]*AdminItem, 0, len(admins))
	for _, a := range admins {
		items = append(items, &AdminItem{
			ID:       a.ID,
			Username: a.Username,
		})
	}

	handlers.RespondJSON(w, http.StatusOK, items)
}
