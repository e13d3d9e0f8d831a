package get_statistics

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationsService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationsService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationsService/internal/service/reservations/models"
)

const msgAccessDenied = "Acceso denegado."

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// StatisticsResponse обертка успешного ответа
type StatisticsResponse struct {
	Estado bool                       `json:"estado"`
	Datos  []models.VenueStatResponse `json:"datos"`
}

// Handle GET /api/v1/reservas/estadisticas
// Только для администраторов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok || !identity.Role.CanViewReports() {
		h.logger.Warn("GET /reservas/estadisticas - Access denied: user_id=%d", identity.UserID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	result, err := h.service.GetStatistics(r.Context())
	if err != nil {
		h.logger.Error("GET /reservas/estadisticas - Failed to fetch statistics: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, StatisticsResponse{
		Estado: true,
		Datos:  result,
	})
}
