package get_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationsService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationsService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationsService/internal/service/reservations/models"
)

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

// ListResponse обертка успешного ответа
type ListResponse struct {
	Estado bool                         `json:"estado"`
	Datos  []models.ReservationResponse `json:"datos"`
}

// Handle GET /api/v1/reservas
// Любая аутентифицированная роль; клиент видит только свои резервации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, "Acceso denegado.")
		return
	}

	result, err := h.service.List(r.Context(), identity.UserID, identity.Role)
	if err != nil {
		h.logger.Error("GET /reservas - Failed to list reservations: user_id=%d, error=%v",
			identity.UserID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ListResponse{
		Estado: true,
		Datos:  result.Reservations,
	})
}
