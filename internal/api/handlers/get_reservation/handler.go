package get_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationsService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationsService/internal/api/middleware"
	reservationsService "github.com/m04kA/SMC-ReservationsService/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationsService/internal/service/reservations/models"
)

const (
	msgInvalidID    = "ID de reserva inválido."
	msgNotFound     = "Reserva no encontrada."
	msgAccessDenied = "Acceso denegado."
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

// GetReservationResponse обертка успешного ответа
type GetReservationResponse struct {
	Estado      bool                       `json:"estado"`
	Reservation models.ReservationResponse `json:"reserva"`
}

// Handle GET /api/v1/reservas/{reserva_id}
// Доступно админам и сотрудникам
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok || !identity.Role.CanViewReservationDetails() {
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["reserva_id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, reservationsService.ErrReservationNotFound) {
			h.logger.Warn("GET /reservas/{id} - Reservation not found: reservation_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /reservas/{id} - Failed to fetch reservation: reservation_id=%d, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, GetReservationResponse{
		Estado:      true,
		Reservation: *result,
	})
}
