package delete_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationsService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationsService/internal/api/middleware"
	reservationsService "github.com/m04kA/SMC-ReservationsService/internal/service/reservations"
)

const (
	msgInvalidID    = "ID de reserva inválido."
	msgNotFound     = "Reserva no encontrada o ya eliminada."
	msgAccessDenied = "Acceso denegado."
	msgDeleted      = "Reserva eliminada (desactivada) correctamente."
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

// DeleteReservationResponse обертка успешного ответа
type DeleteReservationResponse struct {
	Estado  bool   `json:"estado"`
	Mensaje string `json:"mensaje"`
}

// Handle DELETE /api/v1/reservas/{reserva_id}
// Только для администраторов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok || !identity.Role.CanManageReservations() {
		h.logger.Warn("DELETE /reservas/{id} - Access denied: user_id=%d", identity.UserID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["reserva_id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, reservationsService.ErrReservationNotFound) {
			h.logger.Warn("DELETE /reservas/{id} - Reservation not found: reservation_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /reservas/{id} - Failed to delete reservation: reservation_id=%d, error=%v",
			id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /reservas/{id} - Reservation deactivated: reservation_id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, DeleteReservationResponse{
		Estado:  true,
		Mensaje: msgDeleted,
	})
}
