package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationsService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationsService/internal/api/middleware"
	updateReservation "github.com/m04kA/SMC-ReservationsService/internal/usecase/update_reservation"
)

const (
	msgInvalidID          = "ID de reserva inválido."
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido."
	msgInvalidDate        = "Formato de fecha inválido, se espera YYYY-MM-DD."
	msgInvalidInput       = "Datos de la reserva inválidos."
	msgNotFound           = "Reserva no encontrada."
	msgAccessDenied       = "Acceso denegado."
	msgUpdated            = "Reserva actualizada correctamente!"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservas/{reserva_id}
// Только для администраторов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok || !identity.Role.CanManageReservations() {
		h.logger.Warn("PUT /reservas/{id} - Access denied: user_id=%d", identity.UserID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	id, err := strconv.ParseInt(mux.Vars(r)["reserva_id"], 10, 64)
	if err != nil || id <= 0 {
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservas/{id} - Invalid request body: reservation_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PUT /reservas/{id} - Failed to parse date: reservation_id=%d, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservas/{id} - Validation failed: reservation_id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservas/{id} - Reservation not found: reservation_id=%d", id)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /reservas/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservas/{id} - Reservation updated successfully: reservation_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusOK, UpdateReservationResponse{
		Estado:      true,
		Mensaje:     msgUpdated,
		Reservation: FromUseCaseResponse(result),
	})
}
