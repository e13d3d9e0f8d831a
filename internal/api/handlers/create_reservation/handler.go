package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationsService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationsService/internal/api/middleware"
	createReservation "github.com/m04kA/SMC-ReservationsService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "Cuerpo de la solicitud inválido."
	msgInvalidDate        = "Formato de fecha inválido, se espera YYYY-MM-DD."
	msgInvalidInput       = "Datos de la reserva inválidos."
	msgNotPersisted       = "Reserva no creada"
	msgAccessDenied       = "Acceso denegado."
	msgCreated            = "Reserva creada!"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservas
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok || !identity.Role.CanCreateReservation() {
		h.logger.Warn("POST /reservas - Access denied: user_id=%d", identity.UserID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservas - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservas - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservas - Validation failed: user_id=%d, error=%v", identity.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrNotPersisted):
			h.logger.Warn("POST /reservas - Reservation not persisted: user_id=%d", identity.UserID)
			handlers.RespondNotFound(w, msgNotPersisted)

		default:
			h.logger.Error("POST /reservas - Failed to create reservation: user_id=%d, error=%v",
				identity.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservas - Reservation created successfully: reservation_id=%d, user_id=%d",
		result.ID, identity.UserID)
	handlers.RespondJSON(w, http.StatusCreated, CreateReservationResponse{
		Estado:      true,
		Mensaje:     msgCreated,
		Reservation: FromUseCaseResponse(result),
	})
}
