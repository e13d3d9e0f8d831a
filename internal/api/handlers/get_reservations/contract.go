package get_reservations

import (
	"context"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
	"github.com/m04kA/SMC-ReservationsService/internal/service/reservations/models"
)

// ReservationsService интерфейс сервиса резерваций
type ReservationsService interface {
	List(ctx context.Context, callerID int64, role domain.Role) (*models.ReservationListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
