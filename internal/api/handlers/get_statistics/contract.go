package get_statistics

import (
	"context"

	"github.com/m04kA/SMC-ReservationsService/internal/service/reservations/models"
)

// ReservationsService интерфейс сервиса резерваций
type ReservationsService interface {
	GetStatistics(ctx context.Context) ([]models.VenueStatResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
