package update_reservation

import (
	"context"

	updateReservation "github.com/m04kA/SMC-ReservationsService/internal/usecase/update_reservation"
)

// UpdateReservationUseCase интерфейс use case обновления резервации
type UpdateReservationUseCase interface {
	Execute(ctx context.Context, req *updateReservation.Request) (*updateReservation.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
