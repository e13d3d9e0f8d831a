package update_reservation

import (
	"context"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	Update(ctx context.Context, id int64, res *domain.Reservation) (*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetNotificationData(ctx context.Context, id int64) (*domain.NotificationData, error)
}

// ServiceLinkRepository интерфейс репозитория связей резервация-услуга
type ServiceLinkRepository interface {
	ReplaceAll(ctx context.Context, reservationID int64, lines []domain.ServiceLine) error
}

// NotificationDispatcher интерфейс диспетчера уведомлений
type NotificationDispatcher interface {
	DispatchUpdated(data domain.NotificationData)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
