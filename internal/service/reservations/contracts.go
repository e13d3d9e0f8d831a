package reservations

import (
	"context"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
	"github.com/m04kA/SMC-ReservationsService/internal/report"
)

// ReservationRepository интерфейс репозитория резерваций
type ReservationRepository interface {
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	SoftDelete(ctx context.Context, id int64) error
	GetReportRows(ctx context.Context) ([]domain.ReportRow, error)
	GetVenueStats(ctx context.Context) ([]domain.VenueStat, error)
}

// ServiceLinkRepository интерфейс репозитория связей резервация-услуга
type ServiceLinkRepository interface {
	ListByReservation(ctx context.Context, reservationID int64) ([]domain.ServiceLine, error)
}

// ReportGenerator интерфейс генератора отчетов.
// Чистая трансформация: строки ему передает сервис.
type ReportGenerator interface {
	ExportPDF(rows []domain.ReportRow) (*report.PDFResult, error)
	ExportCSV(rows []domain.ReportRow) (*report.CSVResult, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
