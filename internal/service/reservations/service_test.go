package reservations

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationsService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationsService/internal/report"
)

type fakeReservationRepo struct {
	listFn         func(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	getByIDFn      func(ctx context.Context, id int64) (*domain.Reservation, error)
	softDeleteFn   func(ctx context.Context, id int64) error
	reportRowsFn   func(ctx context.Context) ([]domain.ReportRow, error)
	venueStatsFn   func(ctx context.Context) ([]domain.VenueStat, error)
	lastFilter     domain.ReservationFilter
	reportRowCalls int
}

func (f *fakeReservationRepo) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	f.lastFilter = filter
	return f.listFn(ctx, filter)
}

func (f *fakeReservationRepo) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeReservationRepo) SoftDelete(ctx context.Context, id int64) error {
	return f.softDeleteFn(ctx, id)
}

func (f *fakeReservationRepo) GetReportRows(ctx context.Context) ([]domain.ReportRow, error) {
	f.reportRowCalls++
	return f.reportRowsFn(ctx)
}

func (f *fakeReservationRepo) GetVenueStats(ctx context.Context) ([]domain.VenueStat, error) {
	return f.venueStatsFn(ctx)
}

type fakeServiceLinkRepo struct {
	listFn func(ctx context.Context, reservationID int64) ([]domain.ServiceLine, error)
}

func (f *fakeServiceLinkRepo) ListByReservation(ctx context.Context, reservationID int64) ([]domain.ServiceLine, error) {
	return f.listFn(ctx, reservationID)
}

type fakeGenerator struct {
	pdfFn func(rows []domain.ReportRow) (*report.PDFResult, error)
	csvFn func(rows []domain.ReportRow) (*report.CSVResult, error)
}

func (f *fakeGenerator) ExportPDF(rows []domain.ReportRow) (*report.PDFResult, error) {
	return f.pdfFn(rows)
}

func (f *fakeGenerator) ExportCSV(rows []domain.ReportRow) (*report.CSVResult, error) {
	return f.csvFn(rows)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func sampleReservation(id, customerID int64) *domain.Reservation {
	return &domain.Reservation{
		ID:          id,
		Date:        time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
		VenueID:     1,
		CustomerID:  customerID,
		ShiftID:     1,
		VenueFee:    50000,
		TotalAmount: 65000,
		Active:      true,
	}
}

func TestList_CustomerSeesOnlyOwnReservations(t *testing.T) {
	repo := &fakeReservationRepo{
		listFn: func(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
			return []*domain.Reservation{sampleReservation(1, 3)}, nil
		},
	}
	svc := NewService(repo, &fakeServiceLinkRepo{}, &fakeGenerator{}, noopLogger{})

	resp, err := svc.List(context.Background(), 3, domain.RoleCustomer)
	require.NoError(t, err)
	assert.Len(t, resp.Reservations, 1)

	// Клиентская роль всегда ограничена своим usuario_id
	require.NotNil(t, repo.lastFilter.CustomerID)
	assert.Equal(t, int64(3), *repo.lastFilter.CustomerID)
}

func TestList_AdminAndStaffSeeAll(t *testing.T) {
	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleStaff} {
		repo := &fakeReservationRepo{
			listFn: func(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
				return []*domain.Reservation{sampleReservation(1, 3), sampleReservation(2, 7)}, nil
			},
		}
		svc := NewService(repo, &fakeServiceLinkRepo{}, &fakeGenerator{}, noopLogger{})

		resp, err := svc.List(context.Background(), 1, role)
		require.NoError(t, err)
		assert.Len(t, resp.Reservations, 2)
		assert.Nil(t, repo.lastFilter.CustomerID)
	}
}

func TestGetByID_IncludesServiceLines(t *testing.T) {
	repo := &fakeReservationRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Reservation, error) {
			return sampleReservation(id, 3), nil
		},
	}
	linkRepo := &fakeServiceLinkRepo{
		listFn: func(ctx context.Context, reservationID int64) ([]domain.ServiceLine, error) {
			return []domain.ServiceLine{{ServiceID: 4, Amount: 15000}}, nil
		},
	}
	svc := NewService(repo, linkRepo, &fakeGenerator{}, noopLogger{})

	resp, err := svc.GetByID(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	require.Len(t, resp.Services, 1)
	assert.Equal(t, int64(4), resp.Services[0].ServiceID)
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &fakeReservationRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Reservation, error) {
			return nil, reservationRepo.ErrReservationNotFound
		},
	}
	svc := NewService(repo, &fakeServiceLinkRepo{}, &fakeGenerator{}, noopLogger{})

	_, err := svc.GetByID(context.Background(), 999)
	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestDelete_SecondDeleteReturnsNotFound(t *testing.T) {
	deleted := false
	repo := &fakeReservationRepo{
		softDeleteFn: func(ctx context.Context, id int64) error {
			if deleted {
				return reservationRepo.ErrReservationNotFound
			}
			deleted = true
			return nil
		},
	}
	svc := NewService(repo, &fakeServiceLinkRepo{}, &fakeGenerator{}, noopLogger{})

	require.NoError(t, svc.Delete(context.Background(), 42))

	// Деактивированная резервация для повторного удаления не существует
	err := svc.Delete(context.Background(), 42)
	require.ErrorIs(t, err, ErrReservationNotFound)
}

func TestGenerateReport_UnsupportedFormatRejectedBeforeDataAccess(t *testing.T) {
	repo := &fakeReservationRepo{
		reportRowsFn: func(ctx context.Context) ([]domain.ReportRow, error) {
			return nil, nil
		},
	}
	svc := NewService(repo, &fakeServiceLinkRepo{}, &fakeGenerator{}, noopLogger{})

	for _, format := range []string{"xml", "", "PDF", "xlsx"} {
		_, err := svc.GenerateReport(context.Background(), format)
		require.ErrorIs(t, err, ErrUnsupportedFormat, "format %q", format)
	}

	// Ни одного обращения к данным до проверки формата
	assert.Equal(t, 0, repo.reportRowCalls)
}

func TestGenerateReport_PDF(t *testing.T) {
	repo := &fakeReservationRepo{
		reportRowsFn: func(ctx context.Context) ([]domain.ReportRow, error) {
			return []domain.ReportRow{{ReservationID: 1, Date: "2025-12-31"}}, nil
		},
	}
	gen := &fakeGenerator{
		pdfFn: func(rows []domain.ReportRow) (*report.PDFResult, error) {
			require.Len(t, rows, 1)
			return &report.PDFResult{
				Content:     []byte("%PDF-1.3"),
				ContentType: "application/pdf",
				Filename:    "reporte_reservas.pdf",
			}, nil
		},
	}
	svc := NewService(repo, &fakeServiceLinkRepo{}, gen, noopLogger{})

	resp, err := svc.GenerateReport(context.Background(), "pdf")
	require.NoError(t, err)

	assert.Equal(t, domain.ReportFormatPDF, resp.Format)
	assert.NotEmpty(t, resp.Content)
	assert.Empty(t, resp.Path)
	assert.Equal(t, "application/pdf", resp.ContentType)
}

func TestGenerateReport_CSV(t *testing.T) {
	repo := &fakeReservationRepo{
		reportRowsFn: func(ctx context.Context) ([]domain.ReportRow, error) {
			return []domain.ReportRow{{ReservationID: 1}}, nil
		},
	}
	gen := &fakeGenerator{
		csvFn: func(rows []domain.ReportRow) (*report.CSVResult, error) {
			return &report.CSVResult{
				Path:        "reports/reporte_abc.csv",
				ContentType: "text/csv",
				Filename:    "reporte.csv",
			}, nil
		},
	}
	svc := NewService(repo, &fakeServiceLinkRepo{}, gen, noopLogger{})

	resp, err := svc.GenerateReport(context.Background(), "csv")
	require.NoError(t, err)

	assert.Equal(t, domain.ReportFormatCSV, resp.Format)
	assert.Equal(t, "reports/reporte_abc.csv", resp.Path)
	assert.Empty(t, resp.Content)
}

func TestGenerateReport_GenerationFailure(t *testing.T) {
	repo := &fakeReservationRepo{
		reportRowsFn: func(ctx context.Context) ([]domain.ReportRow, error) {
			return nil, nil
		},
	}
	gen := &fakeGenerator{
		pdfFn: func(rows []domain.ReportRow) (*report.PDFResult, error) {
			return nil, errors.New("render failed")
		},
	}
	svc := NewService(repo, &fakeServiceLinkRepo{}, gen, noopLogger{})

	_, err := svc.GenerateReport(context.Background(), "pdf")
	require.ErrorIs(t, err, ErrGeneration)
}

func TestGetStatistics(t *testing.T) {
	repo := &fakeReservationRepo{
		venueStatsFn: func(ctx context.Context) ([]domain.VenueStat, error) {
			return []domain.VenueStat{
				{CustomerID: 3, CustomerEmail: "cliente@example.com", VenueName: "Salón Arcoiris", Reservations: 5, TotalSpent: 325000},
			}, nil
		},
	}
	svc := NewService(repo, &fakeServiceLinkRepo{}, &fakeGenerator{}, noopLogger{})

	stats, err := svc.GetStatistics(context.Background())
	require.NoError(t, err)

	require.Len(t, stats, 1)
	assert.Equal(t, "Salón Arcoiris", stats[0].VenueName)
	assert.Equal(t, int64(5), stats[0].Reservations)
	assert.Equal(t, float64(325000), stats[0].TotalSpent)
}
