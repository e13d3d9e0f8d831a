package get_report

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationsService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationsService/internal/domain"
	reservationsService "github.com/m04kA/SMC-ReservationsService/internal/service/reservations"
	"github.com/m04kA/SMC-ReservationsService/internal/service/reservations/models"
)

type fakeService struct {
	generateFn func(ctx context.Context, format string) (*models.ReportResponse, error)
	calls      int
	lastFormat string
}

func (f *fakeService) GenerateReport(ctx context.Context, format string) (*models.ReportResponse, error) {
	f.calls++
	f.lastFormat = format
	return f.generateFn(ctx, format)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func doRequest(t *testing.T, svc *fakeService, role, format string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reservas/informe?formato="+format, nil)
	req.Header.Set("X-User-ID", "1")
	req.Header.Set("X-User-Role", role)
	rec := httptest.NewRecorder()

	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_PDFDeliveredInline(t *testing.T) {
	svc := &fakeService{
		generateFn: func(ctx context.Context, format string) (*models.ReportResponse, error) {
			return &models.ReportResponse{
				Format:      domain.ReportFormatPDF,
				Content:     []byte("%PDF-1.3 fake"),
				ContentType: "application/pdf",
				Filename:    "reporte_reservas.pdf",
			}, nil
		},
	}

	rec := doRequest(t, svc, "1", "pdf")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "reporte_reservas.pdf")
	assert.Equal(t, "%PDF-1.3 fake", rec.Body.String())
	assert.Equal(t, "pdf", svc.lastFormat)
}

func TestHandle_CSVServedFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reporte_abc.csv")
	require.NoError(t, os.WriteFile(path, []byte("reserva_id,fecha_reserva\n1,2025-12-31\n"), 0o644))

	svc := &fakeService{
		generateFn: func(ctx context.Context, format string) (*models.ReportResponse, error) {
			return &models.ReportResponse{
				Format:      domain.ReportFormatCSV,
				Path:        path,
				ContentType: "text/csv",
				Filename:    "reporte.csv",
			}, nil
		},
	}

	rec := doRequest(t, svc, "1", "csv")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "reporte.csv")
	assert.Contains(t, rec.Body.String(), "2025-12-31")
}

func TestHandle_UnsupportedFormat(t *testing.T) {
	svc := &fakeService{
		generateFn: func(ctx context.Context, format string) (*models.ReportResponse, error) {
			return nil, reservationsService.ErrUnsupportedFormat
		},
	}

	rec := doRequest(t, svc, "1", "xml")

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Formato inválido para el informe.", resp["mensaje"])
}

func TestHandle_OnlyAdminMayExport(t *testing.T) {
	for _, role := range []string{"2", "3"} {
		svc := &fakeService{}

		rec := doRequest(t, svc, role, "pdf")

		assert.Equal(t, http.StatusForbidden, rec.Code, "role %s", role)
		assert.Equal(t, 0, svc.calls)
	}
}
