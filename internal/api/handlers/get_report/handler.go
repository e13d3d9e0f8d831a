package get_report

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/m04kA/SMC-ReservationsService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationsService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationsService/internal/domain"
	reservationsService "github.com/m04kA/SMC-ReservationsService/internal/service/reservations"
)

const (
	msgInvalidFormat = "Formato inválido para el informe."
	msgAccessDenied  = "Acceso denegado."
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

// Handle GET /api/v1/reservas/informe?formato=pdf|csv
// Только для администраторов. PDF отдается из памяти, CSV стримится
// из сгенерированного файла на диске.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok || !identity.Role.CanViewReports() {
		h.logger.Warn("GET /reservas/informe - Access denied: user_id=%d", identity.UserID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	format := r.URL.Query().Get("formato")

	result, err := h.service.GenerateReport(r.Context(), format)
	if err != nil {
		if errors.Is(err, reservationsService.ErrUnsupportedFormat) {
			h.logger.Warn("GET /reservas/informe - Unsupported format: format=%q, user_id=%d",
				format, identity.UserID)
			handlers.RespondBadRequest(w, msgInvalidFormat)
			return
		}
		h.logger.Error("GET /reservas/informe - Failed to generate report: format=%s, error=%v",
			format, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))

	if result.Format == domain.ReportFormatPDF {
		if _, err := w.Write(result.Content); err != nil {
			// Заголовки уже отправлены, статус менять поздно
			h.logger.Error("GET /reservas/informe - Failed to deliver pdf: %v", err)
			return
		}
		h.logger.Info("GET /reservas/informe - PDF report delivered: %d bytes, user_id=%d",
			len(result.Content), identity.UserID)
		return
	}

	http.ServeFile(w, r, result.Path)
	h.logger.Info("GET /reservas/informe - CSV report delivered: path=%s, user_id=%d",
		result.Path, identity.UserID)
}
