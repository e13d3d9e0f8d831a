package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-ReservationsService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationsService/internal/service/reservations/models"
)

// Service сервис нетранзакционных операций над резервациями:
// чтение, поиск по ID, мягкое удаление, отчеты и статистика
type Service struct {
	reservationRepo ReservationRepository
	serviceLinkRepo ServiceLinkRepository
	generator       ReportGenerator
	logger          Logger
}

// NewService создает новый экземпляр сервиса резерваций
func NewService(
	reservationRepo ReservationRepository,
	serviceLinkRepo ServiceLinkRepository,
	generator ReportGenerator,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		serviceLinkRepo: serviceLinkRepo,
		generator:       generator,
		logger:          logger,
	}
}

// List возвращает активные резервации с учетом роли вызывающего:
// клиент видит только свои, админ и сотрудник — все
func (s *Service) List(ctx context.Context, callerID int64, role domain.Role) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations for user=%d, role=%d", callerID, role)

	var filter domain.ReservationFilter
	if !role.CanViewAllReservations() {
		filter.CustomerID = &callerID
	}

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", callerID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations for user=%d", len(reservations), callerID)
	return models.FromDomainReservationList(reservations), nil
}

// GetByID возвращает активную резервацию вместе с ее строками услуг
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	lines, err := s.serviceLinkRepo.ListByReservation(ctx, id)
	if err != nil {
		s.logger.Error("GetByID: failed to fetch service lines for id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - service lines error: %v", ErrInternal, err)
	}

	resp := models.FromDomainReservation(reservation)
	resp.Services = models.FromDomainServiceLines(lines)

	s.logger.Info("GetByID: successfully fetched reservation id=%d with %d service lines", id, len(lines))
	return resp, nil
}

// Delete деактивирует резервацию (мягкое удаление).
// Повторное удаление возвращает ErrReservationNotFound, а не повторную
// деактивацию. Уведомление при удалении не отправляется.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deactivating reservation id=%d", id)

	if err := s.reservationRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found or already inactive", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deactivated reservation id=%d", id)
	return nil
}

// GenerateReport выгружает отчет по активным резервациям.
// Формат проверяется до обращения к данным: неподдерживаемый формат
// отклоняется без единого запроса в базу.
func (s *Service) GenerateReport(ctx context.Context, format string) (*models.ReportResponse, error) {
	s.logger.Info("GenerateReport: requested format=%s", format)

	reportFormat := domain.ReportFormat(format)
	if !reportFormat.IsValid() {
		s.logger.Warn("GenerateReport: unsupported format=%s", format)
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	rows, err := s.reservationRepo.GetReportRows(ctx)
	if err != nil {
		s.logger.Error("GenerateReport: failed to fetch report rows: %v", err)
		return nil, fmt.Errorf("%w: GenerateReport - repository error: %v", ErrInternal, err)
	}

	switch reportFormat {
	case domain.ReportFormatPDF:
		result, err := s.generator.ExportPDF(rows)
		if err != nil {
			s.logger.Error("GenerateReport: pdf generation failed: %v", err)
			return nil, fmt.Errorf("%w: pdf: %v", ErrGeneration, err)
		}
		s.logger.Info("GenerateReport: pdf generated, %d rows, %d bytes", len(rows), len(result.Content))
		return &models.ReportResponse{
			Format:      domain.ReportFormatPDF,
			Content:     result.Content,
			ContentType: result.ContentType,
			Filename:    result.Filename,
		}, nil

	default:
		result, err := s.generator.ExportCSV(rows)
		if err != nil {
			s.logger.Error("GenerateReport: csv generation failed: %v", err)
			return nil, fmt.Errorf("%w: csv: %v", ErrGeneration, err)
		}
		s.logger.Info("GenerateReport: csv generated, %d rows, path=%s", len(rows), result.Path)
		return &models.ReportResponse{
			Format:      domain.ReportFormatCSV,
			Path:        result.Path,
			ContentType: result.ContentType,
			Filename:    result.Filename,
		}, nil
	}
}

// GetStatistics возвращает агрегат резерваций по клиентам и салонам
func (s *Service) GetStatistics(ctx context.Context) ([]models.VenueStatResponse, error) {
	s.logger.Info("GetStatistics: fetching venue statistics")

	stats, err := s.reservationRepo.GetVenueStats(ctx)
	if err != nil {
		s.logger.Error("GetStatistics: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetStatistics - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetStatistics: successfully fetched %d rows", len(stats))
	return models.FromDomainVenueStats(stats), nil
}
