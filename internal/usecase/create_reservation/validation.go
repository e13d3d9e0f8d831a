package create_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Отклоняем до любой попытки записи в базу.
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.VenueID <= 0 {
		return fmt.Errorf("%w: venueID must be positive", ErrInvalidInput)
	}

	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.ShiftID <= 0 {
		return fmt.Errorf("%w: shiftID must be positive", ErrInvalidInput)
	}

	if req.VenueFee < 0 {
		return fmt.Errorf("%w: venueFee must not be negative", ErrInvalidInput)
	}

	if req.TotalAmount < 0 {
		return fmt.Errorf("%w: totalAmount must not be negative", ErrInvalidInput)
	}

	if req.Theme != nil && len(*req.Theme) > domain.MaxThemeLength {
		return fmt.Errorf("%w: theme is too long", ErrInvalidInput)
	}

	// Набор услуг обязателен при создании (может прийти и пустым списком,
	// но отсутствовать не может)
	if req.Services == nil {
		return fmt.Errorf("%w: services list is required", ErrInvalidInput)
	}

	return validateServices(req.Services)
}

func validateServices(services []ServiceLineInput) error {
	seen := make(map[int64]struct{}, len(services))

	for _, s := range services {
		if s.ServiceID <= 0 {
			return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
		}
		if s.Amount < 0 {
			return fmt.Errorf("%w: service amount must not be negative", ErrInvalidInput)
		}
		// Идентичность строки — (reserva_id, servicio_id), дубликаты невалидны
		if _, ok := seen[s.ServiceID]; ok {
			return fmt.Errorf("%w: duplicate serviceID %d", ErrInvalidInput, s.ServiceID)
		}
		seen[s.ServiceID] = struct{}{}
	}

	return nil
}
