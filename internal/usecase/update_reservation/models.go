package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
)

// ServiceLineInput строка услуги в запросе
type ServiceLineInput struct {
	ServiceID int64
	Amount    float64
}

// Request модель запроса на обновление резервации.
// Все изменяемые поля заменяются целиком (full replace).
//
// Services различает "не передано" и "пустой список": nil пропускает
// синхронизацию строк услуг, пустой слайс — валидная замена на ноль строк.
type Request struct {
	ID int64

	Date       time.Time
	VenueID    int64
	CustomerID int64
	ShiftID    int64

	BirthdayPhoto *string
	Theme         *string

	VenueFee    float64
	TotalAmount float64

	Services *[]ServiceLineInput
}

// Response модель ответа с обновленной резервацией
type Response struct {
	ID         int64
	Date       time.Time
	VenueID    int64
	CustomerID int64
	ShiftID    int64

	BirthdayPhoto *string
	Theme         *string

	VenueFee    float64
	TotalAmount float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func toDomainLines(services []ServiceLineInput) []domain.ServiceLine {
	lines := make([]domain.ServiceLine, len(services))
	for i, s := range services {
		lines[i] = domain.ServiceLine{ServiceID: s.ServiceID, Amount: s.Amount}
	}
	return lines
}

func fromDomain(res *domain.Reservation) *Response {
	return &Response{
		ID:            res.ID,
		Date:          res.Date,
		VenueID:       res.VenueID,
		CustomerID:    res.CustomerID,
		ShiftID:       res.ShiftID,
		BirthdayPhoto: res.BirthdayPhoto,
		Theme:         res.Theme,
		VenueFee:      res.VenueFee,
		TotalAmount:   res.TotalAmount,
		CreatedAt:     res.CreatedAt,
		UpdatedAt:     res.UpdatedAt,
	}
}
