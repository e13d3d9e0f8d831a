package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
)

// ServiceLineInput строка услуги в запросе: услуга и ее цена для этой резервации
type ServiceLineInput struct {
	ServiceID int64
	Amount    float64
}

// Request модель запроса на создание резервации
type Request struct {
	Date       time.Time // Дата резервации (без времени)
	VenueID    int64     // ID салона
	CustomerID int64     // ID клиента
	ShiftID    int64     // ID смены

	BirthdayPhoto *string // Ссылка на фото именинника (опционально)
	Theme         *string // Тематика праздника (опционально)

	VenueFee    float64 // Стоимость салона
	TotalAmount float64 // Итоговая сумма (принимается как есть, не пересчитывается)

	Services []ServiceLineInput // Полный набор услуг резервации
}

// Response модель ответа с созданной резервацией
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

	Services []ServiceLineInput

	CreatedAt time.Time
	UpdatedAt time.Time
}

// toDomainLines конвертирует строки запроса в domain модель
func toDomainLines(services []ServiceLineInput) []domain.ServiceLine {
	lines := make([]domain.ServiceLine, len(services))
	for i, s := range services {
		lines[i] = domain.ServiceLine{ServiceID: s.ServiceID, Amount: s.Amount}
	}
	return lines
}

// fromDomain собирает ответ из каноничной строки БД и набора услуг запроса
func fromDomain(res *domain.Reservation, services []ServiceLineInput) *Response {
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
		Services:      services,
		CreatedAt:     res.CreatedAt,
		UpdatedAt:     res.UpdatedAt,
	}
}
