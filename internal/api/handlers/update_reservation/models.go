package update_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
	updateReservation "github.com/m04kA/SMC-ReservationsService/internal/usecase/update_reservation"
)

// ServiceLineRequest строка услуги в HTTP запросе
type ServiceLineRequest struct {
	ServiceID int64   `json:"servicio_id"`
	Amount    float64 `json:"importe"`
}

// UpdateReservationRequest HTTP request model.
//
// Servicios опционален: отсутствие поля оставляет строки услуг без
// изменений, пустой массив удаляет их все.
type UpdateReservationRequest struct {
	Date          string                `json:"fecha_reserva"` // "2025-12-31"
	VenueID       int64                 `json:"salon_id"`
	CustomerID    int64                 `json:"usuario_id"`
	ShiftID       int64                 `json:"turno_id"`
	BirthdayPhoto *string               `json:"foto_cumpleaniero,omitempty"`
	Theme         *string               `json:"tematica,omitempty"`
	VenueFee      float64               `json:"importe_salon"`
	TotalAmount   float64               `json:"importe_total"`
	Services      *[]ServiceLineRequest `json:"servicios,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64   `json:"reserva_id"`
	Date          string  `json:"fecha_reserva"`
	VenueID       int64   `json:"salon_id"`
	CustomerID    int64   `json:"usuario_id"`
	ShiftID       int64   `json:"turno_id"`
	BirthdayPhoto *string `json:"foto_cumpleaniero,omitempty"`
	Theme         *string `json:"tematica,omitempty"`
	VenueFee      float64 `json:"importe_salon"`
	TotalAmount   float64 `json:"importe_total"`
	CreatedAt     string  `json:"creado"`
	UpdatedAt     string  `json:"modificado"`
}

// UpdateReservationResponse обертка успешного ответа
type UpdateReservationResponse struct {
	Estado      bool                `json:"estado"`
	Mensaje     string              `json:"mensaje"`
	Reservation ReservationResponse `json:"reserva"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(id int64) (*updateReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	var services *[]updateReservation.ServiceLineInput
	if r.Services != nil {
		lines := make([]updateReservation.ServiceLineInput, len(*r.Services))
		for i, s := range *r.Services {
			lines[i] = updateReservation.ServiceLineInput{ServiceID: s.ServiceID, Amount: s.Amount}
		}
		services = &lines
	}

	return &updateReservation.Request{
		ID:            id,
		Date:          date,
		VenueID:       r.VenueID,
		CustomerID:    r.CustomerID,
		ShiftID:       r.ShiftID,
		BirthdayPhoto: r.BirthdayPhoto,
		Theme:         r.Theme,
		VenueFee:      r.VenueFee,
		TotalAmount:   r.TotalAmount,
		Services:      services,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) ReservationResponse {
	return ReservationResponse{
		ID:            resp.ID,
		Date:          resp.Date.Format(domain.DateFormat),
		VenueID:       resp.VenueID,
		CustomerID:    resp.CustomerID,
		ShiftID:       resp.ShiftID,
		BirthdayPhoto: resp.BirthdayPhoto,
		Theme:         resp.Theme,
		VenueFee:      resp.VenueFee,
		TotalAmount:   resp.TotalAmount,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
