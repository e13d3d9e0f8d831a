package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
	createReservation "github.com/m04kA/SMC-ReservationsService/internal/usecase/create_reservation"
)

// ServiceLineRequest строка услуги в HTTP запросе
type ServiceLineRequest struct {
	ServiceID int64   `json:"servicio_id"`
	Amount    float64 `json:"importe"`
}

// CreateReservationRequest HTTP request model.
// Имена полей повторяют контракт существующего API.
type CreateReservationRequest struct {
	Date          string               `json:"fecha_reserva"` // "2025-12-31"
	VenueID       int64                `json:"salon_id"`
	CustomerID    int64                `json:"usuario_id"`
	ShiftID       int64                `json:"turno_id"`
	BirthdayPhoto *string              `json:"foto_cumpleaniero,omitempty"`
	Theme         *string              `json:"tematica,omitempty"`
	VenueFee      float64              `json:"importe_salon"`
	TotalAmount   float64              `json:"importe_total"`
	Services      []ServiceLineRequest `json:"servicios"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64                `json:"reserva_id"`
	Date          string               `json:"fecha_reserva"`
	VenueID       int64                `json:"salon_id"`
	CustomerID    int64                `json:"usuario_id"`
	ShiftID       int64                `json:"turno_id"`
	BirthdayPhoto *string              `json:"foto_cumpleaniero,omitempty"`
	Theme         *string              `json:"tematica,omitempty"`
	VenueFee      float64              `json:"importe_salon"`
	TotalAmount   float64              `json:"importe_total"`
	Services      []ServiceLineRequest `json:"servicios"`
	CreatedAt     string               `json:"creado"`
	UpdatedAt     string               `json:"modificado"`
}

// CreateReservationResponse обертка успешного ответа
type CreateReservationResponse struct {
	Estado      bool                `json:"estado"`
	Mensaje     string              `json:"mensaje"`
	Reservation ReservationResponse `json:"reserva"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	var services []createReservation.ServiceLineInput
	if r.Services != nil {
		services = make([]createReservation.ServiceLineInput, len(r.Services))
		for i, s := range r.Services {
			services[i] = createReservation.ServiceLineInput{ServiceID: s.ServiceID, Amount: s.Amount}
		}
	}

	return &createReservation.Request{
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
func FromUseCaseResponse(resp *createReservation.Response) ReservationResponse {
	services := make([]ServiceLineRequest, len(resp.Services))
	for i, s := range resp.Services {
		services[i] = ServiceLineRequest{ServiceID: s.ServiceID, Amount: s.Amount}
	}

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
		Services:      services,
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
