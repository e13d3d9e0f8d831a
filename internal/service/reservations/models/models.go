package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationsService/internal/domain"
)

// Response модели. JSON контракт намеренно повторяет имена колонок
// таблицы reservas — его потребляют существующие клиенты API.

// ServiceLineResponse строка услуги резервации
type ServiceLineResponse struct {
	ServiceID int64   `json:"servicio_id"`
	Amount    float64 `json:"importe"`
}

// ReservationResponse ответ с данными резервации
type ReservationResponse struct {
	ID            int64   `json:"reserva_id"`
	Date          string  `json:"fecha_reserva"` // "2025-12-31"
	VenueID       int64   `json:"salon_id"`
	CustomerID    int64   `json:"usuario_id"`
	ShiftID       int64   `json:"turno_id"`
	BirthdayPhoto *string `json:"foto_cumpleaniero,omitempty"`
	Theme         *string `json:"tematica,omitempty"`
	VenueFee      float64 `json:"importe_salon"`
	TotalAmount   float64 `json:"importe_total"`
	Active        bool    `json:"activo"`

	Services []ServiceLineResponse `json:"servicios,omitempty"`

	CreatedAt time.Time `json:"creado"`
	UpdatedAt time.Time `json:"modificado"`
}

// ReservationListResponse ответ со списком резерваций
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservas"`
}

// VenueStatResponse строка статистики салонов по клиентам
type VenueStatResponse struct {
	CustomerID    int64   `json:"usuario_id"`
	CustomerEmail string  `json:"cliente"`
	VenueName     string  `json:"salon"`
	Reservations  int64   `json:"total_reservas"`
	TotalSpent    float64 `json:"total_gastado"`
}

// ReportResponse результат генерации отчета.
// Для PDF заполнен Content, для CSV — Path (файл отдается потоково).
type ReportResponse struct {
	Format      domain.ReportFormat
	Content     []byte
	Path        string
	ContentType string
	Filename    string
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:            r.ID,
		Date:          r.Date.Format(domain.DateFormat),
		VenueID:       r.VenueID,
		CustomerID:    r.CustomerID,
		ShiftID:       r.ShiftID,
		BirthdayPhoto: r.BirthdayPhoto,
		Theme:         r.Theme,
		VenueFee:      r.VenueFee,
		TotalAmount:   r.TotalAmount,
		Active:        r.Active,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if dto := FromDomainReservation(r); dto != nil {
			resp.Reservations = append(resp.Reservations, *dto)
		}
	}

	return resp
}

// FromDomainServiceLines конвертирует строки услуг в DTO
func FromDomainServiceLines(lines []domain.ServiceLine) []ServiceLineResponse {
	resp := make([]ServiceLineResponse, len(lines))
	for i, line := range lines {
		resp[i] = ServiceLineResponse{ServiceID: line.ServiceID, Amount: line.Amount}
	}
	return resp
}

// FromDomainVenueStats конвертирует статистику в DTO
func FromDomainVenueStats(stats []domain.VenueStat) []VenueStatResponse {
	resp := make([]VenueStatResponse, len(stats))
	for i, s := range stats {
		resp[i] = VenueStatResponse{
			CustomerID:    s.CustomerID,
			CustomerEmail: s.CustomerEmail,
			VenueName:     s.VenueName,
			Reservations:  s.Reservations,
			TotalSpent:    s.TotalSpent,
		}
	}
	return resp
}
