package domain

import "time"

// Reservation represents a venue booking: one venue, one customer,
// one shift, on one date
type Reservation struct {
	ID         int64
	Date       time.Time // calendar date, no time component
	VenueID    int64
	CustomerID int64
	ShiftID    int64

	BirthdayPhoto *string
	Theme         *string

	VenueFee float64
	// TotalAmount is supplied by the client and is NOT recomputed as
	// VenueFee + sum of line amounts
	TotalAmount float64

	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ServiceLine represents a priced add-on service attached to a reservation.
// Identity is (reservation_id, service_id); the amount is priced per
// reservation, not read from the service catalog.
type ServiceLine struct {
	ServiceID int64
	Amount    float64
}

// ReservationFilter filter for listing reservations
type ReservationFilter struct {
	CustomerID *int64 // if set, restricts to that customer's reservations
}
