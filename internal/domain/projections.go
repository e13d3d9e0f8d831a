package domain

// NotificationData read-only projection for a reservation notification,
// joined from the reservation, venue, shift and recipient tables.
// Date is already formatted as YYYY-MM-DD by the query.
type NotificationData struct {
	ReservationID  int64
	Date           string
	VenueName      string
	ShiftLabel     string
	RecipientEmail string
}

// HasRecipient reports whether the payload carries a deliverable address.
// Dispatch must not proceed without one.
func (d *NotificationData) HasRecipient() bool {
	return d != nil && d.RecipientEmail != ""
}

// ReportRow denormalized row for the reservations report, produced fresh
// per request and consumed by the export generator
type ReportRow struct {
	ReservationID int64
	Date          string
	VenueName     string
	ShiftLabel    string
	CustomerEmail string
	VenueFee      float64
	TotalAmount   float64
}

// VenueStat aggregate of reservations per customer and venue
type VenueStat struct {
	CustomerID    int64
	CustomerEmail string
	VenueName     string
	Reservations  int64
	TotalSpent    float64
}
