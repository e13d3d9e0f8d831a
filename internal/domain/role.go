package domain

// Role is the closed set of caller roles attached to each inbound call
type Role int

const (
	RoleAdmin    Role = 1
	RoleStaff    Role = 2
	RoleCustomer Role = 3
)

// IsValid returns true if the role belongs to the known set
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleStaff || r == RoleCustomer
}

// CanViewAllReservations returns true if the role sees every reservation.
// Customers are scoped to their own reservations.
func (r Role) CanViewAllReservations() bool {
	return r == RoleAdmin || r == RoleStaff
}

// CanCreateReservation returns true if the role may create reservations
func (r Role) CanCreateReservation() bool {
	return r == RoleAdmin || r == RoleCustomer
}

// CanManageReservations returns true if the role may update or delete
// any reservation
func (r Role) CanManageReservations() bool {
	return r == RoleAdmin
}

// CanViewReservationDetails returns true if the role may look up a
// reservation by id
func (r Role) CanViewReservationDetails() bool {
	return r == RoleAdmin || r == RoleStaff
}

// CanViewReports returns true if the role may export reports and read
// statistics
func (r Role) CanViewReports() bool {
	return r == RoleAdmin
}
