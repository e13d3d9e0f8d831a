package update_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrReservationNotFound возвращается, когда резервация не найдена
	// или уже деактивирована
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("update_reservation: internal error")
)
