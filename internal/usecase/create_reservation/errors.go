package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrNotPersisted возвращается, когда резервация не была сохранена
	ErrNotPersisted = errors.New("create_reservation: reservation was not persisted")

	// ErrInternal возвращается при внутренних ошибках use case
	ErrInternal = errors.New("create_reservation: internal error")
)
