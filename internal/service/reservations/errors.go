package reservations

import "errors"

var (
	// ErrReservationNotFound возвращается, когда резервация не найдена
	// или уже деактивирована
	ErrReservationNotFound = errors.New("reservation not found")

	// ErrUnsupportedFormat возвращается при запросе отчета в формате
	// вне множества {pdf, csv}. Проверяется до обращения к данным.
	ErrUnsupportedFormat = errors.New("unsupported report format")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrGeneration возвращается при ошибке генерации отчета
	ErrGeneration = errors.New("report generation failed")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
