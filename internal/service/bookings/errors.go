package bookings

import "errors"

var (
	// ErrTeamNotFound возвращается при бронировании на неизвестную команду.
	// Каталог закрыт после старта, поэтому это ошибка конфигурации или
	// вызывающего кода, а не ожидаемый исход.
	ErrTeamNotFound = errors.New("bookings: team not found")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("bookings: internal error")
)
