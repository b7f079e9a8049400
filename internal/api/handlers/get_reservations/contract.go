package get_reservations

import (
	"context"
	"time"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

type BookingService interface {
	GetAllReservations(ctx context.Context, from time.Time, duration time.Duration) ([]domain.BookedTimeSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
