package get_user_reservations

import (
	"context"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

type BookingService interface {
	GetUserReservations(ctx context.Context, userID string) ([]domain.UserReservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
