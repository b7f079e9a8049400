package cancel_reservation

import (
	"context"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

type BookingService interface {
	CancelUserReservation(ctx context.Context, userID string, reservation domain.UserReservation) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
