package delete_user_reservations

import (
	"context"
)

type BookingService interface {
	CancelAllUserReservations(ctx context.Context, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
