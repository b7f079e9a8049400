package create_reservation

import (
	"context"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

type BookingService interface {
	MakeTeamReservation(ctx context.Context, userID string, session domain.TeamSession) error
	GetUserPositionForSession(ctx context.Context, userID string, reservation domain.UserReservation) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
