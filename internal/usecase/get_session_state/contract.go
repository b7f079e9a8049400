package get_session_state

import (
	"context"
	"time"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

// SessionResolver интерфейс для определения эффективной вместимости сессии
type SessionResolver interface {
	ResolveSessions(sessions []domain.TeamSession) ([]domain.ResolvedTeamSession, error)
}

// ReservationReader интерфейс чтения бронирований сессии
type ReservationReader interface {
	GetReservationsForSession(ctx context.Context, teamID string, startTime time.Time) ([]string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
