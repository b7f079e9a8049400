package get_sessions

import (
	"context"
	"time"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

// SessionGenerator интерфейс генератора сессий из еженедельного расписания
type SessionGenerator interface {
	GetTeamSlots(from time.Time, duration time.Duration) []domain.TeamSession
}

// SessionResolver интерфейс для определения эффективной вместимости сессий
type SessionResolver interface {
	ResolveSessions(sessions []domain.TeamSession) ([]domain.ResolvedTeamSession, error)
}

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	GetAllReservations(ctx context.Context, from time.Time, duration time.Duration) ([]domain.BookedTimeSlot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
