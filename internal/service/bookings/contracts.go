package bookings

import (
	"context"
	"time"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

// BookingStorage контракт хранилища бронирований.
// Реализуется in-memory хранилищем и postgres-репозиторием; каждая
// операция атомарна, отсутствие записи — валидный no-op, а не ошибка.
type BookingStorage interface {
	GetReservationsFor(ctx context.Context, userID string) ([]domain.UserReservation, error)
	GetReservationsForSession(ctx context.Context, teamID string, startTime time.Time) ([]string, error)
	GetAllReservationsBetween(ctx context.Context, from time.Time, duration time.Duration) ([]domain.BookedTimeSlot, error)
	AddReservation(ctx context.Context, userID string, reservation domain.UserReservation) error
	RemoveReservation(ctx context.Context, userID string, reservation domain.UserReservation) error
	RemoveAllReservations(ctx context.Context, userID string) error
}

// TeamCatalog интерфейс каталога команд
type TeamCatalog interface {
	GetTeam(id string) (*domain.Team, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
