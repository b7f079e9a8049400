package get_sessions

import (
	"time"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

// Request модель запроса на получение расписания сессий
type Request struct {
	From     time.Time     // Начало окна
	Duration time.Duration // Длительность окна
}

// Response модель ответа со списком сессий окна
type Response struct {
	From     time.Time
	Duration time.Duration
	Sessions []Session
}

// Session сессия с вместимостью и текущей занятостью
type Session struct {
	TeamID          string
	TeamName        string
	StartTime       time.Time
	DurationMinutes int
	SizeLimit       int
	ReservedCount   int
	State           domain.SessionState
}
