package get_session_state

import (
	"time"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

// Request модель запроса состояния сессии для пользователя
type Request struct {
	UserID    string    // Пользователь, для которого вычисляется состояние
	TeamID    string    // Команда сессии
	StartTime time.Time // Начало сессии
}

// Response модель ответа с состоянием сессии
type Response struct {
	TeamID       string
	TeamName     string
	StartTime    time.Time
	SizeLimit    int
	Reservations []string // userId в порядке бронирования
	SessionState domain.SessionState
	UserState    domain.UserSessionState
	Position     int // позиция пользователя (с нуля), -1 если бронирования нет
}
