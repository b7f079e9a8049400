package domain

// UserSessionState состояние пользователя относительно сессии
type UserSessionState string

const (
	UserStateNone    UserSessionState = "none"
	UserStateJoined  UserSessionState = "joined"
	UserStateInQueue UserSessionState = "in_queue"
)

// SessionState состояние заполненности сессии
type SessionState string

const (
	SessionStateEmpty   SessionState = "empty"
	SessionStatePartial SessionState = "partial"
	SessionStateFull    SessionState = "full"
	SessionStateQueue   SessionState = "queue"
)

// ReservationStateSimplifier сводит упорядоченный список бронирований и
// вместимость сессии к простым состояниям для слоя представления.
// Бронирования не несут флага "в очереди": состояние всегда пересчитывается
// из текущего порядка и вместимости, поэтому отмена подтвержденного места
// автоматически продвигает следующего в очереди при ближайшем чтении.
type ReservationStateSimplifier struct {
	reservations []string
	sessionSize  int
}

// NewReservationStateSimplifier создает simplifier для списка userId
// в порядке бронирования и вместимости sessionSize
func NewReservationStateSimplifier(reservations []string, sessionSize int) *ReservationStateSimplifier {
	return &ReservationStateSimplifier{
		reservations: reservations,
		sessionSize:  sessionSize,
	}
}

// Position возвращает позицию пользователя в порядке бронирования
// (с нуля) или -1, если бронирования нет
func (s *ReservationStateSimplifier) Position(userID string) int {
	for i, id := range s.reservations {
		if id == userID {
			return i
		}
	}
	return -1
}

// GetUserState возвращает состояние пользователя: первые sessionSize
// бронирований считаются подтвержденными, остальные стоят в очереди
func (s *ReservationStateSimplifier) GetUserState(userID string) UserSessionState {
	idx := s.Position(userID)
	if idx == -1 {
		return UserStateNone
	}
	if idx < s.sessionSize {
		return UserStateJoined
	}
	return UserStateInQueue
}

// GetSessionState возвращает состояние заполненности сессии
func (s *ReservationStateSimplifier) GetSessionState() SessionState {
	return SessionStateForCount(len(s.reservations), s.sessionSize)
}

// SessionStateForCount выводит состояние сессии из числа бронирований и
// вместимости. Отрицательное свободное место означает очередь: команды без
// собственного Size могут переподписать общий пул, очередь это поглощает.
func SessionStateForCount(reservedCount, sessionSize int) SessionState {
	available := sessionSize - reservedCount
	if available < 0 {
		return SessionStateQueue
	}
	if available == 0 {
		return SessionStateFull
	}
	if available == sessionSize {
		return SessionStateEmpty
	}
	return SessionStatePartial
}
