package domain

import "time"

// UserReservation бронирование пользователя на сессию команды.
// Равенство структурное по паре (StartTime, TeamID): пользователь не может
// держать два бронирования на одну и ту же сессию.
type UserReservation struct {
	StartTime time.Time
	TeamID    string
}

// Equal проверяет структурное равенство бронирований
func (r UserReservation) Equal(other UserReservation) bool {
	return r.StartTime.Equal(other.StartTime) && r.TeamID == other.TeamID
}

// IsFuture возвращает true, если сессия еще не началась
func (r UserReservation) IsFuture(now time.Time) bool {
	return r.StartTime.After(now)
}

// BookedTimeSlot снимок всех бронирований одного временного слота:
// для каждой команды — список userId в порядке бронирования (FIFO).
// Производная read-модель, отдельно не сохраняется.
type BookedTimeSlot struct {
	StartTime        time.Time
	TeamReservations map[string][]string
}
