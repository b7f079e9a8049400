package domain

import "time"

// LimitKind вид ограничения для команды
type LimitKind string

const (
	// LimitSize максимальное число участников сессии команды.
	// Команда без этого ограничения занимает места из общего пула зала.
	LimitSize LimitKind = "size"

	// LimitActiveBookings максимальное число будущих бронирований
	// одного пользователя на одну команду
	LimitActiveBookings LimitKind = "active_bookings"
)

// Team описывает повторяющийся тип занятия с фиксированной длительностью
// и опциональными ограничениями. Каталог команд неизменяем после старта.
type Team struct {
	ID       string
	Name     string
	Duration time.Duration
	Limits   map[LimitKind]int
}

// SizeLimit возвращает ограничение на размер сессии, если оно задано
func (t *Team) SizeLimit() (int, bool) {
	limit, ok := t.Limits[LimitSize]
	return limit, ok
}

// ActiveBookingsLimit возвращает ограничение на число активных бронирований
// пользователя, если оно задано
func (t *Team) ActiveBookingsLimit() (int, bool) {
	limit, ok := t.Limits[LimitActiveBookings]
	return limit, ok
}

// DrawsFromSharedPool возвращает true, если команда не имеет собственного
// ограничения размера и занимает места из общего пула зала
func (t *Team) DrawsFromSharedPool() bool {
	_, ok := t.Limits[LimitSize]
	return !ok
}

// WeeklyScheduledTeam одна точка еженедельного расписания:
// команда TeamID собирается каждый Day в TimeOfDay (время от полуночи)
type WeeklyScheduledTeam struct {
	TeamID    string
	Day       time.Weekday
	TimeOfDay time.Duration
}

// WeeklySchedule активное еженедельное расписание, загружается один раз при старте
type WeeklySchedule struct {
	ScheduledTeams []WeeklyScheduledTeam
}
