package domain

import "time"

// TeamSession конкретный экземпляр сессии команды, вычисляется по требованию
// из еженедельного расписания и никогда не сохраняется
type TeamSession struct {
	TeamID    string
	StartTime time.Time
}

// TimeSlot временной интервал, value-тип
type TimeSlot struct {
	StartTime time.Time
	Duration  time.Duration
}

// End возвращает конец интервала
func (s TimeSlot) End() time.Time {
	return s.StartTime.Add(s.Duration)
}

// Overlaps проверяет пересечение полуоткрытых интервалов.
// Интервалы, которые только граничат (конец одного равен началу другого),
// пересечением не считаются.
func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.StartTime.Before(other.End()) && s.End().After(other.StartTime)
}

// ResolvedTeamSession сессия вместе с определением команды и эффективным
// ограничением размера: собственный Size команды, либо свободное место
// общего пула для open-команд
type ResolvedTeamSession struct {
	Session   TeamSession
	Team      *Team
	Slot      TimeSlot
	SizeLimit int
}
