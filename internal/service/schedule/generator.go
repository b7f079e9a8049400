package schedule

import (
	"math"
	"time"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

// Generator разворачивает еженедельное расписание в конкретные сессии.
// Генерация без состояния и побочных эффектов, блокировки не нужны.
//
// Известное ограничение (унаследовано, не исправляется): время сессии
// трактуется как настенное время дня без нормализации к UTC, перевод
// часов на летнее время не учитывается.
type Generator struct {
	scheduledTeams []domain.WeeklyScheduledTeam
}

// NewGenerator создает генератор для активного расписания
func NewGenerator(weeklySchedule domain.WeeklySchedule) *Generator {
	return &Generator{scheduledTeams: weeklySchedule.ScheduledTeams}
}

// GetTeamSlots возвращает все сессии, начинающиеся в закрытом интервале
// [from, from+duration].
//
// Перебираются ceil(1 + duration в днях) календарных дней начиная со дня
// from; запасной "+1 день" покрывает сессии у границ окна. Для каждого дня
// берутся все точки расписания с совпадающим днем недели, старт сессии
// считается как полночь дня плюс время точки расписания.
func (g *Generator) GetTeamSlots(from time.Time, duration time.Duration) []domain.TeamSession {
	endTime := from.Add(duration)
	numberOfDays := int(math.Ceil(1 + duration.Hours()/24))

	res := make([]domain.TeamSession, 0)
	currentTime := from
	for day := 0; day < numberOfDays; day++ {
		currentDay := currentTime.Weekday()
		midnight := time.Date(
			currentTime.Year(), currentTime.Month(), currentTime.Day(),
			0, 0, 0, 0, currentTime.Location(),
		)

		for _, scheduledTeam := range g.scheduledTeams {
			if scheduledTeam.Day != currentDay {
				continue
			}
			startTime := midnight.Add(scheduledTeam.TimeOfDay)
			if !startTime.Before(from) && !startTime.After(endTime) {
				res = append(res, domain.TeamSession{
					TeamID:    scheduledTeam.TeamID,
					StartTime: startTime,
				})
			}
		}

		currentTime = currentTime.AddDate(0, 0, 1)
	}
	return res
}
