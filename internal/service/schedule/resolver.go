package schedule

import (
	"fmt"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

// Resolver соединяет сгенерированные сессии с определением команды и
// эффективным ограничением размера.
//
// Правило вместимости: если у команды задан собственный Size, используется
// он (класс фиксированного размера); иначе вместимость выводится из
// свободного места общего пула на момент слота (открытая сессия).
type Resolver struct {
	teams TeamCatalog
	space *SpaceSchedule
}

// NewResolver создает resolver поверх каталога команд и расписания зала
func NewResolver(teams TeamCatalog, space *SpaceSchedule) *Resolver {
	return &Resolver{teams: teams, space: space}
}

// ResolveSessions возвращает сессии, дополненные командой, конкретным
// временным слотом и эффективным ограничением размера
func (r *Resolver) ResolveSessions(sessions []domain.TeamSession) ([]domain.ResolvedTeamSession, error) {
	res := make([]domain.ResolvedTeamSession, 0, len(sessions))
	for _, session := range sessions {
		team, err := r.teams.GetTeam(session.TeamID)
		if err != nil {
			return nil, fmt.Errorf("ResolveSessions - resolve team: %w", err)
		}

		slot := domain.TimeSlot{StartTime: session.StartTime, Duration: team.Duration}

		sizeLimit, ok := team.SizeLimit()
		if !ok {
			sizeLimit, err = r.space.GetFreeSpace(slot)
			if err != nil {
				return nil, fmt.Errorf("ResolveSessions - derive pool capacity: %w", err)
			}
		}

		res = append(res, domain.ResolvedTeamSession{
			Session:   session,
			Team:      team,
			Slot:      slot,
			SizeLimit: sizeLimit,
		})
	}
	return res, nil
}
