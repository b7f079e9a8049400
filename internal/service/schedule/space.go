package schedule

import (
	"fmt"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

// SpaceSchedule вычисляет свободное место общего пула зала для временного
// слота по пересекающимся сессиям команд. Чистое чтение без побочных
// эффектов.
type SpaceSchedule struct {
	generator *Generator
	teams     TeamCatalog
	spaceSize int
}

// NewSpaceSchedule создает расписание зала с вместимостью spaceSize
func NewSpaceSchedule(generator *Generator, teams TeamCatalog, spaceSize int) *SpaceSchedule {
	return &SpaceSchedule{
		generator: generator,
		teams:     teams,
		spaceSize: spaceSize,
	}
}

// GetTeamSessionsActiveDuring возвращает сессии, интервал которых
// пересекается с timeSlot.
//
// Сессия длится не дольше недели, поэтому запрос генератора с запасом
// в 7 дней по обе стороны слота гарантированно захватывает всех кандидатов.
func (s *SpaceSchedule) GetTeamSessionsActiveDuring(timeSlot domain.TimeSlot) ([]domain.TeamSession, error) {
	maxTeamDuration := domain.MaxTeamSessionDuration
	candidates := s.generator.GetTeamSlots(
		timeSlot.StartTime.Add(-maxTeamDuration),
		maxTeamDuration+maxTeamDuration+timeSlot.Duration,
	)

	res := make([]domain.TeamSession, 0, len(candidates))
	for _, session := range candidates {
		sessionSlot, err := s.convertToTimeSlot(session)
		if err != nil {
			return nil, err
		}
		if sessionSlot.Overlaps(timeSlot) {
			res = append(res, session)
		}
	}
	return res, nil
}

// GetFreeSpace возвращает свободное место пула для слота: вместимость зала
// минус сумма ограничений Size всех пересекающихся сессий. Команды без
// собственного Size не занимают пул по этой формуле, их вместимость
// выводится отдельно через resolver.
func (s *SpaceSchedule) GetFreeSpace(timeSlot domain.TimeSlot) (int, error) {
	sessions, err := s.GetTeamSessionsActiveDuring(timeSlot)
	if err != nil {
		return 0, err
	}

	occupied := 0
	for _, session := range sessions {
		team, err := s.teams.GetTeam(session.TeamID)
		if err != nil {
			return 0, fmt.Errorf("GetFreeSpace - resolve team: %w", err)
		}
		if size, ok := team.SizeLimit(); ok {
			occupied += size
		}
	}
	return s.spaceSize - occupied, nil
}

func (s *SpaceSchedule) convertToTimeSlot(session domain.TeamSession) (domain.TimeSlot, error) {
	team, err := s.teams.GetTeam(session.TeamID)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("convertToTimeSlot - resolve team: %w", err)
	}
	return domain.TimeSlot{StartTime: session.StartTime, Duration: team.Duration}, nil
}
