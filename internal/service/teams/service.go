package teams

import (
	"fmt"
	"sort"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

// Service неизменяемый каталог команд, загружается один раз при старте
type Service struct {
	teams map[string]domain.Team
}

// NewService создает каталог из списка определений команд
func NewService(teams []domain.Team) *Service {
	byID := make(map[string]domain.Team, len(teams))
	for _, team := range teams {
		byID[team.ID] = team
	}
	return &Service{teams: byID}
}

// GetTeam возвращает определение команды по id
func (s *Service) GetTeam(id string) (*domain.Team, error) {
	team, ok := s.teams[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTeamNotFound, id)
	}
	return &team, nil
}

// All возвращает все команды каталога, отсортированные по id
func (s *Service) All() []domain.Team {
	res := make([]domain.Team, 0, len(s.teams))
	for _, team := range s.teams {
		res = append(res, team)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res
}
