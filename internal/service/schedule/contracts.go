package schedule

import "github.com/m04kA/GymSpace-BookingService/internal/domain"

// TeamCatalog интерфейс каталога команд
type TeamCatalog interface {
	GetTeam(id string) (*domain.Team, error)
}
