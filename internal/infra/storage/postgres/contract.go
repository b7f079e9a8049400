package postgres

import (
	"context"
	"database/sql"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

// DBExecutor интерфейс для выполнения запросов
// Поддерживает *sql.DB и *sql.Tx
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// TeamCatalog интерфейс каталога команд.
// Нужен для вычисления end_time бронирования из длительности команды.
type TeamCatalog interface {
	GetTeam(id string) (*domain.Team, error)
}
