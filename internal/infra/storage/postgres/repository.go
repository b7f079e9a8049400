package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

// psql builder с плейсхолдерами $1, $2, ... для PostgreSQL
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repository postgres-реализация хранилища бронирований: внешний
// (durable) коллаборатор за тем же контрактом, что и хранилище в памяти.
//
// FIFO-порядок бронирований сессии обеспечивается сортировкой по serial id:
// порядок вставки и есть порядок очереди. Времена хранятся в UTC.
// Составная проверка лимита ActiveBookings сюда не входит — ее сериализует
// мьютекс сервиса бронирований поверх этих атомарных операций.
type Repository struct {
	db    DBExecutor
	teams TeamCatalog
}

// NewRepository создает репозиторий бронирований
func NewRepository(db DBExecutor, teams TeamCatalog) *Repository {
	return &Repository{db: db, teams: teams}
}

// GetReservationsFor возвращает бронирования пользователя в порядке вставки
func (r *Repository) GetReservationsFor(ctx context.Context, userID string) ([]domain.UserReservation, error) {
	query, args, err := psql.Select("start_time", "team_id").
		From("user_reservations").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservationsFor - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservationsFor - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	res := make([]domain.UserReservation, 0)
	for rows.Next() {
		var reservation domain.UserReservation
		if err := rows.Scan(&reservation.StartTime, &reservation.TeamID); err != nil {
			return nil, fmt.Errorf("%w: GetReservationsFor - scan row: %v", ErrScanRow, err)
		}
		reservation.StartTime = reservation.StartTime.UTC()
		res = append(res, reservation)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetReservationsFor - rows error: %v", ErrScanRow, err)
	}
	return res, nil
}

// GetReservationsForSession возвращает userId сессии в порядке бронирования
func (r *Repository) GetReservationsForSession(ctx context.Context, teamID string, startTime time.Time) ([]string, error) {
	query, args, err := psql.Select("user_id").
		From("user_reservations").
		Where(squirrel.Eq{"team_id": teamID, "start_time": startTime.UTC()}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservationsForSession - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservationsForSession - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	res := make([]string, 0)
	for rows.Next() {
		var userID string
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("%w: GetReservationsForSession - scan row: %v", ErrScanRow, err)
		}
		res = append(res, userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetReservationsForSession - rows error: %v", ErrScanRow, err)
	}
	return res, nil
}

// GetAllReservationsBetween возвращает снимки слотов с временем начала в
// закрытом интервале [from, from+duration]. Группировка по слоту и команде
// выполняется на клиенте, сортировка по id сохраняет FIFO внутри команды.
func (r *Repository) GetAllReservationsBetween(ctx context.Context, from time.Time, duration time.Duration) ([]domain.BookedTimeSlot, error) {
	query, args, err := psql.Select("start_time", "team_id", "user_id").
		From("user_reservations").
		Where(squirrel.GtOrEq{"start_time": from.UTC()}).
		Where(squirrel.LtOrEq{"start_time": from.Add(duration).UTC()}).
		OrderBy("start_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllReservationsBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllReservationsBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	res := make([]domain.BookedTimeSlot, 0)
	index := make(map[time.Time]int)
	for rows.Next() {
		var startTime time.Time
		var teamID, userID string
		if err := rows.Scan(&startTime, &teamID, &userID); err != nil {
			return nil, fmt.Errorf("%w: GetAllReservationsBetween - scan row: %v", ErrScanRow, err)
		}
		startTime = startTime.UTC()

		i, ok := index[startTime]
		if !ok {
			res = append(res, domain.BookedTimeSlot{
				StartTime:        startTime,
				TeamReservations: make(map[string][]string),
			})
			i = len(res) - 1
			index[startTime] = i
		}
		res[i].TeamReservations[teamID] = append(res[i].TeamReservations[teamID], userID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAllReservationsBetween - rows error: %v", ErrScanRow, err)
	}
	return res, nil
}

// AddReservation добавляет бронирование. Идентичное бронирование того же
// пользователя поглощается уникальным индексом (ON CONFLICT DO NOTHING).
func (r *Repository) AddReservation(ctx context.Context, userID string, reservation domain.UserReservation) error {
	team, err := r.teams.GetTeam(reservation.TeamID)
	if err != nil {
		return fmt.Errorf("%w: AddReservation - %v", ErrResolveTeam, err)
	}

	startTime := reservation.StartTime.UTC()
	query, args, err := psql.Insert("user_reservations").
		Columns("user_id", "team_id", "start_time", "end_time").
		Values(userID, reservation.TeamID, startTime, startTime.Add(team.Duration)).
		Suffix("ON CONFLICT (user_id, team_id, start_time) DO NOTHING").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: AddReservation - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AddReservation - execute insert: %v", ErrExecQuery, err)
	}
	return nil
}

// RemoveReservation удаляет бронирование по структурному совпадению.
// Отсутствующая запись — no-op.
func (r *Repository) RemoveReservation(ctx context.Context, userID string, reservation domain.UserReservation) error {
	query, args, err := psql.Delete("user_reservations").
		Where(squirrel.Eq{
			"user_id":    userID,
			"team_id":    reservation.TeamID,
			"start_time": reservation.StartTime.UTC(),
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RemoveReservation - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: RemoveReservation - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// RemoveAllReservations удаляет все бронирования пользователя
func (r *Repository) RemoveAllReservations(ctx context.Context, userID string) error {
	query, args, err := psql.Delete("user_reservations").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: RemoveAllReservations - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: RemoveAllReservations - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}
