package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

// Storage потокобезопасное хранилище бронирований в памяти.
//
// Два индекса: по пользователю (userId -> бронирования) и по слоту
// (startTime -> teamId -> userId в порядке бронирования). Все операции
// атомарны под одним общим мьютексом: пропускная способность приносится
// в жертву согласованности, что приемлемо при низком потоке бронирований.
// Порядок пользователей в слоте — порядок добавления, он несет смысл:
// из него выводится позиция в очереди.
type Storage struct {
	mu sync.Mutex

	userReservations map[string][]domain.UserReservation
	slotReservations map[time.Time]map[string][]string
}

// NewStorage создает пустое хранилище
func NewStorage() *Storage {
	return &Storage{
		userReservations: make(map[string][]domain.UserReservation),
		slotReservations: make(map[time.Time]map[string][]string),
	}
}

// slotKey нормализует время начала к UTC, чтобы одинаковые моменты времени
// в разных зонах попадали в один слот
func slotKey(startTime time.Time) time.Time {
	return startTime.UTC()
}

// GetReservationsFor возвращает бронирования пользователя.
// Для неизвестного пользователя возвращается пустой список.
func (s *Storage) GetReservationsFor(_ context.Context, userID string) ([]domain.UserReservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservations := s.userReservations[userID]
	res := make([]domain.UserReservation, len(reservations))
	copy(res, reservations)
	return res, nil
}

// GetReservationsForSession возвращает userId сессии в порядке бронирования.
// Для неизвестной сессии возвращается пустой список.
func (s *Storage) GetReservationsForSession(_ context.Context, teamID string, startTime time.Time) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	teamsAtSlot, ok := s.slotReservations[slotKey(startTime)]
	if !ok {
		return []string{}, nil
	}
	reservations := teamsAtSlot[teamID]
	res := make([]string, len(reservations))
	copy(res, reservations)
	return res, nil
}

// GetAllReservationsBetween возвращает снимки всех слотов с временем начала
// в закрытом интервале [from, from+duration], отсортированные по времени
func (s *Storage) GetAllReservationsBetween(_ context.Context, from time.Time, duration time.Duration) ([]domain.BookedTimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	endTime := from.Add(duration)
	res := make([]domain.BookedTimeSlot, 0)
	for startTime, teamsAtSlot := range s.slotReservations {
		if startTime.Before(from) || startTime.After(endTime) {
			continue
		}

		teamReservations := make(map[string][]string, len(teamsAtSlot))
		for teamID, userIDs := range teamsAtSlot {
			users := make([]string, len(userIDs))
			copy(users, userIDs)
			teamReservations[teamID] = users
		}
		res = append(res, domain.BookedTimeSlot{
			StartTime:        startTime,
			TeamReservations: teamReservations,
		})
	}

	sort.Slice(res, func(i, j int) bool { return res[i].StartTime.Before(res[j].StartTime) })
	return res, nil
}

// AddReservation добавляет бронирование в оба индекса, сохраняя порядок
// прихода. Идентичное бронирование того же пользователя — no-op.
func (s *Storage) AddReservation(_ context.Context, userID string, reservation domain.UserReservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.userReservations[userID] {
		if existing.Equal(reservation) {
			return nil
		}
	}

	s.userReservations[userID] = append(s.userReservations[userID], reservation)

	key := slotKey(reservation.StartTime)
	teamsAtSlot, ok := s.slotReservations[key]
	if !ok {
		teamsAtSlot = make(map[string][]string)
		s.slotReservations[key] = teamsAtSlot
	}
	teamsAtSlot[reservation.TeamID] = append(teamsAtSlot[reservation.TeamID], userID)

	return nil
}

// RemoveReservation удаляет бронирование из обоих индексов по структурному
// равенству. Отсутствующее бронирование — no-op.
func (s *Storage) RemoveReservation(_ context.Context, userID string, reservation domain.UserReservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.removeFromUserIndex(userID, reservation) {
		return nil
	}
	s.removeFromSlotIndex(userID, reservation)
	return nil
}

// RemoveAllReservations удаляет все бронирования пользователя из обоих
// индексов. Используется при удалении аккаунта.
func (s *Storage) RemoveAllReservations(_ context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reservations := s.userReservations[userID]
	delete(s.userReservations, userID)
	for _, reservation := range reservations {
		s.removeFromSlotIndex(userID, reservation)
	}
	return nil
}

func (s *Storage) removeFromUserIndex(userID string, reservation domain.UserReservation) bool {
	reservations := s.userReservations[userID]
	for i, existing := range reservations {
		if existing.Equal(reservation) {
			s.userReservations[userID] = append(reservations[:i], reservations[i+1:]...)
			if len(s.userReservations[userID]) == 0 {
				delete(s.userReservations, userID)
			}
			return true
		}
	}
	return false
}

func (s *Storage) removeFromSlotIndex(userID string, reservation domain.UserReservation) {
	key := slotKey(reservation.StartTime)
	teamsAtSlot, ok := s.slotReservations[key]
	if !ok {
		return
	}

	userIDs := teamsAtSlot[reservation.TeamID]
	for i, id := range userIDs {
		if id == userID {
			teamsAtSlot[reservation.TeamID] = append(userIDs[:i], userIDs[i+1:]...)
			break
		}
	}

	// Пустые записи вычищаются, чтобы отсутствие и пустой список были
	// согласованы между индексами
	if len(teamsAtSlot[reservation.TeamID]) == 0 {
		delete(teamsAtSlot, reservation.TeamID)
	}
	if len(teamsAtSlot) == 0 {
		delete(s.slotReservations, key)
	}
}
