package bookings

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
	teamsService "github.com/m04kA/GymSpace-BookingService/internal/service/teams"
)

// Service оркестрирует создание и отмену бронирований поверх хранилища
// и каталога команд.
//
// Мьютекс сервиса защищает составную операцию "прочитать бронирования
// пользователя, проверить лимит, добавить" при бронировании команды с
// ограничением ActiveBookings: без него два конкурентных запроса могли бы
// оба пройти проверку и вместе превысить лимит. Блокировка сервиса шире
// блокировки хранилища, поэтому при внешнем (postgres) хранилище все
// ограниченные бронирования сериализуются за задержкой I/O — осознанная
// плата за корректность при низком потоке бронирований.
type Service struct {
	storage      BookingStorage
	teams        TeamCatalog
	notifier     *Notifier
	timeProvider TimeProvider
	logger       Logger

	mu sync.Mutex
}

// NewService создает сервис бронирований
func NewService(storage BookingStorage, teams TeamCatalog, notifier *Notifier, logger Logger) *Service {
	return &Service{
		storage:      storage,
		teams:        teams,
		notifier:     notifier,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// MakeTeamReservation бронирует пользователя на сессию.
//
// Если у команды задан лимит ActiveBookings, число будущих бронирований
// пользователя на эту команду проверяется и пополняется как одно атомарное
// действие. Превышение лимита — тихий no-op без ошибки: вызывающий при
// необходимости проверяет появление бронирования сам.
func (s *Service) MakeTeamReservation(ctx context.Context, userID string, session domain.TeamSession) error {
	team, err := s.teams.GetTeam(session.TeamID)
	if err != nil {
		if errors.Is(err, teamsService.ErrTeamNotFound) {
			s.logger.Warn("MakeTeamReservation: unknown team id=%s", session.TeamID)
			return fmt.Errorf("%w: %q", ErrTeamNotFound, session.TeamID)
		}
		return fmt.Errorf("%w: MakeTeamReservation - resolve team: %v", ErrInternal, err)
	}

	reservation := domain.UserReservation{StartTime: session.StartTime, TeamID: session.TeamID}

	if limit, ok := team.ActiveBookingsLimit(); ok {
		added, err := s.addWithinLimit(ctx, userID, reservation, limit)
		if err != nil {
			return err
		}
		if !added {
			// Тихий отказ: состояние не меняется, уведомление не шлется
			return nil
		}
	} else {
		if err := s.storage.AddReservation(ctx, userID, reservation); err != nil {
			s.logger.Error("MakeTeamReservation: storage error for user=%s: %v", userID, err)
			return fmt.Errorf("%w: MakeTeamReservation - add reservation: %v", ErrInternal, err)
		}
	}

	s.logger.Info("MakeTeamReservation: user=%s booked team=%s at %s",
		userID, session.TeamID, session.StartTime.Format(time.RFC3339))
	s.notifier.Notify()
	return nil
}

// addWithinLimit выполняет проверку лимита и добавление под мьютексом
// сервиса. Уведомление здесь не шлется: оно должно уйти после выхода из
// критической секции.
func (s *Service) addWithinLimit(ctx context.Context, userID string, reservation domain.UserReservation, limit int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.storage.GetReservationsFor(ctx, userID)
	if err != nil {
		s.logger.Error("MakeTeamReservation: storage error for user=%s: %v", userID, err)
		return false, fmt.Errorf("%w: MakeTeamReservation - read reservations: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	futureCount := 0
	for _, r := range existing {
		if r.TeamID == reservation.TeamID && r.IsFuture(now) {
			futureCount++
		}
	}

	if futureCount >= limit {
		s.logger.Warn("MakeTeamReservation: declined for user=%s, team=%s: %d/%d future reservations",
			userID, reservation.TeamID, futureCount, limit)
		return false, nil
	}

	if err := s.storage.AddReservation(ctx, userID, reservation); err != nil {
		s.logger.Error("MakeTeamReservation: storage error for user=%s: %v", userID, err)
		return false, fmt.Errorf("%w: MakeTeamReservation - add reservation: %v", ErrInternal, err)
	}
	return true, nil
}

// CancelUserReservation отменяет бронирование пользователя. Отмена
// несуществующего бронирования — no-op, но уведомление все равно уходит:
// вызывающим не нужно выяснять, было ли оно на самом деле.
func (s *Service) CancelUserReservation(ctx context.Context, userID string, reservation domain.UserReservation) error {
	if err := s.storage.RemoveReservation(ctx, userID, reservation); err != nil {
		s.logger.Error("CancelUserReservation: storage error for user=%s: %v", userID, err)
		return fmt.Errorf("%w: CancelUserReservation - remove reservation: %v", ErrInternal, err)
	}

	s.logger.Info("CancelUserReservation: user=%s cancelled team=%s at %s",
		userID, reservation.TeamID, reservation.StartTime.Format(time.RFC3339))
	s.notifier.Notify()
	return nil
}

// CancelAllUserReservations удаляет все бронирования пользователя
// (используется при удалении аккаунта)
func (s *Service) CancelAllUserReservations(ctx context.Context, userID string) error {
	if err := s.storage.RemoveAllReservations(ctx, userID); err != nil {
		s.logger.Error("CancelAllUserReservations: storage error for user=%s: %v", userID, err)
		return fmt.Errorf("%w: CancelAllUserReservations - remove all: %v", ErrInternal, err)
	}

	s.logger.Info("CancelAllUserReservations: removed all reservations for user=%s", userID)
	s.notifier.Notify()
	return nil
}

// GetUserReservations возвращает бронирования пользователя
func (s *Service) GetUserReservations(ctx context.Context, userID string) ([]domain.UserReservation, error) {
	reservations, err := s.storage.GetReservationsFor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUserReservations - read reservations: %v", ErrInternal, err)
	}
	return reservations, nil
}

// GetReservationsForSession возвращает userId сессии в порядке бронирования
func (s *Service) GetReservationsForSession(ctx context.Context, teamID string, startTime time.Time) ([]string, error) {
	reservations, err := s.storage.GetReservationsForSession(ctx, teamID, startTime)
	if err != nil {
		return nil, fmt.Errorf("%w: GetReservationsForSession - read session: %v", ErrInternal, err)
	}
	return reservations, nil
}

// GetUserPositionForSession возвращает позицию пользователя в порядке
// бронирования сессии (с нуля) или -1, если бронирования нет
func (s *Service) GetUserPositionForSession(ctx context.Context, userID string, reservation domain.UserReservation) (int, error) {
	allReservations, err := s.storage.GetReservationsForSession(ctx, reservation.TeamID, reservation.StartTime)
	if err != nil {
		return -1, fmt.Errorf("%w: GetUserPositionForSession - read session: %v", ErrInternal, err)
	}

	for i, id := range allReservations {
		if id == userID {
			return i, nil
		}
	}
	return -1, nil
}

// GetAllReservations возвращает снимки занятых слотов в закрытом интервале
// [from, from+duration]
func (s *Service) GetAllReservations(ctx context.Context, from time.Time, duration time.Duration) ([]domain.BookedTimeSlot, error) {
	slots, err := s.storage.GetAllReservationsBetween(ctx, from, duration)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAllReservations - read slots: %v", ErrInternal, err)
	}
	return slots, nil
}

// Subscribe регистрирует подписчика на сигнал "bookings changed"
func (s *Service) Subscribe(fn func()) string {
	return s.notifier.Subscribe(fn)
}

// Unsubscribe снимает подписку
func (s *Service) Unsubscribe(id string) {
	s.notifier.Unsubscribe(id)
}
