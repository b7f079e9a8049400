package get_sessions

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

// MaxWindow верхняя граница окна запроса расписания
const MaxWindow = 31 * 24 * time.Hour

// UseCase use case получения расписания: сгенерированные сессии окна,
// дополненные эффективной вместимостью и текущей занятостью
type UseCase struct {
	generator SessionGenerator
	resolver  SessionResolver
	bookings  BookingService
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(generator SessionGenerator, resolver SessionResolver, bookings BookingService, logger Logger) *UseCase {
	return &UseCase{
		generator: generator,
		resolver:  resolver,
		bookings:  bookings,
		logger:    logger,
	}
}

type sessionKey struct {
	startTime time.Time
	teamID    string
}

// Execute выполняет use case получения расписания
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSessions: from=%s, duration=%s", req.From.Format(time.RFC3339), req.Duration)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSessions: validation failed: %v", err)
		return nil, err
	}

	sessions := uc.generator.GetTeamSlots(req.From, req.Duration)

	resolved, err := uc.resolver.ResolveSessions(sessions)
	if err != nil {
		uc.logger.Error("GetSessions: failed to resolve sessions: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve sessions: %v", ErrInternal, err)
	}

	// Один снимок бронирований на все окно вместо запроса на каждую сессию
	booked, err := uc.bookings.GetAllReservations(ctx, req.From, req.Duration)
	if err != nil {
		uc.logger.Error("GetSessions: failed to read reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to read reservations: %v", ErrInternal, err)
	}

	counts := make(map[sessionKey]int)
	for _, slot := range booked {
		for teamID, userIDs := range slot.TeamReservations {
			counts[sessionKey{startTime: slot.StartTime.UTC(), teamID: teamID}] = len(userIDs)
		}
	}

	result := make([]Session, 0, len(resolved))
	for _, session := range resolved {
		reserved := counts[sessionKey{
			startTime: session.Session.StartTime.UTC(),
			teamID:    session.Session.TeamID,
		}]

		state := domain.SessionStateForCount(reserved, session.SizeLimit)

		result = append(result, Session{
			TeamID:          session.Team.ID,
			TeamName:        session.Team.Name,
			StartTime:       session.Session.StartTime,
			DurationMinutes: int(session.Team.Duration.Minutes()),
			SizeLimit:       session.SizeLimit,
			ReservedCount:   reserved,
			State:           state,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartTime.Equal(result[j].StartTime) {
			return result[i].StartTime.Before(result[j].StartTime)
		}
		return result[i].TeamID < result[j].TeamID
	})

	uc.logger.Info("GetSessions: resolved %d sessions", len(result))
	return &Response{From: req.From, Duration: req.Duration, Sessions: result}, nil
}

func validateRequest(req *Request) error {
	if req.From.IsZero() {
		return fmt.Errorf("%w: from is required", ErrInvalidInput)
	}
	if req.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
	}
	if req.Duration > MaxWindow {
		return fmt.Errorf("%w: window exceeds %s", ErrInvalidInput, MaxWindow)
	}
	return nil
}
