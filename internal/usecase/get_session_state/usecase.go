package get_session_state

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
	teamsService "github.com/m04kA/GymSpace-BookingService/internal/service/teams"
)

// UseCase use case состояния одной сессии: FIFO-список бронирований,
// состояние заполненности и положение запрашивающего пользователя.
// Состояние всегда пересчитывается из порядка и вместимости, отдельного
// шага "продвинуть очередь" не существует.
type UseCase struct {
	resolver     SessionResolver
	reservations ReservationReader
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(resolver SessionResolver, reservations ReservationReader, logger Logger) *UseCase {
	return &UseCase{
		resolver:     resolver,
		reservations: reservations,
		logger:       logger,
	}
}

// Execute выполняет use case получения состояния сессии
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSessionState: user=%s, team=%s, start=%s",
		req.UserID, req.TeamID, req.StartTime.Format(time.RFC3339))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetSessionState: validation failed: %v", err)
		return nil, err
	}

	session := domain.TeamSession{TeamID: req.TeamID, StartTime: req.StartTime}
	resolved, err := uc.resolver.ResolveSessions([]domain.TeamSession{session})
	if err != nil {
		if errors.Is(err, teamsService.ErrTeamNotFound) {
			uc.logger.Warn("GetSessionState: unknown team id=%s", req.TeamID)
			return nil, fmt.Errorf("%w: %q", ErrTeamNotFound, req.TeamID)
		}
		uc.logger.Error("GetSessionState: failed to resolve session: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve session: %v", ErrInternal, err)
	}
	resolvedSession := resolved[0]

	reservations, err := uc.reservations.GetReservationsForSession(ctx, req.TeamID, req.StartTime)
	if err != nil {
		uc.logger.Error("GetSessionState: failed to read reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to read reservations: %v", ErrInternal, err)
	}

	simplifier := domain.NewReservationStateSimplifier(reservations, resolvedSession.SizeLimit)

	return &Response{
		TeamID:       resolvedSession.Team.ID,
		TeamName:     resolvedSession.Team.Name,
		StartTime:    req.StartTime,
		SizeLimit:    resolvedSession.SizeLimit,
		Reservations: reservations,
		SessionState: simplifier.GetSessionState(),
		UserState:    simplifier.GetUserState(req.UserID),
		Position:     simplifier.Position(req.UserID),
	}, nil
}

func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}
	if req.TeamID == "" {
		return fmt.Errorf("%w: teamID is required", ErrInvalidInput)
	}
	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	return nil
}
