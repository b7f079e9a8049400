package create_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/GymSpace-BookingService/internal/api/handlers"
	"github.com/m04kA/GymSpace-BookingService/internal/api/middleware"
	"github.com/m04kA/GymSpace-BookingService/internal/domain"
	"github.com/m04kA/GymSpace-BookingService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректный формат времени начала, ожидается RFC3339"
	msgTeamNotFound       = "команда не найдена"
	msgLimitReached       = "достигнут лимит активных бронирований"
	msgUnauthorized       = "пользователь не аутентифицирован"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startTime, err := req.ParseStartTime()
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	session := domain.TeamSession{TeamID: req.TeamID, StartTime: startTime}
	if err := h.service.MakeTeamReservation(r.Context(), userID, session); err != nil {
		switch {
		case errors.Is(err, bookings.ErrTeamNotFound):
			h.logger.Warn("POST /reservations - Team not found: team_id=%s", req.TeamID)
			handlers.RespondNotFound(w, msgTeamNotFound)

		default:
			h.logger.Error("POST /reservations - Failed to make reservation: user_id=%s, team_id=%s, error=%v",
				userID, req.TeamID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Движок отклоняет бронирование сверх лимита молча, поэтому итог
	// определяем по фактической позиции пользователя в списке сессии.
	reservation := domain.UserReservation{TeamID: req.TeamID, StartTime: startTime}
	position, err := h.service.GetUserPositionForSession(r.Context(), userID, reservation)
	if err != nil {
		h.logger.Error("POST /reservations - Failed to read position: user_id=%s, team_id=%s, error=%v",
			userID, req.TeamID, err)
		handlers.RespondInternalError(w)
		return
	}
	if position < 0 {
		h.logger.Warn("POST /reservations - Reservation declined by limit: user_id=%s, team_id=%s", userID, req.TeamID)
		handlers.RespondConflict(w, msgLimitReached)
		return
	}

	h.logger.Info("POST /reservations - Reservation created: user_id=%s, team_id=%s, start=%s, position=%d",
		userID, req.TeamID, startTime.Format(time.RFC3339), position)
	handlers.RespondJSON(w, http.StatusCreated, &ReservationResponse{
		TeamID:    req.TeamID,
		StartTime: startTime.Format(time.RFC3339),
		Position:  position,
	})
}
