package cancel_reservation

import (
	"net/http"
	"time"

	"github.com/m04kA/GymSpace-BookingService/internal/api/handlers"
	"github.com/m04kA/GymSpace-BookingService/internal/api/middleware"
	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartTime   = "некорректный формат времени начала, ожидается RFC3339"
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

// Handle POST /api/v1/reservations/cancel
//
// Отмена несуществующего бронирования не является ошибкой: результат
// в обоих случаях один и тот же, бронирования нет.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CancelReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	startTime, err := req.ParseStartTime()
	if err != nil {
		h.logger.Warn("POST /reservations/cancel - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	reservation := domain.UserReservation{TeamID: req.TeamID, StartTime: startTime}
	if err := h.service.CancelUserReservation(r.Context(), userID, reservation); err != nil {
		h.logger.Error("POST /reservations/cancel - Failed to cancel reservation: user_id=%s, team_id=%s, error=%v",
			userID, req.TeamID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /reservations/cancel - Reservation cancelled: user_id=%s, team_id=%s, start=%s",
		userID, req.TeamID, startTime.Format(time.RFC3339))
	handlers.RespondNoContent(w)
}
