package get_user_reservations

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/GymSpace-BookingService/internal/api/handlers"
	"github.com/m04kA/GymSpace-BookingService/internal/api/middleware"
)

const (
	msgMissingUserID = "не указан идентификатор пользователя"
	msgForbidden     = "доступ к чужим бронированиям запрещен"
	msgUnauthorized  = "пользователь не аутентифицирован"
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

// Handle GET /api/v1/users/{userId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	authUserID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	userID := mux.Vars(r)["userId"]
	if userID == "" {
		handlers.RespondBadRequest(w, msgMissingUserID)
		return
	}
	if userID != authUserID {
		h.logger.Warn("GET /users/{userId}/reservations - Forbidden: auth_user=%s, requested_user=%s",
			authUserID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	reservations, err := h.service.GetUserReservations(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /users/{userId}/reservations - Failed to get reservations: user_id=%s, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /users/{userId}/reservations - Returned %d reservations: user_id=%s",
		len(reservations), userID)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(userID, reservations))
}
