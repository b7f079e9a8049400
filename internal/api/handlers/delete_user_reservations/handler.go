package delete_user_reservations

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

// Handle DELETE /api/v1/users/{userId}/reservations
//
// Используется при удалении аккаунта: снимает все бронирования
// пользователя, и прошедшие, и будущие.
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
		h.logger.Warn("DELETE /users/{userId}/reservations - Forbidden: auth_user=%s, requested_user=%s",
			authUserID, userID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	if err := h.service.CancelAllUserReservations(r.Context(), userID); err != nil {
		h.logger.Error("DELETE /users/{userId}/reservations - Failed to cancel reservations: user_id=%s, error=%v",
			userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /users/{userId}/reservations - All reservations cancelled: user_id=%s", userID)
	handlers.RespondNoContent(w)
}
