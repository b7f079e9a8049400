package get_session_state

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/GymSpace-BookingService/internal/api/handlers"
	"github.com/m04kA/GymSpace-BookingService/internal/api/middleware"
	getSessionState "github.com/m04kA/GymSpace-BookingService/internal/usecase/get_session_state"
)

const (
	msgMissingTeamID    = "не указан идентификатор команды"
	msgInvalidStartTime = "некорректный параметр startTime, ожидается RFC3339"
	msgTeamNotFound     = "команда не найдена"
	msgUnauthorized     = "пользователь не аутентифицирован"
)

type Handler struct {
	useCase GetSessionStateUseCase
	logger  Logger
}

func NewHandler(useCase GetSessionStateUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/{teamId}/state?startTime=2025-10-13T16:30:00%2B03:00
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	teamID := mux.Vars(r)["teamId"]
	if teamID == "" {
		handlers.RespondBadRequest(w, msgMissingTeamID)
		return
	}

	startTime, err := time.Parse(time.RFC3339, r.URL.Query().Get("startTime"))
	if err != nil {
		h.logger.Warn("GET /sessions/{teamId}/state - Invalid startTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartTime)
		return
	}

	req := &getSessionState.Request{
		UserID:    userID,
		TeamID:    teamID,
		StartTime: startTime,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSessionState.ErrTeamNotFound):
			h.logger.Warn("GET /sessions/{teamId}/state - Team not found: team_id=%s", teamID)
			handlers.RespondNotFound(w, msgTeamNotFound)

		case errors.Is(err, getSessionState.ErrInvalidInput):
			h.logger.Warn("GET /sessions/{teamId}/state - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /sessions/{teamId}/state - Failed to get state: team_id=%s, error=%v", teamID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions/{teamId}/state - State returned: team_id=%s, user_id=%s, state=%s",
		teamID, userID, result.SessionState)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
