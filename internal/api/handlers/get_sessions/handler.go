package get_sessions

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/GymSpace-BookingService/internal/api/handlers"
	getSessions "github.com/m04kA/GymSpace-BookingService/internal/usecase/get_sessions"
)

const (
	msgInvalidDate = "некорректный параметр date, ожидается YYYY-MM-DD"
	msgInvalidFrom = "некорректный параметр from, ожидается RFC3339"
	msgInvalidDays = "некорректный параметр days"
)

const defaultWindowDays = 7

type Handler struct {
	useCase GetSessionsUseCase
	logger  Logger
}

func NewHandler(useCase GetSessionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions?from=2025-10-13T00:00:00%2B03:00&days=7
//
// Альтернативно ?date=2025-10-13 возвращает расписание одного дня.
// Без параметров возвращает расписание на неделю вперед от текущего момента.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from := time.Now()
	days := defaultWindowDays

	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.logger.Warn("GET /sessions - Invalid date parameter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		from = parsed
		days = 1
	} else if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /sessions - Invalid from parameter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		from = parsed
	}
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /sessions - Invalid days parameter: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		days = parsed
	}

	req := &getSessions.Request{
		From:     from,
		Duration: time.Duration(days) * 24 * time.Hour,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getSessions.ErrInvalidInput):
			h.logger.Warn("GET /sessions - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /sessions - Failed to get sessions: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /sessions - Returned %d sessions: from=%s, days=%d",
		len(result.Sessions), from.Format(time.RFC3339), days)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
