package get_reservations

import (
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/GymSpace-BookingService/internal/api/handlers"
)

const (
	msgInvalidFrom = "некорректный параметр from, ожидается RFC3339"
	msgInvalidDays = "некорректный параметр days"
)

const defaultWindowDays = 7

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

// Handle GET /api/v1/reservations?from=2025-10-13T00:00:00%2B03:00&days=7
//
// Сводка бронирований всех пользователей по слотам, для тренерского
// обзора расписания.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from := time.Now()
	if raw := r.URL.Query().Get("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid from parameter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFrom)
			return
		}
		from = parsed
	}

	days := defaultWindowDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			h.logger.Warn("GET /reservations - Invalid days parameter: %q", raw)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		days = parsed
	}

	slots, err := h.service.GetAllReservations(r.Context(), from, time.Duration(days)*24*time.Hour)
	if err != nil {
		h.logger.Error("GET /reservations - Failed to get reservations: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations - Returned %d slots: from=%s, days=%d",
		len(slots), from.Format(time.RFC3339), days)
	handlers.RespondJSON(w, http.StatusOK, FromDomain(from, days, slots))
}
