package events

import (
	"fmt"
	"net/http"
	"time"
)

const (
	msgStreamingUnsupported = "потоковая передача не поддерживается"

	eventReservationsChanged = "reservations-changed"
	keepAliveInterval        = 25 * time.Second
)

type Handler struct {
	notifier ReservationNotifier
	logger   Logger
}

func NewHandler(notifier ReservationNotifier, logger Logger) *Handler {
	return &Handler{
		notifier: notifier,
		logger:   logger,
	}
}

// Handle GET /api/v1/events
//
// SSE-поток с событием reservations-changed при любом изменении
// бронирований. Событие не несет полезной нагрузки: подписчик
// перечитывает интересующие его сессии сам.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, msgStreamingUnsupported, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	// Буфер на одно событие: подряд идущие уведомления между записями
	// схлопываются в одно, подписчику этого достаточно.
	changes := make(chan struct{}, 1)
	subscriptionID := h.notifier.Subscribe(func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	})
	defer h.notifier.Unsubscribe(subscriptionID)

	h.logger.Info("GET /events - Stream opened: subscription_id=%s", subscriptionID)

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("GET /events - Stream closed: subscription_id=%s", subscriptionID)
			return

		case <-changes:
			if _, err := fmt.Fprintf(w, "event: %s\ndata: {}\n\n", eventReservationsChanged); err != nil {
				h.logger.Warn("GET /events - Failed to write event: subscription_id=%s, error=%v", subscriptionID, err)
				return
			}
			flusher.Flush()

		case <-keepAlive.C:
			if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				h.logger.Warn("GET /events - Failed to write keepalive: subscription_id=%s, error=%v", subscriptionID, err)
				return
			}
			flusher.Flush()
		}
	}
}
