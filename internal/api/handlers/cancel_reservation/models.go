package cancel_reservation

import (
	"time"
)

// CancelReservationRequest HTTP request model
type CancelReservationRequest struct {
	TeamID    string `json:"teamId"`
	StartTime string `json:"startTime"` // RFC3339
}

// ParseStartTime разбирает время начала сессии из запроса
func (r *CancelReservationRequest) ParseStartTime() (time.Time, error) {
	return time.Parse(time.RFC3339, r.StartTime)
}
