package create_reservation

import (
	"time"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	TeamID    string `json:"teamId"`
	StartTime string `json:"startTime"` // RFC3339, например "2025-10-13T16:30:00+03:00"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	TeamID    string `json:"teamId"`
	StartTime string `json:"startTime"`
	Position  int    `json:"position"` // позиция в порядке бронирования, с нуля
}

// ParseStartTime разбирает время начала сессии из запроса
func (r *CreateReservationRequest) ParseStartTime() (time.Time, error) {
	return time.Parse(time.RFC3339, r.StartTime)
}
