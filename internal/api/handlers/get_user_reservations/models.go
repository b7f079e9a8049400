package get_user_reservations

import (
	"time"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

// UserReservationResponse одно бронирование пользователя
type UserReservationResponse struct {
	TeamID    string `json:"teamId"`
	StartTime string `json:"startTime"` // RFC3339
}

// UserReservationsResponse HTTP response model
type UserReservationsResponse struct {
	UserID       string                    `json:"userId"`
	Reservations []UserReservationResponse `json:"reservations"`
}

// FromDomain конвертирует бронирования домена в HTTP response
func FromDomain(userID string, reservations []domain.UserReservation) *UserReservationsResponse {
	items := make([]UserReservationResponse, 0, len(reservations))
	for _, reservation := range reservations {
		items = append(items, UserReservationResponse{
			TeamID:    reservation.TeamID,
			StartTime: reservation.StartTime.Format(time.RFC3339),
		})
	}
	return &UserReservationsResponse{
		UserID:       userID,
		Reservations: items,
	}
}
