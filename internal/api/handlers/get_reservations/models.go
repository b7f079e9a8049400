package get_reservations

import (
	"time"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

// BookedSlotResponse бронирования одного временного слота, по командам
type BookedSlotResponse struct {
	StartTime    string              `json:"startTime"` // RFC3339
	Reservations map[string][]string `json:"reservations"`
}

// ReservationsResponse HTTP response model
type ReservationsResponse struct {
	From  string               `json:"from"`
	Days  int                  `json:"days"`
	Slots []BookedSlotResponse `json:"slots"`
}

// FromDomain конвертирует слоты домена в HTTP response
func FromDomain(from time.Time, days int, slots []domain.BookedTimeSlot) *ReservationsResponse {
	items := make([]BookedSlotResponse, 0, len(slots))
	for _, slot := range slots {
		items = append(items, BookedSlotResponse{
			StartTime:    slot.StartTime.Format(time.RFC3339),
			Reservations: slot.TeamReservations,
		})
	}
	return &ReservationsResponse{
		From:  from.Format(time.RFC3339),
		Days:  days,
		Slots: items,
	}
}
