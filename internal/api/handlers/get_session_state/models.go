package get_session_state

import (
	"time"

	getSessionState "github.com/m04kA/GymSpace-BookingService/internal/usecase/get_session_state"
)

// SessionStateResponse HTTP response model
type SessionStateResponse struct {
	TeamID       string   `json:"teamId"`
	TeamName     string   `json:"teamName"`
	StartTime    string   `json:"startTime"` // RFC3339
	SizeLimit    int      `json:"sizeLimit"`
	Reservations []string `json:"reservations"` // userId в порядке бронирования
	SessionState string   `json:"sessionState"`
	UserState    string   `json:"userState"`
	Position     int      `json:"position"` // с нуля, -1 если бронирования нет
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSessionState.Response) *SessionStateResponse {
	return &SessionStateResponse{
		TeamID:       resp.TeamID,
		TeamName:     resp.TeamName,
		StartTime:    resp.StartTime.Format(time.RFC3339),
		SizeLimit:    resp.SizeLimit,
		Reservations: resp.Reservations,
		SessionState: string(resp.SessionState),
		UserState:    string(resp.UserState),
		Position:     resp.Position,
	}
}
