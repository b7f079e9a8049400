package get_sessions

import (
	"time"

	getSessions "github.com/m04kA/GymSpace-BookingService/internal/usecase/get_sessions"
)

// SessionResponse одна сессия расписания
type SessionResponse struct {
	TeamID          string `json:"teamId"`
	TeamName        string `json:"teamName"`
	StartTime       string `json:"startTime"` // RFC3339
	DurationMinutes int    `json:"durationMinutes"`
	SizeLimit       int    `json:"sizeLimit"`
	ReservedCount   int    `json:"reservedCount"`
	State           string `json:"state"`
}

// SessionsResponse HTTP response model
type SessionsResponse struct {
	From     string            `json:"from"`
	Days     int               `json:"days"`
	Sessions []SessionResponse `json:"sessions"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getSessions.Response) *SessionsResponse {
	sessions := make([]SessionResponse, 0, len(resp.Sessions))
	for _, session := range resp.Sessions {
		sessions = append(sessions, SessionResponse{
			TeamID:          session.TeamID,
			TeamName:        session.TeamName,
			StartTime:       session.StartTime.Format(time.RFC3339),
			DurationMinutes: session.DurationMinutes,
			SizeLimit:       session.SizeLimit,
			ReservedCount:   session.ReservedCount,
			State:           string(session.State),
		})
	}
	return &SessionsResponse{
		From:     resp.From.Format(time.RFC3339),
		Days:     int(resp.Duration.Hours() / 24),
		Sessions: sessions,
	}
}
