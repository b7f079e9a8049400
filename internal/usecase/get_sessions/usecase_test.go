package get_sessions

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeGenerator struct {
	sessions []domain.TeamSession
}

func (g *fakeGenerator) GetTeamSlots(time.Time, time.Duration) []domain.TeamSession {
	return g.sessions
}

type fakeResolver struct {
	teams map[string]*domain.Team
	sizes map[string]int
	err   error
}

func (r *fakeResolver) ResolveSessions(sessions []domain.TeamSession) ([]domain.ResolvedTeamSession, error) {
	if r.err != nil {
		return nil, r.err
	}
	res := make([]domain.ResolvedTeamSession, 0, len(sessions))
	for _, session := range sessions {
		team := r.teams[session.TeamID]
		res = append(res, domain.ResolvedTeamSession{
			Session:   session,
			Team:      team,
			Slot:      domain.TimeSlot{StartTime: session.StartTime, Duration: team.Duration},
			SizeLimit: r.sizes[session.TeamID],
		})
	}
	return res, nil
}

type fakeBookings struct {
	slots []domain.BookedTimeSlot
}

func (b *fakeBookings) GetAllReservations(context.Context, time.Time, time.Duration) ([]domain.BookedTimeSlot, error) {
	return b.slots, nil
}

var windowStart = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func TestExecute_CombinesScheduleAndReservations(t *testing.T) {
	firstStart := windowStart.Add(16*time.Hour + 30*time.Minute)
	secondStart := windowStart.Add(18 * time.Hour)

	beginner := &domain.Team{ID: "1", Name: "Beginner", Duration: 90 * time.Minute}
	elite := &domain.Team{ID: "3", Name: "Elite", Duration: 90 * time.Minute}

	uc := NewUseCase(
		&fakeGenerator{sessions: []domain.TeamSession{
			{TeamID: "3", StartTime: secondStart},
			{TeamID: "1", StartTime: firstStart},
		}},
		&fakeResolver{
			teams: map[string]*domain.Team{"1": beginner, "3": elite},
			sizes: map[string]int{"1": 1, "3": 3},
		},
		&fakeBookings{slots: []domain.BookedTimeSlot{
			{
				StartTime: firstStart,
				TeamReservations: map[string][]string{
					"1": {"u1"},
				},
			},
		}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{From: windowStart, Duration: 7 * 24 * time.Hour})
	require.NoError(t, err)
	require.Len(t, resp.Sessions, 2)

	// Сессии отсортированы по времени начала
	first := resp.Sessions[0]
	assert.Equal(t, "1", first.TeamID)
	assert.Equal(t, "Beginner", first.TeamName)
	assert.Equal(t, 90, first.DurationMinutes)
	assert.Equal(t, 1, first.ReservedCount)
	assert.Equal(t, domain.SessionStateFull, first.State)

	second := resp.Sessions[1]
	assert.Equal(t, "3", second.TeamID)
	assert.Equal(t, 0, second.ReservedCount)
	assert.Equal(t, domain.SessionStateEmpty, second.State)
}

func TestExecute_QueueStateWhenOverbooked(t *testing.T) {
	start := windowStart.Add(16 * time.Hour)
	team := &domain.Team{ID: "1", Name: "Beginner", Duration: 90 * time.Minute}

	uc := NewUseCase(
		&fakeGenerator{sessions: []domain.TeamSession{{TeamID: "1", StartTime: start}}},
		&fakeResolver{teams: map[string]*domain.Team{"1": team}, sizes: map[string]int{"1": 1}},
		&fakeBookings{slots: []domain.BookedTimeSlot{
			{StartTime: start, TeamReservations: map[string][]string{"1": {"u1", "u2", "u3"}}},
		}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{From: windowStart, Duration: 24 * time.Hour})
	require.NoError(t, err)
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, 3, resp.Sessions[0].ReservedCount)
	assert.Equal(t, domain.SessionStateQueue, resp.Sessions[0].State)
}

func TestExecute_ReservationsMatchByInstant(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	start := windowStart.Add(16 * time.Hour)
	team := &domain.Team{ID: "1", Name: "Beginner", Duration: 90 * time.Minute}

	// Хранилище вернуло слот в другой зоне; занятость все равно находится
	uc := NewUseCase(
		&fakeGenerator{sessions: []domain.TeamSession{{TeamID: "1", StartTime: start}}},
		&fakeResolver{teams: map[string]*domain.Team{"1": team}, sizes: map[string]int{"1": 2}},
		&fakeBookings{slots: []domain.BookedTimeSlot{
			{StartTime: start.In(moscow), TeamReservations: map[string][]string{"1": {"u1"}}},
		}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), &Request{From: windowStart, Duration: 24 * time.Hour})
	require.NoError(t, err)
	require.Len(t, resp.Sessions, 1)
	assert.Equal(t, 1, resp.Sessions[0].ReservedCount)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&fakeGenerator{}, &fakeResolver{}, &fakeBookings{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Duration: time.Hour})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{From: windowStart, Duration: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{From: windowStart, Duration: MaxWindow + time.Hour})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
