package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
	teamsService "github.com/m04kA/GymSpace-BookingService/internal/service/teams"
)

func newTestSpace(t *testing.T) *SpaceSchedule {
	t.Helper()

	teams := teamsService.NewService([]domain.Team{
		{
			ID: "1", Name: "Beginner", Duration: 90 * time.Minute,
			Limits: map[domain.LimitKind]int{domain.LimitSize: 1, domain.LimitActiveBookings: 2},
		},
		{
			ID: "2", Name: "Intermediate", Duration: 90 * time.Minute,
			Limits: map[domain.LimitKind]int{domain.LimitSize: 2},
		},
		{
			ID: "open", Name: "Open Gym", Duration: time.Hour,
		},
	})

	generator := NewGenerator(domain.WeeklySchedule{ScheduledTeams: []domain.WeeklyScheduledTeam{
		{TeamID: "1", Day: time.Monday, TimeOfDay: 16*time.Hour + 30*time.Minute},
		{TeamID: "2", Day: time.Monday, TimeOfDay: 18 * time.Hour},
		{TeamID: "open", Day: time.Monday, TimeOfDay: 16*time.Hour + 30*time.Minute},
	}})

	return NewSpaceSchedule(generator, teams, 24)
}

func TestGetFreeSpace_SubtractsOverlappingTeamSizes(t *testing.T) {
	space := newTestSpace(t)

	// Слот поверх сессии Beginner (размер 1); open-команда пересекается
	// тоже, но без собственного Size пул не занимает
	free, err := space.GetFreeSpace(domain.TimeSlot{
		StartTime: monday.Add(16*time.Hour + 30*time.Minute),
		Duration:  time.Hour,
	})
	require.NoError(t, err)
	assert.Equal(t, 23, free)
}

func TestGetFreeSpace_MultipleOverlaps(t *testing.T) {
	space := newTestSpace(t)

	// Слот 17:30-18:30 задевает и Beginner (16:30-18:00), и Intermediate
	// (18:00-19:30)
	free, err := space.GetFreeSpace(domain.TimeSlot{
		StartTime: monday.Add(17*time.Hour + 30*time.Minute),
		Duration:  time.Hour,
	})
	require.NoError(t, err)
	assert.Equal(t, 21, free)
}

func TestGetFreeSpace_NoOverlaps(t *testing.T) {
	space := newTestSpace(t)

	free, err := space.GetFreeSpace(domain.TimeSlot{
		StartTime: monday.Add(8 * time.Hour),
		Duration:  time.Hour,
	})
	require.NoError(t, err)
	assert.Equal(t, 24, free)
}

func TestGetTeamSessionsActiveDuring_TouchingSlotsDoNotOverlap(t *testing.T) {
	space := newTestSpace(t)

	// Слот начинается ровно в конце сессии Beginner (18:00); пересекается
	// только Intermediate
	sessions, err := space.GetTeamSessionsActiveDuring(domain.TimeSlot{
		StartTime: monday.Add(18 * time.Hour),
		Duration:  30 * time.Minute,
	})
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "2", sessions[0].TeamID)
}

func TestResolveSessions_EffectiveCapacity(t *testing.T) {
	space := newTestSpace(t)
	teams := teamsService.NewService([]domain.Team{
		{
			ID: "1", Name: "Beginner", Duration: 90 * time.Minute,
			Limits: map[domain.LimitKind]int{domain.LimitSize: 1},
		},
		{
			ID: "open", Name: "Open Gym", Duration: time.Hour,
		},
	})
	resolver := NewResolver(teams, space)

	start := monday.Add(16*time.Hour + 30*time.Minute)
	resolved, err := resolver.ResolveSessions([]domain.TeamSession{
		{TeamID: "1", StartTime: start},
		{TeamID: "open", StartTime: start},
	})
	require.NoError(t, err)
	require.Len(t, resolved, 2)

	// Команда с собственным Size использует его
	assert.Equal(t, 1, resolved[0].SizeLimit)
	// Open-команда получает свободное место пула: 24 минус Beginner (1)
	assert.Equal(t, 23, resolved[1].SizeLimit)

	_, err = resolver.ResolveSessions([]domain.TeamSession{{TeamID: "ghost", StartTime: start}})
	assert.ErrorIs(t, err, teamsService.ErrTeamNotFound)
}
