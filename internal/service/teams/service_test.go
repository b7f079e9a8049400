package teams

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

func TestService_GetTeam(t *testing.T) {
	svc := NewService([]domain.Team{
		{ID: "1", Name: "Beginner", Duration: 90 * time.Minute},
		{ID: "open", Name: "Open Gym", Duration: time.Hour},
	})

	team, err := svc.GetTeam("1")
	require.NoError(t, err)
	assert.Equal(t, "Beginner", team.Name)

	_, err = svc.GetTeam("ghost")
	assert.ErrorIs(t, err, ErrTeamNotFound)
}

func TestService_AllIsSorted(t *testing.T) {
	svc := NewService([]domain.Team{
		{ID: "open", Name: "Open Gym"},
		{ID: "1", Name: "Beginner"},
		{ID: "3", Name: "Elite"},
	})

	all := svc.All()
	require.Len(t, all, 3)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "3", all[1].ID)
	assert.Equal(t, "open", all[2].ID)
}
