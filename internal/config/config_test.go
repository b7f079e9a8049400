package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validConfig = `
[storage]
backend = "memory"

[space]
size = 24

[[teams]]
id = "1"
name = "Beginner"
duration_minutes = 90
[teams.limits]
size = 1
active_bookings = 2

[[teams]]
id = "open"
name = "Open Gym"
duration_minutes = 60

[[schedule]]
team_id = "1"
day = "Monday"
time = "16:30"
`

func TestLoad_ValidConfig(t *testing.T) {
	cfg, err := Load(writeConfig(t, validConfig))
	require.NoError(t, err)

	require.Len(t, cfg.Teams, 2)
	team := cfg.Teams[0].ToDomain()
	assert.Equal(t, 90*time.Minute, team.Duration)

	size, ok := team.SizeLimit()
	require.True(t, ok)
	assert.Equal(t, 1, size)

	limit, ok := team.ActiveBookingsLimit()
	require.True(t, ok)
	assert.Equal(t, 2, limit)

	open := cfg.Teams[1].ToDomain()
	_, ok = open.SizeLimit()
	assert.False(t, ok)
	_, ok = open.ActiveBookingsLimit()
	assert.False(t, ok)

	schedule := cfg.WeeklySchedule()
	require.Len(t, schedule.ScheduledTeams, 1)
	assert.Equal(t, time.Monday, schedule.ScheduledTeams[0].Day)
	assert.Equal(t, 16*time.Hour+30*time.Minute, schedule.ScheduledTeams[0].TimeOfDay)

	// Дефолты применены
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_UnknownLimitKeyIsAnError(t *testing.T) {
	path := writeConfig(t, `
[space]
size = 24

[[teams]]
id = "1"
name = "Beginner"
duration_minutes = 90
[teams.limits]
max_weight = 100
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrUnknownLimit)
}

func TestLoad_ScheduleMustReferenceKnownTeam(t *testing.T) {
	path := writeConfig(t, `
[space]
size = 24

[[teams]]
id = "1"
name = "Beginner"
duration_minutes = 90

[[schedule]]
team_id = "ghost"
day = "Monday"
time = "16:30"
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_DuplicateTeamIDs(t *testing.T) {
	path := writeConfig(t, `
[space]
size = 24

[[teams]]
id = "1"
name = "Beginner"
duration_minutes = 90

[[teams]]
id = "1"
name = "Copy"
duration_minutes = 60
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_RejectsBadStorageBackend(t *testing.T) {
	path := writeConfig(t, `
[storage]
backend = "redis"

[space]
size = 24

[[teams]]
id = "1"
name = "Beginner"
duration_minutes = 90
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_RejectsSessionLongerThanAWeek(t *testing.T) {
	path := writeConfig(t, `
[space]
size = 24

[[teams]]
id = "1"
name = "Marathon"
duration_minutes = 10090
`)

	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLoad_RejectsInvalidScheduleDay(t *testing.T) {
	path := writeConfig(t, `
[space]
size = 24

[[teams]]
id = "1"
name = "Beginner"
duration_minutes = 90

[[schedule]]
team_id = "1"
day = "Someday"
time = "16:30"
`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadConfig)
}
