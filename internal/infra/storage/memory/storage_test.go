package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/GymSpace-BookingService/internal/domain"
)

var sessionStart = time.Date(2025, 10, 13, 16, 30, 0, 0, time.UTC)

func reservationAt(teamID string, start time.Time) domain.UserReservation {
	return domain.UserReservation{TeamID: teamID, StartTime: start}
}

func TestStorage_AddAndGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	require.NoError(t, storage.AddReservation(ctx, "u1", reservationAt("1", sessionStart)))
	require.NoError(t, storage.AddReservation(ctx, "u1", reservationAt("2", sessionStart.Add(time.Hour))))

	reservations, err := storage.GetReservationsFor(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, "1", reservations[0].TeamID)
	assert.Equal(t, "2", reservations[1].TeamID)

	reservations, err = storage.GetReservationsFor(ctx, "stranger")
	require.NoError(t, err)
	assert.Empty(t, reservations)
}

func TestStorage_SessionOrderIsFIFO(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	for _, userID := range []string{"u3", "u1", "u2"} {
		require.NoError(t, storage.AddReservation(ctx, userID, reservationAt("1", sessionStart)))
	}

	order, err := storage.GetReservationsForSession(ctx, "1", sessionStart)
	require.NoError(t, err)
	assert.Equal(t, []string{"u3", "u1", "u2"}, order)
}

func TestStorage_DuplicateAddIsNoop(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()
	reservation := reservationAt("1", sessionStart)

	require.NoError(t, storage.AddReservation(ctx, "u1", reservation))
	require.NoError(t, storage.AddReservation(ctx, "u1", reservation))

	order, err := storage.GetReservationsForSession(ctx, "1", sessionStart)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, order)

	reservations, err := storage.GetReservationsFor(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, reservations, 1)
}

func TestStorage_TimezonesShareSlot(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()
	moscow := time.FixedZone("MSK", 3*60*60)

	// Один и тот же момент времени, записанный в разных зонах
	require.NoError(t, storage.AddReservation(ctx, "u1", reservationAt("1", sessionStart)))
	require.NoError(t, storage.AddReservation(ctx, "u2", reservationAt("1", sessionStart.In(moscow))))

	order, err := storage.GetReservationsForSession(ctx, "1", sessionStart.In(moscow))
	require.NoError(t, err)
	assert.Equal(t, []string{"u1", "u2"}, order)
}

func TestStorage_RemoveReservation(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()
	reservation := reservationAt("1", sessionStart)

	require.NoError(t, storage.AddReservation(ctx, "u1", reservation))
	require.NoError(t, storage.AddReservation(ctx, "u2", reservation))
	require.NoError(t, storage.RemoveReservation(ctx, "u1", reservation))

	order, err := storage.GetReservationsForSession(ctx, "1", sessionStart)
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, order)

	reservations, err := storage.GetReservationsFor(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, reservations)

	// Повторное удаление — no-op
	require.NoError(t, storage.RemoveReservation(ctx, "u1", reservation))
}

func TestStorage_RemoveAllReservations(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	require.NoError(t, storage.AddReservation(ctx, "u1", reservationAt("1", sessionStart)))
	require.NoError(t, storage.AddReservation(ctx, "u1", reservationAt("2", sessionStart.Add(time.Hour))))
	require.NoError(t, storage.AddReservation(ctx, "u2", reservationAt("1", sessionStart)))

	require.NoError(t, storage.RemoveAllReservations(ctx, "u1"))

	reservations, err := storage.GetReservationsFor(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, reservations)

	// Бронирования других пользователей не затронуты
	order, err := storage.GetReservationsForSession(ctx, "1", sessionStart)
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, order)

	// Полностью опустевший слот исчезает из сводки
	order, err = storage.GetReservationsForSession(ctx, "2", sessionStart.Add(time.Hour))
	require.NoError(t, err)
	assert.Empty(t, order)
}

func TestStorage_GetAllReservationsBetween(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	early := sessionStart
	late := sessionStart.Add(48 * time.Hour)
	require.NoError(t, storage.AddReservation(ctx, "u1", reservationAt("1", early)))
	require.NoError(t, storage.AddReservation(ctx, "u2", reservationAt("1", early)))
	require.NoError(t, storage.AddReservation(ctx, "u1", reservationAt("2", late)))

	// Интервал закрытый с обеих сторон
	slots, err := storage.GetAllReservationsBetween(ctx, early, 48*time.Hour)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.True(t, slots[0].StartTime.Before(slots[1].StartTime))
	assert.Equal(t, []string{"u1", "u2"}, slots[0].TeamReservations["1"])
	assert.Equal(t, []string{"u1"}, slots[1].TeamReservations["2"])

	// Узкое окно отсекает поздний слот
	slots, err = storage.GetAllReservationsBetween(ctx, early, time.Hour)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.True(t, slots[0].StartTime.Equal(early))
}

func TestStorage_ReturnedSlicesAreCopies(t *testing.T) {
	ctx := context.Background()
	storage := NewStorage()

	require.NoError(t, storage.AddReservation(ctx, "u1", reservationAt("1", sessionStart)))

	order, err := storage.GetReservationsForSession(ctx, "1", sessionStart)
	require.NoError(t, err)
	order[0] = "tampered"

	fresh, err := storage.GetReservationsForSession(ctx, "1", sessionStart)
	require.NoError(t, err)
	assert.Equal(t, []string{"u1"}, fresh)
}
