package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTeam_Limits(t *testing.T) {
	sized := Team{Limits: map[LimitKind]int{LimitSize: 3, LimitActiveBookings: 2}}
	open := Team{}

	size, ok := sized.SizeLimit()
	assert.True(t, ok)
	assert.Equal(t, 3, size)
	assert.False(t, sized.DrawsFromSharedPool())

	limit, ok := sized.ActiveBookingsLimit()
	assert.True(t, ok)
	assert.Equal(t, 2, limit)

	_, ok = open.SizeLimit()
	assert.False(t, ok)
	_, ok = open.ActiveBookingsLimit()
	assert.False(t, ok)
	assert.True(t, open.DrawsFromSharedPool())
}
