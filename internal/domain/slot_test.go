package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ConsultService/pkg/types"
)

func TestSlotGrid(t *testing.T) {
	grid := SlotGrid()

	require.Len(t, grid, SlotGridSize)
	assert.Equal(t, types.TimeString("08:00"), grid[0])
	assert.Equal(t, types.TimeString("17:00"), grid[len(grid)-1])

	// строго возрастающий порядок с шагом 30 минут
	for i := 1; i < len(grid); i++ {
		assert.True(t, grid[i-1].IsBefore(grid[i]),
			"grid[%d]=%s must be before grid[%d]=%s", i-1, grid[i-1], i, grid[i])

		next, err := grid[i-1].AddMinutes(SlotDurationMinutes)
		require.NoError(t, err)
		assert.Equal(t, next, grid[i])
	}
}

func TestIsOnSlotGrid(t *testing.T) {
	assert.True(t, IsOnSlotGrid(types.TimeString("08:00")))
	assert.True(t, IsOnSlotGrid(types.TimeString("12:30")))
	assert.True(t, IsOnSlotGrid(types.TimeString("17:00")))

	assert.False(t, IsOnSlotGrid(types.TimeString("07:30")), "before opening")
	assert.False(t, IsOnSlotGrid(types.TimeString("17:30")), "after closing")
	assert.False(t, IsOnSlotGrid(types.TimeString("10:15")), "off the half-hour step")
}
