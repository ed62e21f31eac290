package stopwatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankLapsNeedsTwoLaps(t *testing.T) {
	_, ok := FastestLap(nil)
	assert.False(t, ok)

	one := []Lap{{ID: 1, SplitMs: 300, CumulativeMs: 300}}
	_, ok = FastestLap(one)
	assert.False(t, ok)
	_, ok = SlowestLap(one)
	assert.False(t, ok)
}

func TestRankLaps(t *testing.T) {
	laps := []Lap{
		{ID: 3, SplitMs: 500, CumulativeMs: 1500},
		{ID: 2, SplitMs: 200, CumulativeMs: 1000},
		{ID: 1, SplitMs: 800, CumulativeMs: 800},
	}

	fastest, ok := FastestLap(laps)
	assert.True(t, ok)
	assert.Equal(t, int64(200), fastest.SplitMs)
	assert.Equal(t, 2, fastest.ID)

	slowest, ok := SlowestLap(laps)
	assert.True(t, ok)
	assert.Equal(t, int64(800), slowest.SplitMs)
	assert.Equal(t, 1, slowest.ID)
}

func TestRankLapsTiesKeepFirstInListOrder(t *testing.T) {
	laps := []Lap{
		{ID: 4, SplitMs: 100},
		{ID: 3, SplitMs: 900},
		{ID: 2, SplitMs: 100},
		{ID: 1, SplitMs: 900},
	}

	fastest, slowest, ok := RankLaps(laps)
	assert.True(t, ok)
	assert.Equal(t, 4, fastest.ID)
	assert.Equal(t, 3, slowest.ID)
}

func TestRankLapsAllEqual(t *testing.T) {
	laps := []Lap{{ID: 2, SplitMs: 400}, {ID: 1, SplitMs: 400}}

	fastest, slowest, ok := RankLaps(laps)
	assert.True(t, ok)
	assert.Equal(t, 2, fastest.ID)
	assert.Equal(t, 2, slowest.ID)
}
