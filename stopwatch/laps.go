package stopwatch

// Lap is a checkpoint recorded while the stopwatch runs.
type Lap struct {
	ID           int
	SplitMs      int64
	CumulativeMs int64
}

// RankLaps finds the fastest and slowest laps in one pass. Neither is defined
// for fewer than two laps. On ties the lap met first in list order wins.
func RankLaps(laps []Lap) (fastest, slowest Lap, ok bool) {
	if len(laps) < 2 {
		return Lap{}, Lap{}, false
	}
	fastest, slowest = laps[0], laps[0]
	for _, l := range laps[1:] {
		if l.SplitMs < fastest.SplitMs {
			fastest = l
		}
		if l.SplitMs > slowest.SplitMs {
			slowest = l
		}
	}
	return fastest, slowest, true
}

// FastestLap returns the lap with the smallest split.
func FastestLap(laps []Lap) (Lap, bool) {
	fastest, _, ok := RankLaps(laps)
	return fastest, ok
}

// SlowestLap returns the lap with the largest split.
func SlowestLap(laps []Lap) (Lap, bool) {
	_, slowest, ok := RankLaps(laps)
	return slowest, ok
}
