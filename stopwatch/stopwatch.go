// Package stopwatch contains the stopwatch domain logic: the run state
// machine, lap bookkeeping, lap ranking and elapsed-time formatting.
//
// Maintenance notes:
//   - Mutable fields are touched by the caller's goroutine (in the app, the
//     command loop) and by the sampler goroutine started by Start. Every
//     access goes through mu.
//   - Elapsed time is always recomputed from the reference instant captured
//     at Start, never accumulated tick by tick, so late or missed ticks do
//     not drift the display.
//   - Each run owns one sampler. Pause, Reset and Close bump the generation
//     before cancelling, so a tick that was already in flight sees a stale
//     generation and leaves the state alone. They also wait for the sampler
//     goroutine to exit before returning.
package stopwatch

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultTickInterval is the sampling cadence used when none is configured.
const DefaultTickInterval = 10 * time.Millisecond

// Display is the minimal interface the stopwatch expects from the UI side.
type Display interface {
	UpdateDisplay()
}

// Snapshot is a coherent copy of the stopwatch state for rendering. Laps are
// ordered newest first.
type Snapshot struct {
	Status    Status
	ElapsedMs int64
	Laps      []Lap
}

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithClock replaces the system clock, mostly for tests.
func WithClock(c Clock) Option {
	return func(s *Stopwatch) {
		s.clock = c
	}
}

// Stopwatch tracks elapsed running time and recorded laps.
type Stopwatch struct {
	clock    Clock
	interval time.Duration

	// mutable state - protect with mu
	mu            sync.RWMutex
	status        Status
	accumulated   time.Duration // elapsed before the current run
	reference     time.Time     // clock reading when the current run started
	elapsed       time.Duration // last sampled value
	lapBaselineMs int64         // cumulative ms of the newest lap
	laps          []Lap
	ui            Display

	// sampler of the current run
	generation uint64
	cancel     context.CancelFunc
	done       chan struct{}
	samplers   atomic.Int32
}

// New creates an idle stopwatch sampling at the given interval.
func New(interval time.Duration, opts ...Option) *Stopwatch {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	s := &Stopwatch{
		clock:    SystemClock,
		interval: interval,
		status:   StatusIdle,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetUI attaches the display refreshed after every change and tick.
func (s *Stopwatch) SetUI(d Display) {
	s.mu.Lock()
	s.ui = d
	s.mu.Unlock()
}

// Start begins or continues a run. It is valid from Idle and Paused and
// reports false when the stopwatch is already running.
func (s *Stopwatch) Start() bool {
	return s.start(StatusIdle, StatusPaused)
}

// Resume continues a paused run. It reports false unless the stopwatch is
// paused.
func (s *Stopwatch) Resume() bool {
	return s.start(StatusPaused)
}

func (s *Stopwatch) start(from ...Status) bool {
	s.mu.Lock()
	if !statusIn(s.status, from) {
		s.mu.Unlock()
		return false
	}

	s.status = StatusRunning
	s.accumulated = s.elapsed
	s.reference = s.clock.Now()

	s.generation++
	gen := s.generation
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s.cancel, s.done = cancel, done
	s.mu.Unlock()

	s.samplers.Add(1)
	go s.run(ctx, gen, done)

	s.notify()
	return true
}

// Pause stops a running stopwatch and freezes its elapsed time.
func (s *Stopwatch) Pause() bool {
	s.mu.Lock()
	if s.status != StatusRunning {
		s.mu.Unlock()
		return false
	}
	s.sampleLocked()
	s.status = StatusPaused
	cancel, done := s.detachLocked()
	s.mu.Unlock()

	stopSampler(cancel, done)
	s.notify()
	return true
}

// Reset clears elapsed time and laps. A running stopwatch must be paused
// first: Reset while running is ignored and reports false.
func (s *Stopwatch) Reset() bool {
	s.mu.Lock()
	if s.status == StatusRunning {
		s.mu.Unlock()
		return false
	}
	cancel, done := s.detachLocked()
	s.status = StatusIdle
	s.accumulated = 0
	s.elapsed = 0
	s.lapBaselineMs = 0
	s.laps = nil
	s.mu.Unlock()

	stopSampler(cancel, done)
	s.notify()
	return true
}

// RecordLap prepends a lap taken at the current elapsed time. It reports false
// unless the stopwatch is running.
func (s *Stopwatch) RecordLap() (Lap, bool) {
	s.mu.Lock()
	if s.status != StatusRunning {
		s.mu.Unlock()
		return Lap{}, false
	}
	s.sampleLocked()
	// Splits are taken between whole-millisecond cumulatives so they always
	// add up to the newest cumulative.
	cumulative := s.elapsed.Milliseconds()
	lap := Lap{
		ID:           len(s.laps) + 1,
		SplitMs:      cumulative - s.lapBaselineMs,
		CumulativeMs: cumulative,
	}
	s.laps = append([]Lap{lap}, s.laps...)
	s.lapBaselineMs = cumulative
	s.mu.Unlock()

	s.notify()
	return lap, true
}

// Close stops the sampler of a running stopwatch and waits for it to exit,
// leaving the stopwatch paused. No display update happens after Close returns.
func (s *Stopwatch) Close() {
	s.mu.Lock()
	if s.status == StatusRunning {
		s.sampleLocked()
		s.status = StatusPaused
	}
	cancel, done := s.detachLocked()
	s.ui = nil
	s.mu.Unlock()

	stopSampler(cancel, done)
}

// Snapshot returns a consistent copy of the state for UI use.
func (s *Stopwatch) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := Snapshot{
		Status:    s.status,
		ElapsedMs: s.elapsed.Milliseconds(),
	}
	if len(s.laps) > 0 {
		snap.Laps = make([]Lap, len(s.laps))
		copy(snap.Laps, s.laps)
	}
	return snap
}

// Status returns the current run status.
func (s *Stopwatch) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Elapsed returns the last sampled elapsed time.
func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.elapsed
}

func (s *Stopwatch) run(ctx context.Context, gen uint64, done chan struct{}) {
	defer close(done)
	defer s.samplers.Add(-1)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.tick(gen) {
				return
			}
			s.notify()
		}
	}
}

func (s *Stopwatch) tick(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation || s.status != StatusRunning {
		return false
	}
	s.sampleLocked()
	return true
}

// sampleLocked recomputes elapsed from the reference instant. A clock that
// steps backwards never moves elapsed back.
func (s *Stopwatch) sampleLocked() {
	now := s.accumulated + s.clock.Now().Sub(s.reference)
	if now > s.elapsed {
		s.elapsed = now
	}
}

func (s *Stopwatch) detachLocked() (context.CancelFunc, chan struct{}) {
	s.generation++
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	return cancel, done
}

func stopSampler(cancel context.CancelFunc, done chan struct{}) {
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Stopwatch) notify() {
	s.mu.RLock()
	ui := s.ui
	s.mu.RUnlock()
	if ui != nil {
		ui.UpdateDisplay()
	}
}

func (s *Stopwatch) activeSamplers() int {
	return int(s.samplers.Load())
}

func statusIn(st Status, set []Status) bool {
	for _, candidate := range set {
		if st == candidate {
			return true
		}
	}
	return false
}
