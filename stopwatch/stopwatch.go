// Package stopwatch measures elapsed wall-clock time for a named task.
//
// A Stopwatch is a value: Stop returns a new, stopped Stopwatch carrying the
// elapsed milliseconds, and the running one is left as it was. Report writes
// the result through the logger.
package stopwatch

import (
	"time"

	"github.com/rs/xid"

	"github.com/katalvlaran/helloworld/internal/log"
)

// Stopwatch records when a named task started and, once stopped, how long it
// ran in milliseconds.
type Stopwatch struct {
	name    string
	start   time.Time
	elapsed float64
	stopped bool

	now    func() time.Time
	logger *log.Logger
}

// Option configures a Stopwatch.
type Option func(*Stopwatch)

// WithClock replaces time.Now; used by tests to get deterministic durations.
func WithClock(now func() time.Time) Option {
	return func(s *Stopwatch) {
		if now != nil {
			s.now = now
		}
	}
}

// WithLogger sets the logger used by Report.
func WithLogger(l *log.Logger) Option {
	return func(s *Stopwatch) {
		if l != nil {
			s.logger = l
		}
	}
}

// Start begins timing. An empty name is replaced with a generated unique id.
func Start(name string, opts ...Option) *Stopwatch {
	s := &Stopwatch{
		name:   name,
		now:    time.Now,
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.name == "" {
		s.name = xid.New().String()
	}
	s.start = s.now()

	return s
}

// Stop returns a stopped copy whose Elapsed is the time since Start.
// Stopping an already stopped Stopwatch returns it unchanged.
func (s *Stopwatch) Stop() *Stopwatch {
	if s.stopped {
		return s
	}
	cp := *s
	cp.elapsed = elapsedMillis(s.start, s.now())
	cp.stopped = true

	return &cp
}

// Name returns the task name.
func (s *Stopwatch) Name() string { return s.name }

// Elapsed returns the elapsed milliseconds; 0 until stopped.
func (s *Stopwatch) Elapsed() float64 { return s.elapsed }

// Stopped reports whether Stop produced this value.
func (s *Stopwatch) Stopped() bool { return s.stopped }

// Report logs "Stopwatch <name> elapsed <ms>".
func (s *Stopwatch) Report() {
	s.logger.Info("Stopwatch %s elapsed %.3f ms", s.name, s.elapsed)
}

// Time runs fn between Start and Stop and reports the result.
func Time(name string, fn func() error, opts ...Option) (*Stopwatch, error) {
	sw := Start(name, opts...)
	err := fn()
	sw = sw.Stop()
	sw.Report()

	return sw, err
}

func elapsedMillis(t1, t2 time.Time) float64 {
	return float64(t2.Sub(t1)) / float64(time.Millisecond)
}
