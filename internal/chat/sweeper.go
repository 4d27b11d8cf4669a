package chat

import (
	"context"
	"sync"
	"time"

	"github.com/hammamikhairi/cozinhamestre/internal/logger"
)

// SweeperOption configures the sweeper.
type SweeperOption func(*Sweeper)

// WithSweepInterval sets how often the hub is swept.
func WithSweepInterval(d time.Duration) SweeperOption {
	return func(s *Sweeper) {
		s.interval = d
	}
}

// WithMaxIdle sets how long a transcript may sit untouched before it is
// dropped.
func WithMaxIdle(d time.Duration) SweeperOption {
	return func(s *Sweeper) {
		s.maxIdle = d
	}
}

// Sweeper drops idle transcripts from a hub in the background so memory
// stays bounded by recent visitors.
type Sweeper struct {
	hub      *Hub
	log      *logger.Logger
	interval time.Duration
	maxIdle  time.Duration

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewSweeper creates a sweeper for hub. Defaults: sweep every 10 minutes,
// drop after 2 hours idle.
func NewSweeper(hub *Hub, log *logger.Logger, opts ...SweeperOption) *Sweeper {
	s := &Sweeper{
		hub:      hub,
		log:      log,
		interval: 10 * time.Minute,
		maxIdle:  2 * time.Hour,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins the background loop. Non-blocking.
func (s *Sweeper) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		s.log.Warn("chat sweeper already running")
		return
	}

	childCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running = true

	go s.loop(childCtx, s.done)

	s.log.Info("chat sweeper started (interval=%s, max idle=%s)", s.interval, s.maxIdle)
}

// Stop ends the loop and waits for it to exit.
func (s *Sweeper) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.cancel()
	s.running = false
	done := s.done
	s.mu.Unlock()

	<-done
	s.log.Info("chat sweeper stopped")
}

func (s *Sweeper) loop(ctx context.Context, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.sweep(now)
		}
	}
}

func (s *Sweeper) sweep(now time.Time) {
	if n := s.hub.Sweep(s.maxIdle, now); n > 0 {
		s.log.Debug("chat sweeper: dropped %d idle transcripts (%d open)", n, s.hub.Len())
	}
}
