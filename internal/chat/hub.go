package chat

import (
	"sync"
	"time"

	"github.com/hammamikhairi/cozinhamestre/internal/logger"
)

// Hub hands out one transcript per visitor, created on first use. Nothing
// is persisted; a restart starts every visitor over, and Sweep drops
// transcripts nobody has looked at for a while.
type Hub struct {
	mu          sync.Mutex
	transcripts map[string]*Transcript
	responder   Responder
	log         *logger.Logger
}

// NewHub creates an empty hub whose transcripts all use responder.
func NewHub(responder Responder, log *logger.Logger) *Hub {
	return &Hub{
		transcripts: make(map[string]*Transcript),
		responder:   responder,
		log:         log,
	}
}

// For returns the visitor's transcript, creating it if needed. Either way
// the transcript counts as active.
func (h *Hub) For(visitor string) *Transcript {
	h.mu.Lock()
	defer h.mu.Unlock()

	t, ok := h.transcripts[visitor]
	if !ok {
		t = NewTranscript(h.responder, h.log)
		h.transcripts[visitor] = t
		h.log.Debug("chat: new transcript for %s (%d open)", visitor, len(h.transcripts))
		return t
	}
	t.touch()
	return t
}

// Len returns the number of transcripts held.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.transcripts)
}

// Sweep removes transcripts idle for longer than maxIdle as of now and
// returns how many were removed. Transcripts awaiting a reply are kept.
func (h *Hub) Sweep(maxIdle time.Duration, now time.Time) int {
	cutoff := now.Add(-maxIdle)

	h.mu.Lock()
	defer h.mu.Unlock()

	removed := 0
	for id, t := range h.transcripts {
		if t.idle(cutoff) {
			delete(h.transcripts, id)
			removed++
		}
	}
	return removed
}
