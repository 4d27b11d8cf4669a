// Package chat holds the chat widget's conversation state: one transcript
// per visitor, a single pending reply at a time.
package chat

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
)

// Greeting is the assistant turn every transcript starts with.
const Greeting = "Olá! Sou o seu Chef Global. Sou especialista em culinária Africana e Portuguesa. Posso ensinar-lhe a fazer uma Cachupa rica, uma Moamba de Galinha autêntica, ou qualquer um dos mais de 50 pratos do meu repertório. O que vamos cozinhar?"

// QuickPrompt is a suggestion chip: a short label that fills the input
// with Prompt.
type QuickPrompt struct {
	Label  string
	Prompt string
}

// QuickPrompts are the suggestion chips shown under the chat.
var QuickPrompts = []QuickPrompt{
	{"🇨🇻 Cachupa", "Como fazer Cachupa Rica?"},
	{"🇦🇴 Moamba", "Receita de Moamba de Galinha"},
	{"🇲🇿 Matapa", "Como fazer Matapa com Caranguejo?"},
	{"🇬🇼 Mancarra", "Receita de Caldo de Mancarra"},
	{"🌍 Jollof", "Receita de Jollof Rice"},
	{"🇵🇹 Rancho", "Receita de Rancho à Portuguesa"},
}

// Responder produces the assistant's reply for a message given the prior
// turns. gpt.Assistant satisfies it.
type Responder interface {
	AskWithHistory(ctx context.Context, message string, history []domain.Turn) string
}

// Transcript is one visitor's conversation. Safe for concurrent use.
type Transcript struct {
	mu        sync.Mutex
	turns     []domain.Turn
	pending   bool
	touched   time.Time
	responder Responder
	log       *logger.Logger
}

// NewTranscript starts a conversation with the greeting.
func NewTranscript(responder Responder, log *logger.Logger) *Transcript {
	return &Transcript{
		turns:     []domain.Turn{{Role: domain.RoleAssistant, Content: Greeting}},
		touched:   time.Now(),
		responder: responder,
		log:       log,
	}
}

// Submit appends msg as a user turn, asks the responder with the turns
// that came before it, appends the reply, and returns it. Blank input
// returns ErrEmptyMessage and changes nothing. A submit while another reply
// is pending returns ErrBusy.
func (t *Transcript) Submit(ctx context.Context, msg string) (string, error) {
	if strings.TrimSpace(msg) == "" {
		return "", domain.ErrEmptyMessage
	}

	t.mu.Lock()
	if t.pending {
		t.mu.Unlock()
		return "", domain.ErrBusy
	}
	history := append([]domain.Turn(nil), t.turns...)
	t.turns = append(t.turns, domain.Turn{Role: domain.RoleUser, Content: msg})
	t.pending = true
	t.touched = time.Now()
	t.mu.Unlock()

	t.log.Debug("chat: submit (%d prior turns)", len(history))
	reply := t.responder.AskWithHistory(ctx, msg, history)

	t.mu.Lock()
	t.turns = append(t.turns, domain.Turn{Role: domain.RoleAssistant, Content: reply})
	t.pending = false
	t.touched = time.Now()
	t.mu.Unlock()

	return reply, nil
}

// Turns returns a copy of the conversation so far.
func (t *Transcript) Turns() []domain.Turn {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]domain.Turn(nil), t.turns...)
}

// Pending reports whether a reply is being awaited.
func (t *Transcript) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.pending
}

func (t *Transcript) touch() {
	t.mu.Lock()
	t.touched = time.Now()
	t.mu.Unlock()
}

// idle reports whether nothing has happened since before cutoff and no
// reply is on its way.
func (t *Transcript) idle(cutoff time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.pending && t.touched.Before(cutoff)
}
