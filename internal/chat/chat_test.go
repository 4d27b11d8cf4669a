package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.LevelOff, nil)
}

type echoResponder struct {
	history []domain.Turn
	release chan struct{}
	started chan struct{}
}

func (e *echoResponder) AskWithHistory(ctx context.Context, message string, history []domain.Turn) string {
	e.history = history
	if e.started != nil {
		close(e.started)
	}
	if e.release != nil {
		<-e.release
	}
	return "resposta: " + message
}

func TestTranscriptStartsWithGreeting(t *testing.T) {
	tr := NewTranscript(&echoResponder{}, testLogger())
	turns := tr.Turns()
	if len(turns) != 1 || turns[0].Role != domain.RoleAssistant || turns[0].Content != Greeting {
		t.Fatalf("unexpected initial transcript %+v", turns)
	}
}

func TestTranscriptSubmit(t *testing.T) {
	r := &echoResponder{}
	tr := NewTranscript(r, testLogger())

	reply, err := tr.Submit(context.Background(), "Receita de Jollof Rice")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if reply != "resposta: Receita de Jollof Rice" {
		t.Fatalf("unexpected reply %q", reply)
	}

	// History excludes the message being sent.
	if len(r.history) != 1 || r.history[0].Content != Greeting {
		t.Fatalf("unexpected history %+v", r.history)
	}

	turns := tr.Turns()
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	if turns[1].Role != domain.RoleUser || turns[2].Role != domain.RoleAssistant {
		t.Fatalf("unexpected roles %+v", turns)
	}
	if tr.Pending() {
		t.Fatal("should not be pending after reply")
	}
}

func TestTranscriptIgnoresBlank(t *testing.T) {
	tr := NewTranscript(&echoResponder{}, testLogger())
	for _, msg := range []string{"", "   ", "\n\t"} {
		if _, err := tr.Submit(context.Background(), msg); !errors.Is(err, domain.ErrEmptyMessage) {
			t.Fatalf("Submit(%q): expected ErrEmptyMessage, got %v", msg, err)
		}
	}
	if len(tr.Turns()) != 1 {
		t.Fatal("blank input changed the transcript")
	}
}

func TestTranscriptRejectsWhilePending(t *testing.T) {
	r := &echoResponder{release: make(chan struct{}), started: make(chan struct{})}
	tr := NewTranscript(r, testLogger())

	done := make(chan error, 1)
	go func() {
		_, err := tr.Submit(context.Background(), "primeira")
		done <- err
	}()
	<-r.started

	if !tr.Pending() {
		t.Fatal("expected pending while the reply is outstanding")
	}
	if _, err := tr.Submit(context.Background(), "segunda"); !errors.Is(err, domain.ErrBusy) {
		t.Fatalf("expected ErrBusy, got %v", err)
	}

	close(r.release)
	if err := <-done; err != nil {
		t.Fatalf("first submit: %v", err)
	}
	if got := len(tr.Turns()); got != 3 {
		t.Fatalf("expected 3 turns, got %d", got)
	}
}

func TestTurnsIsACopy(t *testing.T) {
	tr := NewTranscript(&echoResponder{}, testLogger())
	turns := tr.Turns()
	turns[0].Content = "mutated"
	if tr.Turns()[0].Content != Greeting {
		t.Fatal("Turns exposed internal state")
	}
}

func TestHubPerVisitor(t *testing.T) {
	h := NewHub(&echoResponder{}, testLogger())
	a := h.For("a")
	if h.For("a") != a {
		t.Fatal("same visitor got a different transcript")
	}
	if h.For("b") == a {
		t.Fatal("different visitors share a transcript")
	}
	a.Submit(context.Background(), "olá")
	if len(h.For("b").Turns()) != 1 {
		t.Fatal("visitor b saw visitor a's messages")
	}
	if h.Len() != 2 {
		t.Fatalf("expected 2 transcripts, got %d", h.Len())
	}
}
