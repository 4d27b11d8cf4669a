package display

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hammamikhairi/cozinhamestre/internal/chat"
	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
)

type cannedResponder struct {
	reply string
	asked []string
}

func (r *cannedResponder) AskWithHistory(ctx context.Context, message string, history []domain.Turn) string {
	r.asked = append(r.asked, message)
	return r.reply
}

func testLogger() *logger.Logger { return logger.New(logger.LevelOff, nil) }

func TestParseCommand(t *testing.T) {
	tests := []struct {
		in      string
		kind    commandKind
		message string
	}{
		{"", cmdNone, ""},
		{"   ", cmdNone, ""},
		{"Como fazer funge?", cmdSend, "Como fazer funge?"},
		{"/sair", cmdQuit, ""},
		{"/Q", cmdQuit, ""},
		{"/ajuda", cmdHelp, ""},
		{"/1", cmdSend, chat.QuickPrompts[0].Prompt},
		{"/6", cmdSend, chat.QuickPrompts[5].Prompt},
		{"/7", cmdUnknown, ""},
		{"/0", cmdUnknown, ""},
		{"/receita", cmdUnknown, ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := parseCommand(tt.in)
			if got.kind != tt.kind || got.message != tt.message {
				t.Fatalf("parseCommand(%q) = %+v, want kind %d message %q", tt.in, got, tt.kind, tt.message)
			}
		})
	}
}

func TestRenderMarkupStripsBoldMarkers(t *testing.T) {
	out := renderMarkup("Use **canela** em pau.\nBom apetite!")
	if strings.Contains(out, "**") {
		t.Fatalf("bold markers left in %q", out)
	}
	lines := strings.Split(out, "\n")
	if len(lines) != 2 || !strings.HasPrefix(lines[0], "  ") || !strings.Contains(lines[0], "canela") {
		t.Fatalf("unexpected layout %q", out)
	}
}

func TestRenderBannerIncludesTagline(t *testing.T) {
	for _, w := range []int{10, 200} {
		if out := renderBanner(w); !strings.Contains(out, "Chef Global") {
			t.Fatalf("width %d: tagline missing", w)
		}
	}
}

// run executes cmd and any batched commands, returning every message
// produced.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, run(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func enter(t *testing.T, m model, line string) (model, tea.Cmd) {
	t.Helper()
	m.input.SetValue(line)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return next.(model), cmd
}

func TestModelSubmitsAndReceivesReply(t *testing.T) {
	r := &cannedResponder{reply: "Demolhe o feijão de véspera."}
	tr := chat.NewTranscript(r, testLogger())
	m := newModel(context.Background(), tr, testLogger())

	m, cmd := enter(t, m, "/1")
	if !m.pending {
		t.Fatal("model not pending after submit")
	}
	if m.input.Value() != "" {
		t.Fatal("input not cleared")
	}

	var reply *replyMsg
	for _, msg := range run(cmd) {
		if rm, ok := msg.(replyMsg); ok {
			reply = &rm
		}
	}
	if reply == nil || reply.reply != r.reply || reply.err != nil {
		t.Fatalf("unexpected reply %+v", reply)
	}
	if len(r.asked) != 1 || r.asked[0] != chat.QuickPrompts[0].Prompt {
		t.Fatalf("responder asked %v", r.asked)
	}

	next, _ := m.Update(*reply)
	if next.(model).pending {
		t.Fatal("still pending after reply")
	}
	if got := len(tr.Turns()); got != 3 {
		t.Fatalf("expected 3 turns, got %d", got)
	}
}

func TestModelIgnoresSendWhilePending(t *testing.T) {
	r := &cannedResponder{reply: "ok"}
	m := newModel(context.Background(), chat.NewTranscript(r, testLogger()), testLogger())
	m.pending = true

	m, cmd := enter(t, m, "outra pergunta")
	for _, msg := range run(cmd) {
		if _, ok := msg.(replyMsg); ok {
			t.Fatal("second message submitted while pending")
		}
	}
	if len(r.asked) != 0 {
		t.Fatalf("responder called: %v", r.asked)
	}
	if !m.pending {
		t.Fatal("pending flag cleared")
	}
}

func TestModelQuitCommand(t *testing.T) {
	m := newModel(context.Background(), chat.NewTranscript(&cannedResponder{}, testLogger()), testLogger())
	_, cmd := enter(t, m, "/sair")
	msgs := run(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %v", msgs)
	}
	if _, ok := msgs[0].(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", msgs[0])
	}
}

func TestViewShowsThinking(t *testing.T) {
	m := newModel(context.Background(), chat.NewTranscript(&cannedResponder{}, testLogger()), testLogger())
	if strings.Contains(m.View(), Thinking) {
		t.Fatal("idle view shows the thinking line")
	}
	m.pending = true
	if !strings.Contains(m.View(), Thinking) {
		t.Fatal("pending view misses the thinking line")
	}
}

func TestNotifierWritesLines(t *testing.T) {
	var buf strings.Builder
	n := NewNotifier(testLogger(), &buf)
	if err := n.Notify(context.Background(), "Catálogo exportado"); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if err := n.NotifyUrgent(context.Background(), "falhou"); err != nil {
		t.Fatalf("notify urgent: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 || !strings.Contains(lines[0], "Catálogo exportado") || !strings.Contains(lines[1], "falhou") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}
