// Package display is the terminal front end of the chef chat, built on
// Bubble Tea.
//
// Replies and echoed input are printed above the prompt through
// tea.Println so the scrollback stays clean while a spinner marks the
// pending reply.
package display

import (
	"context"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/cozinhamestre/internal/chat"
	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
)

// ── Styles ───────────────────────────────────────────────────────

var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8a29e"))

	// BannerStyle colours the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fdba74"))

	chefStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fef3c7"))

	chefBoldStyle = chefStyle.Bold(true)

	nameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fb923c")).
			Bold(true)

	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#78716c"))

	urgentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f87171"))

	userEchoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6d3d1"))
)

const prompt = "chef> "

// Thinking is shown next to the spinner while a reply is pending.
const Thinking = "a pensar…"

// ── Chat ─────────────────────────────────────────────────────────

// Chat runs one terminal conversation over a transcript.
type Chat struct {
	transcript *chat.Transcript
	log        *logger.Logger
	in         io.Reader
	out        io.Writer
}

// Option configures a Chat.
type Option func(*Chat)

// WithIO replaces the terminal with in and out.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(c *Chat) {
		c.in = in
		c.out = out
	}
}

// New creates a terminal chat over t.
func New(t *chat.Transcript, log *logger.Logger, opts ...Option) *Chat {
	c := &Chat{transcript: t, log: log}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Run prints the banner and the conversation so far, then reads messages
// until the user quits or ctx is cancelled.
func (c *Chat) Run(ctx context.Context) error {
	var popts []tea.ProgramOption
	popts = append(popts, tea.WithContext(ctx))
	if c.in != nil {
		popts = append(popts, tea.WithInput(c.in))
	}
	if c.out != nil {
		popts = append(popts, tea.WithOutput(c.out))
	}

	p := tea.NewProgram(newModel(ctx, c.transcript, c.log), popts...)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

// ── Bubble Tea model ─────────────────────────────────────────────

type model struct {
	ctx        context.Context
	transcript *chat.Transcript
	log        *logger.Logger
	input      textinput.Model
	spin       spinner.Model
	pending    bool
}

// replyMsg carries a finished reply back into the event loop.
type replyMsg struct {
	reply string
	err   error
}

func newModel(ctx context.Context, t *chat.Transcript, log *logger.Logger) model {
	ti := textinput.New()
	// Plain-text prompt: styled prompts break textinput's width math.
	ti.Prompt = prompt
	ti.PromptStyle = promptStyle
	ti.TextStyle = userEchoStyle
	ti.Placeholder = "Pergunte sobre qualquer prato... (/ajuda)"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(secondaryStyle))

	return model{ctx: ctx, transcript: t, log: log, input: ti, spin: sp, pending: t.Pending()}
}

func (m model) Init() tea.Cmd {
	lines := []any{RenderBanner()}
	for _, turn := range m.transcript.Turns() {
		lines = append(lines, renderTurn(turn))
	}
	return tea.Batch(textinput.Blink, tea.Println(lines...))
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			v := m.input.Value()
			m.input.Reset()
			return m.handleLine(v)
		}

	case tea.WindowSizeMsg:
		if msg.Width > len(prompt) {
			m.input.Width = msg.Width - len(prompt)
		}
		return m, nil

	case replyMsg:
		m.pending = false
		if msg.err != nil {
			return m, tea.Println(urgentStyle.Render("  " + msg.err.Error()))
		}
		return m, tea.Println(renderTurn(domain.Turn{Role: domain.RoleAssistant, Content: msg.reply}))

	case spinner.TickMsg:
		if !m.pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// handleLine runs a slash command or sends the line to the chef.
func (m model) handleLine(line string) (tea.Model, tea.Cmd) {
	cmd := parseCommand(line)
	switch cmd.kind {
	case cmdNone:
		return m, nil
	case cmdQuit:
		return m, tea.Quit
	case cmdHelp:
		return m, tea.Println(helpText())
	case cmdUnknown:
		return m, tea.Println(urgentStyle.Render("  comando desconhecido: " + line))
	}

	if m.pending {
		return m, tea.Println(secondaryStyle.Render("  O chef ainda está a responder."))
	}
	m.pending = true
	return m, tea.Batch(
		tea.Println(renderTurn(domain.Turn{Role: domain.RoleUser, Content: cmd.message})),
		m.ask(cmd.message),
		m.spin.Tick,
	)
}

func (m model) ask(message string) tea.Cmd {
	ctx, t, log := m.ctx, m.transcript, m.log
	return func() tea.Msg {
		reply, err := t.Submit(ctx, message)
		if err != nil {
			log.Warn("display: submit: %v", err)
		}
		return replyMsg{reply: reply, err: err}
	}
}

func (m model) View() string {
	var b strings.Builder
	if m.pending {
		b.WriteString(m.spin.View() + secondaryStyle.Render(" "+Thinking))
	}
	b.WriteByte('\n')
	b.WriteString(m.input.View())
	return b.String()
}

// ── Commands ─────────────────────────────────────────────────────

type commandKind int

const (
	cmdNone commandKind = iota
	cmdSend
	cmdQuit
	cmdHelp
	cmdUnknown
)

type command struct {
	kind    commandKind
	message string
}

// parseCommand reads one input line. "/N" sends the Nth quick prompt;
// anything not starting with a slash is sent as typed.
func parseCommand(line string) command {
	s := strings.TrimSpace(line)
	if s == "" {
		return command{kind: cmdNone}
	}
	if !strings.HasPrefix(s, "/") {
		return command{kind: cmdSend, message: line}
	}

	switch name := strings.ToLower(s[1:]); name {
	case "sair", "q":
		return command{kind: cmdQuit}
	case "ajuda", "sugestoes", "sugestões", "?":
		return command{kind: cmdHelp}
	default:
		n, err := strconv.Atoi(name)
		if err != nil || n < 1 || n > len(chat.QuickPrompts) {
			return command{kind: cmdUnknown}
		}
		return command{kind: cmdSend, message: chat.QuickPrompts[n-1].Prompt}
	}
}

func helpText() string {
	var b strings.Builder
	b.WriteString(secondaryStyle.Render("  Sugestões:"))
	for i, q := range chat.QuickPrompts {
		fmt.Fprintf(&b, "\n  %s %s", secondaryStyle.Render(fmt.Sprintf("/%d", i+1)), q.Label)
	}
	b.WriteString("\n" + secondaryStyle.Render("  /sair para terminar"))
	return b.String()
}

// ── Rendering ────────────────────────────────────────────────────

var boldPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

// renderTurn formats one transcript turn for the scrollback.
func renderTurn(t domain.Turn) string {
	if t.Role == domain.RoleUser {
		return promptStyle.Render("você") + secondaryStyle.Render("> ") + userEchoStyle.Render(t.Content)
	}
	return nameStyle.Render("Chef Global") + "\n" + renderMarkup(t.Content)
}

// renderMarkup indents a reply and styles its **bold** spans.
func renderMarkup(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		var b strings.Builder
		last := 0
		for _, loc := range boldPattern.FindAllStringSubmatchIndex(l, -1) {
			b.WriteString(chefStyle.Render(l[last:loc[0]]))
			b.WriteString(chefBoldStyle.Render(l[loc[2]:loc[3]]))
			last = loc[1]
		}
		b.WriteString(chefStyle.Render(l[last:]))
		lines[i] = "  " + b.String()
	}
	return strings.Join(lines, "\n")
}
