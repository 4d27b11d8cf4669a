package display

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
)

// Compile-time interface check.
var _ domain.Notifier = (*Notifier)(nil)

// Notifier prints short confirmations for command-line runs, the terminal
// counterpart of the site's toast.
type Notifier struct {
	log *logger.Logger
	out io.Writer
}

// NewNotifier creates a notifier writing to out. If out is nil, os.Stdout
// is used.
func NewNotifier(log *logger.Logger, out io.Writer) *Notifier {
	if out == nil {
		out = os.Stdout
	}
	return &Notifier{log: log, out: out}
}

// Notify prints a normal notification.
func (n *Notifier) Notify(ctx context.Context, message string) error {
	n.log.Debug("notify: %s", message)
	_, err := fmt.Fprintln(n.out, chefStyle.Render("✓ "+message))
	return err
}

// NotifyUrgent prints a failure in red.
func (n *Notifier) NotifyUrgent(ctx context.Context, message string) error {
	n.log.Debug("notify-urgent: %s", message)
	_, err := fmt.Fprintln(n.out, urgentStyle.Render("✗ "+message))
	return err
}
