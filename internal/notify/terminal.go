package notify

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"

	"tradelog/internal/config"
)

// Terminal color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
)

// TerminalNotifier prints notifications to the terminal.
type TerminalNotifier struct {
	writer  io.Writer
	enabled bool
	color   bool
	mu      sync.Mutex
}

// NewTerminalNotifier creates a new TerminalNotifier.
func NewTerminalNotifier(cfg config.TerminalConfig) *TerminalNotifier {
	return &TerminalNotifier{
		writer:  os.Stderr,
		enabled: cfg.Enabled,
		color:   cfg.Color && isTerminal(os.Stderr),
	}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

// Name returns the name of the notifier.
func (t *TerminalNotifier) Name() string {
	return "terminal"
}

// IsEnabled returns whether the notifier is enabled.
func (t *TerminalNotifier) IsEnabled() bool {
	return t.enabled
}

// Send prints the notification.
func (t *TerminalNotifier) Send(ctx context.Context, n Notification) error {
	if !t.enabled {
		return nil
	}

	marker, color := "*", ""
	switch n.Type {
	case NotificationSuccess:
		marker, color = "ok", colorGreen
	case NotificationError:
		marker, color = "error", colorRed
	case NotificationInfo:
		marker, color = "info", colorYellow
	}

	line := fmt.Sprintf("[%s] %s", marker, n.Message)
	if n.Type == NotificationError && n.Title != "" {
		line = fmt.Sprintf("[%s] %s: %s", marker, n.Title, n.Message)
	}
	if t.color && color != "" {
		line = color + line + colorReset
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := fmt.Fprintln(t.writer, line)
	return err
}
