// Package notify surfaces user-facing success and error notifications
// for journal operations.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"tradelog/internal/config"
)

// Notifier defines the interface for sending notifications.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
	Success(ctx context.Context, message string) error
	Failure(ctx context.Context, operation, message string) error
}

// Channel defines the interface for a notification channel.
type Channel interface {
	Name() string
	Send(ctx context.Context, n Notification) error
	IsEnabled() bool
}

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationInfo    NotificationType = "info"
)

// Notification represents a notification message.
type Notification struct {
	Type      NotificationType
	Title     string
	Message   string
	Timestamp time.Time
}

// MultiNotifier sends notifications to multiple channels.
type MultiNotifier struct {
	channels []Channel
	mu       sync.RWMutex
}

// NewMultiNotifier creates a MultiNotifier from configuration.
func NewMultiNotifier(cfg *config.NotificationConfig) *MultiNotifier {
	mn := &MultiNotifier{
		channels: make([]Channel, 0),
	}

	if cfg.Terminal.Enabled {
		mn.channels = append(mn.channels, NewTerminalNotifier(cfg.Terminal))
	}
	if cfg.Webhook.Enabled {
		mn.channels = append(mn.channels, NewWebhookNotifier(cfg.Webhook))
	}

	return mn
}

// AddChannel adds a notification channel.
func (mn *MultiNotifier) AddChannel(ch Channel) {
	mn.mu.Lock()
	defer mn.mu.Unlock()
	mn.channels = append(mn.channels, ch)
}

// Send sends a notification to all enabled channels.
func (mn *MultiNotifier) Send(ctx context.Context, n Notification) error {
	if n.Timestamp.IsZero() {
		n.Timestamp = time.Now()
	}

	mn.mu.RLock()
	channels := mn.channels
	mn.mu.RUnlock()

	var errs []string
	for _, ch := range channels {
		if ch.IsEnabled() {
			if err := ch.Send(ctx, n); err != nil {
				errs = append(errs, fmt.Sprintf("%s: %v", ch.Name(), err))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("notification errors: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Success sends a success notification.
func (mn *MultiNotifier) Success(ctx context.Context, message string) error {
	return mn.Send(ctx, Notification{
		Type:    NotificationSuccess,
		Title:   "Success",
		Message: message,
	})
}

// Failure sends an error notification for a failed operation.
func (mn *MultiNotifier) Failure(ctx context.Context, operation, message string) error {
	return mn.Send(ctx, Notification{
		Type:    NotificationError,
		Title:   fmt.Sprintf("Failed to %s", operation),
		Message: message,
	})
}

// WebhookNotifier sends notifications via HTTP webhook.
type WebhookNotifier struct {
	url     string
	enabled bool
	client  *http.Client
}

// NewWebhookNotifier creates a new WebhookNotifier.
func NewWebhookNotifier(cfg config.WebhookConfig) *WebhookNotifier {
	return &WebhookNotifier{
		url:     cfg.URL,
		enabled: cfg.Enabled && cfg.URL != "",
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name returns the name of the notifier.
func (w *WebhookNotifier) Name() string {
	return "webhook"
}

// IsEnabled returns whether the notifier is enabled.
func (w *WebhookNotifier) IsEnabled() bool {
	return w.enabled
}

// Send sends a notification via webhook.
func (w *WebhookNotifier) Send(ctx context.Context, n Notification) error {
	if !w.enabled {
		return nil
	}

	payload := map[string]interface{}{
		"type":      n.Type,
		"title":     n.Title,
		"message":   n.Message,
		"timestamp": n.Timestamp.Format(time.RFC3339),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating webhook request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "TradeLog/1.0")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("sending webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	return nil
}

// NoOpNotifier is a notifier that does nothing (for testing or disabled
// notifications).
type NoOpNotifier struct{}

// NewNoOpNotifier creates a new NoOpNotifier.
func NewNoOpNotifier() *NoOpNotifier {
	return &NoOpNotifier{}
}

// Send does nothing.
func (n *NoOpNotifier) Send(ctx context.Context, notif Notification) error {
	return nil
}

// Success does nothing.
func (n *NoOpNotifier) Success(ctx context.Context, message string) error {
	return nil
}

// Failure does nothing.
func (n *NoOpNotifier) Failure(ctx context.Context, operation, message string) error {
	return nil
}
