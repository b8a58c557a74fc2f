package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tradelog/internal/config"
)

func TestWebhookNotifierSend(t *testing.T) {
	var got map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s", r.Method)
		}
		if ua := r.Header.Get("User-Agent"); ua != "TradeLog/1.0" {
			t.Errorf("User-Agent = %s", ua)
		}
		json.NewDecoder(r.Body).Decode(&got)
	}))
	t.Cleanup(srv.Close)

	n := NewWebhookNotifier(config.WebhookConfig{Enabled: true, URL: srv.URL})
	err := n.Send(context.Background(), Notification{
		Type:    NotificationSuccess,
		Title:   "Success",
		Message: "Trade created successfully",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if got["type"] != "success" || got["message"] != "Trade created successfully" {
		t.Errorf("payload = %v", got)
	}
}

func TestWebhookNotifierErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	n := NewWebhookNotifier(config.WebhookConfig{Enabled: true, URL: srv.URL})
	err := n.Send(context.Background(), Notification{Type: NotificationError, Message: "x"})
	if err == nil {
		t.Error("expected error for 5xx webhook response")
	}
}

func TestWebhookNotifierDisabledWithoutURL(t *testing.T) {
	n := NewWebhookNotifier(config.WebhookConfig{Enabled: true})
	if n.IsEnabled() {
		t.Error("webhook without URL should be disabled")
	}
}

// stubChannel records notifications and optionally fails.
type stubChannel struct {
	name    string
	enabled bool
	fail    bool
	sent    []Notification
}

func (s *stubChannel) Name() string    { return s.name }
func (s *stubChannel) IsEnabled() bool { return s.enabled }

func (s *stubChannel) Send(ctx context.Context, n Notification) error {
	if s.fail {
		return errors.New("boom")
	}
	s.sent = append(s.sent, n)
	return nil
}

func TestMultiNotifierFansOut(t *testing.T) {
	a := &stubChannel{name: "a", enabled: true}
	b := &stubChannel{name: "b", enabled: true}
	off := &stubChannel{name: "off", enabled: false}

	mn := NewMultiNotifier(&config.NotificationConfig{})
	mn.AddChannel(a)
	mn.AddChannel(b)
	mn.AddChannel(off)

	if err := mn.Success(context.Background(), "done"); err != nil {
		t.Fatalf("Success: %v", err)
	}

	if len(a.sent) != 1 || len(b.sent) != 1 {
		t.Errorf("sent = %d/%d, want 1/1", len(a.sent), len(b.sent))
	}
	if len(off.sent) != 0 {
		t.Error("disabled channel received a notification")
	}
	if a.sent[0].Type != NotificationSuccess || a.sent[0].Message != "done" {
		t.Errorf("notification = %+v", a.sent[0])
	}
	if a.sent[0].Timestamp.IsZero() {
		t.Error("timestamp not stamped")
	}
}

func TestMultiNotifierCollectsChannelErrors(t *testing.T) {
	good := &stubChannel{name: "good", enabled: true}
	bad := &stubChannel{name: "bad", enabled: true, fail: true}

	mn := NewMultiNotifier(&config.NotificationConfig{})
	mn.AddChannel(good)
	mn.AddChannel(bad)

	err := mn.Failure(context.Background(), "create trade", "it broke")
	if err == nil {
		t.Fatal("expected aggregated channel error")
	}
	if !strings.Contains(err.Error(), "bad") {
		t.Errorf("err = %v, want the failing channel named", err)
	}
	// The healthy channel still got the notification.
	if len(good.sent) != 1 {
		t.Errorf("good.sent = %d, want 1", len(good.sent))
	}
}

func TestTerminalNotifierFormatting(t *testing.T) {
	var buf bytes.Buffer
	n := &TerminalNotifier{writer: &buf, enabled: true}

	n.Send(context.Background(), Notification{Type: NotificationSuccess, Message: "Trade created successfully"})
	n.Send(context.Background(), Notification{Type: NotificationError, Title: "Failed to create trade", Message: "timed out"})

	out := buf.String()
	if !strings.Contains(out, "[ok] Trade created successfully") {
		t.Errorf("output = %q", out)
	}
	if !strings.Contains(out, "[error] Failed to create trade: timed out") {
		t.Errorf("output = %q", out)
	}
}

func TestTerminalNotifierDisabled(t *testing.T) {
	var buf bytes.Buffer
	n := &TerminalNotifier{writer: &buf}

	n.Send(context.Background(), Notification{Type: NotificationInfo, Message: "hidden"})
	if buf.Len() != 0 {
		t.Errorf("disabled notifier wrote %q", buf.String())
	}
}
