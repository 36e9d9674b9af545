package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gophpass/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func newTestNotifier(d dialer) *SMTPNotifier {
	n := NewSMTPNotifier(SMTPConfig{
		Host:     "localhost",
		Port:     1025,
		From:     "info@sample.com",
		FromName: "The Sample Team",
	})
	n.dialer = d
	return n
}

func forgotMessage() Message {
	return Message{
		To:       "alice@example.com",
		Template: TemplateForgotPassword,
		Data:     map[string]any{"code": int64(1700000000), "username": "alice"},
	}
}

func TestRender_ForgotPassword(t *testing.T) {
	subject, body, err := render(forgotMessage())
	require.NoError(t, err)

	assert.Equal(t, "Password Reset", subject)
	assert.Contains(t, body, "1700000000")
	assert.Contains(t, body, "Hello alice")
}

func TestRender_UnknownTemplate(t *testing.T) {
	_, _, err := render(Message{To: "a@b.c", Template: "welcome"})
	assert.Error(t, err)
}

func TestRender_EscapesData(t *testing.T) {
	msg := forgotMessage()
	msg.Data["username"] = "<script>"

	_, body, err := render(msg)
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

func TestSMTPNotifier_SendComposesMessage(t *testing.T) {
	d := &fakeDialer{}
	n := newTestNotifier(d)

	require.NoError(t, n.Send(context.Background(), forgotMessage()))
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	assert.Equal(t, []string{"alice@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Password Reset"}, m.GetHeader("Subject"))

	from := m.GetHeader("From")
	require.Len(t, from, 1)
	assert.Contains(t, from[0], "info@sample.com")
	assert.Contains(t, from[0], "The Sample Team")

	var raw bytes.Buffer
	_, err := m.WriteTo(&raw)
	require.NoError(t, err)
	assert.Contains(t, raw.String(), "text/html")
	assert.Contains(t, raw.String(), "1700000000")
}

func TestSMTPNotifier_SendError(t *testing.T) {
	d := &fakeDialer{err: errors.New("connection refused")}
	n := newTestNotifier(d)

	err := n.Send(context.Background(), forgotMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSMTPNotifier_NoRecipient(t *testing.T) {
	d := &fakeDialer{}
	n := newTestNotifier(d)

	msg := forgotMessage()
	msg.To = ""

	assert.Error(t, n.Send(context.Background(), msg))
	assert.Empty(t, d.sent)
}

func TestSMTPNotifier_CanceledContext(t *testing.T) {
	d := &fakeDialer{}
	n := newTestNotifier(d)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := n.Send(ctx, forgotMessage())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, d.sent)
}

func TestLogNotifier_LogsRenderedMessage(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.BackendSlog, "info", &buf)
	require.NoError(t, err)

	n := NewLogNotifier(log)
	require.NoError(t, n.Send(context.Background(), forgotMessage()))

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &rec))
	assert.Equal(t, "alice@example.com", rec["to"])
	assert.Equal(t, TemplateForgotPassword, rec["template"])
	assert.Equal(t, "notify", rec["module"])
	assert.True(t, strings.Contains(rec["body"].(string), "1700000000"))
}

func TestLogNotifier_UnknownTemplate(t *testing.T) {
	n := NewLogNotifier(logging.Nop())
	assert.Error(t, n.Send(context.Background(), Message{To: "a@b.c", Template: "nope"}))
}

// blockingDialer holds DialAndSend until release is closed.
type blockingDialer struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingDialer) DialAndSend(...*gomail.Message) error {
	close(b.started)
	<-b.release
	return nil
}

func TestSMTPNotifier_CancelDuringSend(t *testing.T) {
	d := &blockingDialer{started: make(chan struct{}), release: make(chan struct{})}
	defer close(d.release)
	n := newTestNotifier(d)

	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- n.Send(ctx, forgotMessage()) }()

	<-d.started
	cancel()

	select {
	case err := <-errc:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Send did not return after cancel")
	}
}
