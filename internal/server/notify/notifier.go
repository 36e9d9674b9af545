// Package notify delivers templated messages to users. The SMTP notifier
// sends real mail through gomail; the log notifier only records what would
// have been sent.
package notify

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
)

// TemplateForgotPassword carries a password reset code ("code").
const TemplateForgotPassword = "forgot-password"

// Message is one templated notification addressed to a single recipient.
type Message struct {
	To       string
	Template string
	Data     map[string]any
}

// Notifier sends a message. A returned error means nothing was delivered;
// callers decide whether to retry.
type Notifier interface {
	Send(ctx context.Context, msg Message) error
}

//go:embed templates/*.html
var templateFS embed.FS

var subjects = map[string]string{
	TemplateForgotPassword: "Password Reset",
}

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// render returns the subject and HTML body for msg.
func render(msg Message) (string, string, error) {
	subject, ok := subjects[msg.Template]
	if !ok {
		return "", "", fmt.Errorf("unknown template %q", msg.Template)
	}

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, msg.Template+".html", msg.Data); err != nil {
		return "", "", fmt.Errorf("render %s: %w", msg.Template, err)
	}

	return subject, buf.String(), nil
}
