package notify

import (
	"context"

	"github.com/dmitrijs2005/gophpass/internal/logging"
)

// LogNotifier renders messages and logs them instead of sending. It is used
// when no SMTP relay is configured.
type LogNotifier struct {
	log logging.Logger
}

func NewLogNotifier(log logging.Logger) *LogNotifier {
	return &LogNotifier{log: log.With("module", "notify")}
}

func (n *LogNotifier) Send(ctx context.Context, msg Message) error {
	subject, body, err := render(msg)
	if err != nil {
		return err
	}
	n.log.Info(ctx, "notification not sent, no SMTP relay configured",
		"to", msg.To, "template", msg.Template, "subject", subject, "body", body)
	return nil
}
