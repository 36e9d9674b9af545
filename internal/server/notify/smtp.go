package notify

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

// dialer is the part of *gomail.Dialer the notifier needs.
type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier sends HTML mail through an SMTP relay.
type SMTPNotifier struct {
	dialer   dialer
	from     string
	fromName string
}

// SMTPConfig describes the relay and the sender identity.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

func NewSMTPNotifier(cfg SMTPConfig) *SMTPNotifier {
	return &SMTPNotifier{
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:     cfg.From,
		fromName: cfg.FromName,
	}
}

func (n *SMTPNotifier) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return errors.New("no recipient specified")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := n.compose(msg)
	if err != nil {
		return err
	}

	// gomail cannot abort a send in flight; on cancellation the send is
	// left to finish in the background and its result is dropped.
	done := make(chan error, 1)
	go func() { done <- n.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send: %w", err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (n *SMTPNotifier) compose(msg Message) (*gomail.Message, error) {
	subject, body, err := render(msg)
	if err != nil {
		return nil, err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.from, n.fromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	return m, nil
}
