package mailer

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

// Dialer отправка подготовленных писем (gomail.Dialer)
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// Client отправляет письма через SMTP
type Client struct {
	dialer Dialer
	from   string
}

// NewClient создает клиента поверх SMTP сервера
func NewClient(host string, port int, user, password, from string) *Client {
	if strings.TrimSpace(from) == "" {
		from = user
	}
	return &Client{
		dialer: gomail.NewDialer(host, port, user, password),
		from:   from,
	}
}

// NewClientWithDialer используется в тестах
func NewClientWithDialer(dialer Dialer, from string) *Client {
	return &Client{dialer: dialer, from: from}
}

// Send отправляет текстовое письмо
// gomail не принимает контекст, поэтому отмена проверяется только перед отправкой
func (c *Client) Send(ctx context.Context, to, subject, body string) error {
	to = strings.TrimSpace(to)
	if to == "" || !strings.Contains(to, "@") {
		return fmt.Errorf("%w: %q", ErrInvalidRecipient, to)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", c.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := c.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: %v", ErrSend, err)
	}
	return nil
}
