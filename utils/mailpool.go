package utils

import (
	"context"
	"net"
	"net/smtp"
	"strconv"
	"ticket_master/config"
	"time"

	mailpool "github.com/jordan-wright/email"
)

const poolSendTimeout = 30 * time.Second

type poolMailer struct {
	pool *mailpool.Pool
	from string
}

// NewPoolMailer keeps up to size SMTP connections open for batch sends such as reminders.
// Without an SMTP host it falls back to LogMailer.
func NewPoolMailer(settings config.SMTP, size int) (Mailer, error) {
	if settings.Host == "" {
		return LogMailer{}, nil
	}
	addr := net.JoinHostPort(settings.Host, strconv.Itoa(settings.Port))
	auth := smtp.PlainAuth("", settings.Username, settings.Password, settings.Host)
	pool, err := mailpool.NewPool(addr, size, auth)
	if err != nil {
		return nil, err
	}
	return &poolMailer{pool: pool, from: settings.From}, nil
}

func (m *poolMailer) Send(ctx context.Context, msg Email) error {
	timeout := poolSendTimeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
	}
	e := mailpool.NewEmail()
	e.From = m.from
	e.To = []string{msg.To}
	e.Subject = msg.Subject
	e.HTML = []byte(msg.HTML)
	return m.pool.Send(e, timeout)
}

func (m *poolMailer) Close() {
	m.pool.Close()
}
