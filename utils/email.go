package utils

import (
	"bytes"
	"context"
	"html/template"
	"ticket_master/config"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

type Email struct {
	To      string
	Subject string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, email Email) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer sends over SMTP when a host is configured and logs messages otherwise.
func NewMailer(settings config.SMTP) Mailer {
	if settings.Host == "" {
		return LogMailer{}
	}
	return &smtpMailer{
		dialer: gomail.NewDialer(settings.Host, settings.Port, settings.Username, settings.Password),
		from:   settings.From,
	}
}

func (m *smtpMailer) Send(ctx context.Context, email Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/html", email.HTML)
	return m.dialer.DialAndSend(msg)
}

type LogMailer struct{}

func (LogMailer) Send(_ context.Context, email Email) error {
	log.Info().Str("to", email.To).Str("subject", email.Subject).Msg("email not sent, SMTP is not configured")
	return nil
}

type TicketEmailData struct {
	StudentName string
	EventName   string
	Stadium     string
	StartsAt    string
	SeatNumber  string
	TicketLink  string
}

var (
	confirmationTemplate = template.Must(template.New("confirmation").Parse(`<p>Hi {{.StudentName}},</p>
<p>Your seat for <strong>{{.EventName}}</strong> at {{.Stadium}} is confirmed.</p>
<p>Seat: <strong>{{.SeatNumber}}</strong><br>Starts: {{.StartsAt}}</p>
<p><a href="{{.TicketLink}}">Show ticket QR code</a></p>`))

	reminderTemplate = template.Must(template.New("reminder").Parse(`<p>Hi {{.StudentName}},</p>
<p><strong>{{.EventName}}</strong> starts {{.StartsAt}} at {{.Stadium}}.</p>
<p>Your seat is <strong>{{.SeatNumber}}</strong>. <a href="{{.TicketLink}}">Show ticket QR code</a></p>`))
)

func ReservationConfirmationEmail(to string, data TicketEmailData) (Email, error) {
	return renderEmail(confirmationTemplate, to, "Reservation confirmed: "+data.EventName, data)
}

func EventReminderEmail(to string, data TicketEmailData) (Email, error) {
	return renderEmail(reminderTemplate, to, "Reminder: "+data.EventName+" starts soon", data)
}

func renderEmail(tmpl *template.Template, to, subject string, data TicketEmailData) (Email, error) {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return Email{}, err
	}
	return Email{To: to, Subject: subject, HTML: body.String()}, nil
}
