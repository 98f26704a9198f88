package utils

import (
	"testing"
	"ticket_master/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationConfirmationEmail(t *testing.T) {
	email, err := ReservationConfirmationEmail("ada@uni.test", TicketEmailData{
		StudentName: "Ada <script>",
		EventName:   "Derby",
		Stadium:     "Arena A",
		SeatNumber:  "7",
		TicketLink:  "https://tickets.test/Reservation/1/qr",
	})
	require.NoError(t, err)

	assert.Equal(t, "ada@uni.test", email.To)
	assert.Equal(t, "Reservation confirmed: Derby", email.Subject)
	assert.Contains(t, email.HTML, `href="https://tickets.test/Reservation/1/qr"`)
	assert.Contains(t, email.HTML, "Ada &lt;script&gt;")
}

func TestEventReminderEmail(t *testing.T) {
	email, err := EventReminderEmail("ada@uni.test", TicketEmailData{EventName: "Derby", SeatNumber: "7"})
	require.NoError(t, err)
	assert.Equal(t, "Reminder: Derby starts soon", email.Subject)
	assert.Contains(t, email.HTML, "<strong>7</strong>")
}

func TestNewMailerFallsBackToLog(t *testing.T) {
	assert.IsType(t, LogMailer{}, NewMailer(config.SMTP{}))
	assert.NotEqual(t, LogMailer{}, NewMailer(config.SMTP{Host: "smtp.test", Port: 587}))
}

func TestNewPoolMailerWithoutHost(t *testing.T) {
	mailer, err := NewPoolMailer(config.SMTP{}, 2)
	require.NoError(t, err)
	assert.IsType(t, LogMailer{}, mailer)
}
