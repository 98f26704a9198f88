package testutil

import (
	"context"
	"sync"
	"ticket_master/utils"
)

// RecordingMailer keeps every email it is asked to send.
type RecordingMailer struct {
	mu   sync.Mutex
	sent []utils.Email
}

func (m *RecordingMailer) Send(_ context.Context, email utils.Email) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, email)
	return nil
}

func (m *RecordingMailer) Sent() []utils.Email {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]utils.Email(nil), m.sent...)
}
