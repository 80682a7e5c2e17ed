package mailermock

import (
	"context"
	"sync"

	"invest-platform-backend/internal/infrastructure/mailer"
)

var _ mailer.Mailer = (*Mailer)(nil)

type Sent struct {
	Template string
	To       string
	Params   map[string]string
}

// Mailer records sends; set Err to simulate gateway failure.
type Mailer struct {
	mu   sync.Mutex
	Err  error
	Sent []Sent
}

func (m *Mailer) Send(_ context.Context, template, to string, params map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, Sent{Template: template, To: to, Params: params})
	return nil
}
