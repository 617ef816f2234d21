package services

import (
	"context"
	"time"

	"github.com/calebsoh/menucard/pkg/mail"
)

type mockMailer struct {
	sent []mail.Message
	err  error
}

func (m *mockMailer) Send(_ context.Context, msg mail.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

// fixedClock returns a clock function pinned to t, with a helper to move it.
type fixedClock struct {
	t time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.t
}

func (c *fixedClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}
