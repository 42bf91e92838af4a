package email

// Provider sends notification mail. The rest of the app treats delivery as
// best-effort; failures are logged, never surfaced to API callers.
type Provider interface {
	Send(to []string, subject, body string) error
}

// Noop is wired when SMTP is not configured.
type Noop struct{}

func (Noop) Send(to []string, subject, body string) error {
	return nil
}
