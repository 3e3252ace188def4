package notify

import "context"

// Mailer delivers a rendered message to one or more addresses. Delivery is
// best-effort: callers log failures and never let them affect job outcome.
type Mailer interface {
	Send(ctx context.Context, to []string, subject, html string) error
}
