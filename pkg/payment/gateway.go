package payment

import "context"

// Session is the gateway-side handle for one checkout attempt. The
// RedirectURL is where the participant completes payment.
type Session struct {
	ID          string
	RedirectURL string
}

type SessionRequest struct {
	AmountCents int64
	Currency    string
	Description string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// Gateway is the external payment collaborator. The core only ever
// trusts a server-side settlement query, never a client-supplied
// "I paid" flag.
type Gateway interface {
	CreateSession(ctx context.Context, req SessionRequest) (*Session, error)
	SessionSettled(ctx context.Context, sessionID string) (bool, error)
}
