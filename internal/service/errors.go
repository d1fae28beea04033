package service

import "errors"

// Expected, recoverable outcomes. Handlers map these to HTTP codes;
// anything else is a storage or connectivity fault fatal to the single
// request only.
var (
	ErrEventNotFound  = errors.New("event not found")
	ErrUserNotFound   = errors.New("user not found")
	ErrRSVPNotFound   = errors.New("join request not found")
	ErrOrderNotFound  = errors.New("order not found")
	ErrTicketNotFound = errors.New("ticket not found")

	ErrNotHost = errors.New("only the event host may do this")

	ErrSelfJoin           = errors.New("you cannot join your own event")
	ErrDeadlinePassed     = errors.New("the deadline to join has passed")
	ErrAlreadyRequested   = errors.New("you have already requested to join this event")
	ErrAudienceMismatch   = errors.New("audience restriction not met")
	ErrEventFull          = errors.New("this event is full")
	ErrInvalidState       = errors.New("action not allowed in the current state")
	ErrInvalidSchedule    = errors.New("rsvp deadline must fall before the event date")
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
)
