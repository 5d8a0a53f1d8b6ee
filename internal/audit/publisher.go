package audit

import (
	"context"
	"time"
)

// Publisher hands events to the background worker without blocking the
// request path. A full inbox drops the event rather than stalling a
// transition; the store write is not part of the request's atomic unit.
type Publisher struct {
	inbox chan<- Event
}

func NewPublisher(inbox chan<- Event) *Publisher {
	return &Publisher{inbox: inbox}
}

func (p *Publisher) Emit(_ context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case p.inbox <- event:
	default:
	}
	return nil
}
