package chat

import (
	"context"
	"fmt"
)

// Client opens authenticated sessions against the chat service.
type Client interface {
	Open(token string) (Session, error)
}

// Session delivers messages under one credential.
type Session interface {
	Send(ctx context.Context, destination string, content Content) error
}

// DeliveryError reports a failed send together with the remote cause.
type DeliveryError struct {
	Destination string
	Err         error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver to %s: %v", e.Destination, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}
