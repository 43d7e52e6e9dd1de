// Package capture implements the supervisor side of the writer socket: a
// Unix-socket listener that reassembles length-prefixed WriterMessage frames
// and a SQLite-backed store for the captured run.
package capture

import (
	"context"

	"github.com/fenwick-labs/stanwire/internal/writerpb"
)

// Sink consumes decoded writer messages. Implementations are called
// serially per connection but may receive messages from several
// connections at once, one per channel role.
type Sink interface {
	Consume(ctx context.Context, msg *writerpb.WriterMessage) error
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(ctx context.Context, msg *writerpb.WriterMessage) error

// Consume implements Sink.
func (f SinkFunc) Consume(ctx context.Context, msg *writerpb.WriterMessage) error {
	return f(ctx, msg)
}
