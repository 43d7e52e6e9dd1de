package writer

import (
	"fmt"

	"github.com/fenwick-labs/stanwire/internal/writerpb"
)

// initPolicy handles the initialization channel. The engine sends exactly
// one event here: the vector of unconstrained inits. Anything else is a
// misconfigured engine.
type initPolicy struct{}

func (initPolicy) names(names []string) (*writerpb.WriterMessage, error) {
	return nil, fmt.Errorf("%w: unexpected name vector on initialization channel", ErrProtocol)
}

func (initPolicy) values(values []float64) (*writerpb.WriterMessage, error) {
	return vectorMessage(writerpb.WriterMessage_INITIALIZATION, values), nil
}

func (initPolicy) message(line string) (*writerpb.WriterMessage, error) {
	return nil, fmt.Errorf("%w: unexpected text line on initialization channel", ErrProtocol)
}

func (initPolicy) empty() (*writerpb.WriterMessage, error) {
	return nil, fmt.Errorf("%w: unexpected empty signal on initialization channel", ErrProtocol)
}
