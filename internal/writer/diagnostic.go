package writer

import (
	"fmt"

	"github.com/fenwick-labs/stanwire/internal/writerpb"
)

// diagnosticPolicy handles the diagnostic channel: a header of column names
// followed by a mix of value vectors, free text, and (rarely) further name
// vectors, which travel as data rather than header updates.
type diagnosticPolicy struct {
	header []string
}

func (p *diagnosticPolicy) names(names []string) (*writerpb.WriterMessage, error) {
	if len(p.header) == 0 {
		p.header = append([]string(nil), names...)
		return nil, nil
	}
	return namesMessage(writerpb.WriterMessage_DIAGNOSTIC, names), nil
}

func (p *diagnosticPolicy) values(values []float64) (*writerpb.WriterMessage, error) {
	if len(p.header) == 0 {
		return nil, fmt.Errorf("%w: value vector before column header on diagnostic channel", ErrProtocol)
	}
	if len(values) != len(p.header) {
		return nil, fmt.Errorf("%w: diagnostic value vector has %d values for %d columns", ErrProtocol, len(values), len(p.header))
	}
	return columnsMessage(writerpb.WriterMessage_DIAGNOSTIC, p.header, values), nil
}

func (p *diagnosticPolicy) message(line string) (*writerpb.WriterMessage, error) {
	return textMessage(writerpb.WriterMessage_DIAGNOSTIC, line), nil
}

func (p *diagnosticPolicy) empty() (*writerpb.WriterMessage, error) {
	return nil, nil
}
