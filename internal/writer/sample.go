package writer

import (
	"fmt"
	"strings"

	"github.com/fenwick-labs/stanwire/internal/writerpb"
)

// Literal prefixes the sampler prints at the start of its adaptation report
// lines. Matching is case-sensitive and anchored at position zero.
const (
	adaptTerminatedPrefix = "Adaptation terminated"
	massMatrixPrefix      = "Diagonal elements of inverse mass matrix"
)

// adaptState tracks progress through the sampler's adaptation report. The
// sampler interleaves free-text tuning lines between the column header and
// the first draw; the supervisor relies on no draw being framed while the
// report is still open.
type adaptState int

const (
	adaptBefore adaptState = iota
	adaptProcessing
	adaptFinalMessage
	adaptAfter
)

func (s adaptState) String() string {
	switch s {
	case adaptBefore:
		return "before-adaptation"
	case adaptProcessing:
		return "processing-adaptation"
	case adaptFinalMessage:
		return "final-adaptation-message"
	case adaptAfter:
		return "after-adaptation"
	default:
		return fmt.Sprintf("adaptState(%d)", int(s))
	}
}

// next returns the state after observing one text line. States only ever
// advance; once after-adaptation, no line changes the state again.
func (s adaptState) next(line string) adaptState {
	switch s {
	case adaptBefore:
		if strings.HasPrefix(line, adaptTerminatedPrefix) {
			return adaptProcessing
		}
		return adaptBefore
	case adaptProcessing:
		if strings.HasPrefix(line, massMatrixPrefix) {
			// The line after the mass matrix header closes the report.
			return adaptFinalMessage
		}
		return adaptProcessing
	case adaptFinalMessage:
		return adaptAfter
	default:
		return adaptAfter
	}
}

// blocksValues reports whether a value vector is forbidden in this state.
func (s adaptState) blocksValues() bool {
	return s == adaptProcessing || s == adaptFinalMessage
}

// samplePolicy handles the sample channel: exactly one header, then
// free-text adaptation lines classified by the state machine, then draws.
type samplePolicy struct {
	header []string
	state  adaptState
}

func (p *samplePolicy) names(names []string) (*writerpb.WriterMessage, error) {
	// The sample channel receives a single name vector, the column header.
	if len(p.header) != 0 {
		return nil, fmt.Errorf("%w: second name vector on sample channel after column header", ErrProtocol)
	}
	p.header = append([]string(nil), names...)
	return nil, nil
}

func (p *samplePolicy) values(values []float64) (*writerpb.WriterMessage, error) {
	if len(p.header) == 0 {
		return nil, fmt.Errorf("%w: value vector before column header on sample channel", ErrProtocol)
	}
	if p.state.blocksValues() {
		return nil, fmt.Errorf("%w: value vector on sample channel while %s", ErrProtocol, p.state)
	}
	if len(values) != len(p.header) {
		return nil, fmt.Errorf("%w: sample value vector has %d values for %d columns", ErrProtocol, len(values), len(p.header))
	}
	return columnsMessage(writerpb.WriterMessage_SAMPLE, p.header, values), nil
}

func (p *samplePolicy) message(line string) (*writerpb.WriterMessage, error) {
	p.state = p.state.next(line)
	return textMessage(writerpb.WriterMessage_SAMPLE, line), nil
}

func (p *samplePolicy) empty() (*writerpb.WriterMessage, error) {
	return nil, nil
}
