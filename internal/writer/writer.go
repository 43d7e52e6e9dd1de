// Package writer adapts the callback events emitted by an embedded sampler
// into length-prefixed protobuf frames on a Unix domain stream socket.
//
// One SocketWriter exists per channel role. The engine drives it through
// four event kinds (name vector, value vector, text line, empty signal);
// each event is translated into at most one WriterMessage frame, which is
// fully flushed before the call returns. Writers are single-threaded and
// write-only: they expose no state back to the engine, never retry, and
// treat the first error as terminal.
package writer

import (
	"fmt"
	"net"

	"github.com/fenwick-labs/stanwire/internal/frameio"
	"github.com/fenwick-labs/stanwire/internal/writerpb"
)

// Role selects the message-translation policy for one writer instance.
type Role int

const (
	RoleInit Role = iota
	RoleSample
	RoleDiagnostic
)

// String returns the channel name used in error messages.
func (r Role) String() string {
	switch r {
	case RoleInit:
		return "initialization"
	case RoleSample:
		return "sample"
	case RoleDiagnostic:
		return "diagnostic"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Topic returns the wire topic carried by every message this role emits.
func (r Role) Topic() writerpb.WriterMessage_Topic {
	switch r {
	case RoleInit:
		return writerpb.WriterMessage_INITIALIZATION
	case RoleSample:
		return writerpb.WriterMessage_SAMPLE
	case RoleDiagnostic:
		return writerpb.WriterMessage_DIAGNOSTIC
	default:
		return writerpb.WriterMessage_TOPIC_UNSPECIFIED
	}
}

// EventWriter is the callback surface the engine drives.
type EventWriter interface {
	// WriteNames receives a vector of column names.
	WriteNames(names []string) error
	// WriteValues receives a vector of values.
	WriteValues(values []float64) error
	// WriteMessage receives one free-text line.
	WriteMessage(line string) error
	// WriteEmpty receives the engine's empty signal.
	WriteEmpty() error
}

// policy translates one event into at most one outbound message. A nil
// message with a nil error means the event produced no frame.
type policy interface {
	names(names []string) (*writerpb.WriterMessage, error)
	values(values []float64) (*writerpb.WriterMessage, error)
	message(line string) (*writerpb.WriterMessage, error)
	empty() (*writerpb.WriterMessage, error)
}

// SocketWriter is an EventWriter connected to a supervisor socket.
type SocketWriter struct {
	conn   net.Conn
	role   Role
	policy policy
}

var _ EventWriter = (*SocketWriter)(nil)

// Dial connects to the listening Unix domain socket at socketPath and
// returns a writer for the given role. A connect failure leaks no
// descriptor.
func Dial(socketPath string, role Role) (*SocketWriter, error) {
	p, err := policyFor(role)
	if err != nil {
		return nil, err
	}
	conn, err := net.Dial("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("connect writer socket %s: %w", socketPath, err)
	}
	return &SocketWriter{conn: conn, role: role, policy: p}, nil
}

func policyFor(role Role) (policy, error) {
	switch role {
	case RoleInit:
		return &initPolicy{}, nil
	case RoleSample:
		return &samplePolicy{}, nil
	case RoleDiagnostic:
		return &diagnosticPolicy{}, nil
	default:
		return nil, fmt.Errorf("unknown channel role %d", int(role))
	}
}

// Close releases the socket. The writer must not be used afterwards.
func (w *SocketWriter) Close() error {
	return w.conn.Close()
}

// WriteNames implements EventWriter.
func (w *SocketWriter) WriteNames(names []string) error {
	msg, err := w.policy.names(names)
	return w.emit(msg, err)
}

// WriteValues implements EventWriter.
func (w *SocketWriter) WriteValues(values []float64) error {
	msg, err := w.policy.values(values)
	return w.emit(msg, err)
}

// WriteMessage implements EventWriter.
func (w *SocketWriter) WriteMessage(line string) error {
	msg, err := w.policy.message(line)
	return w.emit(msg, err)
}

// WriteEmpty implements EventWriter.
func (w *SocketWriter) WriteEmpty() error {
	msg, err := w.policy.empty()
	return w.emit(msg, err)
}

func (w *SocketWriter) emit(msg *writerpb.WriterMessage, err error) error {
	if err != nil || msg == nil {
		return err
	}
	return frameio.WriteFrame(w.conn, msg)
}
