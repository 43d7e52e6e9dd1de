// Package frameio implements the record format used on the writer socket:
// each record is a base-128 varint holding the body length, followed by
// exactly that many bytes of serialized protobuf, with nothing in between.
package frameio

import (
	"bufio"
	"fmt"
	"io"

	"google.golang.org/protobuf/encoding/protodelim"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

// maxVarintLen is the longest possible length prefix.
const maxVarintLen = 10

// WriteFrame serializes msg and sends the length prefix and body in a single
// Write call. The scratch buffer is local to the call. A failed or short
// write leaves the stream unusable: part of a prefix may already have reached
// the peer, so callers must not retry on the same connection.
func WriteFrame(w io.Writer, msg proto.Message) error {
	body, err := proto.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal frame body: %w", err)
	}
	frame := protowire.AppendVarint(make([]byte, 0, maxVarintLen+len(body)), uint64(len(body)))
	frame = append(frame, body...)
	if _, err := w.Write(frame); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Reader decodes consecutive frames from a byte stream.
type Reader struct {
	br *bufio.Reader
}

// NewReader returns a Reader that reassembles frames from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Next decodes the next frame into msg. It returns io.EOF when the stream
// ends cleanly on a record boundary and io.ErrUnexpectedEOF when it ends
// inside a frame.
func (r *Reader) Next(msg proto.Message) error {
	return protodelim.UnmarshalFrom(r.br, msg)
}
