// Package testutil provides shared test utilities and fixtures.
//
// The main fixture is FrameServer, an in-process stand-in for the
// supervising process: it listens on a throwaway Unix socket, decodes every
// length-prefixed frame a writer sends, and hands the collected messages
// back to the test.
package testutil

import (
	"errors"
	"io"
	"net"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fenwick-labs/stanwire/internal/frameio"
	"github.com/fenwick-labs/stanwire/internal/writerpb"
)

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertError fails the test if err is nil.
func AssertError(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

// SocketPath returns a socket path inside the test's temporary directory.
func SocketPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "writer.sock")
}

// FrameServer collects the frames written to a Unix socket.
type FrameServer struct {
	Path string

	ln       net.Listener
	wg       sync.WaitGroup
	accepted atomic.Int32

	mu     sync.Mutex
	frames []*writerpb.WriterMessage
	errs   []error
}

// StartFrameServer listens on a fresh socket path and decodes frames from
// every connection until the connection or the server is closed.
func StartFrameServer(t *testing.T) *FrameServer {
	t.Helper()

	path := SocketPath(t)
	ln, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen on %s: %v", path, err)
	}

	s := &FrameServer{Path: path, ln: ln}
	s.wg.Add(1)
	go s.acceptLoop()
	t.Cleanup(func() { s.ln.Close(); s.wg.Wait() })
	return s
}

func (s *FrameServer) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.wg.Add(1)
		s.accepted.Add(1)
		go s.drain(conn)
	}
}

// WaitAccepted blocks until the server has accepted at least n connections.
// Tests call it after dialing so that a later Drain cannot close the
// listener while the connection still sits in the accept backlog.
func (s *FrameServer) WaitAccepted(t *testing.T, n int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if int(s.accepted.Load()) >= n {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("server accepted %d connections, want %d", s.accepted.Load(), n)
}

func (s *FrameServer) drain(conn net.Conn) {
	defer s.wg.Done()
	defer conn.Close()
	r := frameio.NewReader(conn)
	for {
		msg := &writerpb.WriterMessage{}
		err := r.Next(msg)
		if err != nil {
			if !errors.Is(err, io.EOF) {
				s.mu.Lock()
				s.errs = append(s.errs, err)
				s.mu.Unlock()
			}
			return
		}
		s.mu.Lock()
		s.frames = append(s.frames, msg)
		s.mu.Unlock()
	}
}

// Drain stops accepting, waits for every connection to reach EOF, and
// returns the decoded frames in arrival order. Callers close their writers
// first so the wait terminates.
func (s *FrameServer) Drain(t *testing.T) []*writerpb.WriterMessage {
	t.Helper()
	s.ln.Close()
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, err := range s.errs {
		t.Errorf("frame server decode error: %v", err)
	}
	return s.frames
}
