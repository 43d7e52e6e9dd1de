package capture

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/fenwick-labs/stanwire/internal/frameio"
	"github.com/fenwick-labs/stanwire/internal/monitoring"
	"github.com/fenwick-labs/stanwire/internal/writerpb"
)

// Listener accepts writer connections on a Unix domain stream socket and
// forwards every decoded frame to a Sink. A sampling run opens one
// connection per channel role; each connection is drained serially on its
// own goroutine.
type Listener struct {
	ln   net.Listener
	sink Sink
	wg   sync.WaitGroup

	mu    sync.Mutex
	conns map[net.Conn]struct{}
}

// Listen binds a Unix domain socket at socketPath.
func Listen(socketPath string, sink Sink) (*Listener, error) {
	ln, err := net.Listen("unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("listen on writer socket %s: %w", socketPath, err)
	}
	return &Listener{ln: ln, sink: sink, conns: make(map[net.Conn]struct{})}, nil
}

// Addr returns the bound socket address.
func (l *Listener) Addr() net.Addr {
	return l.ln.Addr()
}

// Serve accepts connections until ctx is cancelled or the listener is
// closed. It returns nil on clean shutdown.
func (l *Listener) Serve(ctx context.Context) error {
	stop := context.AfterFunc(ctx, l.shutdown)
	defer stop()

	for {
		conn, err := l.ln.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept writer connection: %w", err)
		}
		l.track(conn)
		l.wg.Add(1)
		go l.drain(ctx, conn)
	}
}

func (l *Listener) track(conn net.Conn) {
	l.mu.Lock()
	l.conns[conn] = struct{}{}
	l.mu.Unlock()
}

func (l *Listener) untrack(conn net.Conn) {
	l.mu.Lock()
	delete(l.conns, conn)
	l.mu.Unlock()
	conn.Close()
}

// shutdown closes the listening socket and every open connection. Closing
// the connections unblocks drain goroutines sitting in a read on an idle
// connection, so Close's wait cannot stall on a quiet engine.
func (l *Listener) shutdown() {
	l.ln.Close()
	l.mu.Lock()
	for conn := range l.conns {
		conn.Close()
	}
	l.mu.Unlock()
}

// drain decodes frames from one connection until EOF, a decode error, or a
// sink error. Decode errors are terminal for the connection only.
func (l *Listener) drain(ctx context.Context, conn net.Conn) {
	defer l.wg.Done()
	defer l.untrack(conn)

	r := frameio.NewReader(conn)
	for {
		msg := &writerpb.WriterMessage{}
		if err := r.Next(msg); err != nil {
			if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
				monitoring.Logf("capture: writer connection closed with error: %v", err)
			}
			return
		}
		if err := l.sink.Consume(ctx, msg); err != nil {
			monitoring.Logf("capture: sink rejected %s message: %v", msg.GetTopic(), err)
			return
		}
	}
}

// Close shuts the listener down and waits for in-flight connections to
// finish draining.
func (l *Listener) Close() error {
	l.shutdown()
	l.wg.Wait()
	return nil
}
