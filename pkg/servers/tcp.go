package servers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"time"

	"github.com/CABMadeira/bodet-scoreboard/pkg/log"
	"github.com/CABMadeira/bodet-scoreboard/pkg/protocol"
	"github.com/CABMadeira/bodet-scoreboard/pkg/state"
	"github.com/CABMadeira/bodet-scoreboard/pkg/stream"
	"github.com/google/uuid"
)

// readBufferSize is the size of the per-session socket read buffer. Any
// positive size works; frames are reassembled regardless of how the stream
// is chunked.
const readBufferSize = 1024

// TCPServer ingests scorepad frames over TCP. Each accepted connection gets
// its own goroutine and its own reassembler; decoded snapshots land in the
// shared store. The server itself is stateless beyond the listening socket
// and the store handle.
type TCPServer struct {
	Store       state.SnapshotStore
	Addr        string
	ReadTimeout time.Duration
}

type NewTCPServerOptions struct {
	Store state.SnapshotStore
	Addr  string
	// ReadTimeout closes a session that receives no data within the
	// interval. Zero disables the timeout.
	ReadTimeout time.Duration
}

// NewTCPServer creates a new TCP ingestion server.
func NewTCPServer(opts NewTCPServerOptions) *TCPServer {
	return &TCPServer{
		Store:       opts.Store,
		Addr:        opts.Addr,
		ReadTimeout: opts.ReadTimeout,
	}
}

// Start binds the listening socket and serves until the listener fails.
func (s *TCPServer) Start(ctx context.Context) error {
	tcpAddr, err := net.ResolveTCPAddr("tcp", s.Addr)
	if err != nil {
		return fmt.Errorf("failed to resolve TCP address: %v", err)
	}

	listener, err := net.ListenTCP("tcp", tcpAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %v", tcpAddr, err)
	}
	defer listener.Close()

	log.Info("TCP server listening on %s", listener.Addr())

	return s.Serve(ctx, listener)
}

// Serve runs the accept loop on an already bound listener.
func (s *TCPServer) Serve(ctx context.Context, listener net.Listener) error {
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			log.Error("Failed to accept TCP connection: %v", err)
			continue
		}

		go s.handleConnection(ctx, conn)
	}
}

// handleConnection runs one session: read, reassemble, decode, reply.
// All failures are local to the session; nothing here escalates beyond it.
func (s *TCPServer) handleConnection(ctx context.Context, conn net.Conn) {
	sessionID := uuid.New()
	peer := conn.RemoteAddr()

	log.Info("Session %s: connection from %s", sessionID, peer)
	defer func() {
		log.Info("Session %s: closed", sessionID)
		conn.Close()
	}()

	reassembler := stream.NewReassembler()
	buf := make([]byte, readBufferSize)

	for {
		if s.ReadTimeout > 0 {
			if err := conn.SetReadDeadline(time.Now().Add(s.ReadTimeout)); err != nil {
				log.Error("Session %s: failed to set read deadline: %v", sessionID, err)
				return
			}
		}

		n, err := conn.Read(buf)
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("Session %s: peer closed connection", sessionID)
				return
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				log.Warn("Session %s: no data within %s, closing", sessionID, s.ReadTimeout)
				return
			}
			log.Error("Session %s: read error: %v", sessionID, err)
			return
		}

		for _, frame := range reassembler.Feed(buf[:n]) {
			if err := s.handleFrame(ctx, conn, sessionID, frame); err != nil {
				log.Error("Session %s: write error: %v", sessionID, err)
				return
			}
		}
	}
}

// handleFrame decodes one frame and sends the reply line. A decode failure
// is reported to the peer and otherwise ignored; only a reply write failure
// is returned, ending the session.
func (s *TCPServer) handleFrame(ctx context.Context, conn net.Conn, sessionID uuid.UUID, frame []byte) error {
	snapshot, err := protocol.Decode(frame)
	if err != nil {
		log.Warn("Session %s: decode error: %v (% X)", sessionID, err, frame)
		_, werr := fmt.Fprintf(conn, "ERROR: %s\n", err)
		return werr
	}

	if err := s.Store.Set(ctx, &snapshot); err != nil {
		log.Error("Session %s: failed to store snapshot: %v", sessionID, err)
	}
	log.Debug("Session %s: %s", sessionID, snapshot)

	_, werr := io.WriteString(conn, "ACK\n")
	return werr
}
