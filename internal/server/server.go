// Package server serves the line based dictionary protocol over TCP.
package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/at-ishikawa/dictd/internal/dictionary"
	"golang.org/x/net/netutil"
)

// DefaultAddress is the address the server listens on when none is configured.
const DefaultAddress = ":7890"

// ErrServerClosed is returned by Serve and ListenAndServe after Shutdown.
var ErrServerClosed = errors.New("server closed")

//go:generate mockgen -source=server.go -destination=../mocks/server/mock_dictionary.go -package=mock_server

// Dictionary is the shared store every connection reads and writes.
// Implementations must be safe for concurrent use.
type Dictionary interface {
	Get(word string) (string, bool)
	Put(word, definition string) dictionary.PutResult
	ScanByPrefix(prefix string) []dictionary.Entry
	ScanBySuffix(suffix string) []dictionary.Entry
}

// Server accepts connections and runs one handler goroutine per connection.
type Server struct {
	addr           string
	dictionary     Dictionary
	maxConnections int
	idleTimeout    time.Duration
	logger         *slog.Logger

	mu       sync.Mutex
	listener net.Listener
	closed   bool
}

// Option configures a Server.
type Option func(*Server)

// WithMaxConnections limits the number of simultaneously served connections.
// Zero means no limit.
func WithMaxConnections(n int) Option {
	return func(s *Server) {
		s.maxConnections = n
	}
}

// WithIdleTimeout closes connections that send nothing for d. Zero disables it.
func WithIdleTimeout(d time.Duration) Option {
	return func(s *Server) {
		s.idleTimeout = d
	}
}

// WithLogger sets the logger. slog.Default() is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// New creates a server for addr backed by dict.
func New(addr string, dict Dictionary, opts ...Option) *Server {
	if addr == "" {
		addr = DefaultAddress
	}
	s := &Server{
		addr:       addr,
		dictionary: dict,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ListenAndServe listens on the configured TCP address and serves connections.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("net.Listen(%s) > %w", s.addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown is called or ln fails.
// It always closes ln.
func (s *Server) Serve(ln net.Listener) error {
	if s.maxConnections > 0 {
		ln = netutil.LimitListener(ln, s.maxConnections)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = ln.Close()
		return ErrServerClosed
	}
	s.listener = ln
	s.mu.Unlock()
	defer func() {
		_ = ln.Close()
	}()

	s.logger.Info("dictionary server listening",
		"address", ln.Addr().String(),
		"max_connections", s.maxConnections,
		"idle_timeout", s.idleTimeout)

	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.isClosed() {
				return ErrServerClosed
			}
			if errors.Is(err, net.ErrClosed) {
				return fmt.Errorf("ln.Accept() > %w", err)
			}
			s.logger.Error("failed to accept a connection", "err", err)
			continue
		}
		go s.handleConnection(conn)
	}
}

// Addr returns the address of the active listener, or nil before Serve.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Shutdown stops accepting new connections. Connections already being
// served run until their clients disconnect.
func (s *Server) Shutdown() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	if s.listener == nil {
		return nil
	}
	if err := s.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return fmt.Errorf("listener.Close() > %w", err)
	}
	return nil
}

func (s *Server) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closed
}
