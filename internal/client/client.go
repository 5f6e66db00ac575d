// Package client holds the engine's single TCP connection to a game server.
// It only owns the connection; message framing is left to callers.
package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"handmade/internal/config"
	"handmade/internal/logging"
)

var (
	ErrNotInitialized   = errors.New("client: not initialized")
	ErrNotConnected     = errors.New("client: not connected")
	ErrAlreadyConnected = errors.New("client: already connected")
)

const defaultDialTimeout = 5 * time.Second

type Client struct {
	logger      *zap.Logger
	dialTimeout time.Duration

	mu          sync.Mutex
	initialized bool
	conn        net.Conn
}

func New(cfg config.Client, logger *zap.Logger) *Client {
	timeout := cfg.DialTimeout
	if timeout <= 0 {
		timeout = defaultDialTimeout
	}
	return &Client{
		logger:      logging.OrNop(logger).Named("client"),
		dialTimeout: timeout,
	}
}

// Initialize readies the client for Connect.
func (c *Client) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.initialized = true
	return nil
}

// Connect dials host:port over TCP. The dial is bounded by both ctx and the
// configured timeout.
func (c *Client) Connect(ctx context.Context, host string, port int) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return ErrNotInitialized
	}
	if c.conn != nil {
		return ErrAlreadyConnected
	}
	if port <= 0 || port > 65535 {
		return fmt.Errorf("client: invalid port %d", port)
	}

	addr := net.JoinHostPort(host, strconv.Itoa(port))
	d := net.Dialer{Timeout: c.dialTimeout}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		c.logger.Warn("could not connect to server", zap.String("addr", addr), zap.Error(err))
		return fmt.Errorf("connect to %s: %w", addr, err)
	}
	c.conn = conn
	c.logger.Info("connected", zap.String("addr", conn.RemoteAddr().String()))
	return nil
}

func (c *Client) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn != nil
}

// Send writes all of p or returns the write error.
func (c *Client) Send(p []byte) error {
	c.mu.Lock()
	conn := c.conn
	c.mu.Unlock()
	if conn == nil {
		return ErrNotConnected
	}
	if _, err := conn.Write(p); err != nil {
		return fmt.Errorf("send: %w", err)
	}
	return nil
}

// Conn exposes the raw connection for callers that read replies.
func (c *Client) Conn() (net.Conn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil, ErrNotConnected
	}
	return c.conn, nil
}

func (c *Client) RemoteAddr() net.Addr {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	return c.conn.RemoteAddr()
}

// Close drops the connection. Closing a disconnected client is a no-op.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn == nil {
		return nil
	}
	var err error
	if tcp, ok := c.conn.(*net.TCPConn); ok {
		err = multierr.Append(err, tcp.CloseWrite())
	}
	err = multierr.Append(err, c.conn.Close())
	c.conn = nil
	c.logger.Info("disconnected")
	return err
}
