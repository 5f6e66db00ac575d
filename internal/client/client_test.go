package client

import (
	"context"
	"io"
	"net"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"handmade/internal/config"
)

func listen(t *testing.T) (net.Listener, string, int) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	host, portStr, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)
	return ln, host, port
}

func newClient(t *testing.T) *Client {
	t.Helper()
	c := New(config.Client{DialTimeout: time.Second}, nil)
	require.NoError(t, c.Initialize())
	t.Cleanup(func() { c.Close() })
	return c
}

func TestConnectAndSend(t *testing.T) {
	ln, host, port := listen(t)

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn)
		received <- data
	}()

	c := newClient(t)
	require.NoError(t, c.Connect(context.Background(), host, port))
	assert.True(t, c.Connected())
	assert.Equal(t, ln.Addr().String(), c.RemoteAddr().String())

	require.NoError(t, c.Send([]byte("hello ")))
	require.NoError(t, c.Send([]byte("server")))
	require.NoError(t, c.Close())
	assert.False(t, c.Connected())
	assert.Nil(t, c.RemoteAddr())

	select {
	case data := <-received:
		assert.Equal(t, "hello server", string(data))
	case <-time.After(5 * time.Second):
		t.Fatal("server never received the payload")
	}
}

func TestConnectRequiresInitialize(t *testing.T) {
	_, host, port := listen(t)
	c := New(config.Client{}, nil)
	assert.ErrorIs(t, c.Connect(context.Background(), host, port), ErrNotInitialized)
}

func TestConnectTwice(t *testing.T) {
	_, host, port := listen(t)
	c := newClient(t)
	require.NoError(t, c.Connect(context.Background(), host, port))
	assert.ErrorIs(t, c.Connect(context.Background(), host, port), ErrAlreadyConnected)
}

func TestConnectRefused(t *testing.T) {
	ln, host, port := listen(t)
	require.NoError(t, ln.Close())

	c := newClient(t)
	err := c.Connect(context.Background(), host, port)
	assert.Error(t, err)
	assert.False(t, c.Connected())
}

func TestConnectCancelled(t *testing.T) {
	_, host, port := listen(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newClient(t)
	err := c.Connect(ctx, host, port)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestInvalidPort(t *testing.T) {
	c := newClient(t)
	assert.Error(t, c.Connect(context.Background(), "localhost", 0))
	assert.Error(t, c.Connect(context.Background(), "localhost", 70000))
}

func TestNotConnected(t *testing.T) {
	c := newClient(t)
	assert.ErrorIs(t, c.Send([]byte("x")), ErrNotConnected)
	_, err := c.Conn()
	assert.ErrorIs(t, err, ErrNotConnected)
	assert.NoError(t, c.Close())
}

func TestDefaultTimeout(t *testing.T) {
	c := New(config.Client{}, nil)
	assert.Equal(t, defaultDialTimeout, c.dialTimeout)
}
