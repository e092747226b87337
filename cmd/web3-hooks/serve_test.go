package main

import (
	"net"
	"testing"
	"time"

	"github.com/superfluid-finance/web3-hooks/internal/config"
	"github.com/superfluid-finance/web3-hooks/internal/network"
	"github.com/superfluid-finance/web3-hooks/internal/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, port int) *server {
	t.Helper()

	catalog, err := network.Parse([]byte(scanTestCatalog))
	require.NoError(t, err)

	return newServer(config.Config{
		QueueDelay:    30 * time.Second,
		QueueInterval: time.Second,
		Port:          port,
	}, catalog)
}

func TestServer(t *testing.T) {
	t.Run("should fail to start when the port is in use", func(t *testing.T) {
		// Arrange
		busy, err := net.Listen("tcp", ":0")
		require.NoError(t, err)
		defer busy.Close()

		s := newTestServer(t, busy.Addr().(*net.TCPAddr).Port)

		// Act
		err = s.Start(t.Context())

		// Assert
		require.Error(t, err)
		assert.Nil(t, s.Done())
	})

	t.Run("should run until closed", func(t *testing.T) {
		// Arrange
		s := newTestServer(t, 0)

		// Act
		require.NoError(t, s.Start(t.Context()))

		// Assert
		select {
		case <-s.Done():
			t.Fatalf("server stopped early: %v", s.Err())
		case <-time.After(50 * time.Millisecond):
		}

		assert.ErrorIs(t, s.Start(t.Context()), queue.ErrServiceAlreadyStarted)

		s.Close()

		select {
		case <-s.Done():
		default:
			t.Fatal("done not closed after Close")
		}
		assert.NoError(t, s.Err())
	})
}
