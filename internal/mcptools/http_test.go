package mcptools

import (
	"context"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/dusk-indust/utilkit/internal/users"
	"github.com/stretchr/testify/require"
)

// findAvailablePort asks the OS for an unused TCP port.
func findAvailablePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	ln.Close()
	return port
}

func TestRunHTTP_ShutsDownOnCancel(t *testing.T) {
	addr := fmt.Sprintf("127.0.0.1:%d", findAvailablePort(t))
	server := NewToolkitMCPServer(NewToolkitService(users.NewManager(users.WithNotifier(nil))))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- RunHTTP(ctx, server, addr, nil)
	}()

	// Wait for the listener to come up.
	require.Eventually(t, func() bool {
		conn, err := net.DialTimeout("tcp", addr, 100*time.Millisecond)
		if err != nil {
			return false
		}
		conn.Close()
		return true
	}, 5*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-errCh:
		require.NoError(t, err, "a cancelled server should return cleanly")
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("RunHTTP did not return after cancellation")
	}

	_, err := net.DialTimeout("tcp", addr, 200*time.Millisecond)
	require.Error(t, err, "listener should be closed after shutdown")
}
