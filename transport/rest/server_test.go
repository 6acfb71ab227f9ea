package rest

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freePort(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	return strconv.Itoa(port)
}

func TestStart(t *testing.T) {
	t.Run("Stops when the context is canceled", func(t *testing.T) {
		// Given: a running server on a free port
		port := freePort(t)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan error, 1)
		go func() {
			done <- Start(ctx, port, http.NotFoundHandler())
		}()

		require.Eventually(t, func() bool {
			resp, err := http.Get("http://127.0.0.1:" + port + "/")
			if err != nil {
				return false
			}
			defer resp.Body.Close()

			return resp.StatusCode == http.StatusNotFound
		}, 2*time.Second, 10*time.Millisecond)

		// When: the context is canceled
		cancel()

		// Then: Start returns without error
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(shutdownTimeout + time.Second):
			t.Fatal("server did not shut down")
		}
	})

	t.Run("Reports a bad address", func(t *testing.T) {
		err := Start(context.Background(), "-1", http.NotFoundHandler())

		assert.Error(t, err)
	})
}
