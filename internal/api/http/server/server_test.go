package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingListener exposes the bound address of the listener it opens so
// the test can reach a server started on port 0.
type capturingListener struct {
	addr chan string
}

func (l *capturingListener) Listen(protocol, addr string) (net.Listener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	l.addr <- listener.Addr().String()
	return listener, nil
}

func TestHTTPServer_StartAndStop(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := NewHTTPServer(mux, "127.0.0.1:0")
	assert.Equal(t, "127.0.0.1:0", srv.Address())

	layer := &capturingListener{addr: make(chan string, 1)}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(layer)
	}()

	var addr string
	select {
	case addr = <-layer.addr:
	case <-time.After(5 * time.Second):
		t.Fatal("server did not start listening")
	}

	resp, err := http.Get(fmt.Sprintf("http://%s/ping", addr))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestHTTPServer_ListenFailure(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	srv := NewHTTPServer(http.NewServeMux(), busy.Addr().String())
	err = srv.Start(&plainLayer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to listen")
}

type plainLayer struct{}

func (l *plainLayer) Listen(protocol, addr string) (net.Listener, error) {
	return net.Listen("tcp", addr)
}
