package main

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/phrazzld/email-writer-api/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPServer(t *testing.T) {
	t.Parallel()

	app := &application{config: testConfig(), logger: discardLogger()}
	server := app.newHTTPServer(http.NotFoundHandler())

	assert.Equal(t, ":8000", server.Addr)
	assert.Equal(t, readHeaderTimeout, server.ReadHeaderTimeout)
	assert.Zero(t, server.WriteTimeout, "generation can be slow; no write deadline")
}

func TestStartHTTPServer_ShutsDownOnCancel(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Server.Port = 0
	app, err := newApplicationWithGenerator(cfg, discardLogger(), nil, mocks.NewMockGeneratorWithText("x"))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}
}

func TestStartHTTPServer_ListenFailure(t *testing.T) {
	t.Parallel()

	ln, err := net.Listen("tcp", ":0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = ln.Close() })

	cfg := testConfig()
	cfg.Server.Port = ln.Addr().(*net.TCPAddr).Port
	app, err := newApplicationWithGenerator(cfg, discardLogger(), nil, mocks.NewMockGeneratorWithText("x"))
	require.NoError(t, err)

	select {
	case err := <-runAsync(app):
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server failed")
	case <-time.After(5 * time.Second):
		t.Fatal("expected listen failure")
	}
}

func runAsync(app *application) <-chan error {
	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()
	return done
}
