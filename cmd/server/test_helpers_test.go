package main

import (
	"net/http/httptest"
	"testing"

	"github.com/phrazzld/todo-api/internal/config"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:                   "127.0.0.1",
			Port:                   3001,
			LogLevel:               "info",
			ShutdownTimeoutSeconds: 5,
		},
	}
}

// newTestApplication builds a fully wired application with a buffered logger.
func newTestApplication(t *testing.T) (*application, *logger.TestLogBuffer) {
	t.Helper()

	l, buf := logger.GetTestLogger(t)
	app, err := newApplication(testConfig(), l)
	require.NoError(t, err)
	return app, buf
}

// newTestServer serves the application's router over a real HTTP listener.
func newTestServer(t *testing.T) (*httptest.Server, *logger.TestLogBuffer) {
	t.Helper()

	app, buf := newTestApplication(t)
	srv := httptest.NewServer(app.setupRouter())
	t.Cleanup(srv.Close)
	return srv, buf
}
