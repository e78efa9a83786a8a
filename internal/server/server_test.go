package server

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/starwars-api/internal/config"
	"github.com/MKhiriev/starwars-api/internal/handler"
	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/internal/service"
)

func newTestHandlers(t *testing.T) *handler.Handlers {
	t.Helper()
	handlers, err := handler.NewHandlers(&service.Services{}, config.StructuredConfig{}, logger.Nop())
	require.NoError(t, err)
	return handlers
}

func TestNewServer_RequiresHandler(t *testing.T) {
	s, err := NewServer(nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlers)
	assert.Nil(t, s)

	s, err = NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoHandlers)
	assert.Nil(t, s)
}

func TestServer_RunStopsOnContextAndRunsClosers(t *testing.T) {
	var closed []string
	s, err := NewServer(newTestHandlers(t), config.Server{Host: "127.0.0.1", Port: 0}, logger.Nop(),
		WithCloser("db", func(context.Context) error {
			closed = append(closed, "db")
			return nil
		}),
		WithCloser("tracing", func(context.Context) error {
			closed = append(closed, "tracing")
			return errors.New("exporter unreachable")
		}),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.(*server).run(ctx) }()

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	assert.Equal(t, []string{"db", "tracing"}, closed)

	// a second shutdown is a no-op
	s.Shutdown()
	assert.Len(t, closed, 2)
}

func TestServer_ListenFailureIsReturned(t *testing.T) {
	s, err := NewServer(newTestHandlers(t), config.Server{Host: "256.0.0.1", Port: 1}, logger.Nop())
	require.NoError(t, err)

	err = s.(*server).run(context.Background())

	assert.Error(t, err)
}
