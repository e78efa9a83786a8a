package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/starwars-api/internal/config"
	"github.com/MKhiriev/starwars-api/internal/handler"
	"github.com/MKhiriev/starwars-api/internal/logger"
	"github.com/MKhiriev/starwars-api/internal/telemetry"
)

// Closer releases a resource once the HTTP server has stopped.
type Closer struct {
	Name  string
	Close func(ctx context.Context) error
}

// Option customizes a server built by NewServer.
type Option func(*server)

// WithCloser registers c to run on shutdown, after the listener is closed.
// Closers run in registration order.
func WithCloser(name string, close func(ctx context.Context) error) Option {
	return func(s *server) {
		s.closers = append(s.closers, Closer{Name: name, Close: close})
	}
}

type server struct {
	httpServer *httpServer
	closers    []Closer
	once       sync.Once
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger, opts ...Option) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoHandlers
	}

	s := &server{
		httpServer: newHTTPServer(telemetry.WrapHandler(handlers.HTTP.Init(), "starwars-api"), cfg, logger),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT arrives, then shuts
// down gracefully.
func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

func (s *server) run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
		s.Shutdown()
		<-errCh
	case err := <-errCh:
		s.Shutdown()
		if err != nil {
			return err
		}
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) Shutdown() {
	s.once.Do(func() {
		s.httpServer.Shutdown()

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		for _, c := range s.closers {
			if err := c.Close(ctx); err != nil {
				s.logger.Err(err).Str("resource", c.Name).Msg("error releasing resource")
			}
		}
	})
}
