package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"

	"github.com/MKhiriev/bpl-web-backend/internal/config"
	"github.com/MKhiriev/bpl-web-backend/internal/handler"
	"github.com/MKhiriev/bpl-web-backend/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.StructuredConfig, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.Server.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg.Server, cfg.CORS, logger)
	}
	if cfg.Server.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg.Server, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

func (s *server) transports() []transport {
	var transports []transport
	if s.httpServer != nil {
		transports = append(transports, s.httpServer)
	}
	if s.gRPCServer != nil {
		transports = append(transports, s.gRPCServer)
	}
	return transports
}

// run serves every transport until a stop signal arrives or one of them
// fails, then shuts all of them down.
func (s *server) run() error {
	transports := s.transports()
	if len(transports) == 0 {
		return errNoServersAreCreated
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	for _, t := range transports {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := t.RunServer(); err != nil {
				once.Do(func() { firstErr = err })
				// a transport that cannot serve stops the others
				stop()
			}
		}()
	}

	<-ctx.Done()
	s.Shutdown()
	wg.Wait()

	s.logger.Info().Msg("server Shutdown gracefully")

	return firstErr
}
