package server

import (
	"context"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/dia-companion/internal/config"
	"github.com/MKhiriev/dia-companion/internal/handler"
	"github.com/MKhiriev/dia-companion/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

// RunServer opens every listener before serving on any of them, so a busy
// port fails the start as a whole.
func (s *server) RunServer(ctx context.Context) error {
	var httpListener, grpcListener net.Listener
	var err error

	if s.httpServer != nil {
		if httpListener, err = s.httpServer.listen(); err != nil {
			return err
		}
	}
	if s.gRPCServer != nil {
		if grpcListener, err = s.gRPCServer.listen(); err != nil {
			if httpListener != nil {
				httpListener.Close()
			}
			return err
		}
	}

	var wg sync.WaitGroup
	if httpListener != nil {
		wg.Go(func() { s.httpServer.serve(httpListener) })
	}
	if grpcListener != nil {
		wg.Go(func() { s.gRPCServer.serve(grpcListener) })
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	s.Shutdown(shutdownCtx)

	wg.Wait()
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

func (s *server) Shutdown(ctx context.Context) {
	if s.httpServer != nil {
		s.httpServer.Shutdown(ctx)
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown(ctx)
	}
}
