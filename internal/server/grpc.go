package server

import (
	"context"
	"fmt"
	"net"

	"github.com/MKhiriev/dia-companion/internal/config"
	myGRPC "github.com/MKhiriev/dia-companion/internal/handler/grpc"
	"github.com/MKhiriev/dia-companion/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler
	address string

	server *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", g.address)
	if err != nil {
		return nil, fmt.Errorf("gRPC server listen on %s: %w", g.address, err)
	}
	return ln, nil
}

func (g *grpcServer) serve(ln net.Listener) {
	g.logger.Info().Str("address", ln.Addr().String()).Msg("gRPC server started")
	if err := g.server.Serve(ln); err != nil {
		g.logger.Err(err).Str("func", "*grpcServer.serve").Msg("gRPC server stopped with error")
	}
}

// Shutdown flips the health status to NOT_SERVING first so that watchers
// see the server leave before connections are drained. When ctx expires
// first, the remaining connections are closed.
func (g *grpcServer) Shutdown(ctx context.Context) {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-ctx.Done():
		g.server.Stop()
		<-stopped
	}
}
