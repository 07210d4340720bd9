package server

import (
	"fmt"
	"net"

	"github.com/MKhiriev/go-store-locator/internal/config"
	myGRPC "github.com/MKhiriev/go-store-locator/internal/handler/grpc"
	"github.com/MKhiriev/go-store-locator/internal/logger"
	"google.golang.org/grpc"
)

type grpcServer struct {
	address string
	server  *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(handler.LoggingInterceptor))
	handler.Register(server)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

// RunServer listens on the configured address and serves until Shutdown.
func (g *grpcServer) RunServer() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("gRPC server Listen: %w", err)
	}

	if err = g.server.Serve(listener); err != nil {
		return fmt.Errorf("gRPC server Serve: %w", err)
	}
	return nil
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.server.GracefulStop()
}
