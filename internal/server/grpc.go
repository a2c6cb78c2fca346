package server

import (
	"net"

	"github.com/MKhiriev/bpl-web-backend/internal/config"
	myGRPC "github.com/MKhiriev/bpl-web-backend/internal/handler/grpc"
	"github.com/MKhiriev/bpl-web-backend/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	address string
	server  *grpc.Server

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		address: cfg.GRPCAddress,
		server:  server,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return err
	}

	g.logger.Info().Str("address", g.address).Msg("gRPC server listening")
	return g.server.Serve(listener)
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.server.GracefulStop()
}
