package server

import (
	"context"
	"fmt"
	"net"

	myGRPC "github.com/MKhiriev/go-column-client/internal/handler/grpc"
	"github.com/MKhiriev/go-column-client/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, address string, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", address, err)
	}

	s := grpc.NewServer()
	handler.Register(s)

	return &grpcServer{
		handler:         handler,
		server:          s,
		gRPCNetListener: listener,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	g.handler.RefreshHealth(context.Background())

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Msgf("gRPC server Serve: %v", err)
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.handler.Shutdown()
	g.server.GracefulStop()
}
