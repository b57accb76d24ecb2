// Package grpc exposes the services over the eterbox.v1 Auth, Vault and
// Admin gRPC services. Every call passes
// the auth interceptor, which applies the per-method policy through
// guard.Authorize before a handler runs.
package grpc

import (
	"context"
	"net"

	"github.com/dmitrijs2005/eterbox/internal/logging"
	pb "github.com/dmitrijs2005/eterbox/internal/proto"
	"google.golang.org/grpc"
)

// Services bundles what the handlers call. The concrete implementations
// live in internal/server/services.
type Services struct {
	Auth      AuthService
	Sessions  SessionValidator
	TwoFactor TwoFactorService
	WebAuthn  WebAuthnService
	Envelopes EnvelopeService
	Admin     AdminService
}

type GRPCServer struct {
	pb.UnimplementedAuthServiceServer
	pb.UnimplementedVaultServiceServer
	pb.UnimplementedAdminServiceServer
	address string
	svc     Services
	logger  logging.Logger
}

func NewGRPCServer(address string, l logging.Logger, svc Services) *GRPCServer {
	return &GRPCServer{
		address: address,
		svc:     svc,
		logger:  l.With("module", "grpc_server"),
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.authInterceptor))
	pb.RegisterAuthServiceServer(srv, s)
	pb.RegisterVaultServiceServer(srv, s)
	pb.RegisterAdminServiceServer(srv, s)
	return srv
}

// Run listens on the configured address and serves until ctx is done.
func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis and stops gracefully when ctx is done.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
