package transport

import (
	"errors"
	"net"

	pb "dimred/api/proto/v1"
	"dimred/internal/config"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

type Server struct {
	grpc   *grpc.Server
	health *health.Server
	lis    net.Listener
}

// StartServer listens on cfg.Address. Serve must be called to accept calls.
func StartServer(cfg config.GRPCCfg, h pb.ReducerServer, obs RPCObserver) (*Server, error) {
	lis, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return nil, err
	}
	return NewServer(lis, cfg, h, obs), nil
}

// NewServer wires the Reducer, health and reflection services onto lis.
// obs may be nil.
func NewServer(lis net.Listener, cfg config.GRPCCfg, h pb.ReducerServer, obs RPCObserver) *Server {
	chain := []grpc.UnaryServerInterceptor{recoverUnary(), logUnary()}
	if obs != nil {
		chain = append(chain, metricsUnary(obs))
	}
	opts := []grpc.ServerOption{grpc.ChainUnaryInterceptor(chain...)}
	if cfg.Workers > 0 {
		opts = append(opts, grpc.NumStreamWorkers(cfg.Workers))
	}
	if cfg.MaxRecvMsgMB > 0 {
		opts = append(opts, grpc.MaxRecvMsgSize(cfg.MaxRecvMsgMB<<20))
	}
	if cfg.MaxConcurrentStreams > 0 {
		opts = append(opts, grpc.MaxConcurrentStreams(cfg.MaxConcurrentStreams))
	}

	s := &Server{
		grpc:   grpc.NewServer(opts...),
		health: health.NewServer(),
		lis:    lis,
	}
	pb.RegisterReducerServer(s.grpc, h)
	healthpb.RegisterHealthServer(s.grpc, s.health)
	reflection.Register(s.grpc)
	return s
}

func (s *Server) Addr() string { return s.lis.Addr().String() }

func (s *Server) Serve() error {
	s.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	s.health.SetServingStatus(pb.Reducer_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	// Stop may win the race against a fresh Serve on shutdown.
	if err := s.grpc.Serve(s.lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

func (s *Server) Stop() {
	s.health.Shutdown()
	s.grpc.GracefulStop()
}
