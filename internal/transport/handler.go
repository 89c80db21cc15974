package transport

import (
	"context"

	pb "dimred/api/proto/v1"
	"dimred/internal/matrix"
	"dimred/internal/registry"

	"google.golang.org/protobuf/types/known/emptypb"
)

// Handler adapts registry.Service to the Reducer gRPC service.
type Handler struct {
	pb.UnimplementedReducerServer
	svc *registry.Service
}

func NewHandler(svc *registry.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Fit(ctx context.Context, req *pb.FitRequest) (*emptypb.Empty, error) {
	m, err := matrix.FromProto(req.GetVectors())
	if err != nil {
		return nil, toStatus(err)
	}
	if err := h.svc.Fit(ctx, m); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *Handler) Transform(ctx context.Context, req *pb.TransformRequest) (*pb.VectorResponse, error) {
	m, err := matrix.FromProto(req.GetVectors())
	if err != nil {
		return nil, toStatus(err)
	}
	out, err := h.svc.Transform(ctx, req.GetModelName(), m)
	if err != nil {
		return nil, toStatus(err)
	}
	return &pb.VectorResponse{Vectors: out.ToProto()}, nil
}

func (h *Handler) Load(ctx context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	if err := h.svc.Load(ctx); err != nil {
		return nil, toStatus(err)
	}
	return &emptypb.Empty{}, nil
}

func (h *Handler) ListPipelines(ctx context.Context, _ *emptypb.Empty) (*pb.PipelineList, error) {
	l, err := h.svc.Pipelines(ctx)
	if err != nil {
		return nil, toStatus(err)
	}
	out := &pb.PipelineList{Generation: l.Generation}
	for _, p := range l.Pipelines {
		out.Pipelines = append(out.Pipelines, &pb.PipelineInfo{
			Name:      p.Name,
			Chain:     p.Chain,
			Steps:     p.Steps,
			InputDim:  int32(p.InputDim),
			OutputDim: int32(p.OutputDim),
		})
	}
	return out, nil
}
