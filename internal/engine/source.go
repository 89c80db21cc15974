package engine

import (
	"context"
	"fmt"

	pb "dimred/api/proto/v1"
	"dimred/internal/config"
	"dimred/internal/matrix"
	"dimred/internal/registry"
	"dimred/source/kafka"
)

func openSource(cfg config.KafkaSourceCfg) (kafka.Adapter, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	src, err := kafka.NewAdapter(cfg.Driver)
	if err != nil {
		return nil, err
	}
	err = src.Configure(kafka.Config{
		Brokers:        cfg.Brokers,
		Topics:         cfg.Topics,
		GroupID:        cfg.GroupID,
		StartFrom:      cfg.StartFrom,
		Version:        cfg.Version,
		TLSEn:          cfg.TLSEn,
		SASLUser:       cfg.SASLUser,
		SASLPass:       cfg.SASLPass,
		CommitInterval: cfg.CommitInterval,
		RetryBackoff:   cfg.RetryBackoff,
	})
	if err != nil {
		return nil, fmt.Errorf("kafka source: %w", err)
	}
	return src, nil
}

// fitFrom adapts Service.Fit to the wire request the source delivers.
func fitFrom(svc *registry.Service) kafka.FitFunc {
	return func(ctx context.Context, req *pb.FitRequest) error {
		m, err := matrix.FromProto(req.GetVectors())
		if err != nil {
			return err
		}
		return svc.Fit(ctx, m)
	}
}
