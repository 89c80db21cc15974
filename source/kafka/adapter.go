// Package kafka feeds training matrices from a Kafka topic into the registry.
// Each message value is a serialized dimred.v1.FitRequest.
package kafka

import (
	"context"

	pb "dimred/api/proto/v1"
)

// FitFunc fits the registry on one request.
type FitFunc func(context.Context, *pb.FitRequest) error

type Adapter interface {
	Configure(Config) error
	Run(context.Context, FitFunc) error
	Close() error
}
