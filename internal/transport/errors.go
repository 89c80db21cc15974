package transport

import (
	"context"
	"errors"

	"dimred/internal/matrix"
	"dimred/internal/registry"
	"dimred/internal/snapshot"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ErrorDomain = "dimred"

// Reasons carried in errdetails.ErrorInfo.
const (
	ReasonUnknownPipeline      = "UNKNOWN_PIPELINE"
	ReasonEmptyRegistry        = "EMPTY_REGISTRY"
	ReasonFitFailure           = "FIT_FAILURE"
	ReasonInvalidInput         = "INVALID_INPUT"
	ReasonSnapshotNotFound     = "SNAPSHOT_NOT_FOUND"
	ReasonSnapshotCorrupt      = "SNAPSHOT_CORRUPT"
	ReasonSnapshotIncompatible = "SNAPSHOT_INCOMPATIBLE"
	ReasonPersistence          = "PERSISTENCE_FAILURE"
)

// toStatus maps service errors onto gRPC status codes. Nothing below the
// transport knows about gRPC.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	code, reason := classify(err)
	if reason == "" {
		return status.Error(code, err.Error())
	}

	info := &errdetails.ErrorInfo{Reason: reason, Domain: ErrorDomain}
	var rerr *registry.Error
	if errors.As(err, &rerr) && rerr.Pipeline != "" {
		info.Metadata = map[string]string{"pipeline": rerr.Pipeline}
	}
	st, derr := status.New(code, err.Error()).WithDetails(info)
	if derr != nil {
		return status.Error(code, err.Error())
	}
	return st.Err()
}

func classify(err error) (codes.Code, string) {
	switch {
	case errors.Is(err, context.Canceled):
		return codes.Canceled, ""
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded, ""
	case errors.Is(err, registry.ErrUnknownPipeline):
		return codes.NotFound, ReasonUnknownPipeline
	case errors.Is(err, registry.ErrEmptyRegistry):
		return codes.FailedPrecondition, ReasonEmptyRegistry
	case errors.Is(err, registry.ErrFitFailure):
		return codes.InvalidArgument, ReasonFitFailure
	case errors.Is(err, registry.ErrInvalidInput), errors.Is(err, matrix.ErrRagged):
		return codes.InvalidArgument, ReasonInvalidInput
	case errors.Is(err, snapshot.ErrNotFound):
		return codes.NotFound, ReasonSnapshotNotFound
	case errors.Is(err, registry.ErrSnapshotCorrupt):
		return codes.DataLoss, ReasonSnapshotCorrupt
	case errors.Is(err, registry.ErrSnapshotIncompatible):
		return codes.DataLoss, ReasonSnapshotIncompatible
	case errors.Is(err, registry.ErrPersistence):
		return codes.Internal, ReasonPersistence
	default:
		return codes.Internal, ""
	}
}

// Reason extracts the ErrorInfo reason from a status error, or "".
func Reason(err error) string {
	st, ok := status.FromError(err)
	if !ok {
		return ""
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok && info.GetDomain() == ErrorDomain {
			return info.GetReason()
		}
	}
	return ""
}
