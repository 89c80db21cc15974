package registry

import (
	"fmt"
	"slices"
	"time"

	pb "dimred/api/proto/v1"
	"dimred/internal/pipeline"
	"dimred/internal/transform"

	"gonum.org/v1/gonum/mat"
	"google.golang.org/protobuf/proto"
)

// FormatVersion is bumped whenever a snapshot written by an older build
// can no longer be restored.
const FormatVersion = 1

var marshalOpts = proto.MarshalOptions{Deterministic: true}

// Encode serialises r. Encoding the result of Decode yields the same bytes.
func Encode(r *Registry) ([]byte, error) {
	snap := &pb.Snapshot{
		FormatVersion:    FormatVersion,
		Generation:       r.generation,
		FittedAtUnixNano: r.fittedAt.UnixNano(),
		Pipelines:        make([]*pb.PipelineState, 0, r.Len()),
	}
	for _, p := range r.Pipelines() {
		_, chain := p.(*pipeline.Chain)
		ps := &pb.PipelineState{Name: p.Name(), Chain: chain}
		for _, st := range pipeline.States(p) {
			ps.Steps = append(ps.Steps, encodeStep(st))
		}
		snap.Pipelines = append(snap.Pipelines, ps)
	}
	return marshalOpts.Marshal(snap)
}

func encodeStep(st transform.State) *pb.StepState {
	out := &pb.StepState{
		Kind:       st.Kind,
		Components: int32(st.Params.Components),
		Seed:       st.Params.Seed,
		InputDim:   int32(st.InputDim),
		OutputDim:  int32(st.OutputDim),
		Offset:     st.Offset,
		Scale:      st.Scale,
	}
	if st.Projection != nil {
		r, c := st.Projection.Dims()
		out.Projection = &pb.DenseMatrix{
			Rows: int32(r),
			Cols: int32(c),
			Data: mat.DenseCopyOf(st.Projection).RawMatrix().Data,
		}
	}
	return out
}

// Decode restores a registry. Undecodable or inconsistent bytes yield
// ErrSnapshotCorrupt; a foreign format version or an unknown transform
// kind yields ErrSnapshotIncompatible.
func Decode(data []byte) (*Registry, error) {
	var snap pb.Snapshot
	if err := proto.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
	}
	if v := snap.GetFormatVersion(); v != FormatVersion {
		return nil, fmt.Errorf("%w: format version %d, want %d", ErrSnapshotIncompatible, v, FormatVersion)
	}
	if len(snap.GetPipelines()) == 0 {
		return nil, fmt.Errorf("%w: no pipelines", ErrSnapshotCorrupt)
	}

	kinds := transform.Kinds()
	seen := make(map[string]struct{}, len(snap.GetPipelines()))
	ps := make([]pipeline.Pipeline, 0, len(snap.GetPipelines()))
	for _, sp := range snap.GetPipelines() {
		if _, dup := seen[sp.GetName()]; dup || sp.GetName() == "" {
			return nil, fmt.Errorf("%w: bad pipeline name %q", ErrSnapshotCorrupt, sp.GetName())
		}
		seen[sp.GetName()] = struct{}{}

		states := make([]transform.State, 0, len(sp.GetSteps()))
		for _, ss := range sp.GetSteps() {
			if !slices.Contains(kinds, ss.GetKind()) {
				return nil, fmt.Errorf("%w: pipeline %s: unknown kind %q", ErrSnapshotIncompatible, sp.GetName(), ss.GetKind())
			}
			st, err := decodeStep(ss)
			if err != nil {
				return nil, fmt.Errorf("%w: pipeline %s: %v", ErrSnapshotCorrupt, sp.GetName(), err)
			}
			states = append(states, st)
		}
		p, err := pipeline.Restore(sp.GetName(), sp.GetChain(), states)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSnapshotCorrupt, err)
		}
		if len(ps) > 0 {
			if in, want := pipeline.Describe(p).InputDim, pipeline.Describe(ps[0]).InputDim; in != want {
				return nil, fmt.Errorf("%w: pipeline %s takes %d columns, %s takes %d",
					ErrSnapshotCorrupt, p.Name(), in, ps[0].Name(), want)
			}
		}
		ps = append(ps, p)
	}
	return newRegistry(snap.GetGeneration(), time.Unix(0, snap.GetFittedAtUnixNano()), ps), nil
}

func decodeStep(ss *pb.StepState) (transform.State, error) {
	st := transform.State{
		Kind:      ss.GetKind(),
		Params:    transform.Params{Components: int(ss.GetComponents()), Seed: ss.GetSeed()},
		InputDim:  int(ss.GetInputDim()),
		OutputDim: int(ss.GetOutputDim()),
		Offset:    ss.GetOffset(),
		Scale:     ss.GetScale(),
	}
	if dm := ss.GetProjection(); dm != nil {
		r, c := int(dm.GetRows()), int(dm.GetCols())
		if r < 1 || c < 1 || len(dm.GetData()) != r*c {
			return st, fmt.Errorf("projection %dx%d with %d values", r, c, len(dm.GetData()))
		}
		st.Projection = mat.NewDense(r, c, dm.GetData())
	}
	return st, nil
}
