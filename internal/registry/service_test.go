package registry

import (
	"context"
	"crypto/sha256"
	"errors"
	"math"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	pb "dimred/api/proto/v1"
	"dimred/internal/config"
	"dimred/internal/matrix"
	"dimred/internal/pipeline"
	"dimred/internal/snapshot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

/* ---------- fakes ---------- */

type memStore struct {
	mu      sync.Mutex
	data    []byte
	saveErr error
	saves   int
}

func (m *memStore) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data = append([]byte(nil), data...)
	m.saves++
	return nil
}

func (m *memStore) Load(context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, snapshot.ErrNotFound
	}
	return append([]byte(nil), m.data...), nil
}

func (m *memStore) Location() string { return "mem" }

func (m *memStore) sum() [32]byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return sha256.Sum256(m.data)
}

type captureEvents struct {
	mu     sync.Mutex
	events []*pb.RegistryEvent
}

func (c *captureEvents) Publish(ev *pb.RegistryEvent) {
	c.mu.Lock()
	c.events = append(c.events, ev)
	c.mu.Unlock()
}

type countObserver struct {
	fits, fitErrs, swaps int
}

func (c *countObserver) ObserveFit(_ time.Duration, err error) {
	c.fits++
	if err != nil {
		c.fitErrs++
	}
}
func (c *countObserver) RegistrySwapped(int, time.Time) { c.swaps++ }

func newTestService(t *testing.T) (*Service, *memStore, *captureEvents) {
	t.Helper()
	st := &memStore{}
	ev := &captureEvents{}
	return NewService(Options{Catalog: config.DefaultCatalog(), Store: st, Events: ev}), st, ev
}

func randMatrix(t *testing.T, rows, cols int, seed uint64) matrix.Matrix {
	t.Helper()
	rng := rand.New(rand.NewPCG(seed, 99))
	data := make([][]float64, rows)
	for i := range data {
		data[i] = make([]float64, cols)
		for j := range data[i] {
			data[i][j] = rng.Float64()*10 - 5
		}
	}
	m, err := matrix.FromRows(data)
	require.NoError(t, err)
	return m
}

var deterministic = []string{"pca", "random_projection", "scaled_pca"}

/* ---------- tests ---------- */

func TestTransformEveryPipelineKeepsRowCount(t *testing.T) {
	for _, rows := range []int{1, 3, 25} {
		svc, _, _ := newTestService(t)
		m := randMatrix(t, rows, 4, uint64(rows))
		require.NoError(t, svc.Fit(context.Background(), m))

		for _, name := range config.DefaultCatalog().Names() {
			out, err := svc.Transform(context.Background(), name, m)
			require.NoError(t, err, name)
			assert.Equal(t, rows, out.Rows(), name)
			assert.Equal(t, 2, out.Cols(), name)
		}
	}
}

func TestTransformUnknownPipeline(t *testing.T) {
	svc, _, _ := newTestService(t)
	require.NoError(t, svc.Fit(context.Background(), randMatrix(t, 10, 4, 1)))

	_, err := svc.Transform(context.Background(), "umap", randMatrix(t, 2, 4, 2))
	require.ErrorIs(t, err, ErrUnknownPipeline)

	var rerr *Error
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, "transform", rerr.Op)
	assert.Equal(t, "umap", rerr.Pipeline)
	assert.Equal(t, "registry transform: unknown pipeline (umap)", err.Error())
}

func TestEmptyRegistry(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Transform(context.Background(), "pca", randMatrix(t, 2, 4, 1))
	assert.ErrorIs(t, err, ErrEmptyRegistry)

	_, err = svc.Pipelines(context.Background())
	assert.ErrorIs(t, err, ErrEmptyRegistry)
	assert.Nil(t, svc.Current())
}

func TestLoadAfterFitIsEquivalent(t *testing.T) {
	svc, store, _ := newTestService(t)
	m := randMatrix(t, 20, 4, 3)
	require.NoError(t, svc.Fit(context.Background(), m))

	before := map[string]matrix.Matrix{}
	for _, name := range config.DefaultCatalog().Names() {
		out, err := svc.Transform(context.Background(), name, m)
		require.NoError(t, err)
		before[name] = out
	}
	gen := svc.Current().Generation()

	fresh := NewService(Options{Catalog: config.DefaultCatalog(), Store: store})
	require.NoError(t, fresh.Load(context.Background()))
	assert.Equal(t, gen, fresh.Current().Generation())

	for _, name := range config.DefaultCatalog().Names() {
		out, err := fresh.Transform(context.Background(), name, m)
		require.NoError(t, err)
		assert.Equal(t, before[name].Rows(), out.Rows())
		assert.Equal(t, before[name].Cols(), out.Cols())
	}
	for _, name := range deterministic {
		out, err := fresh.Transform(context.Background(), name, m)
		require.NoError(t, err)
		assert.Equal(t, before[name].ToRows(), out.ToRows(), name)
	}
}

func TestFitLoadLoadIsIdempotent(t *testing.T) {
	svc, store, _ := newTestService(t)
	require.NoError(t, svc.Fit(context.Background(), randMatrix(t, 10, 4, 4)))
	fitted := store.sum()

	require.NoError(t, svc.Load(context.Background()))
	first, err := Encode(svc.Current())
	require.NoError(t, err)

	require.NoError(t, svc.Load(context.Background()))
	second, err := Encode(svc.Current())
	require.NoError(t, err)

	assert.Equal(t, fitted, store.sum())
	assert.Equal(t, fitted, sha256.Sum256(first))
	assert.Equal(t, first, second)
	assert.Equal(t, 1, store.saves, "Load never rewrites the snapshot")
}

func TestSecondFitReplaces(t *testing.T) {
	svc, _, _ := newTestService(t)
	m1 := randMatrix(t, 10, 4, 5)
	m2 := randMatrix(t, 15, 4, 6)

	require.NoError(t, svc.Fit(context.Background(), m1))
	gen1 := svc.Current().Generation()
	require.NoError(t, svc.Fit(context.Background(), m2))
	assert.NotEqual(t, gen1, svc.Current().Generation())

	ref := NewService(Options{Catalog: config.DefaultCatalog(), Store: &memStore{}})
	require.NoError(t, ref.Fit(context.Background(), m2))

	for _, name := range deterministic {
		got, err := svc.Transform(context.Background(), name, m1)
		require.NoError(t, err)
		want, err := ref.Transform(context.Background(), name, m1)
		require.NoError(t, err)
		assert.Equal(t, want.ToRows(), got.ToRows(), name)
	}
}

func TestFitFailureKeepsPreviousRegistry(t *testing.T) {
	svc, store, ev := newTestService(t)
	obs := &countObserver{}
	svc.obs = obs

	require.NoError(t, svc.Fit(context.Background(), randMatrix(t, 10, 4, 7)))
	prev, sum := svc.Current(), store.sum()

	bad, err := matrix.FromRows([][]float64{{1, 2}, {math.NaN(), 4}})
	require.NoError(t, err)
	err = svc.Fit(context.Background(), bad)
	require.ErrorIs(t, err, ErrFitFailure)

	err = svc.Fit(context.Background(), matrix.Matrix{})
	require.ErrorIs(t, err, ErrFitFailure)

	assert.Same(t, prev, svc.Current())
	assert.Equal(t, sum, store.sum())
	assert.Len(t, ev.events, 1)
	assert.Equal(t, 3, obs.fits)
	assert.Equal(t, 2, obs.fitErrs)
	assert.Equal(t, 1, obs.swaps)
}

func TestFitPersistFailure(t *testing.T) {
	svc, store, ev := newTestService(t)
	store.saveErr = errors.New("disk full")

	err := svc.Fit(context.Background(), randMatrix(t, 10, 4, 8))
	require.ErrorIs(t, err, ErrPersistence)
	assert.ErrorContains(t, err, "disk full")
	assert.Nil(t, svc.Current())
	assert.Empty(t, ev.events)
}

func TestLoadFailures(t *testing.T) {
	svc, store, _ := newTestService(t)

	err := svc.Load(context.Background())
	require.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, snapshot.ErrNotFound)

	store.data = []byte("definitely not protobuf")
	err = svc.Load(context.Background())
	require.ErrorIs(t, err, ErrPersistence)
	assert.ErrorIs(t, err, ErrSnapshotCorrupt)

	store.data, err = marshalOpts.Marshal(&pb.Snapshot{FormatVersion: 7})
	require.NoError(t, err)
	err = svc.Load(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotIncompatible)

	store.data, err = marshalOpts.Marshal(&pb.Snapshot{
		FormatVersion: FormatVersion,
		Pipelines: []*pb.PipelineState{{
			Name:  "umap",
			Steps: []*pb.StepState{{Kind: "umap", InputDim: 4, OutputDim: 2}},
		}},
	})
	require.NoError(t, err)
	err = svc.Load(context.Background())
	assert.ErrorIs(t, err, ErrSnapshotIncompatible)

	assert.Nil(t, svc.Current())
}

func TestLoadRejectsMismatchedWidths(t *testing.T) {
	snapshotOf := func(cols int) *pb.Snapshot {
		svc, store, _ := newTestService(t)
		require.NoError(t, svc.Fit(context.Background(), randMatrix(t, 10, cols, 3)))
		var snap pb.Snapshot
		require.NoError(t, proto.Unmarshal(store.data, &snap))
		return &snap
	}
	index := func(s *pb.Snapshot, name string) int {
		for i, p := range s.GetPipelines() {
			if p.GetName() == name {
				return i
			}
		}
		t.Fatalf("no pipeline %s", name)
		return -1
	}
	wide, narrow := snapshotOf(4), snapshotOf(3)

	// chain whose second step was fitted on a different width
	broken := proto.Clone(wide).(*pb.Snapshot)
	chain := broken.Pipelines[index(broken, "scaled_pca")]
	chain.Steps[1] = narrow.Pipelines[index(narrow, "scaled_pca")].GetSteps()[1]

	// pipelines that disagree on the input width
	mixed := proto.Clone(wide).(*pb.Snapshot)
	mixed.Pipelines[index(mixed, "pca")] = narrow.Pipelines[index(narrow, "pca")]

	for name, snap := range map[string]*pb.Snapshot{"chain": broken, "widths": mixed} {
		t.Run(name, func(t *testing.T) {
			svc, store, _ := newTestService(t)
			data, err := marshalOpts.Marshal(snap)
			require.NoError(t, err)
			store.data = data

			err = svc.Load(context.Background())
			require.ErrorIs(t, err, ErrPersistence)
			assert.ErrorIs(t, err, ErrSnapshotCorrupt)
			assert.Nil(t, svc.Current())
		})
	}
}

func TestTransformInputChecks(t *testing.T) {
	svc, _, _ := newTestService(t)
	require.NoError(t, svc.Fit(context.Background(), randMatrix(t, 10, 4, 9)))

	_, err := svc.Transform(context.Background(), "scaled_pca", randMatrix(t, 3, 5, 1))
	assert.ErrorIs(t, err, ErrInvalidInput)

	out, err := svc.Transform(context.Background(), "scaled_pca", matrix.Matrix{})
	require.NoError(t, err)
	assert.Zero(t, out.Rows())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Transform(ctx, "scaled_pca", randMatrix(t, 3, 4, 1))
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrInvalidInput)
}

func TestPipelinesAndEvents(t *testing.T) {
	svc, _, ev := newTestService(t)
	require.NoError(t, svc.Fit(context.Background(), randMatrix(t, 10, 4, 10)))
	require.NoError(t, svc.Load(context.Background()))

	l, err := svc.Pipelines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, svc.Current().Generation(), l.Generation)
	require.Len(t, l.Pipelines, 4)
	assert.Equal(t, pipeline.Info{
		Name: "scaled_pca", Chain: true, Steps: []string{"standard_scaler", "pca"}, InputDim: 4, OutputDim: 2,
	}, l.Pipelines[2])

	require.Len(t, ev.events, 2)
	assert.Equal(t, EventFit, ev.events[0].GetType())
	assert.EqualValues(t, 10, ev.events[0].GetRows())
	assert.EqualValues(t, 4, ev.events[0].GetCols())
	assert.Equal(t, EventLoad, ev.events[1].GetType())
	assert.Equal(t, ev.events[0].GetGeneration(), ev.events[1].GetGeneration())
	assert.Equal(t, config.DefaultCatalog().Names(), ev.events[1].GetPipelines())
}

func TestWriterRespectsContext(t *testing.T) {
	svc, _, _ := newTestService(t)
	require.True(t, svc.writer.TryAcquire(1))
	defer svc.writer.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, svc.Fit(ctx, randMatrix(t, 4, 4, 1)), context.DeadlineExceeded)
	assert.ErrorIs(t, svc.Load(ctx), context.DeadlineExceeded)
}

func TestConcurrentTransformDuringFit(t *testing.T) {
	svc, _, _ := newTestService(t)
	m := randMatrix(t, 30, 4, 11)
	require.NoError(t, svc.Fit(context.Background(), m))

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				out, err := svc.Transform(context.Background(), "scaled_pca", m)
				if assert.NoError(t, err) {
					assert.Equal(t, 30, out.Rows())
				}
			}
		}()
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, svc.Fit(context.Background(), randMatrix(t, 30, 4, uint64(20+i))))
	}
	wg.Wait()
}
