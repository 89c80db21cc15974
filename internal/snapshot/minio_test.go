package snapshot

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"dimred/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// s3Stub serves the handful of path-style S3 calls the store makes.
type s3Stub struct {
	mu      sync.Mutex
	buckets map[string]map[string][]byte
}

func (s *s3Stub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bucket, key, _ := strings.Cut(strings.Trim(r.URL.Path, "/"), "/")
	objects, ok := s.buckets[bucket]

	switch {
	case key == "" && r.Method == http.MethodHead:
		if !ok {
			w.WriteHeader(http.StatusNotFound)
		}
	case key == "" && r.Method == http.MethodPut:
		s.buckets[bucket] = map[string][]byte{}
	case !ok:
		s3Error(w, "NoSuchBucket")
	case r.Method == http.MethodPut:
		data, err := io.ReadAll(r.Body)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		objects[key] = data
		w.Header().Set("ETag", `"0123456789abcdef"`)
	case r.Method == http.MethodGet:
		data, found := objects[key]
		if !found {
			s3Error(w, "NoSuchKey")
			return
		}
		w.Header().Set("Last-Modified", time.Now().UTC().Format(http.TimeFormat))
		w.Header().Set("Content-Length", strconv.Itoa(len(data)))
		w.Header().Set("ETag", `"0123456789abcdef"`)
		_, _ = w.Write(data)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func s3Error(w http.ResponseWriter, code string) {
	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusNotFound)
	_, _ = io.WriteString(w, `<?xml version="1.0" encoding="UTF-8"?><Error><Code>`+code+`</Code><Message>not found</Message></Error>`)
}

func startS3(t *testing.T) (*s3Stub, config.MinioCfg) {
	t.Helper()
	stub := &s3Stub{buckets: map[string]map[string][]byte{}}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)
	return stub, config.MinioCfg{
		Endpoint: strings.TrimPrefix(srv.URL, "http://"),
		Bucket:   "snapshots",
		Object:   "registry.snapshot",
		Region:   "us-east-1",
	}
}

func TestMinioStoreRoundTrip(t *testing.T) {
	stub, cfg := startS3(t)
	ctx := context.Background()

	s, err := NewMinioStore(ctx, cfg)
	require.NoError(t, err)
	stub.mu.Lock()
	assert.Contains(t, stub.buckets, "snapshots", "bucket created on open")
	stub.mu.Unlock()
	assert.Equal(t, "s3://snapshots/registry.snapshot", s.Location())

	_, err = s.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Save(ctx, []byte("first")))
	require.NoError(t, s.Save(ctx, []byte("second")))
	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)

	// a store opened on an existing bucket sees the same object
	again, err := NewMinioStore(ctx, cfg)
	require.NoError(t, err)
	got, err = again.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), got)
}

func TestMinioStoreBucketGone(t *testing.T) {
	stub, cfg := startS3(t)
	ctx := context.Background()

	s, err := NewMinioStore(ctx, cfg)
	require.NoError(t, err)
	stub.mu.Lock()
	delete(stub.buckets, "snapshots")
	stub.mu.Unlock()

	_, err = s.Load(ctx)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMinioMapErr(t *testing.T) {
	s := &MinioStore{bucket: "snapshots", object: "registry.snapshot"}

	for _, code := range []string{"NoSuchKey", "NoSuchBucket"} {
		err := s.mapErr(minio.ErrorResponse{Code: code, StatusCode: http.StatusNotFound})
		assert.ErrorIs(t, err, ErrNotFound, code)
	}

	denied := minio.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden}
	err := s.mapErr(denied)
	assert.NotErrorIs(t, err, ErrNotFound)
	var resp minio.ErrorResponse
	require.True(t, errors.As(err, &resp))
	assert.Equal(t, "AccessDenied", resp.Code)
}
