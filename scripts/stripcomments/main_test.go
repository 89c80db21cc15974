package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const commented = `// Code generated by protoc-gen-go. DO NOT EDIT.

package pb

// Snapshot is the persisted registry.
type Snapshot struct {
	// generation id
	Generation string // trailing
}
`

func TestStripFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "registry.pb.go")
	require.NoError(t, os.WriteFile(path, []byte(commented), 0o644))

	changed, err := stripFile(path, true)
	require.NoError(t, err)
	assert.True(t, changed)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, commented, string(raw), "check mode leaves the file alone")

	changed, err = stripFile(path, false)
	require.NoError(t, err)
	assert.True(t, changed)
	raw, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "//")
	assert.Contains(t, string(raw), "Generation string")

	changed, err = stripFile(path, false)
	require.NoError(t, err)
	assert.False(t, changed, "stripping is idempotent")
}

func TestIsGenerated(t *testing.T) {
	assert.True(t, isGenerated("api/proto/v1/reducer_grpc.pb.go"))
	assert.False(t, isGenerated("api/proto/v1/gen.go"))
}
