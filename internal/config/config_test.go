package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"), "")
	require.NoError(t, err)

	assert.Equal(t, ":50051", cfg.GRPC.Address)
	assert.EqualValues(t, 10, cfg.GRPC.Workers)
	assert.Equal(t, 64, cfg.GRPC.MaxRecvMsgMB)
	assert.Equal(t, ":9100", cfg.Metrics.Address)
	assert.Equal(t, "file", cfg.Snapshot.Driver)
	assert.Equal(t, filepath.Join("models", "registry.snapshot"), cfg.Snapshot.Path)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Empty(t, cfg.Events.Sinks)
	assert.False(t, cfg.Source.Kafka.Enabled)
	assert.Equal(t, "sarama", cfg.Source.Kafka.Driver)
	assert.NotEmpty(t, cfg.InstallDir)
}

func TestLoadFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dimred.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
schema_version: v1
install_dir: /opt/dimred
grpc:
  address: 127.0.0.1:6000
  workers: 4
snapshot:
  path: data/reg.snap
  load_on_start: true
events:
  sinks: [stdout]
source:
  kafka:
    enabled: true
    brokers: [localhost:9092]
    topics: [dimred.train]
    commit_interval: 2s
`), 0o644))

	t.Setenv("DIMRED__GRPC__ADDRESS", "127.0.0.1:7000")
	t.Setenv("DIMRED__METRICS__ENABLED", "true")

	cfg, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:7000", cfg.GRPC.Address, "env overrides file")
	assert.EqualValues(t, 4, cfg.GRPC.Workers)
	assert.True(t, cfg.Metrics.Enabled)
	assert.True(t, cfg.Snapshot.LoadOnStart)
	assert.Equal(t, []string{"stdout"}, cfg.Events.Sinks)
	assert.True(t, cfg.Source.Kafka.Enabled)
	assert.Equal(t, []string{"dimred.train"}, cfg.Source.Kafka.Topics)
	assert.Equal(t, 2*time.Second, cfg.Source.Kafka.CommitInterval)
	assert.Equal(t, filepath.Join("/opt/dimred", "data", "reg.snap"), cfg.SnapshotPath())
}

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DIMRED__LOG__LEVEL=debug\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("DIMRED__LOG__LEVEL") })

	cfg, err := Load("", envFile)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	_, err = Load("", filepath.Join(dir, "absent.env"))
	assert.NoError(t, err)
}

func TestLoadRejectsSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dimred.yml")
	require.NoError(t, os.WriteFile(path, []byte("schema_version: v2\n"), 0o644))

	_, err := Load(path, "")
	assert.ErrorContains(t, err, "schema_version")
}

func TestSnapshotPathAbsolute(t *testing.T) {
	cfg := Config{InstallDir: "/opt/dimred", Snapshot: SnapshotCfg{Path: "/var/lib/reg.snap"}}
	assert.Equal(t, "/var/lib/reg.snap", cfg.SnapshotPath())
}
