package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix scopes environment overrides, e.g. DIMRED__GRPC__ADDRESS=:50051.
const EnvPrefix = "DIMRED__"

type GRPCCfg struct {
	Address              string `koanf:"address"`
	Workers              uint32 `koanf:"workers"` // server worker pool size
	MaxRecvMsgMB         int    `koanf:"max_recv_msg_mb"`
	MaxConcurrentStreams uint32 `koanf:"max_concurrent_streams"`
}

type MetricsCfg struct {
	Enabled bool   `koanf:"enabled"`
	Address string `koanf:"address"`
}

type LogCfg struct {
	Level string `koanf:"level"`
	JSON  bool   `koanf:"json"`
}

type MinioCfg struct {
	Endpoint  string `koanf:"endpoint"`
	AccessKey string `koanf:"access_key"`
	SecretKey string `koanf:"secret_key"`
	Bucket    string `koanf:"bucket"`
	Object    string `koanf:"object"`
	Region    string `koanf:"region"`
	UseSSL    bool   `koanf:"use_ssl"`
}

type SnapshotCfg struct {
	Driver      string   `koanf:"driver"` // file|minio
	Path        string   `koanf:"path"`   // relative to install_dir unless absolute
	LoadOnStart bool     `koanf:"load_on_start"`
	Minio       MinioCfg `koanf:"minio"`
}

type KafkaCfg struct {
	Brokers []string `koanf:"brokers"`
	Topic   string   `koanf:"topic"`
	Acks    int16    `koanf:"required_acks"` // 0,1,-1
	Version string   `koanf:"version"`
}

type EventsCfg struct {
	Sinks []string `koanf:"sinks"` // stdout, kafka
	Kafka KafkaCfg `koanf:"kafka"`
}

type KafkaSourceCfg struct {
	Enabled        bool          `koanf:"enabled"`
	Driver         string        `koanf:"driver"`
	Brokers        []string      `koanf:"brokers"`
	Topics         []string      `koanf:"topics"`
	GroupID        string        `koanf:"group_id"`
	StartFrom      string        `koanf:"start_from"` // oldest|newest
	Version        string        `koanf:"version"`
	TLSEn          bool          `koanf:"tls_enabled"`
	SASLUser       string        `koanf:"sasl_user"`
	SASLPass       string        `koanf:"sasl_pass"`
	CommitInterval time.Duration `koanf:"commit_interval"`
	RetryBackoff   time.Duration `koanf:"retry_backoff"`
}

// SourceCfg configures optional training-data feeds.
type SourceCfg struct {
	Kafka KafkaSourceCfg `koanf:"kafka"`
}

type Config struct {
	SchemaVersion string `koanf:"schema_version"`

	InstallDir string `koanf:"install_dir"`
	Catalog    string `koanf:"catalog"` // empty = built-in

	GRPC     GRPCCfg     `koanf:"grpc"`
	Metrics  MetricsCfg  `koanf:"metrics"`
	Log      LogCfg      `koanf:"log"`
	Snapshot SnapshotCfg `koanf:"snapshot"`
	Events   EventsCfg   `koanf:"events"`
	Source   SourceCfg   `koanf:"source"`

	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Load reads envFile (if present) into the process environment, then merges
// the YAML at path (if present) with DIMRED__ environment variables.
func Load(path, envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	k := koanf.New(".")
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil &&
			!errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}
	sv := k.String("schema_version")
	if sv != "" && sv != SupportedSchema {
		return Config{}, fmt.Errorf("config schema_version %q not supported (want %s)", sv, SupportedSchema)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, err
	}
	if err := applyDefaults(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// envKey maps DIMRED__SNAPSHOT__LOAD_ON_START to snapshot.load_on_start.
func envKey(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
}

// SnapshotPath is the fixed location of the file snapshot.
func (c Config) SnapshotPath() string {
	if filepath.IsAbs(c.Snapshot.Path) {
		return c.Snapshot.Path
	}
	return filepath.Join(c.InstallDir, c.Snapshot.Path)
}

// ---------------------------------------------------------------------------
// defaults
// ---------------------------------------------------------------------------

func applyDefaults(c *Config) error {
	if c.SchemaVersion == "" {
		c.SchemaVersion = SupportedSchema
	}
	if c.InstallDir == "" {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("resolve install dir: %w", err)
		}
		c.InstallDir = filepath.Dir(exe)
	}
	if c.GRPC.Address == "" {
		c.GRPC.Address = ":50051"
	}
	if c.GRPC.Workers == 0 {
		c.GRPC.Workers = 10
	}
	if c.GRPC.MaxRecvMsgMB == 0 {
		c.GRPC.MaxRecvMsgMB = 64
	}
	if c.Metrics.Address == "" {
		c.Metrics.Address = ":9100"
	}
	if c.Snapshot.Driver == "" {
		c.Snapshot.Driver = "file"
	}
	if c.Snapshot.Path == "" {
		c.Snapshot.Path = filepath.Join("models", "registry.snapshot")
	}
	if c.Snapshot.Minio.Object == "" {
		c.Snapshot.Minio.Object = "registry.snapshot"
	}
	if c.Events.Kafka.Version == "" {
		c.Events.Kafka.Version = "2.8.0"
	}
	if c.Events.Kafka.Topic == "" {
		c.Events.Kafka.Topic = "dimred.registry"
	}
	if c.Source.Kafka.Driver == "" {
		c.Source.Kafka.Driver = "sarama"
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 10 * time.Second
	}
	return nil
}
