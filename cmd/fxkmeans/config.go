package main

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hupe1980/fxkmeans"
	"github.com/hupe1980/fxkmeans/distance"
	"github.com/hupe1980/fxkmeans/internal/compress"
	"github.com/spf13/pflag"
)

// config is the CLI configuration. It is read from an optional TOML file;
// flags that were set explicitly take precedence over file values.
type config struct {
	Clustering    fxkmeans.Config `toml:"clustering"`
	Seed          uint64          `toml:"seed"`
	Workers       int             `toml:"workers"`
	MaxIterations int             `toml:"max_iterations"`
	Log           logConfig       `toml:"log"`
	Store         storeConfig     `toml:"store"`
	Metrics       metricsConfig   `toml:"metrics"`
}

type logConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type metricsConfig struct {
	Textfile string `toml:"textfile"`
}

type storeConfig struct {
	Dir         string      `toml:"dir"`
	Compression string      `toml:"compression"`
	IOLimit     int64       `toml:"io_limit"`
	S3          s3Config    `toml:"s3"`
	MinIO       minioConfig `toml:"minio"`
}

type s3Config struct {
	Bucket   string `toml:"bucket"`
	Prefix   string `toml:"prefix"`
	Region   string `toml:"region"`
	DDBTable string `toml:"ddb_table"`
}

type minioConfig struct {
	Endpoint  string `toml:"endpoint"`
	Bucket    string `toml:"bucket"`
	Prefix    string `toml:"prefix"`
	AccessKey string `toml:"access_key"`
	SecretKey string `toml:"secret_key"`
	Secure    bool   `toml:"secure"`
}

func defaultConfig() config {
	return config{
		Clustering: fxkmeans.DefaultConfig(),
		Seed:       fxkmeans.DefaultSeed,
		Workers:    1,
		Log: logConfig{
			Level:  "warn",
			Format: "text",
		},
	}
}

// loadConfig decodes the TOML file at path over cfg. Unknown keys are errors.
func loadConfig(path string, cfg *config) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

// applyConfigFile loads path into cfg and then replays the flags the user set,
// so explicit flags win over file values.
func applyConfigFile(flags *pflag.FlagSet, path string, cfg *config) error {
	changed := map[string]string{}
	flags.Visit(func(f *pflag.Flag) {
		changed[f.Name] = f.Value.String()
	})

	if err := loadConfig(path, cfg); err != nil {
		return err
	}

	for name, value := range changed {
		if err := flags.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}

func (c storeConfig) compressionType() (compress.Type, error) {
	return compress.ParseType(c.Compression)
}

// metricValue adapts distance.Metric to pflag.Value.
type metricValue struct {
	m *distance.Metric
}

func (v metricValue) String() string {
	if v.m == nil {
		return ""
	}
	return strings.ToLower(v.m.String())
}

func (v metricValue) Set(s string) error {
	m, err := distance.ParseMetric(s)
	if err != nil {
		return err
	}
	*v.m = m
	return nil
}

func (metricValue) Type() string { return "metric" }
