package miner

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the YAML form of the discovery options.
//
//	strict_sequence: true
//	fall_throughs: true
//	noise_threshold: 0.2
//	max_depth: 12
//	parallelism: 4
//	fold: false
//	log_level: debug
type Config struct {
	StrictSequence bool    `yaml:"strict_sequence"`
	FallThroughs   bool    `yaml:"fall_throughs"`
	NoiseThreshold float64 `yaml:"noise_threshold"`
	MaxDepth       int     `yaml:"max_depth"`
	Parallelism    int     `yaml:"parallelism"` // 0 keeps the default
	Fold           *bool   `yaml:"fold"`        // nil keeps the default
	LogLevel       string  `yaml:"log_level"`   // empty keeps the discarding logger
}

// ParseConfig decodes a YAML document. Empty input yields the zero Config.
func ParseConfig(data []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("miner: parsing config: %w", err)
	}

	return c, nil
}

// LoadConfig reads and decodes a YAML document from r.
func LoadConfig(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("miner: reading config: %w", err)
	}

	return ParseConfig(data)
}

// Options converts c into functional options. A set log_level installs a text
// logger on stderr at that level.
func (c Config) Options() []Option {
	var opts []Option
	if c.StrictSequence {
		opts = append(opts, WithStrictSequence())
	}
	if c.FallThroughs {
		opts = append(opts, WithFallThroughs())
	}
	if c.NoiseThreshold != 0 {
		opts = append(opts, WithNoiseThreshold(c.NoiseThreshold))
	}
	if c.MaxDepth != 0 {
		opts = append(opts, WithMaxDepth(c.MaxDepth))
	}
	if c.Parallelism != 0 {
		opts = append(opts, WithParallelism(c.Parallelism))
	}
	if c.Fold != nil && !*c.Fold {
		opts = append(opts, WithoutFold())
	}
	if c.LogLevel != "" {
		h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: ParseLevel(c.LogLevel)})
		opts = append(opts, WithLogger(slog.New(h)))
	}

	return opts
}

// ParseLevel converts "debug", "info", "warn" or "error" to a slog.Level.
// Unknown strings default to LevelInfo.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
