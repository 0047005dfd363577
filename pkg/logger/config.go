package logger

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config describes the logging setup built by Setup.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error, fatal).
	Level string `yaml:"level"`
	// FilePath is the path to the log file. Empty means no file logging.
	FilePath string `yaml:"file_path"`
	// MaxSizeBytes is the rotation trigger (default: 25 MiB).
	MaxSizeBytes int64 `yaml:"max_size_bytes"`
	// MaxRotatedFiles is the retention bound (default: 10).
	MaxRotatedFiles int `yaml:"max_rotated_files"`
	// Console whether to also write to stdout (default: true).
	Console bool `yaml:"console"`
}

// DefaultConfig returns sensible defaults: console logging at info,
// no file sink.
func DefaultConfig() Config {
	return Config{
		Level:           "info",
		MaxSizeBytes:    DefaultMaxSizeBytes,
		MaxRotatedFiles: DefaultMaxRotatedFiles,
		Console:         true,
	}
}

// ParseConfig decodes a YAML document over DefaultConfig, so omitted
// keys keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse logging config: %w", err)
	}
	return cfg, nil
}

// LoadConfig reads a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read logging config: %w", err)
	}
	return ParseConfig(data)
}

// Setup builds a logger from cfg and returns it with a cleanup function
// that closes any file sink. With both console and file enabled the two
// sinks are composed behind a Fanout; with neither, ErrNoSinks.
func Setup(cfg Config) (Logger, func(), error) {
	level := ParseLevel(cfg.Level)

	var sinks []Logger
	if cfg.Console {
		sinks = append(sinks, NewConsole(level))
	}

	var file *FileSink
	if cfg.FilePath != "" {
		var err error
		file, err = NewFile(cfg.FilePath, level,
			WithMaxSize(cfg.MaxSizeBytes),
			WithMaxRotatedFiles(cfg.MaxRotatedFiles))
		if err != nil {
			return nil, nil, err
		}
		sinks = append(sinks, file)
	}

	cleanup := func() {
		if file != nil {
			_ = file.Close()
		}
	}

	switch len(sinks) {
	case 0:
		return nil, nil, ErrNoSinks
	case 1:
		return sinks[0], cleanup, nil
	default:
		return NewFanout(level, sinks...), cleanup, nil
	}
}
