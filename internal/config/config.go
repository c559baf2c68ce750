// Package config loads learncards settings from a YAML file, a .env file,
// LEARNCARDS_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// EnvPrefix is stripped from environment variables; the rest maps to a key
// with "_" as the nesting separator, e.g. LEARNCARDS_LOG_LEVEL -> log.level.
const EnvPrefix = "LEARNCARDS_"

const annotation = "learncards/setting"

// Config holds all configuration for the application.
type Config struct {
	DB      string   `koanf:"db" validate:"required"`
	Addr    string   `koanf:"addr" validate:"required"`
	Repos   string   `koanf:"repos" validate:"required"`
	Sources []string `koanf:"sources"`
	Shuffle bool     `koanf:"shuffle"`
	// Seed fixes the shuffle source; 0 seeds from the clock.
	Seed  int64 `koanf:"seed"`
	Swipe Swipe `koanf:"swipe"`
	Log   Log   `koanf:"log"`
}

// Swipe sets when a released drag counts as a swipe.
type Swipe struct {
	// Ratio of the card width the card must travel.
	Ratio float64 `koanf:"ratio" validate:"gt=0,lte=1"`
	// Speed in pixels per second that counts as a flick.
	Speed float64 `koanf:"speed" validate:"gt=0"`
}

type Log struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=text json"`
}

// NewFlagSet declares every setting as a flag together with its default.
// Callers may add their own flags before passing it to Load.
func NewFlagSet(name string) *pflag.FlagSet {
	f := pflag.NewFlagSet(name, pflag.ContinueOnError)
	f.String("config", "", "path to a YAML config file")
	f.String("env-file", ".env", "path to a .env file, ignored when missing")

	f.String("db", "learncards.db", "path to the SQLite database")
	f.String("addr", "localhost:8080", "address the web UI listens on")
	f.String("repos", "repos", "directory git sources are cloned into")
	f.StringSlice("sources", nil, "deck sources: directories or git URLs")
	f.Bool("shuffle", false, "shuffle cards when a study session starts")
	f.Int64("seed", 0, "random seed for shuffling (0 = time based)")
	f.Float64("swipe-ratio", 0.5, "fraction of the card width a drag must cover")
	f.Float64("swipe-speed", 50, "release speed in px/s that counts as a swipe")
	f.String("log-level", "info", "log level: debug, info, warn or error")
	f.String("log-format", "text", "log format: text or json")

	f.VisitAll(func(fl *pflag.Flag) {
		if fl.Name != "config" && fl.Name != "env-file" {
			_ = f.SetAnnotation(fl.Name, annotation, []string{"true"})
		}
	})
	return f
}

// Load parses args into f and merges every configuration layer.
func Load(f *pflag.FlagSet, args []string) (*Config, error) {
	if err := f.Parse(args); err != nil {
		return nil, err
	}

	k := koanf.New(".")

	if path, _ := f.GetString("config"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// Variables already set in the environment take precedence over .env.
	if path, _ := f.GetString("env-file"); path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", path, err)
		}
	}

	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if err := k.Load(posflag.ProviderWithFlag(f, ".", k, flagKey(f)), nil); err != nil {
		return nil, fmt.Errorf("failed to load flags: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func envKey(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	key = strings.ReplaceAll(key, "_", ".")
	if key == "sources" {
		return key, splitList(value)
	}
	return key, value
}

// flagKey maps "log-level" to "log.level". Flags that only steer loading,
// or that callers added for their own use, are left out.
func flagKey(fs *pflag.FlagSet) func(*pflag.Flag) (string, interface{}) {
	return func(f *pflag.Flag) (string, interface{}) {
		if _, ok := f.Annotations[annotation]; !ok {
			return "", nil
		}
		return strings.ReplaceAll(f.Name, "-", "."), posflag.FlagVal(fs, f)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// NewLogger builds the process logger described by l.
func (l Log) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if l.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
