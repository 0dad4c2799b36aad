package vector

import (
	"bytes"
	"flag"

	"github.com/go-kit/log"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"
)

// Config limits how much storage a vector's arenas may request.
// Zero values mean "no limit". Allocation treats negative values the same
// way; Validate and ParseConfig reject them.
type Config struct {
	MaxCapacity int `yaml:"max_capacity"`
	MaxBytes    int `yaml:"max_bytes"`
}

// RegisterFlags registers the config flags under the "vector." prefix.
func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	cfg.RegisterFlagsWithPrefix("vector.", f)
}

// RegisterFlagsWithPrefix registers the config flags under prefix.
func (cfg *Config) RegisterFlagsWithPrefix(prefix string, f *flag.FlagSet) {
	f.IntVar(&cfg.MaxCapacity, prefix+"max-capacity", 0, "Maximum number of elements a single arena may hold. 0 disables the limit.")
	f.IntVar(&cfg.MaxBytes, prefix+"max-bytes", 0, "Maximum size in bytes of a single arena block. 0 disables the limit.")
}

// Validate checks the config for negative limits.
func (cfg *Config) Validate() error {
	if cfg.MaxCapacity < 0 {
		return errors.Errorf("vector.max-capacity must not be negative, got %d", cfg.MaxCapacity)
	}
	if cfg.MaxBytes < 0 {
		return errors.Errorf("vector.max-bytes must not be negative, got %d", cfg.MaxBytes)
	}
	return nil
}

// ParseConfig decodes a YAML document into a Config and validates it.
// Unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	var cfg Config
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "vector: parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

type options[T any] struct {
	traits   Traits[T]
	cfg      Config
	logger   log.Logger
	reg      prometheus.Registerer
	statName string
}

// Option configures a Vector at construction time.
type Option[T any] func(*options[T])

// WithTraits sets the element lifecycle hooks.
func WithTraits[T any](t Traits[T]) Option[T] {
	return func(o *options[T]) { o.traits = t }
}

// WithConfig sets the allocation limits. cfg is not validated: a negative
// limit disables that limit, like zero. Call Validate first to reject it.
func WithConfig[T any](cfg Config) Option[T] {
	return func(o *options[T]) { o.cfg = cfg }
}

// WithLogger sets the logger used for reallocation and rollback events.
func WithLogger[T any](l log.Logger) Option[T] {
	return func(o *options[T]) { o.logger = l }
}

// WithMetrics registers a collector for the vector with reg under the given
// name label. If a collector with the same name is already registered, the
// existing one is kept.
func WithMetrics[T any](reg prometheus.Registerer, name string) Option[T] {
	return func(o *options[T]) {
		o.reg = reg
		o.statName = name
	}
}

func buildOptions[T any](opts []Option[T]) options[T] {
	o := options[T]{logger: log.NewNopLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.NewNopLogger()
	}
	return o
}
