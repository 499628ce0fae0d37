// Package config defines the strategy surface that selects how lowering,
// the type mapper, the optimizer, and the emitter map source constructs onto
// Go idioms.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NumberStrategy selects the target type for the `number` primitive.
type NumberStrategy string

const (
	NumberFloat64    NumberStrategy = "float64"
	NumberInt        NumberStrategy = "int"
	NumberContextual NumberStrategy = "contextual"
)

// UnionStrategy selects how union types are represented.
type UnionStrategy string

const (
	UnionTagged    UnionStrategy = "tagged"
	UnionInterface UnionStrategy = "interface"
	UnionAny       UnionStrategy = "any"
)

// NullabilityStrategy selects how optional/nullable values are represented.
type NullabilityStrategy string

const (
	NullabilityPointer NullabilityStrategy = "pointer"
	NullabilityZero    NullabilityStrategy = "zero"
	NullabilitySQLNull NullabilityStrategy = "sqlNull"
)

// AsyncStrategy selects how async/await is lowered. Only Sync is fully
// specified; Future and Errgroup are accepted but lower to the same
// synchronous-descent behavior as Sync (spec §9, "Coroutine control flow").
type AsyncStrategy string

const (
	AsyncSync     AsyncStrategy = "sync"
	AsyncFuture   AsyncStrategy = "future"
	AsyncErrgroup AsyncStrategy = "errgroup"
)

// ErrorHandlingStrategy selects the try/catch lowering shape.
type ErrorHandlingStrategy string

const (
	ErrorHandlingReturn ErrorHandlingStrategy = "return"
	ErrorHandlingPanic  ErrorHandlingStrategy = "panic"
)

// StrictOptions tightens specific under-specified lowering/emission choices
// (spec §9 open questions) when the caller wants determinism over the
// heuristic default.
type StrictOptions struct {
	// TypeDirectedFormatVerbs replaces the name-regex %s/%v heuristic for
	// template-literal holes with a lookup against the hole's declared type.
	TypeDirectedFormatVerbs bool `yaml:"typeDirectedFormatVerbs"`
}

// Strategy is the full configuration surface recognized by the pipeline
// (spec §6). The zero value is not the default configuration: Default (and
// New, which starts from it) supplies the documented defaults.
type Strategy struct {
	NumberStrategy       NumberStrategy         `yaml:"numberStrategy"`
	UnionStrategy        UnionStrategy          `yaml:"unionStrategy"`
	NullabilityStrategy  NullabilityStrategy    `yaml:"nullabilityStrategy"`
	AsyncStrategy        AsyncStrategy          `yaml:"asyncStrategy"`
	ErrorHandling        ErrorHandlingStrategy  `yaml:"errorHandling"`
	OptimizationLevel    int                    `yaml:"optimizationLevel"`
	Strict               bool                   `yaml:"strict"`
	AllowAny             bool                   `yaml:"allowAny"`
	UsePointerReceivers  bool                   `yaml:"usePointerReceivers"`
	GenerateRuntime      bool                   `yaml:"generateRuntime"`
	SourceMap            bool                   `yaml:"sourceMap"`
	StrictOptions        StrictOptions          `yaml:"strictOptions"`
}

// Default returns the documented default strategy: float64 numbers, tagged
// unions, pointer nullability, synchronous async, return-based error
// handling, optimization level 1, pointer receivers.
func Default() Strategy {
	return Strategy{
		NumberStrategy:      NumberFloat64,
		UnionStrategy:       UnionTagged,
		NullabilityStrategy: NullabilityPointer,
		AsyncStrategy:       AsyncSync,
		ErrorHandling:       ErrorHandlingReturn,
		OptimizationLevel:   1,
		UsePointerReceivers: true,
	}
}

// Option mutates a Strategy under construction.
type Option func(*Strategy)

// New builds a Strategy starting from Default and applying opts in order.
func New(opts ...Option) Strategy {
	s := Default()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

func WithNumberStrategy(n NumberStrategy) Option {
	return func(s *Strategy) { s.NumberStrategy = n }
}

func WithUnionStrategy(u UnionStrategy) Option {
	return func(s *Strategy) { s.UnionStrategy = u }
}

func WithNullabilityStrategy(n NullabilityStrategy) Option {
	return func(s *Strategy) { s.NullabilityStrategy = n }
}

func WithAsyncStrategy(a AsyncStrategy) Option {
	return func(s *Strategy) { s.AsyncStrategy = a }
}

func WithErrorHandling(e ErrorHandlingStrategy) Option {
	return func(s *Strategy) { s.ErrorHandling = e }
}

func WithOptimizationLevel(level int) Option {
	return func(s *Strategy) { s.OptimizationLevel = level }
}

func WithStrict(strict bool) Option {
	return func(s *Strategy) { s.Strict = strict }
}

func WithAllowAny(allow bool) Option {
	return func(s *Strategy) { s.AllowAny = allow }
}

func WithPointerReceivers(use bool) Option {
	return func(s *Strategy) { s.UsePointerReceivers = use }
}

func WithGenerateRuntime(generate bool) Option {
	return func(s *Strategy) { s.GenerateRuntime = generate }
}

func WithSourceMap(enabled bool) Option {
	return func(s *Strategy) { s.SourceMap = enabled }
}

// Load reads a YAML strategy document, overlaying it onto Default so that
// unset keys keep their default value.
func Load(path string) (Strategy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Strategy{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a YAML strategy document from memory, overlaying it onto
// Default.
func Parse(data []byte) (Strategy, error) {
	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Strategy{}, fmt.Errorf("config: parse strategy: %w", err)
	}
	return s, nil
}

// Validate rejects a Strategy with an out-of-domain key, rather than letting
// lowering/emission fail downstream with a less legible error.
func (s Strategy) Validate() error {
	switch s.NumberStrategy {
	case NumberFloat64, NumberInt, NumberContextual, "":
	default:
		return fmt.Errorf("config: unknown numberStrategy %q", s.NumberStrategy)
	}
	switch s.UnionStrategy {
	case UnionTagged, UnionInterface, UnionAny, "":
	default:
		return fmt.Errorf("config: unknown unionStrategy %q", s.UnionStrategy)
	}
	switch s.NullabilityStrategy {
	case NullabilityPointer, NullabilityZero, NullabilitySQLNull, "":
	default:
		return fmt.Errorf("config: unknown nullabilityStrategy %q", s.NullabilityStrategy)
	}
	switch s.AsyncStrategy {
	case AsyncSync, AsyncFuture, AsyncErrgroup, "":
	default:
		return fmt.Errorf("config: unknown asyncStrategy %q", s.AsyncStrategy)
	}
	switch s.ErrorHandling {
	case ErrorHandlingReturn, ErrorHandlingPanic, "":
	default:
		return fmt.Errorf("config: unknown errorHandling %q", s.ErrorHandling)
	}
	if s.OptimizationLevel < 0 || s.OptimizationLevel > 2 {
		return fmt.Errorf("config: optimizationLevel must be 0, 1, or 2, got %d", s.OptimizationLevel)
	}
	return nil
}
