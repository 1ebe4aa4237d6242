// Package train runs the training loop of a network: it feeds samples
// through run-then-learn cycles in chunks, tracks held-out error and
// prints reports.
package train

import (
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/born-ml/mlp/internal/optim"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Dataset kinds.
const (
	DatasetRing  = "ring"
	DatasetMNIST = "mnist"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid training config")

// Config holds training configuration.
type Config struct {
	Topology []int  `yaml:"topology"` // Layer widths, input first.
	Seed     uint64 `yaml:"seed"`     // Seed of the weight and data source.

	Dataset     string  `yaml:"dataset"`      // DatasetRing or DatasetMNIST.
	DataDir     string  `yaml:"data_dir"`     // MNIST files (mnist only).
	Samples     int     `yaml:"samples"`      // Samples to generate or load.
	RingInner   float64 `yaml:"ring_inner"`   // Inner radius of the rejected ring.
	RingOuter   float64 `yaml:"ring_outer"`   // Outer radius of the rejected ring.
	TestSamples int     `yaml:"test_samples"` // Held-out samples, taken from the end.

	Chunks    int `yaml:"chunks"`     // Number of training chunks.
	ChunkSize int `yaml:"chunk_size"` // Samples per chunk.
	Repeats   int `yaml:"repeats"`    // Passes over each chunk.
	Workers   int `yaml:"workers"`    // Evaluation goroutines (0 = one per CPU).

	Optimizer optim.Config `yaml:"optimizer"`
}

// DefaultConfig returns the configuration of the ring classifier run.
func DefaultConfig() Config {
	return Config{
		Topology:    []int{2, 6, 2},
		Seed:        1,
		Dataset:     DatasetRing,
		DataDir:     "./data",
		Samples:     10_000,
		RingInner:   0.3,
		RingOuter:   0.7,
		TestSamples: 100,
		Chunks:      100,
		ChunkSize:   10,
		Repeats:     10,
		Optimizer:   optim.DefaultConfig(),
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate validates training configuration.
func (c *Config) Validate() error {
	if len(c.Topology) < 2 {
		return errors.Wrapf(ErrInvalidConfig, "topology %v must have at least an input and an output width", c.Topology)
	}
	for _, w := range c.Topology {
		if w <= 0 {
			return errors.Wrapf(ErrInvalidConfig, "topology %v has a non-positive width", c.Topology)
		}
	}

	switch c.Dataset {
	case DatasetRing:
		if c.Topology[0] != 2 || c.Topology[len(c.Topology)-1] != 2 {
			return errors.Wrapf(ErrInvalidConfig, "ring dataset needs 2 inputs and 2 outputs, topology is %v", c.Topology)
		}
		if !(0 <= c.RingInner && c.RingInner <= c.RingOuter) {
			return errors.Wrapf(ErrInvalidConfig, "ring radii must satisfy 0 <= inner <= outer, got %v and %v", c.RingInner, c.RingOuter)
		}
		// Points in [0,1)² lie at distances in [0, √2).
		if c.RingInner <= 0 && c.RingOuter >= math.Sqrt2 {
			return errors.Wrapf(ErrInvalidConfig, "ring radii %v and %v reject every point of the unit square", c.RingInner, c.RingOuter)
		}
	case DatasetMNIST:
		if c.Topology[0] != 784 || c.Topology[len(c.Topology)-1] != 10 {
			return errors.Wrapf(ErrInvalidConfig, "mnist dataset needs 784 inputs and 10 outputs, topology is %v", c.Topology)
		}
		if c.DataDir == "" {
			return errors.Wrap(ErrInvalidConfig, "mnist dataset needs a data directory")
		}
	default:
		return errors.Wrapf(ErrInvalidConfig, "unknown dataset %q", c.Dataset)
	}

	if c.Samples <= 0 || c.TestSamples <= 0 {
		return errors.Wrap(ErrInvalidConfig, "samples and test samples must be positive")
	}
	if c.Chunks <= 0 || c.ChunkSize <= 0 || c.Repeats <= 0 {
		return errors.Wrap(ErrInvalidConfig, "chunks, chunk size and repeats must be positive")
	}
	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalidConfig, "workers must not be negative, got %d", c.Workers)
	}
	if c.Dataset == DatasetRing && c.Chunks*c.ChunkSize+c.TestSamples > c.Samples {
		return errors.Wrapf(ErrInvalidConfig, "%d chunks of %d plus %d held out exceed %d samples",
			c.Chunks, c.ChunkSize, c.TestSamples, c.Samples)
	}

	if err := c.Optimizer.Validate(); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "optimizer: %v", err)
	}
	return nil
}

// ParseTopology parses whitespace or comma separated layer widths.
func ParseTopology(s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	topology := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Wrapf(err, "topology %q", s)
		}
		topology[i] = n
	}
	return topology, nil
}
