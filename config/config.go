// Package config holds the simulation parameters: defaults, loading from a
// JSON file and validation.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	goerrors "github.com/go-errors/errors"
	"github.com/hashicorp/go-multierror"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/curvewalk/curve"
	"github.com/katalvlaran/curvewalk/obstacle"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")
	// ErrIteration indicates a curve order outside [1, curve.MaxOrder].
	ErrIteration = errors.New("config: iteration out of range")
	// ErrCoverageRatio indicates a coverage ratio outside (0, 1).
	ErrCoverageRatio = errors.New("config: coverage ratio out of range")
	// ErrObstacleSize indicates inconsistent obstacle size bounds.
	ErrObstacleSize = errors.New("config: invalid obstacle size")
	// ErrMaxSteps indicates a negative step budget.
	ErrMaxSteps = errors.New("config: max steps cannot be negative")
)

// Config is one simulation run.
type Config struct {
	// Iteration is the Hilbert curve order; the grid has side 2^Iteration.
	Iteration int `mapstructure:"iteration"`
	// CoverageRatio is the share of cells the generator covers with obstacles.
	CoverageRatio float64 `mapstructure:"coverage_ratio"`
	// MinObstacleSize is the smallest obstacle side length.
	MinObstacleSize int `mapstructure:"min_obstacle_size"`
	// MaxObstacleSize is the largest obstacle side length; 0 derives ⌊√side⌋.
	MaxObstacleSize int `mapstructure:"max_obstacle_size"`
	// Seed drives the generator; 0 lets the caller pick one.
	Seed int64 `mapstructure:"seed"`
	// MaxSteps caps exploration steps; 0 means the grid size.
	MaxSteps int `mapstructure:"max_steps"`
}

// Default returns the stock configuration: an 8×8 grid with 15% coverage.
func Default() Config {
	return Config{
		Iteration:       3,
		CoverageRatio:   0.15,
		MinObstacleSize: 1,
	}
}

// Side returns the grid side for Iteration.
func (c Config) Side() int { return 1 << c.Iteration }

// ObstacleSizes returns the effective [min, max] obstacle side lengths.
func (c Config) ObstacleSizes() (int, int) {
	hi := c.MaxObstacleSize
	if hi == 0 {
		hi = max(1, int(math.Sqrt(float64(c.Side()))))
		hi = max(hi, c.MinObstacleSize)
	}
	return c.MinObstacleSize, hi
}

// Validate reports every problem at once. The returned error wraps
// ErrInvalidConfig and each individual sentinel.
func (c Config) Validate() error {
	var merr *multierror.Error

	if c.Iteration < 1 || c.Iteration > curve.MaxOrder {
		merr = multierror.Append(merr, fmt.Errorf("%w: %d not in [1, %d]", ErrIteration, c.Iteration, curve.MaxOrder))
	}
	if math.IsNaN(c.CoverageRatio) || c.CoverageRatio <= 0 || c.CoverageRatio >= 1 {
		merr = multierror.Append(merr, fmt.Errorf("%w: %v not in (0, 1)", ErrCoverageRatio, c.CoverageRatio))
	}
	if c.MinObstacleSize < 1 {
		merr = multierror.Append(merr, fmt.Errorf("%w: min %d below 1", ErrObstacleSize, c.MinObstacleSize))
	}
	if c.MaxObstacleSize < 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w: max %d is negative", ErrObstacleSize, c.MaxObstacleSize))
	} else if c.MaxObstacleSize > 0 && c.MaxObstacleSize < c.MinObstacleSize {
		merr = multierror.Append(merr, fmt.Errorf("%w: max %d below min %d", ErrObstacleSize, c.MaxObstacleSize, c.MinObstacleSize))
	}
	if c.Iteration >= 1 && c.Iteration <= curve.MaxOrder {
		if _, hi := c.ObstacleSizes(); hi > c.Side() {
			merr = multierror.Append(merr, fmt.Errorf("%w: max %d exceeds grid side %d", ErrObstacleSize, hi, c.Side()))
		}
	}
	if c.MaxSteps < 0 {
		merr = multierror.Append(merr, fmt.Errorf("%w: %d", ErrMaxSteps, c.MaxSteps))
	}

	if err := merr.ErrorOrNil(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// GenOptions maps c onto generator options. Call Validate first.
func (c Config) GenOptions(logger logrus.FieldLogger) obstacle.GenOptions {
	opts := obstacle.DefaultGenOptions(c.Side())
	opts.CoverageRatio = c.CoverageRatio
	opts.MinSize, opts.MaxSize = c.ObstacleSizes()
	opts.Seed = c.Seed
	opts.Logger = logger
	return opts
}

// LoadFile decodes a JSON file over Default(). Keys are the mapstructure
// tags of Config; unknown keys are rejected and numeric strings are accepted.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, goerrors.New(err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return Config{}, goerrors.New(fmt.Errorf("config: parse %s: %w", path, err))
	}
	return Decode(raw)
}

// Decode applies raw over Default().
func Decode(raw map[string]any) (Config, error) {
	cfg := Default()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused:      true,
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return Config{}, goerrors.New(err)
	}
	if err := dec.Decode(raw); err != nil {
		return Config{}, goerrors.New(fmt.Errorf("config: decode: %w", err))
	}
	return cfg, nil
}
