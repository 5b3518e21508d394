package main

import (
	"fmt"
	"os"
	"time"

	goerrors "github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/curvewalk/config"
	"github.com/katalvlaran/curvewalk/curve"
	"github.com/katalvlaran/curvewalk/explore"
	"github.com/katalvlaran/curvewalk/gridgraph"
	"github.com/katalvlaran/curvewalk/obstacle"
	"github.com/katalvlaran/curvewalk/report"
)

const (
	flagConfig    = "config"
	flagIteration = "iteration"
	flagCoverage  = "coverage"
	flagMinSize   = "min-size"
	flagMaxSize   = "max-size"
	flagSeed      = "seed"
	flagMaxSteps  = "max-steps"
	flagGeoJSON   = "geojson"
	flagLogLevel  = "log-level"

	envPrefix = "CURVEWALK_"
)

func newApp(logger *logrus.Logger) *cli.App {
	return &cli.App{
		Name:  "curvewalk",
		Usage: "explore a grid along a Hilbert curve, discovering obstacles on contact",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    flagLogLevel,
				Usage:   "log level (trace, debug, info, warn, error)",
				Value:   logrus.InfoLevel.String(),
				EnvVars: []string{envPrefix + "LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			level, err := logrus.ParseLevel(c.String(flagLogLevel))
			if err != nil {
				return err
			}
			logger.SetLevel(level)
			return nil
		},
		Commands: []*cli.Command{
			runCommand(logger),
			curveCommand(),
		},
	}
}

func runCommand(logger *logrus.Logger) *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "generate obstacles, explore the grid and print move statistics",
		Flags: []cli.Flag{
			&cli.PathFlag{
				Name:    flagConfig,
				Aliases: []string{"c"},
				Usage:   "JSON configuration file; flags override its values",
				EnvVars: []string{envPrefix + "CONFIG"},
			},
			&cli.IntFlag{
				Name:    flagIteration,
				Aliases: []string{"i"},
				Usage:   "Hilbert curve order; the grid side is 2^iteration",
				EnvVars: []string{envPrefix + "ITERATION"},
			},
			&cli.Float64Flag{
				Name:    flagCoverage,
				Usage:   "share of cells covered by obstacles, in (0, 1)",
				EnvVars: []string{envPrefix + "COVERAGE"},
			},
			&cli.IntFlag{
				Name:    flagMinSize,
				Usage:   "smallest obstacle side length",
				EnvVars: []string{envPrefix + "MIN_SIZE"},
			},
			&cli.IntFlag{
				Name:    flagMaxSize,
				Usage:   "largest obstacle side length (0 derives floor(sqrt(side)))",
				EnvVars: []string{envPrefix + "MAX_SIZE"},
			},
			&cli.Int64Flag{
				Name:    flagSeed,
				Usage:   "generator seed (0 picks one from the clock)",
				EnvVars: []string{envPrefix + "SEED"},
			},
			&cli.IntFlag{
				Name:    flagMaxSteps,
				Usage:   "exploration step budget (0 means the grid size)",
				EnvVars: []string{envPrefix + "MAX_STEPS"},
			},
			&cli.PathFlag{
				Name:    flagGeoJSON,
				Usage:   "write the tour, detections and obstacles as GeoJSON to this file",
				EnvVars: []string{envPrefix + "GEOJSON"},
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			return runSimulation(c, logger, cfg)
		},
	}
}

func curveCommand() *cli.Command {
	return &cli.Command{
		Name:  "curve",
		Usage: "print the curve as 'index x y' lines",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    flagIteration,
				Aliases: []string{"i"},
				Usage:   "Hilbert curve order",
				Value:   config.Default().Iteration,
				EnvVars: []string{envPrefix + "ITERATION"},
			},
		},
		Action: func(c *cli.Context) error {
			hc, err := curve.New(c.Int(flagIteration))
			if err != nil {
				return err
			}
			for d := 0; d < hc.Len(); d++ {
				p := hc.MustPointOf(d)
				if _, err := fmt.Fprintf(c.App.Writer, "%d %d %d\n", d, p.X, p.Y); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// loadConfig layers defaults, the optional config file and explicitly set
// flags, then validates the result.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Default()
	if path := c.Path(flagConfig); path != "" {
		var err error
		if cfg, err = config.LoadFile(path); err != nil {
			return config.Config{}, err
		}
	}
	if c.IsSet(flagIteration) {
		cfg.Iteration = c.Int(flagIteration)
	}
	if c.IsSet(flagCoverage) {
		cfg.CoverageRatio = c.Float64(flagCoverage)
	}
	if c.IsSet(flagMinSize) {
		cfg.MinObstacleSize = c.Int(flagMinSize)
	}
	if c.IsSet(flagMaxSize) {
		cfg.MaxObstacleSize = c.Int(flagMaxSize)
	}
	if c.IsSet(flagSeed) {
		cfg.Seed = c.Int64(flagSeed)
	}
	if c.IsSet(flagMaxSteps) {
		cfg.MaxSteps = c.Int(flagMaxSteps)
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runSimulation(c *cli.Context, logger *logrus.Logger, cfg config.Config) error {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	log := logger.WithFields(logrus.Fields{
		"iteration": cfg.Iteration,
		"seed":      cfg.Seed,
	})

	hc, err := curve.New(cfg.Iteration)
	if err != nil {
		return err
	}
	g, err := gridgraph.Build(hc)
	if err != nil {
		return err
	}
	rects, err := obstacle.Generate(hc, cfg.GenOptions(log))
	if err != nil {
		return err
	}
	field, err := obstacle.FromRects(hc, rects)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"rects":     len(rects),
		"obstacles": field.Len(),
	}).Info("obstacles placed")

	res, err := explore.Explore(g, field,
		explore.WithContext(c.Context),
		explore.WithMaxSteps(cfg.MaxSteps),
		explore.WithLogger(log),
	)
	if err != nil {
		return err
	}

	st, err := report.Summarize(g, field, res)
	if err != nil {
		return err
	}
	st.Log(log)
	for _, line := range st.Lines() {
		if _, err := fmt.Fprintln(c.App.Writer, line); err != nil {
			return err
		}
	}

	if path := c.Path(flagGeoJSON); path != "" {
		if err := writeGeoJSON(path, hc, res, field, st); err != nil {
			return err
		}
		log.WithField("path", path).Info("geojson written")
	}
	return nil
}

func writeGeoJSON(path string, hc *curve.Curve, res *explore.Result, field *obstacle.Field, st report.Stats) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return goerrors.New(err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = goerrors.New(cerr)
		}
	}()
	return report.WriteGeoJSON(f, hc, res, field, st)
}
