package cli

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/jonathanmweiss/go-vas"
	"github.com/jonathanmweiss/go-vas/field"
)

const (
	backendFloat64  = "float64"
	backendBigFloat = "bigfloat"
)

var (
	errUnknownBackend     = errors.New("unknown backend")
	errInvalidCoefficient = errors.New("invalid coefficient")
	errInvalidSetting     = errors.New("invalid setting")
)

// settings select the numeric backend and engine options; shared by isolate and batch.
type settings struct {
	Backend       string  `toml:"backend"`
	Precision     uint    `toml:"precision"`
	Workers       int     `toml:"workers"`
	Scaling       float64 `toml:"scaling"`
	SquareFree    bool    `toml:"square_free"`
	MaxOperations int     `toml:"max_operations"`
}

func defaultSettings() settings {
	return settings{
		Backend:   backendFloat64,
		Precision: field.DefaultPrecision,
		Workers:   vas.DefaultWorkers,
	}
}

func (s settings) validate() error {
	switch {
	case s.Backend != backendFloat64 && s.Backend != backendBigFloat:
		return fmt.Errorf("%w %q (want %s or %s)", errUnknownBackend, s.Backend, backendFloat64, backendBigFloat)
	case s.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", errInvalidSetting, s.Workers)
	case s.Scaling != 0 && (s.Scaling < 1 || math.IsInf(s.Scaling, 0) || math.IsNaN(s.Scaling)):
		return fmt.Errorf("%w: scaling threshold must be 0 (off) or at least 1, got %v", errInvalidSetting, s.Scaling)
	case s.MaxOperations < 0:
		return fmt.Errorf("%w: max operations must not be negative, got %d", errInvalidSetting, s.MaxOperations)
	}

	return nil
}

func (s settings) engineOptions(logger *log.Logger) []vas.Option {
	opts := []vas.Option{
		vas.WithLogger(logger.WithPrefix("vas")),
		vas.WithWorkers(s.Workers),
	}

	if s.Scaling != 0 {
		opts = append(opts, vas.WithScaling(s.Scaling))
	}

	if s.SquareFree {
		opts = append(opts, vas.WithSquareFree())
	}

	if s.MaxOperations > 0 {
		opts = append(opts, vas.WithMaxOperations(s.MaxOperations))
	}

	return opts
}

// request is one polynomial to isolate; coefficients are lowest degree first.
type request struct {
	Name         string   `toml:"name"`
	Coefficients []string `toml:"coefficients"`
	All          bool     `toml:"all"`
}

type renderedInterval struct {
	text  string
	exact bool
}

type report struct {
	name      string
	poly      string
	intervals []renderedInterval
	stats     *vas.Stats
}

func (r *report) exactRoots() int {
	n := 0
	for _, iv := range r.intervals {
		if iv.exact {
			n++
		}
	}

	return n
}

func (c *CLI) isolateCommand() *cobra.Command {
	s := defaultSettings()
	var all bool

	cmd := &cobra.Command{
		Use:   "isolate [flags] -- c0 c1 ... cn",
		Short: "Isolate the real roots of one polynomial",
		Long: `Isolate the real roots of c0 + c1*x + ... + cn*x^n.

Coefficients are given lowest degree first. Put them after "--" so that negative
values are not read as flags.`,
		Example: `  vasroots isolate -- 7 -7 0 1
  vasroots isolate --backend bigfloat --prec 512 --all -- -2 0 1`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.validate(); err != nil {
				return err
			}

			req := request{Coefficients: args, All: all}

			prog := newProgress(c.Logger)
			r, err := isolate(cmd.Context(), c.Logger, s, req)
			if err != nil {
				return err
			}
			prog.done("isolation complete", "roots", len(r.intervals), "exact", r.exactRoots())

			printReport(cmd.OutOrStdout(), r)

			return nil
		},
	}

	cmd.Flags().StringVar(&s.Backend, "backend", s.Backend, "numeric backend: float64 or bigfloat")
	cmd.Flags().UintVar(&s.Precision, "prec", s.Precision, "mantissa bits for the bigfloat backend")
	cmd.Flags().IntVarP(&s.Workers, "workers", "w", s.Workers, "goroutines per worklist frontier")
	cmd.Flags().Float64Var(&s.Scaling, "scaling", 0, "rescale when the lower bound reaches this threshold (0 disables)")
	cmd.Flags().BoolVar(&s.SquareFree, "square-free", false, "reduce to the square-free part first")
	cmd.Flags().IntVar(&s.MaxOperations, "max-ops", 0, "fail after this many worklist operations (0 uses the engine default)")
	cmd.Flags().BoolVarP(&all, "all", "a", false, "isolate negative roots and zero as well")

	return cmd
}

// isolate parses req with the configured backend and runs the engine on it.
func isolate(ctx context.Context, logger *log.Logger, s settings, req request) (*report, error) {
	opts := s.engineOptions(logger)

	var (
		r   *report
		err error
	)

	switch s.Backend {
	case backendFloat64:
		r, err = isolateWith[float64](ctx, field.Float64{}, parseFloat64, req, opts)
	case backendBigFloat:
		o := field.NewBigFloat(s.Precision)
		r, err = isolateWith[*big.Float](ctx, o, parseBigFloat(o), req, opts)
	default:
		return nil, fmt.Errorf("%w %q", errUnknownBackend, s.Backend)
	}

	if err != nil {
		return nil, err
	}

	r.name = req.Name

	return r, nil
}

func isolateWith[T any](ctx context.Context, o field.Ordered[T], parse func(string) (T, error), req request, opts []vas.Option) (*report, error) {
	coeffs := make([]T, len(req.Coefficients))
	for i, s := range req.Coefficients {
		v, err := parse(s)
		if err != nil {
			return nil, fmt.Errorf("coefficient %d: %w", i, err)
		}

		coeffs[i] = v
	}

	p := field.NewPolynomial[T](o, coeffs)
	r := &report{poly: p.String()}

	var roots []vas.Interval[T]
	if req.All {
		found, err := vas.FindAllRootIntervals(ctx, p, opts...)
		if err != nil {
			return nil, fmt.Errorf("isolate %s: %w", r.poly, err)
		}

		roots = found
	} else {
		e, err := vas.NewEngine(o, opts...)
		if err != nil {
			return nil, err
		}

		found, stats, err := e.Run(ctx, p)
		if err != nil {
			return nil, fmt.Errorf("isolate %s: %w", r.poly, err)
		}

		roots = found
		r.stats = &stats
	}

	for _, iv := range roots {
		r.intervals = append(r.intervals, renderedInterval{text: iv.String(), exact: iv.IsExactValue()})
	}

	return r, nil
}

func parseFloat64(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w %q", errInvalidCoefficient, s)
	}

	return v, nil
}

func parseBigFloat(o field.BigFloat) func(string) (*big.Float, error) {
	return func(s string) (*big.Float, error) {
		v, ok := o.FromString(s)
		if !ok || v.IsInf() {
			return nil, fmt.Errorf("%w %q", errInvalidCoefficient, s)
		}

		return v, nil
	}
}
