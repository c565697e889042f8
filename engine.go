package vas

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathanmweiss/go-vas/field"
)

// Isolator finds root intervals of polynomials over T.
type Isolator[T any] interface {
	FindRootIntervals(ctx context.Context, p *field.Polynomial[T]) ([]Interval[T], error)
}

// Stats describes one run of the worklist.
type Stats struct {
	Operations int
	ExactRoots int
	Isolated   int
	Discarded  int
	Shifts     int
	Rescales   int
	Splits     int
	MaxDepth   int
}

func (s *Stats) record(tr verdict, depth int) {
	s.MaxDepth = max(s.MaxDepth, depth)

	switch tr {
	case verdictExactRoot:
		s.ExactRoots++
	case verdictOneSignChange:
		s.Isolated++
	case verdictNoSignChange:
		s.Discarded++
	case verdictShift:
		s.Shifts++
	case verdictSplit:
		s.Splits++
	}
}

// Engine runs the Vincent–Akritas–Strzeboński continued-fraction method.
type Engine[T any] struct {
	o    field.Ordered[T]
	inf  T
	opts options

	scalingThreshold T
	phases           []phase[T]
}

var _ Isolator[float64] = (*Engine[float64])(nil)

// NewEngine fails with field.ErrNoInfinity when the domain cannot represent +∞.
func NewEngine[T any](o field.Ordered[T], opts ...Option) (*Engine[T], error) {
	inf, err := o.PositiveInfinity()
	if err != nil {
		return nil, fmt.Errorf("vas: %w", err)
	}

	e := &Engine[T]{
		o:    o,
		inf:  inf,
		opts: gatherOptions(opts),
	}

	e.scalingThreshold = o.FromFloat64(e.opts.scalingThreshold)
	e.phases = e.buildPhases()

	return e, nil
}

// FindRootIntervals returns disjoint intervals, sorted, each holding exactly one
// positive real root of p. Roots found exactly come back as closed single points.
func (e *Engine[T]) FindRootIntervals(ctx context.Context, p *field.Polynomial[T]) ([]Interval[T], error) {
	roots, _, err := e.Run(ctx, p)
	return roots, err
}

// Run is FindRootIntervals that also reports worklist statistics.
func (e *Engine[T]) Run(ctx context.Context, p *field.Polynomial[T]) ([]Interval[T], Stats, error) {
	var stats Stats

	if p.IsZero() {
		return nil, stats, field.ErrZeroPolynomial
	}

	if e.opts.squareFree {
		sf, err := p.SquareFree()
		if err != nil {
			return nil, stats, err
		}

		p = sf
	}

	identity, err := Identity(e.o)
	if err != nil {
		return nil, stats, err
	}

	switch field.SignChanges(e.o, p) {
	case 0:
		return nil, stats, nil
	case 1:
		return []Interval[T]{Open(e.o, e.o.Zero(), e.inf)}, stats, nil
	}

	root := newOperation(p, identity, "input")

	var roots []Interval[T]
	if e.opts.workers > 1 {
		roots, err = e.runParallel(ctx, root, &stats)
	} else {
		roots, err = e.runSequential(ctx, root, &stats)
	}

	if err != nil {
		return nil, stats, err
	}

	return e.normalize(roots), stats, nil
}

func (e *Engine[T]) runSequential(ctx context.Context, root *operation[T], stats *Stats) ([]Interval[T], error) {
	var roots []Interval[T]

	queue := []*operation[T]{root}
	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if stats.Operations >= e.opts.maxOperations {
			return nil, ErrOperationLimit
		}

		op := queue[0]
		queue = queue[1:]
		stats.Operations++

		found, children, err := e.process(op, stats)
		if err != nil {
			return nil, err
		}

		roots = append(roots, found...)
		queue = append(queue, children...)
	}

	return roots, nil
}

// runParallel handles the worklist one frontier at a time; operations within a
// frontier are independent.
func (e *Engine[T]) runParallel(ctx context.Context, root *operation[T], stats *Stats) ([]Interval[T], error) {
	var (
		mu    sync.Mutex
		roots []Interval[T]
	)

	frontier := []*operation[T]{root}
	for len(frontier) > 0 {
		if stats.Operations+len(frontier) > e.opts.maxOperations {
			return nil, ErrOperationLimit
		}

		var next []*operation[T]

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(e.opts.workers)

		for _, op := range frontier {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					return err
				}

				var local Stats
				found, children, err := e.process(op, &local)
				if err != nil {
					return err
				}

				mu.Lock()
				defer mu.Unlock()

				stats.merge(local)
				roots = append(roots, found...)
				next = append(next, children...)

				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}

		stats.Operations += len(frontier)
		frontier = next
	}

	return roots, nil
}

func (s *Stats) merge(o Stats) {
	s.ExactRoots += o.ExactRoots
	s.Isolated += o.Isolated
	s.Discarded += o.Discarded
	s.Shifts += o.Shifts
	s.Rescales += o.Rescales
	s.Splits += o.Splits
	s.MaxDepth = max(s.MaxDepth, o.MaxDepth)
}

// process runs the phase pipeline on op until one of the phases completes it.
func (e *Engine[T]) process(op *operation[T], stats *Stats) ([]Interval[T], []*operation[T], error) {
	logger := e.opts.logger
	var children []*operation[T]

	for _, ph := range e.phases {
		tr, err := ph(e, op)
		if err != nil {
			return nil, nil, err
		}

		op = tr.op
		children = append(children, tr.children...)

		if tr.verdict == verdictScaled {
			stats.Rescales++
		}

		switch tr.kind {
		case stepContinue:
			continue
		case stepEmit:
			stats.record(tr.verdict, op.depth)
			logger.Debug("root isolated", "interval", op.result.String(), "verdict", tr.verdict, "depth", op.depth, "trace", op.trace())

			return []Interval[T]{*op.result}, children, nil
		case stepDone:
			stats.record(tr.verdict, op.depth)
			logger.Debug("operation complete", "verdict", tr.verdict, "depth", op.depth, "degree", op.poly.Degree(), "children", len(children), "note", op.note)

			return nil, children, nil
		}
	}

	// split always completes the operation.
	return nil, children, fmt.Errorf("vas: operation %q left the pipeline incomplete", op.note)
}

// normalize sorts the intervals and drops duplicates. The same exact root can be
// reached from both sides of a split point.
func (e *Engine[T]) normalize(roots []Interval[T]) []Interval[T] {
	slices.SortFunc(roots, func(a, b Interval[T]) int { return a.Compare(b) })

	return slices.CompactFunc(roots, func(a, b Interval[T]) bool { return a.Equal(b) })
}

// FindRootIntervals isolates the positive real roots of p. The polynomial's field must
// implement field.Ordered with a representable +∞.
func FindRootIntervals[T any](ctx context.Context, p *field.Polynomial[T], opts ...Option) ([]Interval[T], error) {
	e, err := engineFor(p, opts)
	if err != nil {
		return nil, err
	}

	return e.FindRootIntervals(ctx, p)
}

// FindAllRootIntervals isolates every real root of p: zero exactly, the positive roots
// directly and the negative roots through p(-x).
func FindAllRootIntervals[T any](ctx context.Context, p *field.Polynomial[T], opts ...Option) ([]Interval[T], error) {
	e, err := engineFor(p, opts)
	if err != nil {
		return nil, err
	}

	if p.IsZero() {
		return nil, field.ErrZeroPolynomial
	}

	o := e.o

	var all []Interval[T]
	if k := p.LowestDegree(); k > 0 {
		all = append(all, Exact(o, o.Zero()))
		p = p.ShiftDown(k)
	}

	positive, err := e.FindRootIntervals(ctx, p)
	if err != nil {
		return nil, err
	}

	negative, err := e.FindRootIntervals(ctx, p.ScaleVariable(o.Neg(o.One())))
	if err != nil {
		return nil, err
	}

	// 0 - x instead of Neg keeps the mirrored zero endpoint unsigned.
	mirror := func(x T) T { return o.Sub(o.Zero(), x) }

	all = append(all, positive...)
	for _, iv := range negative {
		all = append(all, NewInterval(o, mirror(iv.b), mirror(iv.a), iv.bClosed, iv.aClosed))
	}

	return e.normalize(all), nil
}

func engineFor[T any](p *field.Polynomial[T], opts []Option) (*Engine[T], error) {
	o, ok := p.Field().(field.Ordered[T])
	if !ok {
		return nil, ErrUnordered
	}

	return NewEngine(o, opts...)
}
