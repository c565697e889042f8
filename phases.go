package vas

import (
	"fmt"

	"github.com/jonathanmweiss/go-vas/field"
)

// phase inspects op and either hands it on or completes it.
type phase[T any] func(e *Engine[T], op *operation[T]) (transition[T], error)

func (e *Engine[T]) buildPhases() []phase[T] {
	phases := []phase[T]{
		constantTest[T],
		signChangeTest[T],
		estimateLowerBound[T],
	}

	if e.opts.scaling {
		phases = append(phases, rescale[T])
	}

	return append(phases, lowerBoundTest[T], split[T])
}

// constantTest: p(0) == 0 means the local origin is a root. The rest of the
// polynomial, divided by x^k, keeps the same map.
func constantTest[T any](e *Engine[T], op *operation[T]) (transition[T], error) {
	o := e.o
	p := op.poly

	if !o.IsZero(p.Coeff(0)) {
		return proceed(op, verdictNone), nil
	}

	root := Exact(o, op.mobius.Transform(o.Zero()))
	k := p.LowestDegree()
	deflated := op.child(p.ShiftDown(k), op.mobius, fmt.Sprintf("deflated x^%d", k))

	return emit(op, root, verdictExactRoot, deflated), nil
}

// signChangeTest terminates on zero or one sign change.
func signChangeTest[T any](e *Engine[T], op *operation[T]) (transition[T], error) {
	o := e.o

	switch field.SignChanges(o, op.poly) {
	case 0:
		return done(op, verdictNoSignChange), nil
	case 1:
		lo := op.mobius.Transform(o.Zero())
		hi := op.mobius.Transform(e.inf)

		return emit(op, Open(o, field.Min(o, lo, hi), field.Max(o, lo, hi)), verdictOneSignChange), nil
	default:
		return proceed(op, verdictNone), nil
	}
}

func estimateLowerBound[T any](e *Engine[T], op *operation[T]) (transition[T], error) {
	alpha, err := LowerBound(e.o, op.poly)
	if err != nil {
		return transition[T]{}, fmt.Errorf("lower bound of %v: %w", op.poly, err)
	}

	return proceed(op.withLowerBound(alpha), verdictBounded), nil
}

// rescale substitutes x -> alpha*x when the lower bound is large, leaving alpha = 1
// for the shift that follows.
func rescale[T any](e *Engine[T], op *operation[T]) (transition[T], error) {
	o := e.o

	if !op.hasLowerBound || field.Less(o, op.lowerBound, e.scalingThreshold) {
		return proceed(op, verdictNone), nil
	}

	alpha := op.lowerBound
	scaled := op.rescaled(op.poly.ScaleVariable(alpha), op.mobius.ComposeAlphaX(alpha), o.One())

	return proceed(scaled, verdictScaled), nil
}

// lowerBoundTest: no root lies in (0, alpha), so for alpha >= 1 the search moves on to
// p(x + alpha).
func lowerBoundTest[T any](e *Engine[T], op *operation[T]) (transition[T], error) {
	o := e.o

	if !op.hasLowerBound || field.Less(o, op.lowerBound, o.One()) {
		return proceed(op, verdictNone), nil
	}

	alpha := op.lowerBound
	shifted := op.child(op.poly.TaylorShift(alpha), op.mobius.ComposeXPlusK(alpha), fmt.Sprintf("shift %v", alpha))

	return done(op, verdictShift, shifted), nil
}

// split covers (1, ∞) with p(x+1) and (0, 1) with the Budan transform.
func split[T any](e *Engine[T], op *operation[T]) (transition[T], error) {
	o := e.o

	above := op.child(op.poly.TaylorShift(o.One()), op.mobius.ComposeXPlusK(o.One()), "split (1, inf)")
	below := op.child(op.poly.BudanTransform(), op.mobius.BudanTransform(), "split (0, 1)")

	return done(op, verdictSplit, above, below), nil
}
