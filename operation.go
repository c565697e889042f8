package vas

import (
	"strings"

	"github.com/jonathanmweiss/go-vas/field"
)

// operation is one pending sub-problem: the local polynomial and the map from its
// variable back to the original one. Records are never mutated; every transition
// that changes a field returns a copy.
type operation[T any] struct {
	poly   *field.Polynomial[T]
	mobius *Mobius[T]

	lowerBound    T
	hasLowerBound bool

	result   *Interval[T]
	complete bool

	parent *operation[T]
	note   string
	depth  int
}

func newOperation[T any](poly *field.Polynomial[T], mobius *Mobius[T], note string) *operation[T] {
	return &operation[T]{poly: poly, mobius: mobius, note: note}
}

func (op *operation[T]) child(poly *field.Polynomial[T], mobius *Mobius[T], note string) *operation[T] {
	return &operation[T]{
		poly:   poly,
		mobius: mobius,
		parent: op,
		note:   note,
		depth:  op.depth + 1,
	}
}

func (op *operation[T]) withLowerBound(alpha T) *operation[T] {
	cp := *op
	cp.lowerBound = alpha
	cp.hasLowerBound = true

	return &cp
}

// rescaled replaces the sub-problem in place of op, keeping its lineage.
func (op *operation[T]) rescaled(poly *field.Polynomial[T], mobius *Mobius[T], alpha T) *operation[T] {
	cp := *op
	cp.poly = poly
	cp.mobius = mobius
	cp.lowerBound = alpha
	cp.hasLowerBound = true

	return &cp
}

// withResult sets the result once; later calls return op unchanged.
func (op *operation[T]) withResult(iv Interval[T]) *operation[T] {
	if op.result != nil || op.complete {
		return op
	}

	cp := *op
	cp.result = &iv
	cp.complete = true

	return &cp
}

// completed is idempotent.
func (op *operation[T]) completed() *operation[T] {
	if op.complete {
		return op
	}

	cp := *op
	cp.complete = true

	return &cp
}

// trace joins the notes of op and its ancestors, newest first.
func (op *operation[T]) trace() string {
	var notes []string
	for cur := op; cur != nil; cur = cur.parent {
		notes = append(notes, cur.note)
	}

	return strings.Join(notes, " <- ")
}

type stepKind int

const (
	// stepContinue hands the operation to the next phase.
	stepContinue stepKind = iota
	// stepEmit completes the operation with op.result set.
	stepEmit
	// stepDone completes the operation without a root.
	stepDone
)

// verdict records why a phase ended; it feeds Stats and the debug log.
type verdict int

const (
	verdictNone verdict = iota
	verdictExactRoot
	verdictNoSignChange
	verdictOneSignChange
	verdictBounded
	verdictScaled
	verdictShift
	verdictSplit
)

func (v verdict) String() string {
	switch v {
	case verdictExactRoot:
		return "exact-root"
	case verdictNoSignChange:
		return "no-sign-change"
	case verdictOneSignChange:
		return "one-sign-change"
	case verdictBounded:
		return "bounded"
	case verdictScaled:
		return "scaled"
	case verdictShift:
		return "shift"
	case verdictSplit:
		return "split"
	default:
		return "none"
	}
}

type transition[T any] struct {
	kind     stepKind
	verdict  verdict
	op       *operation[T]
	children []*operation[T]
}

func proceed[T any](op *operation[T], v verdict) transition[T] {
	return transition[T]{kind: stepContinue, verdict: v, op: op}
}

func emit[T any](op *operation[T], iv Interval[T], v verdict, children ...*operation[T]) transition[T] {
	return transition[T]{kind: stepEmit, verdict: v, op: op.withResult(iv), children: children}
}

func done[T any](op *operation[T], v verdict, children ...*operation[T]) transition[T] {
	return transition[T]{kind: stepDone, verdict: v, op: op.completed(), children: children}
}
