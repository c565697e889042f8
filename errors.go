package vas

import "errors"

var (
	// ErrUnordered is returned when the polynomial's field has no ordering, e.g. GF(p).
	ErrUnordered = errors.New("vas: coefficient field is not ordered")

	// ErrDegenerateMobius is returned by NewMobius when a*d == b*c.
	ErrDegenerateMobius = errors.New("vas: degenerate mobius transform (ad = bc)")

	// ErrDegreeTooLow and ErrNoNegativeCoefficient mean the bound estimator was called
	// outside its domain. The engine never does so.
	ErrDegreeTooLow          = errors.New("vas: bound estimation needs degree >= 2")
	ErrNoNegativeCoefficient = errors.New("vas: bound estimation needs a negative coefficient")

	// ErrOperationLimit is returned when the worklist processed more operations than
	// allowed by WithMaxOperations. Repeated roots under inexact arithmetic are the usual cause.
	ErrOperationLimit = errors.New("vas: operation limit exceeded")
)
