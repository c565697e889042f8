package vas

import (
	"io"
	"math"

	"github.com/charmbracelet/log"
)

// Defaults.
const (
	// DefaultWorkers processes the worklist sequentially.
	DefaultWorkers = 1

	// DefaultMaxOperations bounds the number of worklist entries processed per call.
	DefaultMaxOperations = 1 << 20

	// DefaultScalingThreshold is the lower bound above which Strzeboński scaling kicks in,
	// once enabled with WithScaling.
	DefaultScalingThreshold = 4.0
)

const (
	panicWorkersInvalid   = "vas: WithWorkers: n must be >= 1"
	panicMaxOpsInvalid    = "vas: WithMaxOperations: n must be >= 1"
	panicThresholdInvalid = "vas: WithScaling: threshold must be finite and >= 1"
	panicLoggerNil        = "vas: WithLogger: logger is nil"
)

// Option configures an Engine. Constructors panic only on nonsensical values.
type Option func(*options)

type options struct {
	logger           *log.Logger
	workers          int
	maxOperations    int
	scaling          bool
	scalingThreshold float64
	squareFree       bool
}

func defaultOptions() options {
	return options{
		logger:           log.New(io.Discard),
		workers:          DefaultWorkers,
		maxOperations:    DefaultMaxOperations,
		scalingThreshold: DefaultScalingThreshold,
	}
}

func gatherOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithLogger receives a debug line for every worklist transition.
func WithLogger(l *log.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}

	return func(o *options) { o.logger = l }
}

// WithWorkers processes each frontier of the worklist with up to n goroutines.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *options) { o.workers = n }
}

// WithMaxOperations fails the search with ErrOperationLimit after n operations.
func WithMaxOperations(n int) Option {
	if n < 1 {
		panic(panicMaxOpsInvalid)
	}

	return func(o *options) { o.maxOperations = n }
}

// WithScaling enables Strzeboński's rescaling: when the lower bound alpha is at least
// threshold, the sub-problem is replaced by p(alpha*x) before shifting by one.
// Every returned interval still isolates exactly one root.
func WithScaling(threshold float64) Option {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) || threshold < 1 {
		panic(panicThresholdInvalid)
	}

	return func(o *options) {
		o.scaling = true
		o.scalingThreshold = threshold
	}
}

// WithSquareFree divides the input by gcd(p, p') first. Useful with exact backends;
// repeated roots otherwise never drop below two sign changes.
func WithSquareFree() Option {
	return func(o *options) { o.squareFree = true }
}
