package explore

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/curvewalk/bfs"
)

// StartCell is the curve index the agent starts on.
const StartCell = 0

// Sentinel errors for exploration.
var (
	// ErrNilGraph is returned when New receives a nil grid graph.
	ErrNilGraph = errors.New("explore: graph is nil")
	// ErrNilField is returned when New receives a nil obstacle field.
	ErrNilField = errors.New("explore: obstacle field is nil")
	// ErrStartBlocked is returned when the start cell is an obstacle.
	ErrStartBlocked = errors.New("explore: start cell is blocked")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("explore: invalid option supplied")
	// ErrGraphInvariant marks a fatal inconsistency between the grid graph and
	// the exploration state, such as a missing edge or a detour with no path.
	ErrGraphInvariant = errors.New("explore: graph invariant violated")
	// ErrStepBudget is returned when exploration needs more steps than allowed.
	ErrStepBudget = errors.New("explore: step budget exceeded")
)

// Graph is the static adjacency the engine walks on. Vertices are 0..Len()-1
// and Neighbors must list them in ascending order. *gridgraph.GridGraph
// satisfies it.
type Graph interface {
	bfs.Adjacency
	HasEdge(i, j int) bool
	Len() int
}

// Blocker reveals whether a cell is covered by an obstacle.
type Blocker interface {
	Blocked(i int) bool
}

// State is the engine lifecycle state.
type State int

const (
	// Exploring means the frontier may still hold cells.
	Exploring State = iota
	// Done means the frontier is empty; the tour is final.
	Done
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Exploring:
		return "exploring"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// StepKind tells how a step resolved its candidate.
type StepKind int

const (
	// Advance: the candidate was the next curve cell and open; the agent moved onto it.
	Advance StepKind = iota
	// Detect: the candidate was the next curve cell and blocked.
	Detect
	// DetourAdvance: the agent walked a shortest confirmed path onto an open candidate.
	DetourAdvance
	// DetourDetect: the agent walked up to a blocked candidate and stopped next to it.
	DetourDetect
)

// String implements fmt.Stringer.
func (k StepKind) String() string {
	switch k {
	case Advance:
		return "advance"
	case Detect:
		return "detect"
	case DetourAdvance:
		return "detour-advance"
	case DetourDetect:
		return "detour-detect"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// Blocked reports whether the step ended on an obstacle discovery.
func (k StepKind) Blocked() bool { return k == Detect || k == DetourDetect }

// Step is the snapshot emitted after each resolved candidate.
//
// Moves lists the cells appended to the tour by this step, in order: the
// candidate for Advance, nothing for Detect, the path after the departure
// cell for DetourAdvance, and the path strictly between departure and
// candidate for DetourDetect.
type Step struct {
	Index       int
	Candidate   int
	Kind        StepKind
	Moves       []int
	VisitedLen  int
	DetectedLen int
}

// Result is the final tour.
//
// Visited is every cell the agent stood on, in order, starting with
// StartCell; cells crossed again on a detour appear again. Detected lists the
// discovered obstacle cells in discovery order.
type Result struct {
	Visited  []int
	Detected []int
	Steps    int
}

// Moves returns the number of positions in the tour, len(Visited).
func (r *Result) Moves() int { return len(r.Visited) }

// Option configures an Engine via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds parameters and callbacks of an Engine.
type Options struct {
	// Ctx allows cancellation of Run between steps.
	Ctx context.Context

	// MaxSteps caps the number of steps. Zero selects N, the size of the grid,
	// which exploration can never exceed on a consistent graph.
	MaxSteps int

	// OnStep is called after every step. Returning an error aborts Run.
	OnStep func(Step) error

	// Logger receives debug records for detours and detections.
	Logger logrus.FieldLogger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, the N-step
// budget, a no-op hook and a discarding logger.
func DefaultOptions() Options {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return Options{
		Ctx:      context.Background(),
		MaxSteps: 0,
		OnStep:   func(Step) error { return nil },
		Logger:   l,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxSteps sets the step budget.
//
//	n > 0: at most n steps
//	n == 0: default budget N
//	n < 0: invalid option → ErrOptionViolation
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithOnStep registers a callback receiving every step snapshot.
func WithOnStep(fn func(Step) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
