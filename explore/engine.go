package explore

import (
	"fmt"
	"slices"

	goerrors "github.com/go-errors/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/curvewalk/frontier"
)

// Engine is the exploration state machine. It owns its visited and detected
// state and only reads the graph and the obstacle field.
// An Engine is not safe for concurrent use.
type Engine struct {
	graph Graph
	field Blocker
	opts  Options

	maxSteps int
	steps    int
	state    State

	visited  []int  // tour in order, repeats allowed
	tour     []int  // distinct visited cells, in first-visit order
	onTour   []bool // membership of tour
	detected []int  // discovery order
	isDet    []bool // membership of detected
}

// New returns an Engine positioned on StartCell with an empty detected set.
// Returns ErrNilGraph, ErrNilField, ErrOptionViolation, or ErrStartBlocked.
func New(g Graph, field Blocker, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if field == nil {
		return nil, ErrNilField
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if field.Blocked(StartCell) {
		return nil, fmt.Errorf("%w: cell %d", ErrStartBlocked, StartCell)
	}

	n := g.Len()
	e := &Engine{
		graph:    g,
		field:    field,
		opts:     o,
		maxSteps: o.MaxSteps,
		state:    Exploring,
		onTour:   make([]bool, n),
		isDet:    make([]bool, n),
	}
	if e.maxSteps == 0 {
		e.maxSteps = n
	}
	e.visit(StartCell)

	return e, nil
}

// Explore builds an Engine and runs it to completion.
func Explore(g Graph, field Blocker, opts ...Option) (*Result, error) {
	e, err := New(g, field, opts...)
	if err != nil {
		return nil, err
	}
	return e.Run()
}

// Run steps until the frontier is empty and returns the final tour.
// It stops early on context cancellation, a hook error, an exhausted step
// budget, or a graph invariant violation.
func (e *Engine) Run() (*Result, error) {
	for {
		select {
		case <-e.opts.Ctx.Done():
			return nil, e.opts.Ctx.Err()
		default:
		}

		st, done, err := e.Step()
		if err != nil {
			return nil, err
		}
		if done {
			return e.Result(), nil
		}
		if err := e.opts.OnStep(st); err != nil {
			return nil, fmt.Errorf("explore: OnStep error at step %d: %w", st.Index, err)
		}
	}
}

// Step resolves one frontier candidate. It returns done == true, with a zero
// Step, once the frontier is empty; the engine is then in the Done state and
// further calls keep reporting done.
func (e *Engine) Step() (Step, bool, error) {
	if e.state == Done {
		return Step{}, true, nil
	}
	candidate, ok := e.nextCandidate()
	if !ok {
		e.state = Done
		e.opts.Logger.WithFields(logrus.Fields{
			"steps":    e.steps,
			"moves":    len(e.visited),
			"detected": len(e.detected),
		}).Debug("frontier exhausted")
		return Step{}, true, nil
	}
	if e.steps >= e.maxSteps {
		return Step{}, false, fmt.Errorf("%w: %d steps taken, next candidate %d", ErrStepBudget, e.steps, candidate)
	}

	last := e.visited[len(e.visited)-1]
	var (
		st  Step
		err error
	)
	if candidate == last+1 {
		st, err = e.advance(last, candidate)
	} else {
		st, err = e.detour(last, candidate)
	}
	if err != nil {
		return Step{}, false, err
	}

	e.steps++
	st.Index = e.steps
	st.Candidate = candidate
	st.VisitedLen = len(e.visited)
	st.DetectedLen = len(e.detected)

	return st, false, nil
}

// advance handles the curve-contiguous candidate: one hop, no path search.
func (e *Engine) advance(last, candidate int) (Step, error) {
	if !e.graph.HasEdge(last, candidate) {
		return Step{}, invariant(fmt.Errorf("missing edge %d-%d between consecutive curve cells", last, candidate))
	}
	if e.field.Blocked(candidate) {
		e.detect(candidate)
		return Step{Kind: Detect}, nil
	}
	e.visit(candidate)

	return Step{Kind: Advance, Moves: []int{candidate}}, nil
}

// detour walks a shortest path through confirmed-open cells to the candidate.
// The path is computed on the subgraph induced by the tour plus the candidate,
// so every intermediate cell is already visited.
func (e *Engine) detour(last, candidate int) (Step, error) {
	vertices := append(slices.Clone(e.tour), candidate)
	sub, err := frontier.Induced(e.graph, vertices)
	if err != nil {
		return Step{}, invariant(err)
	}
	path, err := frontier.ShortestPath(sub, last, candidate)
	if err != nil {
		return Step{}, invariant(err)
	}
	if len(path) < 2 || path[0] != last || path[len(path)-1] != candidate {
		return Step{}, invariant(fmt.Errorf("detour %v does not join %d to %d", path, last, candidate))
	}
	inner := path[1 : len(path)-1]
	for _, v := range inner {
		if !e.onTour[v] {
			return Step{}, invariant(fmt.Errorf("detour crosses unconfirmed cell %d", v))
		}
	}

	log := e.opts.Logger.WithFields(logrus.Fields{
		"step":      e.steps + 1,
		"from":      last,
		"candidate": candidate,
		"path_len":  len(path),
	})
	if e.field.Blocked(candidate) {
		for _, v := range inner {
			e.visit(v)
		}
		e.detect(candidate)
		log.Debug("detour reached obstacle")

		return Step{Kind: DetourDetect, Moves: slices.Clone(inner)}, nil
	}
	for _, v := range path[1:] {
		e.visit(v)
	}
	log.Debug("detour")

	return Step{Kind: DetourAdvance, Moves: slices.Clone(path[1:])}, nil
}

// nextCandidate returns the smallest frontier cell: a neighbour of the tour
// that is neither visited nor detected.
func (e *Engine) nextCandidate() (int, bool) {
	best, found := 0, false
	for _, v := range e.tour {
		for _, w := range e.graph.Neighbors(v) {
			if e.onTour[w] || e.isDet[w] {
				continue
			}
			if !found || w < best {
				best, found = w, true
			}
		}
	}
	return best, found
}

func (e *Engine) visit(v int) {
	e.visited = append(e.visited, v)
	if !e.onTour[v] {
		e.onTour[v] = true
		e.tour = append(e.tour, v)
	}
}

func (e *Engine) detect(v int) {
	e.isDet[v] = true
	e.detected = append(e.detected, v)
}

// invariant wraps err as a fatal ErrGraphInvariant carrying a stack trace.
func invariant(err error) error {
	return goerrors.Wrap(fmt.Errorf("%w: %w", ErrGraphInvariant, err), 1)
}
