package frontier

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/curvewalk/bfs"
)

// ShortestPath returns one shortest path from source to target that uses only
// vertices of sub. The result always starts with source and ends with target;
// when source == target it is the single-element path [source].
//
// Returns ErrGraphNil for a nil sub, ErrVertexNotFound when either endpoint is
// not in sub, and ErrNoPath when they are disconnected inside sub.
// Complexity: O(k·d).
func ShortestPath(sub *Subgraph, source, target int) ([]int, error) {
	if sub == nil {
		return nil, ErrGraphNil
	}
	if !sub.HasVertex(target) {
		return nil, fmt.Errorf("%w: target %d", ErrVertexNotFound, target)
	}
	res, err := bfs.BFS(sub, source, bfs.WithOnVisit(func(v, _ int) error {
		if v == target {
			return errReached
		}
		return nil
	}))
	switch {
	case errors.Is(err, bfs.ErrStartVertexNotFound):
		return nil, fmt.Errorf("%w: source %d", ErrVertexNotFound, source)
	case err != nil && !errors.Is(err, errReached):
		return nil, err
	}
	path, err := res.PathTo(target)
	if err != nil {
		return nil, fmt.Errorf("%w: %d → %d", ErrNoPath, source, target)
	}

	return path, nil
}

// errReached stops the BFS as soon as the target is dequeued.
var errReached = errors.New("frontier: target reached")
