// Package bfs provides options and error definitions for breadth-first
// exploration of a core.Graph.
package bfs

import (
	"errors"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("bfs: graph is nil")

// Option configures BFS behavior via functional arguments.
type Option func(*BFSOptions)

// BFSOptions holds parameters to customize BFS execution.
type BFSOptions struct {
	// Exclude, if non-nil, removes vertices (and their incident edges) from the
	// search space. Excluded vertices never appear in any result.
	Exclude func(id string) bool
}

// DefaultOptions returns a BFSOptions with nothing excluded.
func DefaultOptions() BFSOptions {
	return BFSOptions{}
}

// WithExclude hides every vertex for which fn returns true.
func WithExclude(fn func(id string) bool) Option {
	return func(o *BFSOptions) {
		o.Exclude = fn
	}
}
