package depgraph

import "log/slog"

// Option configures a Graph at construction time.
type Option func(*Graph)

// AllowCycles makes traversal tolerate dependency cycles instead of failing.
// A tolerant traversal does not re-descend into a node already on the active
// path; the resulting order includes every node exactly once but is only an
// approximation of a topological order where cycles exist. The setting is
// fixed for the graph's lifetime.
func AllowCycles() Option {
	return func(g *Graph) {
		g.circular = true
	}
}

// WithLogger installs a structured logger for debug-level traversal events.
// Without it the graph logs nothing.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Graph) {
		g.logger = logger
	}
}
