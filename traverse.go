package depgraph

// visitState tracks a node's progress through one traversal.
type visitState uint8

const (
	// unvisited nodes have not been reached yet.
	unvisited visitState = iota
	// inProgress nodes sit on the active path; reaching one again means
	// the walk has closed a cycle.
	inProgress
	// done nodes are fully processed and already emitted.
	done
)

// frame is one level of the explicit traversal stack: a node plus a cursor
// into its ordered neighbour list. Keeping the stack on the heap bounds
// traversal depth by available memory rather than by goroutine stack size.
type frame struct {
	id   string
	next int
}

// walker performs iterative depth-first traversals over one adjacency
// relation, emitting nodes in post-order: a node is appended only after all
// of its neighbours have been. The visited state is shared across roots so a
// multi-root walk emits every node exactly once.
type walker struct {
	// edges is the adjacency relation being walked, either the graph's
	// outgoing or incoming side.
	edges      map[string]*orderedSet
	circular   bool
	leavesOnly bool
	state      map[string]visitState
	result     []string
}

func newWalker(edges map[string]*orderedSet, circular, leavesOnly bool) *walker {
	return &walker{
		edges:      edges,
		circular:   circular,
		leavesOnly: leavesOnly,
		state:      make(map[string]visitState),
		result:     make([]string, 0, len(edges)),
	}
}

// walk runs one depth-first pass rooted at start. A root that a previous
// pass already finished is skipped without re-traversal. In strict mode a
// cycle aborts the walk with a CycleError carrying the closed path.
func (w *walker) walk(start string) error {
	if w.state[start] == done {
		return nil
	}
	stack := []frame{{id: start}}
	w.state[start] = inProgress

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		neighbours := w.edges[top.id]

		if top.next < neighbours.len() {
			next := neighbours.ids[top.next]
			top.next++
			switch w.state[next] {
			case inProgress:
				// The neighbour is on the active path: a cycle.
				// Tolerant mode treats it as already satisfied.
				if !w.circular {
					return CycleError{Path: cyclePath(stack, next)}
				}
			case unvisited:
				w.state[next] = inProgress
				stack = append(stack, frame{id: next})
			case done:
				// Already emitted, nothing to do.
			}
			continue
		}

		// Neighbour list exhausted: pop and emit post-order.
		stack = stack[:len(stack)-1]
		w.state[top.id] = done
		if !w.leavesOnly || neighbours.len() == 0 {
			w.result = append(w.result, top.id)
		}
	}
	return nil
}

// cyclePath reconstructs the cycle walk from the active stack: the frames
// from where `closing` sits on the path through the top, then `closing`
// again to close the loop.
func cyclePath(stack []frame, closing string) []string {
	from := 0
	for i, f := range stack {
		if f.id == closing {
			from = i
			break
		}
	}
	path := make([]string, 0, len(stack)-from+1)
	for _, f := range stack[from:] {
		path = append(path, f.id)
	}
	return append(path, closing)
}

// DependenciesOf returns every node `id` transitively depends on, excluding
// `id` itself, ordered so each node appears after all of its own
// dependencies. With leavesOnly the result keeps only nodes that have no
// dependencies of their own. It returns a NodeNotFoundError for an absent
// node, and a CycleError if a cycle is reachable and cycles are not allowed.
func (g *Graph) DependenciesOf(id string, leavesOnly bool) ([]string, error) {
	return g.closureOf("DependenciesOf", g.outgoing, id, leavesOnly)
}

// DependantsOf returns every node that transitively depends on `id`,
// excluding `id` itself, ordered so each node appears before all of its own
// dependencies on the walked relation. With leavesOnly the result keeps only
// entry nodes (nothing depends on them).
func (g *Graph) DependantsOf(id string, leavesOnly bool) ([]string, error) {
	return g.closureOf("DependantsOf", g.incoming, id, leavesOnly)
}

// DependentsOf is an alias for DependantsOf.
func (g *Graph) DependentsOf(id string, leavesOnly bool) ([]string, error) {
	return g.DependantsOf(id, leavesOnly)
}

func (g *Graph) closureOf(op string, edges map[string]*orderedSet, id string, leavesOnly bool) ([]string, error) {
	if _, ok := g.nodes[id]; !ok {
		return nil, NodeNotFoundError{ID: id}
	}
	w := newWalker(edges, g.circular, leavesOnly)
	if err := w.walk(id); err != nil {
		g.logger.Debug("Traversal aborted on cycle.", "op", op, "id", id, "error", err)
		return nil, err
	}
	// The start node is always popped last from its own walk; drop it from
	// the closure unless leavesOnly already filtered it out.
	result := w.result
	if n := len(result); n > 0 && result[n-1] == id {
		result = result[:n-1]
	}
	g.logger.Debug("Traversal complete.", "op", op, "id", id, "count", len(result))
	return result, nil
}

// OverallOrder returns a topological order of the whole graph: every node
// appears after all of its dependencies. Nodes are offered as traversal
// roots in insertion order, which makes repeated calls on an unmodified
// graph deterministic. With leavesOnly the result keeps only nodes with no
// dependencies. An empty graph yields an empty sequence. In strict mode any
// cycle, including one in a disconnected subgraph, aborts with a CycleError;
// with AllowCycles every node is still emitted exactly once.
func (g *Graph) OverallOrder(leavesOnly bool) ([]string, error) {
	w := newWalker(g.outgoing, g.circular, leavesOnly)
	for _, id := range g.order.ids {
		if err := w.walk(id); err != nil {
			g.logger.Debug("Traversal aborted on cycle.", "op", "OverallOrder", "id", id, "error", err)
			return nil, err
		}
	}
	g.logger.Debug("Traversal complete.", "op", "OverallOrder", "count", len(w.result))
	return w.result, nil
}
