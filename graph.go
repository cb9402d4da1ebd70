package depgraph

import "log/slog"

// Graph is a directed dependency graph of string-identified nodes. Edges are
// stored in both directions so direct neighbours can be answered in O(1) in
// either direction; every mutation keeps the two sides consistent.
//
// Graph is not safe for concurrent use.
type Graph struct {
	// nodes stores the payload record for each node, keyed by ID.
	nodes map[string]*nodeRecord
	// order remembers node insertion order. It drives the root order of
	// OverallOrder and the result order of EntryNodes.
	order *orderedSet
	// outgoing maps a node to the ordered set of nodes it depends on.
	outgoing map[string]*orderedSet
	// incoming maps a node to the ordered set of nodes that depend on it.
	incoming map[string]*orderedSet
	// circular selects tolerant traversal semantics, fixed at construction.
	circular bool
	logger   *slog.Logger
}

// nodeRecord holds a node's payload. The presence flag is tracked separately
// so that an explicitly stored zero value (nil, "", 0, false) stays distinct
// from "no payload given", which resolves to the node's own ID.
type nodeRecord struct {
	data    any
	hasData bool
}

// New creates an empty Graph. By default traversal fails on dependency
// cycles; pass AllowCycles to tolerate them.
func New(opts ...Option) *Graph {
	g := &Graph{
		nodes:    make(map[string]*nodeRecord),
		order:    newOrderedSet(),
		outgoing: make(map[string]*orderedSet),
		incoming: make(map[string]*orderedSet),
		logger:   slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// AddNode adds a node with no payload; reading its data returns the ID
// itself. If the node already exists the call is a no-op and its payload and
// edges are untouched.
func (g *Graph) AddNode(id string) {
	g.insertNode(id, nodeRecord{})
}

// AddNodeWithData adds a node with the given payload, stored verbatim: a
// nil, empty or zero payload is preserved as such. If the node already
// exists the call is a no-op.
func (g *Graph) AddNodeWithData(id string, data any) {
	g.insertNode(id, nodeRecord{data: data, hasData: true})
}

func (g *Graph) insertNode(id string, rec nodeRecord) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = &rec
	g.order.add(id)
	g.outgoing[id] = newOrderedSet()
	g.incoming[id] = newOrderedSet()
}

// RemoveNode deletes the node and every edge referencing it, from both
// adjacency directions. Removing an absent node is a no-op.
func (g *Graph) RemoveNode(id string) {
	if _, ok := g.nodes[id]; !ok {
		return
	}
	for _, dep := range g.outgoing[id].ids {
		g.incoming[dep].remove(id)
	}
	for _, dependant := range g.incoming[id].ids {
		g.outgoing[dependant].remove(id)
	}
	delete(g.outgoing, id)
	delete(g.incoming, id)
	delete(g.nodes, id)
	g.order.remove(id)
}

// HasNode reports whether a node with the given ID exists.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// Size returns the number of nodes in the graph.
func (g *Graph) Size() int {
	return len(g.nodes)
}

// NodeData returns the node's payload, or the ID itself when the node was
// added without one. It returns a NodeNotFoundError if the node is absent.
func (g *Graph) NodeData(id string) (any, error) {
	rec, ok := g.nodes[id]
	if !ok {
		return nil, NodeNotFoundError{ID: id}
	}
	if !rec.hasData {
		return id, nil
	}
	return rec.data, nil
}

// SetNodeData replaces the node's payload. It returns a NodeNotFoundError if
// the node is absent.
func (g *Graph) SetNodeData(id string, data any) error {
	rec, ok := g.nodes[id]
	if !ok {
		return NodeNotFoundError{ID: id}
	}
	rec.data = data
	rec.hasData = true
	return nil
}

// AddDependency records that `from` depends on `to`. Both endpoints are
// validated independently before any state changes; a missing endpoint
// yields a NodeNotFoundError naming it. Adding an existing edge is a no-op
// that neither duplicates it nor changes its position.
func (g *Graph) AddDependency(from, to string) error {
	if _, ok := g.nodes[from]; !ok {
		return NodeNotFoundError{ID: from}
	}
	if _, ok := g.nodes[to]; !ok {
		return NodeNotFoundError{ID: to}
	}
	g.outgoing[from].add(to)
	g.incoming[to].add(from)
	return nil
}

// RemoveDependency deletes the edge from both adjacency directions. It is a
// no-op when the edge, or either endpoint, does not exist.
func (g *Graph) RemoveDependency(from, to string) {
	if set, ok := g.outgoing[from]; ok {
		set.remove(to)
	}
	if set, ok := g.incoming[to]; ok {
		set.remove(from)
	}
}

// DirectDependenciesOf returns the nodes `id` directly depends on, in edge
// insertion order, without traversal.
func (g *Graph) DirectDependenciesOf(id string) ([]string, error) {
	set, ok := g.outgoing[id]
	if !ok {
		return nil, NodeNotFoundError{ID: id}
	}
	return set.values(), nil
}

// DirectDependantsOf returns the nodes that directly depend on `id`, in edge
// insertion order, without traversal.
func (g *Graph) DirectDependantsOf(id string) ([]string, error) {
	set, ok := g.incoming[id]
	if !ok {
		return nil, NodeNotFoundError{ID: id}
	}
	return set.values(), nil
}

// DirectDependentsOf is an alias for DirectDependantsOf.
func (g *Graph) DirectDependentsOf(id string) ([]string, error) {
	return g.DirectDependantsOf(id)
}

// EntryNodes returns the nodes nothing depends on, in insertion order.
func (g *Graph) EntryNodes() []string {
	entries := make([]string, 0, len(g.nodes))
	for _, id := range g.order.ids {
		if g.incoming[id].len() == 0 {
			entries = append(entries, id)
		}
	}
	return entries
}
