package depgraph

import (
	"fmt"
	"strings"
)

// NodeNotFoundError is returned by any operation that references a node ID
// not present in the graph.
type NodeNotFoundError struct {
	// ID is the missing node's identifier.
	ID string
}

func (e NodeNotFoundError) Error() string {
	return fmt.Sprintf("Node does not exist: %s", e.ID)
}

// CycleError is returned by traversal operations when the graph contains a
// dependency cycle and cycles were not enabled with AllowCycles. It carries
// one concrete cycle walk, not necessarily the only or shortest one.
type CycleError struct {
	// Path is the cycle walk: a sequence of node IDs starting and ending
	// at the same ID.
	Path []string
}

func (e CycleError) Error() string {
	return "Dependency Cycle Found: " + strings.Join(e.Path, " -> ")
}
