// Package depgraph implements a directed dependency graph over string-keyed
// nodes. It answers ordering questions: the topological order of the whole
// graph, and the transitive dependencies or dependants of any single node,
// both in dependency-respecting order.
//
// The graph is a plain in-memory structure mutated synchronously by its
// owner. It provides no internal locking; callers that share a graph across
// goroutines must serialize access themselves.
//
// Traversal is depth-first with an explicit heap-allocated stack, so graphs
// with hundreds of thousands of chained nodes sort without exhausting the
// call stack. Cycles are reported as errors by default; a graph constructed
// with AllowCycles tolerates them and produces an approximate order instead.
package depgraph
