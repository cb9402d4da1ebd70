package depgraph

import "slices"

// orderedSet is a set of node IDs that remembers first-insertion order.
// Go map iteration order is randomized, so adjacency lists and the node
// table cannot sit directly on maps: traversal tie-breaks and repeated
// query results must follow insertion order. The slice carries the order,
// the index map gives O(1) membership.
type orderedSet struct {
	// ids holds the members in first-insertion order.
	ids []string
	// index maps each member to its position in ids.
	index map[string]int
}

func newOrderedSet() *orderedSet {
	return &orderedSet{index: make(map[string]int)}
}

// add appends id if absent and reports whether it was inserted. Re-adding
// an existing member does not move it.
func (s *orderedSet) add(id string) bool {
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	return true
}

// remove deletes id while preserving the relative order of the remaining
// members, and reports whether it was present.
func (s *orderedSet) remove(id string) bool {
	pos, ok := s.index[id]
	if !ok {
		return false
	}
	s.ids = slices.Delete(s.ids, pos, pos+1)
	delete(s.index, id)
	for i := pos; i < len(s.ids); i++ {
		s.index[s.ids[i]] = i
	}
	return true
}

func (s *orderedSet) has(id string) bool {
	_, ok := s.index[id]
	return ok
}

func (s *orderedSet) len() int {
	return len(s.ids)
}

// values returns a copy of the members in insertion order, so callers
// cannot mutate the set through the returned slice.
func (s *orderedSet) values() []string {
	return slices.Clone(s.ids)
}
