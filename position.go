package linked

// Position is a saved cursor. It is only accepted by the list that produced
// it, and only until that list is cleared. Removing the nodes it references
// (other than through Delete, which repairs its own saved cursor) leaves it
// dangling; using it then is the caller's mistake.
type Position[I any] struct {
	owner uint64
	epoch uint64
	prev  *Node[I]
	cur   *Node[I]
}

// Node returns the node the position is on, nil when before or after.
func (p Position[I]) Node() *Node[I] {
	return p.cur
}

func (p Position[I]) Before() bool {
	return p.cur == nil && p.prev == nil
}

func (p Position[I]) After() bool {
	return p.cur == nil && p.prev != nil
}

// Equal reports whether p and q denote the same cursor of the same list.
func (p Position[I]) Equal(q Position[I]) bool {
	return p == q
}
