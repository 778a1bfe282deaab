package linked

// region Node
type Node[I any] struct {
	item I
	next *Node[I]
	prev *Node[I] // maintained by BilinkedList only
}

// NewNode is the default NodeFactory.
func NewNode[I any](item I) *Node[I] {
	return &Node[I]{item: item}
}

// NodeFactory creates the node that will hold item. Lists never reuse the
// returned node for another item.
type NodeFactory[I any] func(item I) *Node[I]

func (n *Node[I]) Item() I {
	return n.item
}

func (n *Node[I]) SetItem(item I) {
	n.item = item
}

func (n *Node[I]) Next() *Node[I] {
	return n.next
}

// Prev is always nil for nodes owned by a singly linked List.
func (n *Node[I]) Prev() *Node[I] {
	return n.prev
}

func (n *Node[I]) unlink() {
	n.next, n.prev = nil, nil
}

// endregion
