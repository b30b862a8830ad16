package arbor

// SetOwner records owner as the node that persists n. Owners are expected to
// be ancestors of n, but this is not checked here. Pass nil to clear.
func (n *Node) SetOwner(owner *Node) {
	n.setOwner(owner)
}

// Owner returns n's owner, or nil.
func (n *Node) Owner() *Node {
	return n.owner
}

// OwnedBy returns every descendant of n whose owner is owner, in
// depth-first order. n itself is not included.
func (n *Node) OwnedBy(owner *Node) []*Node {
	var out []*Node
	n.GetOwnedBy(owner, &out)
	return out
}

// GetOwnedBy appends to out every descendant of n whose owner is owner.
func (n *Node) GetOwnedBy(owner *Node, out *[]*Node) {
	if owner == nil {
		return
	}
	for _, c := range n.children {
		if c.owner == owner {
			*out = append(*out, c)
		}
		c.GetOwnedBy(owner, out)
	}
}

func (n *Node) setOwner(owner *Node) {
	if n.owner == owner {
		return
	}
	n.owner = owner
	n.emit(TreeEvent{Type: EventOwnerChanged, Node: n, Other: owner})
}
