package arbor

// ReplaceBy puts replacement in n's place under n's parent and hands it n's
// children. Internal children (see ForceParentOwned) are dropped instead of
// moved. With keepGroups, n's groups are added to replacement; without it,
// replacement's groups are untouched. Either way n ends detached, childless,
// ownerless and in no groups.
//
// replacement must be detached and must not be an ancestor of n. Nothing
// changes when validation fails.
func (n *Node) ReplaceBy(replacement *Node, keepGroups bool) error {
	switch {
	case replacement == nil:
		return n.fail("replace by", ErrNilNode)
	case n.freed || replacement.freed:
		return n.fail("replace by", ErrFreed)
	case replacement == n:
		return n.fail("replace by", ErrSelfChild)
	case replacement.parent != nil:
		return n.fail("replace by", ErrHasParent)
	case replacement.IsAParentOf(n):
		return n.fail("replace by", ErrCycle)
	}

	parent := n.parent
	index := n.Index()
	owner := n.owner
	if owner == n {
		owner = replacement
	}
	owned := n.OwnedBy(n)

	if keepGroups {
		for _, g := range n.groups {
			_ = replacement.AddToGroup(g.Name, g.Persistent)
		}
	}

	if parent != nil {
		parent.detach(n)
		parent.attach(replacement, index, childConfig{})
	}

	for len(n.children) > 0 {
		c := n.children[0]
		n.detach(c)
		if !c.ownedByParent {
			replacement.attach(c, len(replacement.children), childConfig{})
		}
	}

	replacement.setOwner(owner)
	for _, o := range owned {
		if replacement.IsAParentOf(o) {
			o.setOwner(replacement)
		} else {
			o.setOwner(nil)
		}
	}

	n.clearGroups()
	n.setOwner(nil)
	n.emit(TreeEvent{Type: EventReplaced, Node: n, Parent: parent, Other: replacement, Index: index})
	return nil
}
