package arbor

// AddToGroup adds n to the named group. Adding again only updates the
// persistence flag.
func (n *Node) AddToGroup(name string, persistent bool) error {
	if name == "" {
		return n.fail("add to group", ErrEmptyName)
	}
	if i := n.groupIndex(name); i >= 0 {
		if n.groups[i].Persistent == persistent {
			return nil
		}
		n.groups[i].Persistent = persistent
	} else {
		n.groups = append(n.groups, GroupInfo{Name: name, Persistent: persistent})
	}
	n.emit(TreeEvent{Type: EventGroupAdded, Node: n, Group: name, Persistent: persistent})
	return nil
}

// RemoveFromGroup removes n from the named group. No-op if n is not in it.
func (n *Node) RemoveFromGroup(name string) {
	i := n.groupIndex(name)
	if i < 0 {
		return
	}
	n.groups = append(n.groups[:i], n.groups[i+1:]...)
	n.emit(TreeEvent{Type: EventGroupRemoved, Node: n, Group: name})
}

// IsInGroup reports whether n belongs to the named group.
func (n *Node) IsInGroup(name string) bool {
	return n.groupIndex(name) >= 0
}

// Groups returns a copy of n's group entries in the order they were added.
func (n *Node) Groups() []GroupInfo {
	if len(n.groups) == 0 {
		return nil
	}
	out := make([]GroupInfo, len(n.groups))
	copy(out, n.groups)
	return out
}

// GetGroups appends n's group entries to out.
func (n *Node) GetGroups(out *[]GroupInfo) {
	*out = append(*out, n.groups...)
}

// PersistentGroupCount returns how many of n's groups are persistent.
func (n *Node) PersistentGroupCount() int {
	count := 0
	for _, g := range n.groups {
		if g.Persistent {
			count++
		}
	}
	return count
}

// FindInGroup returns n and its descendants that belong to the named group,
// in depth-first order.
func (n *Node) FindInGroup(name string) []*Node {
	var out []*Node
	n.Walk(func(d *Node) bool {
		if d.IsInGroup(name) {
			out = append(out, d)
		}
		return true
	})
	return out
}

func (n *Node) groupIndex(name string) int {
	for i, g := range n.groups {
		if g.Name == name {
			return i
		}
	}
	return -1
}

func (n *Node) clearGroups() {
	for len(n.groups) > 0 {
		n.RemoveFromGroup(n.groups[len(n.groups)-1].Name)
	}
}
