package arbor

// ChildOption adjusts how a child is inserted.
type ChildOption func(*childConfig)

type childConfig struct {
	legible bool
}

// Legible makes a name clash resolve to a readable serial name ("Sprite2")
// instead of the default "@Sprite@<id>" form.
func Legible() ChildOption {
	return func(c *childConfig) { c.legible = true }
}

// AddChild appends child to n's children. The child must be detached, and
// must not be n or one of n's ancestors. Its name is made unique among its
// new siblings.
func (n *Node) AddChild(child *Node, opts ...ChildOption) error {
	if err := n.checkAttach(child); err != nil {
		return n.fail("add child", err)
	}
	n.attach(child, len(n.children), buildChildConfig(opts))
	return nil
}

// AddChildAt inserts child at index, which may equal ChildCount to append.
func (n *Node) AddChildAt(child *Node, index int, opts ...ChildOption) error {
	if err := n.checkAttach(child); err != nil {
		return n.fail("add child at", err)
	}
	if index < 0 || index > len(n.children) {
		return n.fail("add child at", ErrIndexOutOfRange)
	}
	n.attach(child, index, buildChildConfig(opts))
	return nil
}

// AddSibling inserts sibling right after n under n's parent.
func (n *Node) AddSibling(sibling *Node, opts ...ChildOption) error {
	if n.parent == nil {
		return n.fail("add sibling", ErrNoParent)
	}
	p := n.parent
	if err := p.checkAttach(sibling); err != nil {
		return n.fail("add sibling", err)
	}
	p.attach(sibling, n.Index()+1, buildChildConfig(opts))
	return nil
}

// RemoveChild detaches child from n. Removing a node that is not a child of
// n does nothing.
func (n *Node) RemoveChild(child *Node) error {
	if child == nil {
		return n.fail("remove child", ErrNilNode)
	}
	if n.freed {
		return n.fail("remove child", ErrFreed)
	}
	if child.parent != n {
		return nil
	}
	n.detach(child)
	return nil
}

// RemoveFromParent detaches n from its parent. No-op on a root.
func (n *Node) RemoveFromParent() {
	if n.parent == nil {
		return
	}
	n.parent.detach(n)
}

// MoveChild moves child to index, shifting the siblings in between.
func (n *Node) MoveChild(child *Node, index int) error {
	if child == nil {
		return n.fail("move child", ErrNilNode)
	}
	if child.parent != n {
		return n.fail("move child", ErrNotChild)
	}
	if index < 0 || index >= len(n.children) {
		return n.fail("move child", ErrIndexOutOfRange)
	}
	oldIndex := child.Index()
	if oldIndex == index {
		return nil
	}
	// Shift elements to fill the gap and open the target slot.
	if oldIndex < index {
		copy(n.children[oldIndex:], n.children[oldIndex+1:index+1])
	} else {
		copy(n.children[index+1:], n.children[index:oldIndex])
	}
	n.children[index] = child
	n.emit(TreeEvent{Type: EventChildMoved, Node: child, Parent: n, Index: index})
	return nil
}

// Raise moves n to the last position among its siblings.
func (n *Node) Raise() {
	if n.parent == nil {
		return
	}
	_ = n.parent.MoveChild(n, len(n.parent.children)-1)
}

// Reparent moves n under newParent, appending it. Owners in the moved
// subtree that are no longer ancestors after the move are cleared. This
// walks the whole subtree.
func (n *Node) Reparent(newParent *Node, opts ...ChildOption) error {
	if newParent == nil {
		return n.fail("reparent", ErrNilNode)
	}
	if n.parent == newParent {
		return nil
	}
	if n.freed || newParent.freed {
		return n.fail("reparent", ErrFreed)
	}
	if newParent == n {
		return n.fail("reparent", ErrSelfChild)
	}
	if n.IsAParentOf(newParent) {
		return n.fail("reparent", ErrCycle)
	}
	n.RemoveFromParent()
	newParent.attach(n, len(newParent.children), buildChildConfig(opts))
	n.Walk(func(d *Node) bool {
		if d.owner != nil && !d.owner.IsAParentOf(d) {
			d.setOwner(nil)
		}
		return true
	})
	return nil
}

// RemoveAndSkip removes n from its parent and hands n's children, except
// internal ones, to the parent at n's old position. Owners that pointed at n
// are moved to n's own owner.
func (n *Node) RemoveAndSkip() error {
	if n.parent == nil {
		return n.fail("remove and skip", ErrNoParent)
	}
	p := n.parent
	index := n.Index()
	newOwner := n.owner

	var moved []*Node
	for i := 0; i < len(n.children); {
		c := n.children[i]
		if c.ownedByParent {
			i++
			continue
		}
		n.detach(c)
		moved = append(moved, c)
	}
	p.detach(n)
	for i, c := range moved {
		p.attach(c, index+i, childConfig{})
		c.Walk(func(d *Node) bool {
			if d.owner == n {
				d.setOwner(newOwner)
			}
			return true
		})
	}
	return nil
}

// --- Queries ---

// Parent returns n's parent, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated by
// the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int {
	return len(n.children)
}

// Child returns the child at index, or nil when index is out of range.
func (n *Node) Child(index int) *Node {
	if index < 0 || index >= len(n.children) {
		return nil
	}
	return n.children[index]
}

// Index returns n's position among its siblings, or -1 for a root.
func (n *Node) Index() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// IsAParentOf reports whether other is a strict descendant of n.
func (n *Node) IsAParentOf(other *Node) bool {
	if other == nil {
		return false
	}
	for p := other.parent; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// IsGreaterThan reports whether n comes after other in depth-first tree
// order. Nodes in different trees are never greater.
func (n *Node) IsGreaterThan(other *Node) bool {
	if other == nil || other == n {
		return false
	}
	a, b := n.ancestry(), other.ancestry()
	if a[0] != b[0] {
		return false
	}
	i := 0
	for i < len(a) && i < len(b) && a[i] == b[i] {
		i++
	}
	switch {
	case i == len(a):
		// n is an ancestor of other, so it comes first.
		return false
	case i == len(b):
		return true
	}
	return a[i].Index() > b[i].Index()
}

// FindCommonParentWith returns the lowest common ancestor of n and other,
// counting each node as its own ancestor. It returns nil for disjoint trees.
func (n *Node) FindCommonParentWith(other *Node) *Node {
	if other == nil {
		return nil
	}
	a, b := n, other
	da, db := a.depth(), b.depth()
	for da > db {
		a = a.parent
		da--
	}
	for db > da {
		b = b.parent
		db--
	}
	for a != b {
		a, b = a.parent, b.parent
	}
	return a
}

// Root returns the topmost ancestor of n (n itself for a root).
func (n *Node) Root() *Node {
	r := n
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Walk visits n and its descendants depth-first in child order. Returning
// false from fn skips the visited node's children.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) {
		return
	}
	for _, c := range n.children {
		c.Walk(fn)
	}
}

// --- Internal ---

func buildChildConfig(opts []ChildOption) childConfig {
	var cfg childConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// checkAttach validates that child may be attached under n.
func (n *Node) checkAttach(child *Node) error {
	switch {
	case child == nil:
		return ErrNilNode
	case n.freed || child.freed:
		return ErrFreed
	case child == n:
		return ErrSelfChild
	case child.parent != nil:
		return ErrHasParent
	case child.IsAParentOf(n):
		return ErrCycle
	}
	return nil
}

// attach inserts an already validated child at index.
func (n *Node) attach(child *Node, index int, cfg childConfig) {
	n.lifetimeChildren++
	if name := n.uniqueChildName(child, cfg.legible); name != child.Name {
		child.Name = name
	}
	child.parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.emit(TreeEvent{Type: EventChildAdded, Node: child, Parent: n, Index: index})
	if n.registry != nil && n.registry.debug {
		debugCheckTreeDepth(n.registry, child)
		debugCheckChildCount(n.registry, n)
	}
}

// detach removes child from n.children and clears child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) detach(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			child.parent = nil
			n.emit(TreeEvent{Type: EventChildRemoved, Node: child, Parent: n, Index: i})
			return
		}
	}
}

func (n *Node) depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// ancestry returns the chain from the root down to n.
func (n *Node) ancestry() []*Node {
	chain := make([]*Node, n.depth()+1)
	i := len(chain) - 1
	for p := n; p != nil; p = p.parent {
		chain[i] = p
		i--
	}
	return chain
}
