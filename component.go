package arbor

// Component is a capability attached to a node: a transform, an animator,
// or anything a host system wants to hang off the tree. A node holds at most
// one component per name.
type Component interface {
	ComponentName() string
}

// Attacher is implemented by components that want to know when they are
// attached to or detached from a node.
type Attacher interface {
	OnAttach(n *Node)
	OnDetach(n *Node)
}

// Cloner is implemented by components that Duplicate can copy.
type Cloner interface {
	CloneComponent() Component
}

// AddComponent attaches c to n.
func (n *Node) AddComponent(c Component) error {
	if c == nil {
		return n.fail("add component", ErrNilNode)
	}
	if n.freed {
		return n.fail("add component", ErrFreed)
	}
	if n.componentIndex(c.ComponentName()) >= 0 {
		return n.fail("add component", ErrDuplicateComponent)
	}
	n.components = append(n.components, c)
	if a, ok := c.(Attacher); ok {
		a.OnAttach(n)
	}
	return nil
}

// RemoveComponent detaches the named component and returns it, or nil.
func (n *Node) RemoveComponent(name string) Component {
	i := n.componentIndex(name)
	if i < 0 {
		return nil
	}
	c := n.components[i]
	n.components = append(n.components[:i], n.components[i+1:]...)
	if a, ok := c.(Attacher); ok {
		a.OnDetach(n)
	}
	return c
}

// Component returns the named component, or nil.
func (n *Node) Component(name string) Component {
	if i := n.componentIndex(name); i >= 0 {
		return n.components[i]
	}
	return nil
}

// Components returns the attached components in attach order. The returned
// slice MUST NOT be mutated by the caller.
func (n *Node) Components() []Component {
	return n.components
}

// ComponentOf returns the first component of type T attached to n.
func ComponentOf[T Component](n *Node) (T, bool) {
	for _, c := range n.components {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

func (n *Node) componentIndex(name string) int {
	for i, c := range n.components {
		if c.ComponentName() == name {
			return i
		}
	}
	return -1
}
