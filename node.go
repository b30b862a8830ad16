package arbor

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// Attributes holds the plain per-node settings that surrounding systems
// read and write. The tree never interprets them; Duplicate copies them.
type Attributes struct {
	EditorDescription string
	Filename          string
	ImportPath        string
	DisplayFolded     bool
	PauseMode         PauseMode
}

// SceneState is an opaque handle to the packed scene a node was instanced
// from. The tree only stores it.
type SceneState struct {
	ID   uuid.UUID
	Path string
}

// NewSceneState creates a handle with a fresh random ID.
func NewSceneState(path string) *SceneState {
	return &SceneState{ID: uuid.New(), Path: path}
}

// Multiplayer is the peer API a node routes remote calls through. The tree
// stores it and never calls it.
type Multiplayer interface {
	RootNode() *Node
	SetRootNode(n *Node)
}

// Node is the only tree element. Parent and owner are back-references that
// never keep anything alive; the child slice is the one owning link.
//
// Create nodes with Registry.NewNode. A freed node rejects every structural
// operation.
type Node struct {
	// Identity
	ID   uint64
	Name string

	Attributes

	// Hierarchy
	parent   *Node
	children []*Node
	owner    *Node

	groups []GroupInfo

	// Pass-through state
	ownedByParent   bool
	networkMaster   int64
	multiplayer     Multiplayer
	instanceState   *SceneState
	inheritedState  *SceneState
	loadPlaceholder bool
	editable        map[string]bool

	components []Component

	// Internal
	registry         *Registry
	lifetimeChildren uint64
	freed            bool
}

func newNode(r *Registry, name string) *Node {
	id := nextNodeID()
	return &Node{
		ID:            id,
		Name:          name,
		networkMaster: int64(id),
		registry:      r,
	}
}

// String returns the node's absolute path.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	return n.Path()
}

// SetName renames the node. The name is not checked against siblings; use
// Parent().ValidateChildName first when uniqueness matters.
func (n *Node) SetName(name string) {
	if n.Name == name {
		return
	}
	n.Name = name
	n.emit(TreeEvent{Type: EventRenamed, Node: n, Parent: n.parent})
}

// Registry returns the registry that created n.
func (n *Node) Registry() *Registry {
	return n.registry
}

// Free unregisters the node and detaches it from its parent. Children must
// be removed (or freed) first; nothing cascades.
func (n *Node) Free() error {
	if n.freed {
		return n.fail("free", ErrFreed)
	}
	if len(n.children) > 0 {
		return n.fail("free", fmt.Errorf("%w (%d)", ErrHasChildren, len(n.children)))
	}
	n.RemoveFromParent()
	for i := len(n.components) - 1; i >= 0; i-- {
		if a, ok := n.components[i].(Attacher); ok {
			a.OnDetach(n)
		}
	}
	n.components = nil
	n.groups = nil
	n.owner = nil
	n.editable = nil
	n.multiplayer = nil
	n.instanceState = nil
	n.inheritedState = nil
	n.freed = true
	if n.registry != nil {
		n.registry.unregister(n)
	}
	n.emit(TreeEvent{Type: EventFreed, Node: n})
	return nil
}

// IsFreed reports whether Free has been called.
func (n *Node) IsFreed() bool {
	return n.freed
}

// --- Pass-through state ---

// ForceParentOwned marks the node as an internal part of its parent.
// Internal children are not handed to a replacement by ReplaceBy.
func (n *Node) ForceParentOwned() {
	n.ownedByParent = true
}

// IsOwnedByParent reports whether ForceParentOwned was called.
func (n *Node) IsOwnedByParent() bool {
	return n.ownedByParent
}

// NetworkMaster returns the peer ID with authority over this node. It
// defaults to the node's own ID.
func (n *Node) NetworkMaster() int64 {
	return n.networkMaster
}

// SetNetworkMaster sets the authoritative peer ID.
func (n *Node) SetNetworkMaster(peer int64) {
	n.networkMaster = peer
}

// IsNetworkMaster reports whether peer has authority over this node.
func (n *Node) IsNetworkMaster(peer int64) bool {
	return n.networkMaster == peer
}

// CustomMultiplayer returns the multiplayer override, or nil.
func (n *Node) CustomMultiplayer() Multiplayer {
	return n.multiplayer
}

// SetCustomMultiplayer sets a multiplayer override for this node.
func (n *Node) SetCustomMultiplayer(m Multiplayer) {
	n.multiplayer = m
}

// SceneInstanceState returns the handle of the scene this node instances.
func (n *Node) SceneInstanceState() *SceneState {
	return n.instanceState
}

// SetSceneInstanceState stores the handle of the scene this node instances.
func (n *Node) SetSceneInstanceState(s *SceneState) {
	n.instanceState = s
}

// SceneInheritedState returns the handle of the scene this node inherits.
func (n *Node) SceneInheritedState() *SceneState {
	return n.inheritedState
}

// SetSceneInheritedState stores the handle of the scene this node inherits.
func (n *Node) SetSceneInheritedState(s *SceneState) {
	n.inheritedState = s
}

// SceneInstanceLoadPlaceholder reports whether the instance is loaded lazily.
func (n *Node) SceneInstanceLoadPlaceholder() bool {
	return n.loadPlaceholder
}

// SetSceneInstanceLoadPlaceholder marks the instance as lazily loaded.
func (n *Node) SetSceneInstanceLoadPlaceholder(v bool) {
	n.loadPlaceholder = v
}

// SetEditableInstance marks a descendant instance as editable (or clears the
// mark). The marker is keyed by the path from n, so it follows renames only
// if the caller re-marks.
func (n *Node) SetEditableInstance(descendant *Node, editable bool) error {
	if descendant == nil {
		return n.fail("set editable instance", ErrNilNode)
	}
	if !n.IsAParentOf(descendant) {
		return n.fail("set editable instance", ErrNotDescendant)
	}
	key := n.relativePath(descendant)
	if !editable {
		delete(n.editable, key)
		return nil
	}
	if n.editable == nil {
		n.editable = make(map[string]bool)
	}
	n.editable[key] = true
	return nil
}

// IsEditableInstance reports whether descendant was marked editable.
func (n *Node) IsEditableInstance(descendant *Node) bool {
	if descendant == nil || !n.IsAParentOf(descendant) {
		return false
	}
	return n.editable[n.relativePath(descendant)]
}

// --- Helpers ---

func (n *Node) displayName() string {
	if n.Name == "" {
		return fmt.Sprintf("<Node#%d>", n.ID)
	}
	return n.Name
}

func (n *Node) logger() *slog.Logger {
	if n.registry != nil {
		return n.registry.logger
	}
	return discardLogger
}

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func (n *Node) emit(ev TreeEvent) {
	if n.registry != nil {
		n.registry.emit(ev)
	}
}

// fail wraps err with the operation name and logs it at debug level.
func (n *Node) fail(op string, err error) error {
	n.logger().Debug("tree operation refused", "op", op, "node", n.displayName(), "id", n.ID, "err", err)
	return fmt.Errorf("arbor: %s: %w", op, err)
}
