package arbor

import "errors"

// GroupInfo is a single group membership entry on a node.
// Persistent groups are meant to survive a save/load round trip; the rest
// are runtime-only tags.
type GroupInfo struct {
	Name       string
	Persistent bool
}

// PauseMode controls how a node reacts when its host pauses processing.
type PauseMode uint8

const (
	PauseModeInherit PauseMode = iota // follow the parent's mode (default)
	PauseModeStop                     // stop when the host is paused
	PauseModeProcess                  // keep processing while paused
)

func (m PauseMode) String() string {
	switch m {
	case PauseModeInherit:
		return "inherit"
	case PauseModeStop:
		return "stop"
	case PauseModeProcess:
		return "process"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of tree change.
type EventType uint8

const (
	EventChildAdded   EventType = iota // a node was attached under Parent at Index
	EventChildRemoved                  // a node was detached from Parent (Index is its old slot)
	EventChildMoved                    // a child changed position under Parent
	EventRenamed                       // Node.Name changed
	EventGroupAdded                    // Node joined Group or changed its persistence
	EventGroupRemoved                  // Node left Group
	EventOwnerChanged                  // Node.Owner() changed to Other
	EventReplaced                      // Node was replaced by Other
	EventFreed                         // Node was freed and unregistered
)

func (t EventType) String() string {
	switch t {
	case EventChildAdded:
		return "child_added"
	case EventChildRemoved:
		return "child_removed"
	case EventChildMoved:
		return "child_moved"
	case EventRenamed:
		return "renamed"
	case EventGroupAdded:
		return "group_added"
	case EventGroupRemoved:
		return "group_removed"
	case EventOwnerChanged:
		return "owner_changed"
	case EventReplaced:
		return "replaced"
	case EventFreed:
		return "freed"
	default:
		return "unknown"
	}
}

// Errors returned by tree operations. They are wrapped with the operation
// name, so compare with errors.Is.
var (
	ErrNilNode            = errors.New("node is nil")
	ErrFreed              = errors.New("node has been freed")
	ErrSelfChild          = errors.New("node cannot be its own child")
	ErrHasParent          = errors.New("node already has a parent")
	ErrCycle              = errors.New("node is an ancestor of the target")
	ErrNoParent           = errors.New("node has no parent")
	ErrNotChild           = errors.New("node is not a child of the target")
	ErrNotDescendant      = errors.New("node is not a descendant of the target")
	ErrIndexOutOfRange    = errors.New("child index out of range")
	ErrHasChildren        = errors.New("node still has children")
	ErrEmptyName          = errors.New("name is empty")
	ErrNoCommonParent     = errors.New("nodes are not in the same tree")
	ErrDuplicateComponent = errors.New("component already attached")
	ErrMissingComponent   = errors.New("component not attached")
)
