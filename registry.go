package arbor

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
)

// EventSink receives tree change events. Set one on a Registry to observe
// every node it created; events are delivered synchronously, after the
// change is visible.
type EventSink interface {
	EmitEvent(event TreeEvent)
}

// TreeEvent describes a single change to a node. Which fields are set
// depends on Type.
type TreeEvent struct {
	Type       EventType
	NodeID     uint64
	Node       *Node
	Parent     *Node
	Other      *Node
	Index      int
	Group      string
	Persistent bool
}

const (
	defaultMaxTreeDepth  = 32
	defaultMaxChildCount = 1000
)

// nodeIDCounter hands out instance IDs. IDs are unique across all registries
// in the process and are never reused.
var nodeIDCounter atomic.Uint64

func nextNodeID() uint64 {
	return nodeIDCounter.Add(1)
}

// Registry creates nodes and keeps track of the ones that are alive. It owns
// the logger, the optional event sink and the debug checks used by every
// node it created. Tree mutation itself is not synchronised; the registry
// only guards its own bookkeeping.
type Registry struct {
	mu    sync.Mutex
	live  map[uint64]*Node
	roots map[uint64]bool

	logger *slog.Logger
	sink   EventSink

	debug         bool
	maxTreeDepth  int
	maxChildCount int
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithEventSink sets the sink that receives tree events.
func WithEventSink(sink EventSink) RegistryOption {
	return func(r *Registry) { r.sink = sink }
}

// WithDebug enables the extra tree depth and child count warnings.
func WithDebug(enabled bool) RegistryOption {
	return func(r *Registry) { r.debug = enabled }
}

// WithDebugThresholds overrides the depth and child count at which debug
// mode starts warning. Non-positive values keep the defaults.
func WithDebugThresholds(maxDepth, maxChildren int) RegistryOption {
	return func(r *Registry) {
		if maxDepth > 0 {
			r.maxTreeDepth = maxDepth
		}
		if maxChildren > 0 {
			r.maxChildCount = maxChildren
		}
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		live:          make(map[uint64]*Node),
		roots:         make(map[uint64]bool),
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		maxTreeDepth:  defaultMaxTreeDepth,
		maxChildCount: defaultMaxChildCount,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewNode creates a detached node with the given name and registers it.
func (r *Registry) NewNode(name string) *Node {
	n := newNode(r, name)
	r.mu.Lock()
	r.live[n.ID] = n
	r.mu.Unlock()
	return n
}

// Logger returns the registry's logger.
func (r *Registry) Logger() *slog.Logger {
	return r.logger
}

// SetEventSink replaces the event sink. Pass nil to stop delivering events.
func (r *Registry) SetEventSink(sink EventSink) {
	r.sink = sink
}

// SetDebugMode toggles the debug warnings.
func (r *Registry) SetDebugMode(enabled bool) {
	r.debug = enabled
}

// Len returns the number of live nodes.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// Lookup returns the live node with the given ID, or nil.
func (r *Registry) Lookup(id uint64) *Node {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live[id]
}

// AddRoot marks n as the root of a tree the host is using, so it is not
// reported as stray.
func (r *Registry) AddRoot(n *Node) {
	if n == nil {
		return
	}
	r.mu.Lock()
	r.roots[n.ID] = true
	r.mu.Unlock()
}

// RemoveRoot clears a mark set by AddRoot.
func (r *Registry) RemoveRoot(n *Node) {
	if n == nil {
		return
	}
	r.mu.Lock()
	delete(r.roots, n.ID)
	r.mu.Unlock()
}

// IsRoot reports whether n was marked with AddRoot.
func (r *Registry) IsRoot(n *Node) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return n != nil && r.roots[n.ID]
}

// StrayNodes returns the live nodes that have no parent and are not marked
// as tree roots, ordered by ID.
func (r *Registry) StrayNodes() []*Node {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Node
	for id, n := range r.live {
		if n.parent == nil && !r.roots[id] {
			out = append(out, n)
		}
	}
	slices.SortFunc(out, func(a, b *Node) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// PrintStrayNodes writes one line per stray node to w.
func (r *Registry) PrintStrayNodes(w io.Writer) error {
	strays := r.StrayNodes()
	for _, n := range strays {
		if _, err := fmt.Fprintf(w, "%d - Stray Node: %s (children: %d)\n", n.ID, n.displayName(), len(n.children)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) unregister(n *Node) {
	r.mu.Lock()
	delete(r.live, n.ID)
	delete(r.roots, n.ID)
	r.mu.Unlock()
}

func (r *Registry) emit(ev TreeEvent) {
	if r.sink == nil {
		return
	}
	if ev.Node != nil {
		ev.NodeID = ev.Node.ID
	}
	r.sink.EmitEvent(ev)
}
