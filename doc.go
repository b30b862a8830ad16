// Package arbor is the node tree at the core of a scene graph.
//
// A [Node] owns an ordered list of children, points back at its parent, may
// name an ancestor as its persistence owner, and belongs to any number of
// named groups. Every structural operation validates its preconditions
// first and returns an error instead of leaving the tree half changed.
//
// # Creating nodes
//
// Nodes come from a [Registry], which hands out instance IDs, keeps the list
// of live nodes for stray-node diagnostics, and carries the logger and the
// optional [EventSink]:
//
//	reg := arbor.NewRegistry(arbor.WithLogger(slog.Default()))
//	root := reg.NewNode("root")
//	reg.AddRoot(root)
//
//	ui := reg.NewNode("ui")
//	if err := root.AddChild(ui); err != nil {
//		return err
//	}
//
// A node is freed with [Node.Free], which refuses while it still has
// children. Nothing is destroyed implicitly.
//
// # Structure
//
// [Node.AddChild], [Node.AddChildAt], [Node.AddSibling], [Node.RemoveChild],
// [Node.MoveChild], [Node.Raise], [Node.Reparent], [Node.RemoveAndSkip] and
// [Node.ReplaceBy] change the tree. Sibling names are made unique on
// insertion; [Node.ValidateChildName] gives the same answer on demand.
//
// # Owners and groups
//
// [Node.SetOwner] marks which ancestor persists a node, and
// [Node.OwnedBy] finds every node an owner persists. Groups are per-node
// tags with a persistence flag ([Node.AddToGroup], [Node.Groups]).
//
// # Components
//
// Behaviour is attached as components rather than subtypes. [Transform]
// composes 2D transforms through the hierarchy with [ebiten.GeoM], and
// [Animator] runs [gween] tweens against it.
//
// [gween]: https://github.com/tanema/gween
package arbor
