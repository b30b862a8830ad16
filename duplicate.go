package arbor

import (
	"github.com/jinzhu/copier"
)

// DuplicateOptions selects what Duplicate copies. Name and registry are
// always carried over; parent and owner never are.
type DuplicateOptions struct {
	// Groups copies group memberships with their persistence flags.
	Groups bool
	// Attributes copies the embedded Attributes.
	Attributes bool
	// Components clones every component that implements Cloner. Components
	// that cannot be cloned are left out of the copy.
	Components bool
	// Children duplicates the whole subtree with the same options. Owner
	// links that point inside the subtree are remapped to the copies.
	Children bool
}

// DefaultDuplicate copies groups, attributes and components, but not children.
var DefaultDuplicate = DuplicateOptions{Groups: true, Attributes: true, Components: true}

// Duplicate returns a new detached node built from n. The copy has a fresh
// ID and is registered with n's registry.
func (n *Node) Duplicate(opts DuplicateOptions) (*Node, error) {
	if n.freed {
		return nil, n.fail("duplicate", ErrFreed)
	}
	copies := make(map[*Node]*Node)
	dup, err := n.duplicate(opts, copies)
	if err != nil {
		for _, cp := range copies {
			if cp.registry != nil {
				cp.registry.unregister(cp)
			}
		}
		return nil, n.fail("duplicate", err)
	}
	if opts.Children {
		for orig, cp := range copies {
			if orig == n || orig.owner == nil {
				continue
			}
			if o, ok := copies[orig.owner]; ok {
				cp.owner = o
			}
		}
	}
	return dup, nil
}

func (n *Node) duplicate(opts DuplicateOptions, copies map[*Node]*Node) (*Node, error) {
	var dup *Node
	if n.registry != nil {
		dup = n.registry.NewNode(n.Name)
	} else {
		dup = newNode(nil, n.Name)
	}
	copies[n] = dup

	if opts.Attributes {
		if err := copier.CopyWithOption(&dup.Attributes, &n.Attributes, copier.Option{DeepCopy: true}); err != nil {
			n.logger().Error("arbor.Node.Duplicate", "err", err)
			return nil, err
		}
	}
	if opts.Groups && len(n.groups) > 0 {
		dup.groups = make([]GroupInfo, len(n.groups))
		copy(dup.groups, n.groups)
	}
	if opts.Components {
		for _, c := range n.components {
			cl, ok := c.(Cloner)
			if !ok {
				continue
			}
			if err := dup.AddComponent(cl.CloneComponent()); err != nil {
				return nil, err
			}
		}
	}
	dup.ownedByParent = n.ownedByParent
	dup.instanceState = n.instanceState
	dup.inheritedState = n.inheritedState
	dup.loadPlaceholder = n.loadPlaceholder

	if opts.Children {
		dup.children = make([]*Node, 0, len(n.children))
		for _, c := range n.children {
			cc, err := c.duplicate(opts, copies)
			if err != nil {
				return nil, err
			}
			cc.parent = dup
			dup.children = append(dup.children, cc)
		}
		dup.lifetimeChildren = uint64(len(dup.children))
	}
	return dup, nil
}
