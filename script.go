package arbor

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single operation in a tree script. Nodes are referred to
// by the label given when they were created.
type scriptStep struct {
	Action     string `yaml:"action"`
	Label      string `yaml:"label,omitempty"`
	Name       string `yaml:"name,omitempty"`
	Node       string `yaml:"node,omitempty"`
	Target     string `yaml:"target,omitempty"`
	Index      int    `yaml:"index,omitempty"`
	Group      string `yaml:"group,omitempty"`
	Persistent bool   `yaml:"persistent,omitempty"`
	KeepGroups bool   `yaml:"keep_groups,omitempty"`
	Legible    bool   `yaml:"legible,omitempty"`
	Children   bool   `yaml:"children,omitempty"`
}

// scriptFile is the top-level structure of a script. JSON scripts parse
// too, since JSON is valid YAML.
type scriptFile struct {
	Steps []scriptStep `yaml:"steps"`
}

// Script is a replayable sequence of tree operations, used to reproduce
// tree states in tests and from the command line.
type Script struct {
	steps []scriptStep
}

// ScriptResult holds the nodes a script created, by label.
type ScriptResult struct {
	Nodes  map[string]*Node
	Labels []string
}

// Node returns the node created under label, or nil.
func (r *ScriptResult) Node(label string) *Node {
	return r.Nodes[label]
}

// Tops returns the labelled nodes that are still alive and have no parent,
// in creation order.
func (r *ScriptResult) Tops() []*Node {
	var out []*Node
	for _, l := range r.Labels {
		n := r.Nodes[l]
		if n != nil && !n.IsFreed() && n.Parent() == nil {
			out = append(out, n)
		}
	}
	return out
}

var errUnknownLabel = errors.New("unknown node label")

// LoadScript parses a YAML or JSON script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	return &Script{steps: f.Steps}, nil
}

// Len returns the number of steps.
func (s *Script) Len() int {
	return len(s.steps)
}

// Run executes every step against reg and stops at the first failure. The
// result is returned even on failure so callers can inspect the partial
// tree.
func (s *Script) Run(reg *Registry) (*ScriptResult, error) {
	res := &ScriptResult{Nodes: make(map[string]*Node)}
	for i, st := range s.steps {
		if err := res.apply(reg, st); err != nil {
			return res, fmt.Errorf("step %d (%s): %w", i+1, st.Action, err)
		}
	}
	return res, nil
}

func (r *ScriptResult) lookup(label string) (*Node, error) {
	n, ok := r.Nodes[label]
	if !ok {
		return nil, fmt.Errorf("%w %q", errUnknownLabel, label)
	}
	return n, nil
}

func (r *ScriptResult) add(label string, n *Node) error {
	if label == "" {
		return fmt.Errorf("label is required")
	}
	if _, dup := r.Nodes[label]; dup {
		return fmt.Errorf("label %q already used", label)
	}
	r.Nodes[label] = n
	r.Labels = append(r.Labels, label)
	return nil
}

func (r *ScriptResult) apply(reg *Registry, st scriptStep) error {
	if st.Action == "new" {
		return r.add(st.Label, reg.NewNode(st.Name))
	}

	node, err := r.lookup(st.Node)
	if err != nil {
		return err
	}
	target := func() (*Node, error) { return r.lookup(st.Target) }
	var opts []ChildOption
	if st.Legible {
		opts = append(opts, Legible())
	}

	switch st.Action {
	case "add_child":
		t, err := target()
		if err != nil {
			return err
		}
		return node.AddChild(t, opts...)
	case "add_child_at":
		t, err := target()
		if err != nil {
			return err
		}
		return node.AddChildAt(t, st.Index, opts...)
	case "add_sibling":
		t, err := target()
		if err != nil {
			return err
		}
		return node.AddSibling(t, opts...)
	case "remove_child":
		t, err := target()
		if err != nil {
			return err
		}
		return node.RemoveChild(t)
	case "move_child":
		t, err := target()
		if err != nil {
			return err
		}
		return node.MoveChild(t, st.Index)
	case "raise":
		node.Raise()
	case "reparent":
		t, err := target()
		if err != nil {
			return err
		}
		return node.Reparent(t, opts...)
	case "remove_and_skip":
		return node.RemoveAndSkip()
	case "set_owner":
		if st.Target == "" {
			node.SetOwner(nil)
			return nil
		}
		t, err := target()
		if err != nil {
			return err
		}
		node.SetOwner(t)
	case "add_to_group":
		return node.AddToGroup(st.Group, st.Persistent)
	case "remove_from_group":
		node.RemoveFromGroup(st.Group)
	case "replace_by":
		t, err := target()
		if err != nil {
			return err
		}
		return node.ReplaceBy(t, st.KeepGroups)
	case "duplicate":
		opts := DefaultDuplicate
		opts.Children = st.Children
		dup, err := node.Duplicate(opts)
		if err != nil {
			return err
		}
		return r.add(st.Label, dup)
	case "rename":
		node.SetName(st.Name)
	case "free":
		return node.Free()
	case "root":
		reg.AddRoot(node)
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}
