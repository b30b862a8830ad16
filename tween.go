package arbor

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AnimatorComponentName is the name Animator registers under.
const AnimatorComponentName = "animator"

// TweenGroup animates up to 4 float64 fields of a node's Transform at once.
// Create one with TweenPosition, TweenScale or TweenRotation and advance it
// with Update(dt), directly or through an Animator. If the target node is
// freed, the group stops immediately.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Node
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values to the
// target fields.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsFreed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition animates the node's Transform X and Y to (toX, toY).
func TweenPosition(n *Node, toX, toY float64, duration float32, fn ease.TweenFunc) (*TweenGroup, error) {
	t, err := tweenTransform(n)
	if err != nil {
		return nil, err
	}
	g := &TweenGroup{count: 2, target: n}
	g.tweens[0] = gween.New(float32(t.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(t.Y), float32(toY), duration, fn)
	g.fields[0] = &t.X
	g.fields[1] = &t.Y
	return g, nil
}

// TweenScale animates the node's Transform ScaleX and ScaleY.
func TweenScale(n *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) (*TweenGroup, error) {
	t, err := tweenTransform(n)
	if err != nil {
		return nil, err
	}
	g := &TweenGroup{count: 2, target: n}
	g.tweens[0] = gween.New(float32(t.ScaleX), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(t.ScaleY), float32(toSY), duration, fn)
	g.fields[0] = &t.ScaleX
	g.fields[1] = &t.ScaleY
	return g, nil
}

// TweenRotation animates the node's Transform Rotation (radians).
func TweenRotation(n *Node, to float64, duration float32, fn ease.TweenFunc) (*TweenGroup, error) {
	t, err := tweenTransform(n)
	if err != nil {
		return nil, err
	}
	g := &TweenGroup{count: 1, target: n}
	g.tweens[0] = gween.New(float32(t.Rotation), float32(to), duration, fn)
	g.fields[0] = &t.Rotation
	return g, nil
}

func tweenTransform(n *Node) (*Transform, error) {
	if n == nil {
		return nil, fmt.Errorf("arbor: tween: %w", ErrNilNode)
	}
	t, ok := ComponentOf[*Transform](n)
	if !ok {
		return nil, n.fail("tween", fmt.Errorf("%w: %s", ErrMissingComponent, TransformComponentName))
	}
	return t, nil
}

// Animator is a component that owns running tween groups. The host calls
// UpdateAnimators once per frame; there is no global animation manager.
type Animator struct {
	groups []*TweenGroup
}

// ComponentName implements Component.
func (a *Animator) ComponentName() string { return AnimatorComponentName }

// Play adds a group to the animator.
func (a *Animator) Play(g *TweenGroup) {
	if g != nil {
		a.groups = append(a.groups, g)
	}
}

// Len returns the number of groups still running.
func (a *Animator) Len() int {
	return len(a.groups)
}

// Update advances every group and drops the finished ones.
func (a *Animator) Update(dt float32) {
	kept := a.groups[:0]
	for _, g := range a.groups {
		g.Update(dt)
		if !g.Done {
			kept = append(kept, g)
		}
	}
	for i := len(kept); i < len(a.groups); i++ {
		a.groups[i] = nil
	}
	a.groups = kept
}

// UpdateAnimators advances the Animator of root and every descendant.
func UpdateAnimators(root *Node, dt float32) {
	root.Walk(func(n *Node) bool {
		if a, ok := ComponentOf[*Animator](n); ok {
			a.Update(dt)
		}
		return true
	})
}
