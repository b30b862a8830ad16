package arbor

import "github.com/hajimehoshi/ebiten/v2"

// TransformComponentName is the name Transform registers under.
const TransformComponentName = "transform"

// Transform is a 2D local transform capability. Nodes without one
// contribute the identity when world transforms are composed.
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Rotate -> Translate(X, Y)
type Transform struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	PivotX, PivotY float64
}

// NewTransform returns a transform at the origin with unit scale.
func NewTransform() *Transform {
	return &Transform{ScaleX: 1, ScaleY: 1}
}

// ComponentName implements Component.
func (t *Transform) ComponentName() string { return TransformComponentName }

// CloneComponent implements Cloner.
func (t *Transform) CloneComponent() Component {
	c := *t
	return &c
}

// SetPosition sets the local X and Y.
func (t *Transform) SetPosition(x, y float64) {
	t.X = x
	t.Y = y
}

// SetScale sets the local scale factors.
func (t *Transform) SetScale(sx, sy float64) {
	t.ScaleX = sx
	t.ScaleY = sy
}

// LocalGeoM returns the local matrix.
func (t *Transform) LocalGeoM() ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-t.PivotX, -t.PivotY)
	g.Scale(t.ScaleX, t.ScaleY)
	g.Rotate(t.Rotation)
	g.Translate(t.X, t.Y)
	return g
}

// WorldGeoM composes the local transforms from n's root down to n. It walks
// the ancestor chain, so it costs O(depth).
func WorldGeoM(n *Node) ebiten.GeoM {
	var g ebiten.GeoM
	for p := n; p != nil; p = p.parent {
		if t, ok := ComponentOf[*Transform](p); ok {
			g.Concat(t.LocalGeoM())
		}
	}
	return g
}

// ToGlobal converts a point in n's local space to root space.
func ToGlobal(n *Node, x, y float64) (float64, float64) {
	g := WorldGeoM(n)
	return g.Apply(x, y)
}

// ToLocal converts a point in root space to n's local space. A singular
// world matrix maps everything to the input point.
func ToLocal(n *Node, x, y float64) (float64, float64) {
	g := WorldGeoM(n)
	if !g.IsInvertible() {
		return x, y
	}
	g.Invert()
	return g.Apply(x, y)
}
