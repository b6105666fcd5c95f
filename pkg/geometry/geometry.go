// Package geometry describes the tank's solid model as a tree of CSG
// primitives, boolean combinations, and rigid placements.
//
// The package only describes geometry. Nothing here evaluates booleans or
// meshes solids; the tree is consumed by serializers (the STEP writer, the
// JSON codec) and by the diagram renderer. All dimensions are millimeters
// and all rotations are degrees.
package geometry

// Solid is a node in the CSG tree: a primitive, a boolean combination, or
// a placed subtree. Solids are immutable values; combinators return new
// trees and never mutate operands.
type Solid interface {
	solid()
}

// Cylinder is a right circular cylinder, axis +Z, base at the origin.
type Cylinder struct {
	RadiusMM float64
	HeightMM float64
}

// Sphere is centered at the origin.
type Sphere struct {
	RadiusMM float64
}

// Box is an axis-aligned block centered at the origin.
type Box struct {
	XMM float64
	YMM float64
	ZMM float64
}

// Op is a boolean operation.
type Op string

const (
	OpUnion        Op = "union"
	OpDifference   Op = "difference"
	OpIntersection Op = "intersection"
)

// Boolean combines two solids.
type Boolean struct {
	Op Op
	A  Solid
	B  Solid
}

// Location is a rigid transform: rotations about the X, Y, and Z axes in
// degrees, applied in that order, followed by the translation in mm.
type Location struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	Z  float64 `json:"z"`
	RX float64 `json:"rx,omitempty"`
	RY float64 `json:"ry,omitempty"`
	RZ float64 `json:"rz,omitempty"`
}

// Placed positions a solid at a location.
type Placed struct {
	Solid Solid
	At    Location
}

func (Cylinder) solid() {}
func (Sphere) solid()   {}
func (Box) solid()      {}
func (Boolean) solid()  {}
func (Placed) solid()   {}

// Union returns the union of a and b.
func Union(a, b Solid) Boolean {
	return Boolean{Op: OpUnion, A: a, B: b}
}

// Difference returns a minus b.
func Difference(a, b Solid) Boolean {
	return Boolean{Op: OpDifference, A: a, B: b}
}

// Intersection returns the intersection of a and b.
func Intersection(a, b Solid) Boolean {
	return Boolean{Op: OpIntersection, A: a, B: b}
}

// At places a solid at a location.
func At(s Solid, loc Location) Placed {
	return Placed{Solid: s, At: loc}
}

// Part is one named solid in an assembly.
type Part struct {
	Name  string
	Solid Solid
}

// Assembly is a named collection of parts in build order.
type Assembly struct {
	Name  string
	Parts []Part
}

// Find returns the first part with the given name.
func (a *Assembly) Find(name string) (Part, bool) {
	for _, p := range a.Parts {
		if p.Name == name {
			return p, true
		}
	}
	return Part{}, false
}
