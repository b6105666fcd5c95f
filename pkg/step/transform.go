package step

import (
	"math"

	"github.com/solprov/tankdesign/pkg/geometry"
)

type vec struct {
	x, y, z float64
}

// transform is a rigid transform: rotation matrix in row-major order plus a
// translation, mapping local coordinates to world coordinates.
type transform struct {
	m [9]float64
	t vec
}

func identity() transform {
	return transform{m: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}
}

// apply maps a local point to world coordinates.
func (tf transform) apply(p vec) vec {
	return vec{
		x: tf.m[0]*p.x + tf.m[1]*p.y + tf.m[2]*p.z + tf.t.x,
		y: tf.m[3]*p.x + tf.m[4]*p.y + tf.m[5]*p.z + tf.t.y,
		z: tf.m[6]*p.x + tf.m[7]*p.y + tf.m[8]*p.z + tf.t.z,
	}
}

// rotate maps a local direction to world coordinates, ignoring translation.
func (tf transform) rotate(d vec) vec {
	return vec{
		x: tf.m[0]*d.x + tf.m[1]*d.y + tf.m[2]*d.z,
		y: tf.m[3]*d.x + tf.m[4]*d.y + tf.m[5]*d.z,
		z: tf.m[6]*d.x + tf.m[7]*d.y + tf.m[8]*d.z,
	}
}

func (tf transform) origin() vec {
	return tf.t
}

func (tf transform) axisZ() vec {
	return tf.rotate(vec{0, 0, 1})
}

func (tf transform) axisX() vec {
	return tf.rotate(vec{1, 0, 0})
}

// compose applies a location inside this transform: the location's
// rotations about X, Y, then Z, followed by its translation, all expressed
// in the parent's frame.
func (tf transform) compose(loc geometry.Location) transform {
	r := rotZ(loc.RZ).mul(rotY(loc.RY)).mul(rotX(loc.RX))
	out := transform{
		m: mulMat(tf.m, r.m),
		t: tf.apply(vec{loc.X, loc.Y, loc.Z}),
	}
	return out
}

func mulMat(a, b [9]float64) [9]float64 {
	var out [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i*3+j] = a[i*3]*b[j] + a[i*3+1]*b[3+j] + a[i*3+2]*b[6+j]
		}
	}
	return out
}

func (tf transform) mul(o transform) transform {
	return transform{m: mulMat(tf.m, o.m), t: tf.t}
}

func rotX(deg float64) transform {
	s, c := sincos(deg)
	return transform{m: [9]float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}}
}

func rotY(deg float64) transform {
	s, c := sincos(deg)
	return transform{m: [9]float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}}
}

func rotZ(deg float64) transform {
	s, c := sincos(deg)
	return transform{m: [9]float64{
		c, -s, 0,
		s, c, 0,
		0, 0, 1,
	}}
}

// sincos rounds near-zero terms away so right-angle rotations stay exact in
// the serialized output.
func sincos(deg float64) (s, c float64) {
	s, c = math.Sincos(deg * math.Pi / 180)
	if math.Abs(s) < 1e-12 {
		s = 0
	}
	if math.Abs(c) < 1e-12 {
		c = 0
	}
	if math.Abs(s-1) < 1e-12 {
		s = 1
	}
	if math.Abs(s+1) < 1e-12 {
		s = -1
	}
	if math.Abs(c-1) < 1e-12 {
		c = 1
	}
	if math.Abs(c+1) < 1e-12 {
		c = -1
	}
	return s, c
}
