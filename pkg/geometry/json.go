package geometry

import (
	"encoding/json"
	"io"

	"github.com/solprov/tankdesign/pkg/errors"
)

// solidEnvelope is the tagged wire form of a Solid. Exactly one of the
// payload fields is set, selected by Kind.
type solidEnvelope struct {
	Kind     string       `json:"kind"`
	Cylinder *Cylinder    `json:"cylinder,omitempty"`
	Sphere   *Sphere      `json:"sphere,omitempty"`
	Box      *Box         `json:"box,omitempty"`
	Boolean  *booleanWire `json:"boolean,omitempty"`
	Placed   *placedWire  `json:"placed,omitempty"`
}

type booleanWire struct {
	Op Op            `json:"op"`
	A  solidEnvelope `json:"a"`
	B  solidEnvelope `json:"b"`
}

type placedWire struct {
	At    Location      `json:"at"`
	Solid solidEnvelope `json:"solid"`
}

type partWire struct {
	Name  string        `json:"name"`
	Solid solidEnvelope `json:"solid"`
}

type assemblyWire struct {
	Name  string     `json:"name"`
	Parts []partWire `json:"parts"`
}

func encodeSolid(s Solid) solidEnvelope {
	switch v := s.(type) {
	case Cylinder:
		return solidEnvelope{Kind: "cylinder", Cylinder: &v}
	case Sphere:
		return solidEnvelope{Kind: "sphere", Sphere: &v}
	case Box:
		return solidEnvelope{Kind: "box", Box: &v}
	case Boolean:
		return solidEnvelope{Kind: "boolean", Boolean: &booleanWire{
			Op: v.Op,
			A:  encodeSolid(v.A),
			B:  encodeSolid(v.B),
		}}
	case Placed:
		return solidEnvelope{Kind: "placed", Placed: &placedWire{
			At:    v.At,
			Solid: encodeSolid(v.Solid),
		}}
	}
	return solidEnvelope{}
}

func decodeSolid(e solidEnvelope) (Solid, error) {
	switch e.Kind {
	case "cylinder":
		if e.Cylinder == nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "cylinder envelope missing payload")
		}
		return *e.Cylinder, nil
	case "sphere":
		if e.Sphere == nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "sphere envelope missing payload")
		}
		return *e.Sphere, nil
	case "box":
		if e.Box == nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "box envelope missing payload")
		}
		return *e.Box, nil
	case "boolean":
		if e.Boolean == nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "boolean envelope missing payload")
		}
		a, err := decodeSolid(e.Boolean.A)
		if err != nil {
			return nil, err
		}
		b, err := decodeSolid(e.Boolean.B)
		if err != nil {
			return nil, err
		}
		return Boolean{Op: e.Boolean.Op, A: a, B: b}, nil
	case "placed":
		if e.Placed == nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "placed envelope missing payload")
		}
		inner, err := decodeSolid(e.Placed.Solid)
		if err != nil {
			return nil, err
		}
		return Placed{At: e.Placed.At, Solid: inner}, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown solid kind %q", e.Kind)
}

// EncodeJSON writes the assembly as indented JSON.
func EncodeJSON(w io.Writer, a *Assembly) error {
	wire := assemblyWire{Name: a.Name, Parts: make([]partWire, 0, len(a.Parts))}
	for _, p := range a.Parts {
		wire.Parts = append(wire.Parts, partWire{Name: p.Name, Solid: encodeSolid(p.Solid)})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(wire); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode assembly")
	}
	return nil
}

// DecodeJSON reads an assembly previously written by EncodeJSON.
func DecodeJSON(r io.Reader) (*Assembly, error) {
	var wire assemblyWire
	if err := json.NewDecoder(r).Decode(&wire); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode assembly")
	}
	a := &Assembly{Name: wire.Name, Parts: make([]Part, 0, len(wire.Parts))}
	for _, p := range wire.Parts {
		s, err := decodeSolid(p.Solid)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "part %q", p.Name)
		}
		a.Parts = append(a.Parts, Part{Name: p.Name, Solid: s})
	}
	return a, nil
}
