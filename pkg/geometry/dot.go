package geometry

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// ToDOT renders the assembly's component tree as Graphviz DOT: the assembly
// at the root, one node per part, and the CSG structure below each part.
// Primitives are boxes, boolean operations are diamonds, placements are
// ellipses annotated with their offsets.
func ToDOT(a *Assembly) string {
	var buf bytes.Buffer
	buf.WriteString("digraph assembly {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "  root [label=%q, fillcolor=lightblue];\n", a.Name)
	for i, p := range a.Parts {
		id := fmt.Sprintf("p%d", i)
		fmt.Fprintf(&buf, "  %s [label=%q, fillcolor=lightyellow];\n", id, p.Name)
		fmt.Fprintf(&buf, "  root -> %s;\n", id)
		writeSolidDOT(&buf, p.Solid, id, id)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeSolidDOT(buf *bytes.Buffer, s Solid, parent, prefix string) {
	id := prefix + "n"
	switch v := s.(type) {
	case Cylinder:
		fmt.Fprintf(buf, "  %s [label=\"cylinder r=%.1f h=%.1f\"];\n", id, v.RadiusMM, v.HeightMM)
	case Sphere:
		fmt.Fprintf(buf, "  %s [label=\"sphere r=%.1f\"];\n", id, v.RadiusMM)
	case Box:
		fmt.Fprintf(buf, "  %s [label=\"box %.0fx%.0fx%.0f\"];\n", id, v.XMM, v.YMM, v.ZMM)
	case Boolean:
		fmt.Fprintf(buf, "  %s [label=%q, shape=diamond, fillcolor=lightgrey];\n", id, string(v.Op))
		writeSolidDOT(buf, v.A, id, id+"a")
		writeSolidDOT(buf, v.B, id, id+"b")
	case Placed:
		fmt.Fprintf(buf, "  %s [label=%q, shape=ellipse];\n", id, fmtLocation(v.At))
		writeSolidDOT(buf, v.Solid, id, id+"s")
	}
	fmt.Fprintf(buf, "  %s -> %s;\n", parent, id)
}

func fmtLocation(loc Location) string {
	s := fmt.Sprintf("at (%.0f, %.0f, %.0f)", loc.X, loc.Y, loc.Z)
	var rot []string
	if loc.RX != 0 {
		rot = append(rot, fmt.Sprintf("rx=%.0f", loc.RX))
	}
	if loc.RY != 0 {
		rot = append(rot, fmt.Sprintf("ry=%.0f", loc.RY))
	}
	if loc.RZ != 0 {
		rot = append(rot, fmt.Sprintf("rz=%.0f", loc.RZ))
	}
	if len(rot) > 0 {
		s += " " + strings.Join(rot, " ")
	}
	return s
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
