// Package step serializes a geometry.Assembly to an ISO 10303-21 (STEP)
// file using Part 42 CSG entities: primitives, boolean_result trees, and
// csg_solid roots under a minimal product structure.
//
// The writer composes rigid placements while walking each part's solid tree
// so every primitive is emitted at its world position. It performs no
// boolean evaluation; CSG structure is preserved for the consuming CAD
// system to resolve.
package step

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/solprov/tankdesign/pkg/errors"
	"github.com/solprov/tankdesign/pkg/geometry"
)

// Options control the HEADER section and file metadata.
type Options struct {
	Description  string
	Author       string
	Organization string
	Timestamp    time.Time // zero value means time.Now
}

// DefaultOptions returns the options used by Export.
func DefaultOptions() Options {
	return Options{
		Description:  "Above-ground petroleum storage tank solid model",
		Author:       "tankdesign",
		Organization: "Solprov Engineering (Pty) Ltd",
	}
}

// Write serializes the assembly as a STEP file. Output is deterministic
// for a given assembly and options: entity ids are assigned sequentially
// in tree order.
func Write(w io.Writer, a *geometry.Assembly, opts Options) error {
	ts := opts.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	bw := bufio.NewWriter(w)
	sw := &stepWriter{w: bw}

	fmt.Fprintln(bw, "ISO-10303-21;")
	fmt.Fprintln(bw, "HEADER;")
	fmt.Fprintf(bw, "FILE_DESCRIPTION((%s),'2;1');\n", stepString(opts.Description))
	fmt.Fprintf(bw, "FILE_NAME(%s,%s,(%s),(%s),'tankdesign','tankdesign','');\n",
		stepString(a.Name),
		stepString(ts.UTC().Format("2006-01-02T15:04:05")),
		stepString(opts.Author),
		stepString(opts.Organization),
	)
	fmt.Fprintln(bw, "FILE_SCHEMA(('AUTOMOTIVE_DESIGN { 1 0 10303 214 1 1 1 1 }'));")
	fmt.Fprintln(bw, "ENDSEC;")
	fmt.Fprintln(bw, "DATA;")

	sw.writeProductStructure(a)
	for _, p := range a.Parts {
		sw.writePart(p)
	}

	fmt.Fprintln(bw, "ENDSEC;")
	fmt.Fprintln(bw, "END-ISO-10303-21;")

	if err := bw.Flush(); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write step data")
	}
	return sw.err
}

// Export writes the assembly to a file with default options.
func Export(path string, a *geometry.Assembly) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := Write(f, a, DefaultOptions()); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// stepWriter assigns sequential entity ids and emits DATA records.
type stepWriter struct {
	w    io.Writer
	next int
	ctx  int // geometric representation context id
	pdef int // product definition id
	err  error
}

// entity writes one record and returns its id.
func (sw *stepWriter) entity(format string, args ...any) int {
	sw.next++
	if _, err := fmt.Fprintf(sw.w, "#%d=%s;\n", sw.next, fmt.Sprintf(format, args...)); err != nil && sw.err == nil {
		sw.err = errors.Wrap(errors.ErrCodeInternal, err, "write entity")
	}
	return sw.next
}

// writeProductStructure emits the application context, product, and the
// unit-bearing geometric context every shape representation references.
func (sw *stepWriter) writeProductStructure(a *geometry.Assembly) {
	app := sw.entity("APPLICATION_CONTEXT('automotive design')")
	sw.entity("APPLICATION_PROTOCOL_DEFINITION('international standard','automotive_design',2010,#%d)", app)
	pctx := sw.entity("PRODUCT_CONTEXT('',#%d,'mechanical')", app)
	prod := sw.entity("PRODUCT('TANK',%s,'',(#%d))", stepString(a.Name), pctx)
	form := sw.entity("PRODUCT_DEFINITION_FORMATION('','',#%d)", prod)
	dctx := sw.entity("PRODUCT_DEFINITION_CONTEXT('part definition',#%d,'design')", app)
	sw.pdef = sw.entity("PRODUCT_DEFINITION('design','',#%d,#%d)", form, dctx)

	lu := sw.entity("(LENGTH_UNIT()NAMED_UNIT(*)SI_UNIT(.MILLI.,.METRE.))")
	au := sw.entity("(NAMED_UNIT(*)PLANE_ANGLE_UNIT()SI_UNIT($,.RADIAN.))")
	su := sw.entity("(NAMED_UNIT(*)SI_UNIT($,.STERADIAN.)SOLID_ANGLE_UNIT())")
	sw.ctx = sw.entity("(GEOMETRIC_REPRESENTATION_CONTEXT(3)GLOBAL_UNIT_ASSIGNED_CONTEXT((#%d,#%d,#%d))REPRESENTATION_CONTEXT('Context #1','3D Context'))", lu, au, su)
}

// writePart serializes one part's CSG tree and hangs it off the product.
func (sw *stepWriter) writePart(p geometry.Part) {
	root := sw.writeSolid(p.Solid, identity())
	solid := sw.entity("CSG_SOLID(%s,#%d)", stepString(p.Name), root)
	rep := sw.entity("CSG_SHAPE_REPRESENTATION(%s,(#%d),#%d)", stepString(p.Name), solid, sw.ctx)
	shape := sw.entity("PRODUCT_DEFINITION_SHAPE(%s,'',#%d)", stepString(p.Name), sw.pdef)
	sw.entity("SHAPE_DEFINITION_REPRESENTATION(#%d,#%d)", shape, rep)
}

// writeSolid emits the entities for a solid under the accumulated transform
// and returns the id of its topmost CSG node. Operands are written before
// the boolean_result that references them.
func (sw *stepWriter) writeSolid(s geometry.Solid, xf transform) int {
	switch v := s.(type) {
	case geometry.Cylinder:
		origin := sw.point(xf.origin())
		axis := sw.direction(xf.axisZ())
		place := sw.entity("AXIS1_PLACEMENT('',#%d,#%d)", origin, axis)
		return sw.entity("RIGHT_CIRCULAR_CYLINDER('',#%d,%s,%s)", place, stepReal(v.HeightMM), stepReal(v.RadiusMM))

	case geometry.Sphere:
		centre := sw.point(xf.origin())
		return sw.entity("SPHERE('',%s,#%d)", stepReal(v.RadiusMM), centre)

	case geometry.Box:
		// The block corner sits at the minimum extent of the centered box.
		corner := sw.point(xf.apply(vec{-v.XMM / 2, -v.YMM / 2, -v.ZMM / 2}))
		axis := sw.direction(xf.axisZ())
		ref := sw.direction(xf.axisX())
		place := sw.entity("AXIS2_PLACEMENT_3D('',#%d,#%d,#%d)", corner, axis, ref)
		return sw.entity("BLOCK('',#%d,%s,%s,%s)", place, stepReal(v.XMM), stepReal(v.YMM), stepReal(v.ZMM))

	case geometry.Boolean:
		a := sw.writeSolid(v.A, xf)
		b := sw.writeSolid(v.B, xf)
		return sw.entity("BOOLEAN_RESULT('',%s,#%d,#%d)", boolOp(v.Op), a, b)

	case geometry.Placed:
		return sw.writeSolid(v.Solid, xf.compose(v.At))
	}
	// Unreachable for trees built from this module's types.
	return sw.entity("CSG_SOLID('unknown',$)")
}

func (sw *stepWriter) point(p vec) int {
	return sw.entity("CARTESIAN_POINT('',(%s,%s,%s))", stepReal(p.x), stepReal(p.y), stepReal(p.z))
}

func (sw *stepWriter) direction(d vec) int {
	return sw.entity("DIRECTION('',(%s,%s,%s))", stepReal(d.x), stepReal(d.y), stepReal(d.z))
}

func boolOp(op geometry.Op) string {
	switch op {
	case geometry.OpUnion:
		return ".UNION."
	case geometry.OpIntersection:
		return ".INTERSECTION."
	default:
		return ".DIFFERENCE."
	}
}

// stepString quotes and escapes a STEP string literal.
func stepString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// stepReal formats a STEP REAL, which always carries a decimal point.
func stepReal(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += "."
	}
	return s
}
