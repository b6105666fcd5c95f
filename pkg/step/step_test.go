package step

import (
	"bytes"
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/solprov/tankdesign/pkg/design"
	"github.com/solprov/tankdesign/pkg/geometry"
)

func testOptions() Options {
	opts := DefaultOptions()
	opts.Timestamp = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	return opts
}

func writeTank(t *testing.T) string {
	t.Helper()
	spec, err := design.New(9000)
	if err != nil {
		t.Fatalf("design.New: %v", err)
	}
	a := geometry.BuildTank(spec)

	var buf bytes.Buffer
	if err := Write(&buf, a, testOptions()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	return buf.String()
}

func TestWriteStructure(t *testing.T) {
	out := writeTank(t)

	if !strings.HasPrefix(out, "ISO-10303-21;\n") {
		t.Error("file should start with the ISO-10303-21 marker")
	}
	if !strings.HasSuffix(out, "END-ISO-10303-21;\n") {
		t.Error("file should end with END-ISO-10303-21")
	}
	for _, want := range []string{
		"HEADER;",
		"FILE_SCHEMA(('AUTOMOTIVE_DESIGN { 1 0 10303 214 1 1 1 1 }'));",
		"DATA;",
		"ENDSEC;",
		"APPLICATION_CONTEXT('automotive design')",
		"SI_UNIT(.MILLI.,.METRE.)",
		"RIGHT_CIRCULAR_CYLINDER",
		"SPHERE",
		"BLOCK",
		"BOOLEAN_RESULT('',.DIFFERENCE.,",
		"CSG_SOLID('shell'",
		"CSG_SHAPE_REPRESENTATION",
		"2026-03-14T12:00:00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestWriteDeterministic(t *testing.T) {
	a := writeTank(t)
	b := writeTank(t)
	if a != b {
		t.Error("output should be identical across runs with a fixed timestamp")
	}
}

var entityRe = regexp.MustCompile(`(?m)^#(\d+)=`)

func TestEntityIDsSequential(t *testing.T) {
	out := writeTank(t)
	matches := entityRe.FindAllStringSubmatch(out, -1)
	if len(matches) == 0 {
		t.Fatal("no entities found")
	}
	for i, m := range matches {
		id, _ := strconv.Atoi(m[1])
		if id != i+1 {
			t.Fatalf("entity %d has id %d, want %d", i, id, i+1)
		}
	}
}

func TestOperandsPrecedeBoolean(t *testing.T) {
	out := writeTank(t)
	re := regexp.MustCompile(`#(\d+)=BOOLEAN_RESULT\('',\.\w+\.,#(\d+),#(\d+)\)`)
	found := false
	for _, m := range re.FindAllStringSubmatch(out, -1) {
		found = true
		self, _ := strconv.Atoi(m[1])
		a, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		if a >= self || b >= self {
			t.Errorf("boolean #%d references forward operands #%d,#%d", self, a, b)
		}
	}
	if !found {
		t.Fatal("no boolean_result entities found")
	}
}

func TestOnePartPerCSGSolid(t *testing.T) {
	spec, _ := design.New(9000)
	a := geometry.BuildTank(spec)
	out := writeTank(t)

	if got := strings.Count(out, "=CSG_SOLID("); got != len(a.Parts) {
		t.Errorf("%d CSG_SOLID entities, want %d", got, len(a.Parts))
	}
	if got := strings.Count(out, "=SHAPE_DEFINITION_REPRESENTATION("); got != len(a.Parts) {
		t.Errorf("%d shape definition representations, want %d", got, len(a.Parts))
	}
}

func TestStepString(t *testing.T) {
	if got := stepString("O'Neill's tank"); got != "'O''Neill''s tank'" {
		t.Errorf("stepString = %s", got)
	}
	if got := stepString(""); got != "''" {
		t.Errorf("stepString empty = %s", got)
	}
}

func TestStepReal(t *testing.T) {
	cases := map[float64]string{
		935:    "935.",
		6.5:    "6.5",
		0:      "0.",
		-1070:  "-1070.",
		0.0625: "0.0625",
	}
	for in, want := range cases {
		if got := stepReal(in); got != want {
			t.Errorf("stepReal(%v) = %s, want %s", in, got, want)
		}
	}
}

func TestTransformCompose(t *testing.T) {
	// Rotating 90 degrees about Y maps local +Z to world +X.
	xf := identity().compose(geometry.Location{RY: 90})
	z := xf.axisZ()
	if math.Abs(z.x-1) > 1e-9 || math.Abs(z.y) > 1e-9 || math.Abs(z.z) > 1e-9 {
		t.Errorf("axisZ after RY=90 is (%v,%v,%v), want (1,0,0)", z.x, z.y, z.z)
	}

	// Translation then nested placement composes in the parent frame.
	outer := identity().compose(geometry.Location{X: 100, RY: 90})
	inner := outer.compose(geometry.Location{Z: 10})
	p := inner.origin()
	if math.Abs(p.x-110) > 1e-9 || math.Abs(p.z) > 1e-9 {
		t.Errorf("composed origin is (%v,%v,%v), want (110,0,0)", p.x, p.y, p.z)
	}
}

func TestRightAngleRotationsExact(t *testing.T) {
	// Exact values keep the serialized directions clean.
	for _, deg := range []float64{0, 90, 180, 270, 360} {
		s, c := sincos(deg)
		if s != math.Trunc(s) || c != math.Trunc(c) {
			t.Errorf("sincos(%v) = (%v,%v), want exact integers", deg, s, c)
		}
	}
}
