package geometry

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/solprov/tankdesign/pkg/design"
)

func buildTestTank(t *testing.T) *Assembly {
	t.Helper()
	spec, err := design.New(9000)
	if err != nil {
		t.Fatalf("design.New: %v", err)
	}
	return BuildTank(spec)
}

func TestBuildTankParts(t *testing.T) {
	a := buildTestTank(t)

	// shell + 2 ends + manhole neck/flange + 2 saddles + 4 nozzles with
	// flanges + 2 lugs.
	if len(a.Parts) != 17 {
		t.Fatalf("assembly has %d parts, want 17", len(a.Parts))
	}

	want := []string{
		"shell",
		"dished_end_front",
		"dished_end_rear",
		"manhole_neck",
		"manhole_flange",
		"saddle_front",
		"saddle_rear",
		"nozzle_n1_fill",
		"nozzle_n1_fill_flange",
		"nozzle_n2_vent",
		"nozzle_n2_vent_flange",
		"nozzle_n3_outlet",
		"nozzle_n3_outlet_flange",
		"nozzle_n4_drain",
		"nozzle_n4_drain_flange",
		"lifting_lug_front",
		"lifting_lug_rear",
	}
	// Order of nozzles follows the schedule; check presence not order for
	// the full list.
	for _, name := range want {
		if _, ok := a.Find(name); !ok {
			t.Errorf("missing part %q", name)
		}
	}
}

func TestBuildTankPlacements(t *testing.T) {
	spec, _ := design.New(9000)
	a := BuildTank(spec)

	front, _ := a.Find("dished_end_front")
	p, ok := front.Solid.(Placed)
	if !ok {
		t.Fatal("dished_end_front should be a Placed solid")
	}
	if p.At.X != spec.LengthMM/2 {
		t.Errorf("front end at X=%.0f, want %.0f", p.At.X, spec.LengthMM/2)
	}

	saddle, _ := a.Find("saddle_front")
	sp := saddle.Solid.(Placed)
	if sp.At.X != spec.SaddlePositionMM() {
		t.Errorf("saddle at X=%.0f, want %.0f", sp.At.X, spec.SaddlePositionMM())
	}
	if sp.At.Z >= 0 {
		t.Error("saddle should sit below the shell")
	}

	lug, _ := a.Find("lifting_lug_rear")
	lp := lug.Solid.(Placed)
	if lp.At.X != -spec.LugPositionMM() {
		t.Errorf("rear lug at X=%.0f, want %.0f", lp.At.X, -spec.LugPositionMM())
	}
}

func TestBuildTankScalesWithSpec(t *testing.T) {
	small, _ := design.New(2000)
	a := BuildTank(small)

	shell, _ := a.Find("shell")
	placed := shell.Solid.(Placed)
	hollow := placed.Solid.(Boolean)
	outer := hollow.A.(Cylinder)
	if outer.RadiusMM != small.DiameterMM/2 {
		t.Errorf("shell radius %.1f, want %.1f", outer.RadiusMM, small.DiameterMM/2)
	}
	if outer.HeightMM != small.LengthMM {
		t.Errorf("shell length %.1f, want %.1f", outer.HeightMM, small.LengthMM)
	}
}

func TestBooleanStructure(t *testing.T) {
	a := buildTestTank(t)
	shell, _ := a.Find("shell")

	placed, ok := shell.Solid.(Placed)
	if !ok {
		t.Fatal("shell should be placed")
	}
	b, ok := placed.Solid.(Boolean)
	if !ok {
		t.Fatal("shell should be a boolean")
	}
	if b.Op != OpDifference {
		t.Errorf("shell op = %s, want difference", b.Op)
	}
	inner, ok := b.B.(Placed)
	if !ok {
		t.Fatal("inner cut should be placed")
	}
	if _, ok := inner.Solid.(Cylinder); !ok {
		t.Error("inner cut should be a cylinder")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	a := buildTestTank(t)

	var buf bytes.Buffer
	if err := EncodeJSON(&buf, a); err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}

	got, err := DecodeJSON(&buf)
	if err != nil {
		t.Fatalf("DecodeJSON: %v", err)
	}
	if !reflect.DeepEqual(a, got) {
		t.Error("assembly did not survive the JSON round trip")
	}
}

func TestDecodeJSONInvalid(t *testing.T) {
	cases := []string{
		`not json`,
		`{"name":"x","parts":[{"name":"p","solid":{"kind":"wedge"}}]}`,
		`{"name":"x","parts":[{"name":"p","solid":{"kind":"boolean"}}]}`,
	}
	for _, in := range cases {
		if _, err := DecodeJSON(strings.NewReader(in)); err == nil {
			t.Errorf("DecodeJSON(%q) should fail", in)
		}
	}
}

func TestToDOT(t *testing.T) {
	a := buildTestTank(t)
	dot := ToDOT(a)

	if !strings.HasPrefix(dot, "digraph assembly {") {
		t.Error("DOT should open a digraph")
	}
	for _, want := range []string{
		`"shell"`,
		`"difference"`,
		"cylinder r=935.0 h=3680.0",
		"root ->",
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q", want)
		}
	}

	// Deterministic output.
	if dot != ToDOT(a) {
		t.Error("ToDOT should be deterministic")
	}
}
