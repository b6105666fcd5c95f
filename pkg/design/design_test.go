package design

import (
	"math"
	"testing"

	"github.com/solprov/tankdesign/pkg/errors"
)

func TestNewStandardSize(t *testing.T) {
	s, err := New(9000)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if !s.StandardSize {
		t.Error("9000 L should select the standard size")
	}
	if s.DiameterMM != 1870 {
		t.Errorf("diameter = %.0f, want 1870", s.DiameterMM)
	}
	if s.LengthMM != 3680 {
		t.Errorf("length = %.0f, want 3680", s.LengthMM)
	}
	if s.ActualLiters != 9000 {
		t.Errorf("actual capacity = %.0f, want 9000", s.ActualLiters)
	}
}

func TestNewStandardBand(t *testing.T) {
	// Everything in the 8000-12000 L band maps to the same standard tank.
	for _, c := range []float64{8000, 10000, 12000} {
		s, err := New(c)
		if err != nil {
			t.Fatalf("New(%.0f) error: %v", c, err)
		}
		if !s.StandardSize {
			t.Errorf("New(%.0f) should be standard size", c)
		}
		if s.DiameterMM != 1870 || s.LengthMM != 3680 {
			t.Errorf("New(%.0f) dimensions = %.0fx%.0f, want 1870x3680", c, s.DiameterMM, s.LengthMM)
		}
	}
}

func TestNewNonStandard(t *testing.T) {
	s, err := New(5000)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if s.StandardSize {
		t.Error("5000 L should not be standard size")
	}
	// L = 2D sizing
	if math.Abs(s.LengthMM-2*s.DiameterMM) > 0.01 {
		t.Errorf("length %.1f should be twice diameter %.1f", s.LengthMM, s.DiameterMM)
	}
	// V = pi D^3 / 2 must recover the requested capacity
	d := s.DiameterMM / 1000
	vol := math.Pi * d * d * d / 2 * 1000
	if math.Abs(vol-5000) > 1 {
		t.Errorf("sized volume = %.1f L, want 5000", vol)
	}
}

func TestNewInvalidCapacity(t *testing.T) {
	for _, c := range []float64{0, -100, MaxCapacityLiters + 1} {
		_, err := New(c)
		if err == nil {
			t.Errorf("New(%.0f) should fail", c)
			continue
		}
		if errors.GetCode(err) != errors.ErrCodeInvalidCapacity {
			t.Errorf("New(%.0f) code = %s, want %s", c, errors.GetCode(err), errors.ErrCodeInvalidCapacity)
		}
	}
}

func TestShellThickness(t *testing.T) {
	s, _ := New(9000)
	// At 2.5 psig the calculated thickness is well under the SANS minimum,
	// so the 6 mm floor governs.
	if s.ShellThicknessMM != MinShellThicknessMM {
		t.Errorf("thickness = %.2f, want %.2f", s.ShellThicknessMM, MinShellThicknessMM)
	}
}

func TestDishedEndRadii(t *testing.T) {
	s, _ := New(9000)
	want := 1870 * 0.06
	if math.Abs(s.KnuckleRadiusMM-want) > 0.01 {
		t.Errorf("knuckle radius = %.1f, want %.1f", s.KnuckleRadiusMM, want)
	}
	if s.KnuckleRadiusMM < 50 {
		t.Error("knuckle radius below the 50 mm minimum")
	}
	if s.CrownRadiusMM != s.DiameterMM {
		t.Errorf("crown radius = %.1f, want %.1f", s.CrownRadiusMM, s.DiameterMM)
	}

	// Small tanks must still respect the 60 mm knuckle floor.
	small, _ := New(500)
	if small.KnuckleRadiusMM < 60 {
		t.Errorf("small tank knuckle = %.1f, want >= 60", small.KnuckleRadiusMM)
	}
}

func TestVerifyCapacity(t *testing.T) {
	s, _ := New(9000)
	// 1870 mm x 3680 mm cylinder holds about 10.1 m3 against the 9 m3
	// nominal, outside the half-cubic-meter band. The gap is the standard
	// tank's ullage margin.
	if got := s.CylinderVolumeM3(); math.Abs(got-10.1) > 0.1 {
		t.Errorf("cylinder volume = %.2f m3, want about 10.1", got)
	}
	if s.VerifyCapacity() {
		t.Error("standard tank cylinder volume exceeds nominal by design margin")
	}

	// Exact-sized tanks verify.
	exact, _ := New(5000)
	if !exact.VerifyCapacity() {
		t.Errorf("sized tank should verify: cylinder %.2f m3 vs %.2f m3",
			exact.CylinderVolumeM3(), exact.CapacityM3())
	}
}

func TestWeights(t *testing.T) {
	s, _ := New(9000)

	// Shell: pi * 1.87 * 3.68 * 0.006 * 7850 ~ 1018 kg
	if got := s.ShellWeightKG(); math.Abs(got-1018) > 10 {
		t.Errorf("shell weight = %.0f kg, want about 1018", got)
	}
	// End: pi * 0.935^2 * 1.2 * 0.006 * 7850 ~ 155 kg
	if got := s.EndWeightKG(); math.Abs(got-155) > 5 {
		t.Errorf("end weight = %.0f kg, want about 155", got)
	}
	empty := s.EmptyWeightKG()
	if empty <= s.ShellWeightKG()+2*s.EndWeightKG() {
		t.Error("empty weight must include the fittings allowance")
	}
	if got := s.OperatingWeightKG(); got != empty+9000 {
		t.Errorf("operating weight = %.0f, want %.0f", got, empty+9000)
	}
}

func TestSupportPositions(t *testing.T) {
	s, _ := New(9000)
	if s.SaddlePositionMM() != 1070 {
		t.Errorf("standard saddle offset = %.0f, want 1070", s.SaddlePositionMM())
	}
	ns, _ := New(5000)
	if got, want := ns.SaddlePositionMM(), ns.LengthMM*0.29; math.Abs(got-want) > 0.01 {
		t.Errorf("saddle offset = %.1f, want %.1f", got, want)
	}
	if got, want := s.LugPositionMM(), 3680*0.33; math.Abs(got-want) > 0.01 {
		t.Errorf("lug offset = %.1f, want %.1f", got, want)
	}
}
