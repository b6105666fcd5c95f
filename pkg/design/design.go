// Package design sizes a horizontal cylindrical above-ground petroleum
// storage tank and derives the full component specification set from a
// requested capacity.
//
// # Sizing
//
// Standard capacities in the 8 000–12 000 L band map to the SANS 10131:2004
// Table A.1 row for the 9 m³ BTA tank (1870 mm diameter, 3680 mm length).
// Other capacities are sized with the L = 2D closed form, the optimal
// length-to-diameter ratio for horizontal shop-fabricated tanks:
//
//	V = π (D/2)² L = π D³ / 2  ⇒  D = (2V/π)^(1/3)
//
// # Shell thickness
//
// Shell thickness follows the API 650 thin-wall formula with a corrosion
// allowance, floored at the SANS 10131:2004 Annex A minimum of 6 mm:
//
//	t = P·R / (S·E − 0.6·P) + CA
//
// where S is 40% of the material yield strength and E is the 0.85 joint
// efficiency of radiographed butt joints.
//
// All linear dimensions are millimeters, pressures are expressed in psig
// for fidelity to the design codes, and masses are kilograms.
package design

import (
	"math"

	"github.com/solprov/tankdesign/pkg/errors"
)

// Design-code constants.
const (
	// DesignPressurePSI is the maximum design pressure per API 650 (psig).
	DesignPressurePSI = 2.5

	// DesignTemperatureC is the design temperature per SANS 10131:2004 (°C).
	DesignTemperatureC = 60.0

	// HydroTestFactor is the hydrostatic test pressure multiplier.
	HydroTestFactor = 1.5

	// MinShellThicknessMM is the SANS 10131:2004 Annex A minimum (mm).
	MinShellThicknessMM = 6.0

	// JointEfficiency for radiographed butt joints.
	JointEfficiency = 0.85

	// CorrosionAllowanceMM added to the calculated shell thickness (mm).
	CorrosionAllowanceMM = 1.5

	// psiToMPa converts psi to MPa.
	psiToMPa = 0.00689476
)

// Standard BTA tank dimensions (SANS 10131:2004 Table A.1, 9 m³ row).
const (
	standardDiameterMM = 1870.0
	standardLengthMM   = 3680.0
	standardCapacityL  = 9000.0
)

// MaxCapacityLiters bounds the shop-fabricated horizontal tank class.
// Larger vessels are field-erected vertical tanks outside this design's scope.
const MaxCapacityLiters = 100000.0

// fittingsWeightKG is the allowance for nozzles, supports, and small
// attachments in the empty-weight estimate.
const fittingsWeightKG = 200.0

// SafetyFactors are the per-component design safety factors.
var SafetyFactors = map[string]float64{
	"shell":        2.0,
	"ends":         2.0,
	"nozzles":      2.5,
	"supports":     3.0,
	"lifting_lugs": 4.0,
}

// Spec is the complete sized specification for one tank.
type Spec struct {
	// Requested and actual capacities.
	CapacityLiters float64 // requested capacity (L)
	ActualLiters   float64 // nominal capacity of the sized tank (L)

	// Principal dimensions (mm).
	DiameterMM       float64
	LengthMM         float64 // tan-to-tan shell length
	ShellThicknessMM float64

	// Dished end geometry (mm), SANS 10131:2004 A.3.2.4.
	KnuckleRadiusMM float64 // must be >= 50 mm
	CrownRadiusMM   float64 // between D and 1.5·D

	// Design conditions.
	DesignPressurePSI float64
	DesignTempC       float64
	HydroTestPSI      float64
	StandardSize      bool // true when sized from the SANS Table A.1 row
	Material          Material
}

// New sizes a tank for the requested capacity in liters.
//
// Capacities in the 8 000–12 000 L band select the standard 9 000 L BTA
// tank; other capacities are sized with the L = 2D closed form. Returns a
// coded error for non-positive or out-of-class capacities.
func New(capacityLiters float64) (*Spec, error) {
	if capacityLiters <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidCapacity,
			"capacity must be positive, got %.0f L", capacityLiters)
	}
	if capacityLiters > MaxCapacityLiters {
		return nil, errors.New(errors.ErrCodeInvalidCapacity,
			"capacity %.0f L exceeds the %.0f L shop-fabricated horizontal tank class",
			capacityLiters, MaxCapacityLiters)
	}

	s := &Spec{
		CapacityLiters:    capacityLiters,
		DesignPressurePSI: DesignPressurePSI,
		DesignTempC:       DesignTemperatureC,
		HydroTestPSI:      DesignPressurePSI * HydroTestFactor,
		Material:          Grade300WA,
	}

	if capacityLiters >= 8000 && capacityLiters <= 12000 {
		s.DiameterMM = standardDiameterMM
		s.LengthMM = standardLengthMM
		s.ActualLiters = standardCapacityL
		s.StandardSize = true
	} else {
		volumeM3 := capacityLiters / 1000
		s.DiameterMM = math.Cbrt(volumeM3*2/math.Pi) * 1000
		s.LengthMM = 2 * s.DiameterMM
		s.ActualLiters = capacityLiters
	}

	s.ShellThicknessMM = shellThickness(s.DiameterMM, s.Material)
	s.KnuckleRadiusMM = math.Max(60.0, s.DiameterMM*0.06)
	s.CrownRadiusMM = s.DiameterMM

	return s, nil
}

// shellThickness computes the API 650 shell thickness in mm, floored at the
// SANS minimum.
func shellThickness(diameterMM float64, m Material) float64 {
	pressureMPa := DesignPressurePSI * psiToMPa
	radiusMM := diameterMM / 2
	allowableStress := m.YieldStrengthMPa * 0.4

	t := pressureMPa*radiusMM/(allowableStress*JointEfficiency-0.6*pressureMPa) + CorrosionAllowanceMM
	return math.Max(t, MinShellThicknessMM)
}

// RadiusMM returns the shell radius in mm.
func (s *Spec) RadiusMM() float64 {
	return s.DiameterMM / 2
}

// CapacityM3 returns the nominal capacity in cubic meters.
func (s *Spec) CapacityM3() float64 {
	return s.ActualLiters / 1000
}

// CylinderVolumeM3 returns the geometric volume of the cylindrical shell in
// m³, ignoring the dished-end contribution.
func (s *Spec) CylinderVolumeM3() float64 {
	r := s.DiameterMM / 2000 // m
	return math.Pi * r * r * (s.LengthMM / 1000)
}

// VerifyCapacity reports whether the cylindrical volume matches the nominal
// capacity within half a cubic meter. The dished ends add margin on top of
// the cylinder, so a match here guarantees the nominal fill level fits.
func (s *Spec) VerifyCapacity() bool {
	return math.Abs(s.CylinderVolumeM3()-s.CapacityM3()) < 0.5
}

// ShellWeightKG estimates the cylindrical shell plate mass.
func (s *Spec) ShellWeightKG() float64 {
	volumeM3 := math.Pi * (s.DiameterMM / 1000) * (s.LengthMM / 1000) * (s.ShellThicknessMM / 1000)
	return volumeM3 * s.Material.DensityKGM3
}

// EndWeightKG estimates the mass of a single dished end. The 1.2 factor
// accounts for the extra surface of the dished shape over a flat disc.
func (s *Spec) EndWeightKG() float64 {
	r := s.DiameterMM / 2000 // m
	areaM2 := math.Pi * r * r * 1.2
	return areaM2 * (s.ShellThicknessMM / 1000) * s.Material.DensityKGM3
}

// EmptyWeightKG estimates the total empty tank mass including a fittings
// allowance for nozzles and supports.
func (s *Spec) EmptyWeightKG() float64 {
	return s.ShellWeightKG() + 2*s.EndWeightKG() + fittingsWeightKG
}

// OperatingWeightKG estimates the full operating mass, treating the stored
// product as having unit density (1 kg/L), conservative for petroleum.
func (s *Spec) OperatingWeightKG() float64 {
	return s.EmptyWeightKG() + s.ActualLiters
}

// SaddlePositionMM returns the saddle offset from the tank center.
// For the standard tank this is the Table A.1 half-spacing of 1070 mm;
// otherwise the optimal 0.29·L position.
func (s *Spec) SaddlePositionMM() float64 {
	if s.StandardSize {
		return 1070.0
	}
	return s.LengthMM * 0.29
}

// LugPositionMM returns the lifting lug offset from the tank center,
// placing the pair roughly 2/3 of the length apart.
func (s *Spec) LugPositionMM() float64 {
	return s.LengthMM * 0.33
}
