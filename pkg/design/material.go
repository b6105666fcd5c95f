package design

// Material is a structural steel grade with the mechanical properties the
// sizing formulas need.
type Material struct {
	Grade              string
	Specification      string
	YieldStrengthMPa   float64
	TensileStrengthMPa float64
	ElongationPct      float64
	DensityKGM3        float64
	ElasticModulusMPa  float64
	PoissonRatio       float64
}

// Grade300WA is SANS 1431 Grade 300WA weldable structural steel, the plate
// grade SANS 10131:2004 specifies for above-ground petroleum tanks.
var Grade300WA = Material{
	Grade:              "300WA",
	Specification:      "SANS 1431",
	YieldStrengthMPa:   300,
	TensileStrengthMPa: 430,
	ElongationPct:      23,
	DensityKGM3:        7850,
	ElasticModulusMPa:  200000,
	PoissonRatio:       0.3,
}

// AllowableStressMPa returns the allowable design stress, 40% of yield per
// the API 650 basis used here.
func (m Material) AllowableStressMPa() float64 {
	return m.YieldStrengthMPa * 0.4
}
