package design

import (
	"fmt"
	"math"
)

// ComponentKind identifies one of the fabricated component classes.
type ComponentKind string

// Component kinds in assembly order.
const (
	KindShell      ComponentKind = "shell"
	KindEnd        ComponentKind = "dished_end"
	KindManhole    ComponentKind = "manhole"
	KindNozzle     ComponentKind = "nozzle"
	KindSaddle     ComponentKind = "saddle"
	KindLiftingLug ComponentKind = "lifting_lug"
)

// Component is one fabricated item on the bill of materials, with the
// compliance data the analysis documents report per component.
type Component struct {
	Kind         ComponentKind
	Name         string
	Description  string
	Quantity     int
	WeightKG     float64  // per-item mass
	Dimensions   map[string]float64
	MaterialSpec string   // plate or pipe grade with its standard
	StandardRef  string   // governing clause
	SafetyFactor float64
	Quality      []string // fabrication quality requirements
	Inspection   []string // inspection hold points
}

// Nozzle is a shell penetration with its flange.
type Nozzle struct {
	Name          string
	Service       string
	BoreMM        float64 // nominal pipe bore
	WallMM        float64 // pipe wall thickness
	LengthMM      float64 // projection from shell
	FlangeODMM    float64
	FlangeThkMM   float64
	AxialOffsetMM float64 // from tank center, along the axis
	Orientation   string  // "top", "bottom", or "end"
}

// Manhole access opening per SANS 10131:2004 A.5.
const (
	ManholeBoreMM       = 600.0
	ManholeNeckMM       = 100.0
	ManholeFlangeODMM   = 750.0
	ManholeFlangeThkMM  = 20.0
	ManholeReinfExtraMM = 200.0 // reinforcing pad OD beyond the bore
	ManholeReinfThkMM   = 8.0
)

// Saddle support dimensions, 120° contact angle.
const (
	SaddleHeightMM = 250.0
	SaddleWidthMM  = 600.0
	SaddleThkMM    = 10.0
	SaddleAngleDeg = 120.0
)

// Lifting lug plate dimensions.
const (
	LugLengthMM = 150.0
	LugHeightMM = 90.0
	LugThkMM    = 12.0
	LugHoleMM   = 50.0
)

// NozzleLengthMM is the standard projection of all nozzles from the shell.
const NozzleLengthMM = 150.0

// NozzleFlangeThkMM is the standard slip-on flange thickness.
const NozzleFlangeThkMM = 18.0

// pipeWallMM maps nominal bore to schedule 40 wall thickness (mm).
var pipeWallMM = map[int]float64{
	25: 2.87,
	50: 3.68,
	80: 5.49,
}

// defaultPipeWallMM is used for bores absent from the table.
const defaultPipeWallMM = 3.68

// PipeWallMM returns the schedule 40 wall thickness for a nominal bore.
func PipeWallMM(boreMM int) float64 {
	if t, ok := pipeWallMM[boreMM]; ok {
		return t
	}
	return defaultPipeWallMM
}

// Nozzles returns the four service nozzles positioned on the shell.
func (s *Spec) Nozzles() []Nozzle {
	half := s.LengthMM / 2
	mk := func(name, service string, bore int, offset float64, orientation string) Nozzle {
		return Nozzle{
			Name:          name,
			Service:       service,
			BoreMM:        float64(bore),
			WallMM:        PipeWallMM(bore),
			LengthMM:      NozzleLengthMM,
			FlangeODMM:    float64(bore) * 1.8,
			FlangeThkMM:   NozzleFlangeThkMM,
			AxialOffsetMM: offset,
			Orientation:   orientation,
		}
	}
	return []Nozzle{
		mk("N1", "fill", 80, half-400, "top"),
		mk("N2", "vent", 50, half-800, "top"),
		mk("N3", "outlet", 50, half, "end"),
		mk("N4", "drain", 25, 0, "bottom"),
	}
}

// Components returns the full bill of materials for the sized tank.
func (s *Spec) Components() []Component {
	list := []Component{
		{
			Kind:        KindShell,
			Name:        "Cylindrical Shell",
			Description: "Rolled plate shell, longitudinal and circumferential butt welds",
			Quantity:    1,
			WeightKG:    s.ShellWeightKG(),
			Dimensions: map[string]float64{
				"diameter_mm":  s.DiameterMM,
				"length_mm":    s.LengthMM,
				"thickness_mm": s.ShellThicknessMM,
			},
			MaterialSpec: "Carbon Steel Plate Grade 300WA (SANS 1431)",
			StandardRef:  "SANS 10131:2004 Annex A.3.2",
			SafetyFactor: SafetyFactors["shell"],
			Quality: []string{
				"Mill Test Certificate required",
				"Chemical composition verification",
				"Mechanical property testing",
				"Surface finish Sa 2.5 per ISO 8501-1",
			},
			Inspection: []string{
				"Visual inspection 100%",
				"Dimensional verification",
				"Surface preparation inspection",
				"Welding procedure qualification",
			},
		},
		{
			Kind:        KindEnd,
			Name:        "Torispherical End",
			Description: "Dished and flanged end, crown and knuckle per SANS 10131 A.3.2.4",
			Quantity:    2,
			WeightKG:    s.EndWeightKG(),
			Dimensions: map[string]float64{
				"diameter_mm":       s.DiameterMM,
				"thickness_mm":      s.ShellThicknessMM,
				"crown_radius_mm":   s.CrownRadiusMM,
				"knuckle_radius_mm": s.KnuckleRadiusMM,
			},
			MaterialSpec: "Carbon Steel Plate Grade 300WA (SANS 1431)",
			StandardRef:  "SANS 10131:2004 Annex A.3.2.4",
			SafetyFactor: SafetyFactors["ends"],
			Quality: []string{
				"Formed from single plate",
				"Knuckle radius >= 50 mm",
				"Crown radius between D and 1.5 D",
				"Straight flange >= 40 mm",
			},
			Inspection: []string{
				"Template verification",
				"Radius measurement",
				"Thickness verification",
				"Forming quality check",
			},
		},
		{
			Kind:        KindManhole,
			Name:        "Manhole",
			Description: "600 mm access manhole with reinforcing pad and blanked flange",
			Quantity:    1,
			WeightKG:    manholeWeightKG(s.Material),
			Dimensions: map[string]float64{
				"bore_mm":          ManholeBoreMM,
				"neck_height_mm":   ManholeNeckMM,
				"flange_od_mm":     ManholeFlangeODMM,
				"flange_thk_mm":    ManholeFlangeThkMM,
				"reinf_pad_od_mm":  ManholeBoreMM + ManholeReinfExtraMM,
				"reinf_pad_thk_mm": ManholeReinfThkMM,
			},
			MaterialSpec: "Carbon Steel Grade 300WA",
			StandardRef:  "SANS 10131:2004 Annex A.3.4 & A.3.5",
			SafetyFactor: SafetyFactors["nozzles"],
			Quality: []string{
				"600 mm diameter opening",
				"Reinforcing plate calculation per API 650",
				"Gasket groove machining",
				"Bolt hole pattern per SANS standard",
			},
			Inspection: []string{
				"Dimensional verification",
				"Reinforcement adequacy check",
				"Machining quality inspection",
				"Gasket surface finish verification",
			},
		},
		{
			Kind:        KindSaddle,
			Name:        "Saddle Support",
			Description: "Plate saddle, 120 degree contact, welded wear plate",
			Quantity:    2,
			WeightKG:    saddleWeightKG(s.Material),
			Dimensions: map[string]float64{
				"height_mm":    SaddleHeightMM,
				"width_mm":     SaddleWidthMM,
				"thickness_mm": SaddleThkMM,
				"angle_deg":    SaddleAngleDeg,
				"offset_mm":    s.SaddlePositionMM(),
			},
			MaterialSpec: "Structural Steel Grade 300W",
			StandardRef:  "SANS 10131:2004 Figure A.6",
			SafetyFactor: SafetyFactors["supports"],
			Quality: []string{
				"120 degree contact angle",
				"Doubling plates under saddles",
				"Proper load distribution",
				"Foundation bolt holes",
			},
			Inspection: []string{
				"Contact angle verification",
				"Load calculation check",
				"Doubling plate inspection",
				"Anchor bolt pattern check",
			},
		},
		{
			Kind:        KindLiftingLug,
			Name:        "Lifting Lug",
			Description: "Plate lug with 50 mm shackle hole",
			Quantity:    2,
			WeightKG:    lugWeightKG(s.Material),
			Dimensions: map[string]float64{
				"length_mm":    LugLengthMM,
				"height_mm":    LugHeightMM,
				"thickness_mm": LugThkMM,
				"hole_mm":      LugHoleMM,
				"offset_mm":    s.LugPositionMM(),
			},
			MaterialSpec: "Structural Steel Grade 350W",
			StandardRef:  "SANS 10131:2004 Figure A.5",
			SafetyFactor: SafetyFactors["lifting_lugs"],
			Quality: []string{
				"Load calculation for empty tank",
				"50 mm shackle hole",
				"Stress concentration analysis",
				"Lifting procedure documentation",
			},
			Inspection: []string{
				"Load test calculation",
				"Hole diameter verification",
				"Stress analysis review",
				"Lifting procedure approval",
			},
		},
	}

	for _, n := range s.Nozzles() {
		list = append(list, Component{
			Kind:        KindNozzle,
			Name:        "Nozzle " + n.Name,
			Description: n.Service + " nozzle with slip-on flange",
			Quantity:    1,
			WeightKG:    nozzleWeightKG(n, s.Material),
			Dimensions: map[string]float64{
				"bore_mm":       n.BoreMM,
				"wall_mm":       n.WallMM,
				"length_mm":     n.LengthMM,
				"flange_od_mm":  n.FlangeODMM,
				"flange_thk_mm": n.FlangeThkMM,
				"offset_mm":     n.AxialOffsetMM,
			},
			MaterialSpec: "Carbon Steel Pipe Grade B (SANS 62-1)",
			StandardRef:  "SANS 62-1 & SANS 1123",
			SafetyFactor: SafetyFactors["nozzles"],
			Quality: []string{
				fmt.Sprintf("NPS %.0f pipe", n.BoreMM),
				"Standard wall thickness",
				"Flanged connections",
				"Proper nozzle reinforcement",
			},
			Inspection: []string{
				"Pipe specification check",
				"Wall thickness verification",
				"Flange rating confirmation",
				"Reinforcement calculation",
			},
		})
	}
	return list
}

func plateMassKG(lengthMM, widthMM, thkMM float64, m Material) float64 {
	return lengthMM / 1000 * widthMM / 1000 * thkMM / 1000 * m.DensityKGM3
}

func discMassKG(odMM, thkMM float64, m Material) float64 {
	r := odMM / 2000
	return math.Pi * r * r * (thkMM / 1000) * m.DensityKGM3
}

func tubeMassKG(boreMM, wallMM, lengthMM float64, m Material) float64 {
	ro := (boreMM/2 + wallMM) / 1000
	ri := boreMM / 2000
	return math.Pi * (ro*ro - ri*ri) * (lengthMM / 1000) * m.DensityKGM3
}

func manholeWeightKG(m Material) float64 {
	neck := tubeMassKG(ManholeBoreMM, ManholeReinfThkMM, ManholeNeckMM, m)
	flange := discMassKG(ManholeFlangeODMM, ManholeFlangeThkMM, m)
	pad := discMassKG(ManholeBoreMM+ManholeReinfExtraMM, ManholeReinfThkMM, m)
	return neck + 2*flange + pad
}

func saddleWeightKG(m Material) float64 {
	return plateMassKG(SaddleWidthMM, SaddleHeightMM, SaddleThkMM, m) * 2
}

func lugWeightKG(m Material) float64 {
	return plateMassKG(LugLengthMM, LugHeightMM, LugThkMM, m)
}

func nozzleWeightKG(n Nozzle, m Material) float64 {
	return tubeMassKG(n.BoreMM, n.WallMM, n.LengthMM, m) + discMassKG(n.FlangeODMM, n.FlangeThkMM, m)
}
