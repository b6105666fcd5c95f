package geometry

import (
	"fmt"
	"strings"

	"github.com/solprov/tankdesign/pkg/design"
)

// BuildTank constructs the CSG assembly for a sized tank. The tank axis
// runs along X with the origin at the geometric center; Z is up.
//
// Every dimension and placement is taken from the spec, so the assembly
// follows the spec across capacities, not just the standard size.
func BuildTank(spec *design.Spec) *Assembly {
	d := spec.DiameterMM
	l := spec.LengthMM
	t := spec.ShellThicknessMM

	a := &Assembly{
		Name: fmt.Sprintf("%.0fL Above-Ground Petroleum Storage Tank", spec.ActualLiters),
	}

	// Hollow cylindrical shell. The inner cut is slightly longer so the
	// difference leaves no coincident end faces.
	shell := Difference(
		Cylinder{RadiusMM: d / 2, HeightMM: l},
		At(Cylinder{RadiusMM: d/2 - t, HeightMM: l + 1}, Location{Z: -0.5}),
	)
	a.add("shell", At(shell, Location{X: -l / 2, RY: 90}))

	// Dished ends, modelled as spherical caps: a sphere with the inboard
	// half removed by a block.
	endCap := Difference(
		Sphere{RadiusMM: d / 2},
		At(Box{XMM: d, YMM: d, ZMM: d}, Location{X: -d / 2}),
	)
	a.add("dished_end_front", At(endCap, Location{X: l / 2}))
	a.add("dished_end_rear", At(endCap, Location{X: -l / 2, RZ: 180}))

	// Manhole on top center: hollow neck plus flange ring.
	neck := Difference(
		Cylinder{RadiusMM: design.ManholeBoreMM / 2, HeightMM: design.ManholeNeckMM},
		At(Cylinder{RadiusMM: design.ManholeBoreMM/2 - design.ManholeReinfThkMM, HeightMM: design.ManholeNeckMM + 2}, Location{Z: -1}),
	)
	a.add("manhole_neck", At(neck, Location{Z: d / 2}))

	flange := Difference(
		Cylinder{RadiusMM: design.ManholeFlangeODMM / 2, HeightMM: design.ManholeFlangeThkMM},
		At(Cylinder{RadiusMM: design.ManholeBoreMM / 2, HeightMM: design.ManholeFlangeThkMM + 2}, Location{Z: -1}),
	)
	a.add("manhole_flange", At(flange, Location{Z: d/2 + design.ManholeNeckMM}))

	// Saddles below the shell: a block with the shell cradle cut out.
	saddle := Difference(
		Box{XMM: design.SaddleWidthMM, YMM: design.SaddleWidthMM, ZMM: design.SaddleHeightMM},
		At(Cylinder{RadiusMM: d/2 + 5, HeightMM: design.SaddleWidthMM + 10}, Location{
			Y: (design.SaddleWidthMM + 10) / 2, Z: design.SaddleHeightMM / 2, RX: 90,
		}),
	)
	for _, side := range []struct {
		suffix string
		sign   float64
	}{{"front", 1}, {"rear", -1}} {
		a.add("saddle_"+side.suffix, At(saddle, Location{
			X: side.sign * spec.SaddlePositionMM(),
			Z: -d/2 - design.SaddleHeightMM/2,
		}))
	}

	// Service nozzles: hollow neck and flange ring per the nozzle schedule.
	for _, n := range spec.Nozzles() {
		base := strings.ToLower(n.Name) + "_" + n.Service
		neckLoc, flangeLoc := nozzleLocations(n, d, l)

		pipe := Difference(
			Cylinder{RadiusMM: n.BoreMM/2 + n.WallMM, HeightMM: n.LengthMM},
			At(Cylinder{RadiusMM: n.BoreMM / 2, HeightMM: n.LengthMM + 2}, Location{Z: -1}),
		)
		a.add("nozzle_"+base, At(pipe, neckLoc))

		ring := Difference(
			Cylinder{RadiusMM: n.FlangeODMM / 2, HeightMM: n.FlangeThkMM},
			At(Cylinder{RadiusMM: n.BoreMM / 2, HeightMM: n.FlangeThkMM + 2}, Location{Z: -1}),
		)
		a.add("nozzle_"+base+"_flange", At(ring, flangeLoc))
	}

	// Lifting lugs on top of the shell, holed for a shackle pin.
	lug := Difference(
		Box{XMM: design.LugLengthMM, YMM: design.LugThkMM, ZMM: design.LugHeightMM},
		At(Cylinder{RadiusMM: design.LugHoleMM / 2, HeightMM: design.LugThkMM + 2}, Location{
			Y: (design.LugThkMM + 2) / 2, Z: design.LugHeightMM / 4, RX: 90,
		}),
	)
	for _, side := range []struct {
		suffix string
		sign   float64
	}{{"front", 1}, {"rear", -1}} {
		a.add("lifting_lug_"+side.suffix, At(lug, Location{
			X: side.sign * spec.LugPositionMM(),
			Z: d/2 + design.LugHeightMM/2,
		}))
	}

	return a
}

// nozzleLocations returns the neck and flange placements for a nozzle given
// its shell station. Necks grow outward along their local +Z after rotation.
func nozzleLocations(n design.Nozzle, d, l float64) (neck, flange Location) {
	switch n.Orientation {
	case "bottom":
		// Pointing down from the shell underside.
		neck = Location{X: n.AxialOffsetMM, Z: -d / 2, RX: 180}
		flange = Location{X: n.AxialOffsetMM, Z: -d/2 - n.LengthMM, RX: 180}
	case "end":
		// Axial, out of the front dished end.
		neck = Location{X: l / 2, RY: 90}
		flange = Location{X: l/2 + n.LengthMM, RY: 90}
	default: // top
		neck = Location{X: n.AxialOffsetMM, Z: d / 2}
		flange = Location{X: n.AxialOffsetMM, Z: d/2 + n.LengthMM}
	}
	return neck, flange
}

func (a *Assembly) add(name string, s Solid) {
	a.Parts = append(a.Parts, Part{Name: name, Solid: s})
}
