package docgen

import "bytes"

// Deliverable renders the combined design package: a cover section followed
// by the technical specification, analysis report, and safety checklist.
func (g *Generator) Deliverable() ([]byte, error) {
	cover, err := render("deliverable_cover", deliverableCoverTemplate, g.data())
	if err != nil {
		return nil, err
	}

	sections := [][]byte{cover}
	for _, gen := range []func() ([]byte, error){g.TechnicalSpec, g.AnalysisReport, g.SafetyChecklist} {
		body, err := gen()
		if err != nil {
			return nil, err
		}
		sections = append(sections, body)
	}
	return bytes.Join(sections, []byte("\n\n---\n\n")), nil
}

const deliverableCoverTemplate = `# COMPREHENSIVE TANK DESIGN DELIVERABLE

## {{comma .Spec.ActualLiters}}L Above-Ground Petroleum Storage Tank

**Date:** {{.Date.Format "2006-01-02"}}
**Prepared by:** Solprov Engineering (Pty) Ltd
**Design Basis:** SANS 10131:2004 and API 650

This package contains the complete engineering deliverable for the tank
design:

1. **Technical Specifications** — governing standards, principal dimensions,
   material of construction, nozzle schedule, and weights.
2. **Design Analysis Report** — per-component analysis, safety standards
   compliance matrix, and engineering calculations.
3. **Safety Compliance Checklist** — fabrication, inspection, installation,
   and commissioning checklists with the signature block.

A 3D solid model of the tank accompanies this package as an ISO 10303-21
STEP file suitable for import into CAD systems.

**Summary:**

- Capacity: {{comma .Spec.ActualLiters}} L
- Diameter x Length: {{f0 .Spec.DiameterMM}} x {{f0 .Spec.LengthMM}} mm
- Shell: {{f1 .Spec.ShellThicknessMM}} mm {{.Spec.Material.Grade}} plate
- Design: {{f1 .Spec.DesignPressurePSI}} psig at {{f0 .Spec.DesignTempC}}°C
`
