package docgen

// TechnicalSpec renders the technical specification sheet.
func (g *Generator) TechnicalSpec() ([]byte, error) {
	return render("technical_specification", technicalSpecTemplate, g.data())
}

const technicalSpecTemplate = `# TANK TECHNICAL SPECIFICATIONS

## {{comma .Spec.ActualLiters}}L Above-Ground Petroleum Storage Tank

**Date:** {{.Date.Format "2006-01-02"}}
**Prepared by:** Solprov Engineering (Pty) Ltd

## GOVERNING STANDARDS
{{range .Standards}}
- {{.}}{{end}}

## PRINCIPAL DIMENSIONS

| Parameter | Value |
|-----------|-------|
| Nominal Capacity | {{comma .Spec.ActualLiters}} L ({{f1 .Spec.CapacityM3}} m³) |
| Shell Inside Diameter | {{f0 .Spec.DiameterMM}} mm |
| Tan-to-Tan Length | {{f0 .Spec.LengthMM}} mm |
| Shell Thickness | {{f1 .Spec.ShellThicknessMM}} mm |
| Knuckle Radius | {{f0 .Spec.KnuckleRadiusMM}} mm |
| Crown Radius | {{f0 .Spec.CrownRadiusMM}} mm |
| Orientation | Horizontal |

## DESIGN CONDITIONS

| Parameter | Value |
|-----------|-------|
| Design Pressure | {{f1 .Spec.DesignPressurePSI}} psig |
| Design Temperature | {{f0 .Spec.DesignTempC}}°C |
| Hydrostatic Test Pressure | {{f2 .Spec.HydroTestPSI}} psig |
| Corrosion Allowance | 1.5 mm |
| Joint Efficiency | 0.85 |

## MATERIAL OF CONSTRUCTION

| Property | Value |
|----------|-------|
| Grade | {{.Spec.Material.Grade}} ({{.Spec.Material.Specification}}) |
| Yield Strength | {{f0 .Spec.Material.YieldStrengthMPa}} MPa |
| Tensile Strength | {{f0 .Spec.Material.TensileStrengthMPa}} MPa |
| Elongation | {{f0 .Spec.Material.ElongationPct}}% |
| Density | {{f0 .Spec.Material.DensityKGM3}} kg/m³ |
| Elastic Modulus | {{comma .Spec.Material.ElasticModulusMPa}} MPa |

## NOZZLE SCHEDULE

| Mark | Service | NB (mm) | Wall (mm) | Projection (mm) | Flange OD (mm) | Location |
|------|---------|---------|-----------|-----------------|----------------|----------|
{{range .Nozzles}}| {{.Name}} | {{.Service}} | {{f0 .BoreMM}} | {{f2 .WallMM}} | {{f0 .LengthMM}} | {{f0 .FlangeODMM}} | {{.Orientation}} |
{{end}}
## SUPPORTS AND ATTACHMENTS

- Two plate saddles, 120° contact angle, {{f0 .Spec.SaddlePositionMM}} mm either side of center
- Two lifting lugs with 50 mm shackle holes, {{f0 .Spec.LugPositionMM}} mm either side of center
- One 600 mm manhole with reinforcing pad and blanked flange

## WEIGHTS

| Condition | Mass (kg) |
|-----------|-----------|
| Shell | {{f0 .Spec.ShellWeightKG}} |
| Dished End (each) | {{f0 .Spec.EndWeightKG}} |
| Empty (with fittings) | {{f0 .Spec.EmptyWeightKG}} |
| Operating (full) | {{f0 .Spec.OperatingWeightKG}} |

## SURFACE PREPARATION AND COATING

- Abrasive blast to Sa 2.5 per ISO 8501-1
- Primer and topcoat system suitable for petroleum service
- Internal surfaces uncoated, drained and dried after hydrostatic test

---
Specification prepared by Solprov Engineering (Pty) Ltd
`
