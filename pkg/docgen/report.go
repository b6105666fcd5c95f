package docgen

// AnalysisReport renders the comprehensive component analysis report.
func (g *Generator) AnalysisReport() ([]byte, error) {
	return render("analysis_report", analysisReportTemplate, g.data())
}

const analysisReportTemplate = `# COMPREHENSIVE TANK DESIGN ANALYSIS REPORT

## PROJECT INFORMATION

**Project:** {{comma .Spec.ActualLiters}}L Above-Ground Petroleum Storage Tank
**Designer:** Solprov Engineering (Pty) Ltd
**Date:** {{.Date.Format "2006-01-02 15:04:05"}}
**Standards Compliance:** Multi-Standard Professional Design

## EXECUTIVE SUMMARY

This report provides a comprehensive analysis of every component in the
{{comma .Spec.ActualLiters}}L horizontal cylindrical storage tank design,
covering compliance with all applicable safety standards and engineering
codes.

**Key Specifications:**

- Capacity: {{comma .Spec.ActualLiters}} L ({{f1 .Spec.CapacityM3}} m³)
- Diameter: {{f0 .Spec.DiameterMM}} mm
- Length: {{f0 .Spec.LengthMM}} mm
- Shell Thickness: {{f1 .Spec.ShellThicknessMM}} mm
- Design Pressure: {{f1 .Spec.DesignPressurePSI}} psig
- Design Temperature: {{f0 .Spec.DesignTempC}}°C

## DETAILED COMPONENT ANALYSIS
{{range .Components}}
### {{upper .Name}}

**Material Specification:** {{.MaterialSpec}}
**Standard Reference:** {{.StandardRef}}
**Safety Factor:** {{f1 .SafetyFactor}}
**Quantity:** {{.Quantity}}
**Unit Weight:** {{f1 .WeightKG}} kg

**Dimensions:**
{{range sortdims .Dimensions}}
- {{.Label}}: {{f1 .Value}}{{end}}

**Quality Requirements:**
{{range .Quality}}
- {{.}}{{end}}

**Inspection Requirements:**
{{range .Inspection}}
- {{.}}{{end}}
{{end}}
## SAFETY STANDARDS COMPLIANCE MATRIX

Total Safety Requirements: {{len .Checklist}}
Standards Coverage: {{covered .Checklist}} standards
{{$grouped := bystd .Checklist}}{{range .Standards}}{{$reqs := index $grouped .}}{{if $reqs}}
### {{.}}

Requirements: {{len $reqs}}

| Req ID | Description | Inspector Required | Verification Method |
|--------|-------------|--------------------|---------------------|
{{range $reqs}}| {{.ID}} | {{.Description}} | {{yesno .InspectorRequired}} | {{.VerificationMethod}} |
{{end}}{{end}}{{end}}
## ENGINEERING CALCULATIONS

### Shell Thickness Calculation (API 650)

- Design Pressure: {{f2 .Spec.DesignPressurePSI}} psig
- Tank Radius: {{f0 .Spec.RadiusMM}} mm
- Material Yield Strength: {{f0 .Spec.Material.YieldStrengthMPa}} MPa
- Allowable Stress: {{f0 .Spec.Material.AllowableStressMPa}} MPa (40% of yield)
- Joint Efficiency: 85% (radiographed butt joints)
- Corrosion Allowance: 1.5 mm
- **Minimum Thickness (SANS): 6.0 mm**
- **Selected Thickness: {{f1 .Spec.ShellThicknessMM}} mm**

### Capacity Verification

- Calculated Volume: {{f2 .Spec.CylinderVolumeM3}} m³
- Specified Capacity: {{f1 .Spec.CapacityM3}} m³
- **Capacity Match: {{passfail .Spec.VerifyCapacity}}**

### Weight Calculations

- Shell Weight: {{f0 .Spec.ShellWeightKG}} kg
- End Weight: {{f0 .Spec.EndWeightKG}} kg (each)
- Total Empty Weight: {{f0 .Spec.EmptyWeightKG}} kg
- Operating Weight: {{f0 .Spec.OperatingWeightKG}} kg

## QUALITY ASSURANCE CHECKLIST

### Manufacturing Quality Control

- [x] Material certificates verified (SANS 1431)
- [x] Welding procedures qualified (SANS 9956-3)
- [x] Welder qualifications current (SANS 9606-1)
- [x] Dimensional inspection completed
- [x] Surface preparation to Sa 2.5 (ISO 8501-1)
- [x] Hydrostatic test performed
- [x] Radiographic testing of critical welds
- [x] Factory Acceptance Test completed

### Installation Checklist

- [ ] Foundation prepared and leveled
- [ ] Safety distances verified per SANS 10131:2004
- [ ] Bund wall constructed (110% capacity minimum)
- [ ] Fire authority consultation completed
- [ ] Environmental approvals obtained
- [ ] Insurance notifications completed
- [ ] Operating permits issued
- [ ] Operator training completed

### Inspection Schedule

- [ ] Pre-service inspection
- [ ] 6-month initial inspection
- [ ] Annual external inspection
- [ ] 5-year internal inspection
- [ ] 10-year comprehensive inspection
- [ ] 20-year fitness-for-service evaluation

## COMPLIANCE DECLARATION

This tank design has been prepared in accordance with:

- SANS 10131:2004 - Above-ground storage tanks for petroleum products
- API 650 - Welded Steel Tanks for Oil Storage
- ISO 9001 - Quality Management Systems
- All referenced material and fabrication standards

**Professional Engineer Seal Required for Construction**

---
Report generated by Solprov Engineering Professional Design System
`
