package docgen

// SafetyChecklist renders the fabrication-to-commissioning safety checklist.
func (g *Generator) SafetyChecklist() ([]byte, error) {
	return render("safety_checklist", safetyChecklistTemplate, g.data())
}

const safetyChecklistTemplate = `# TANK DESIGN SAFETY CHECKLIST

## {{comma .Spec.ActualLiters}}L Above-Ground Petroleum Storage Tank

**Date:** {{.Date.Format "2006-01-02"}}
**Inspector:** ________________________
**Project:** ________________________

## PRE-FABRICATION CHECKLIST

### Material Verification

- [ ] Material certificates reviewed and approved
- [ ] Chemical composition verified per SANS 1431
- [ ] Mechanical properties confirmed
- [ ] Heat treatment certificates (if required)
- [ ] Material traceability established

### Design Verification

- [ ] Calculations reviewed by Professional Engineer
- [ ] Shell thickness adequate for design pressure ({{f1 .Spec.ShellThicknessMM}} mm at {{f1 .Spec.DesignPressurePSI}} psig)
- [ ] Nozzle reinforcement calculations verified
- [ ] Support design calculations approved
- [ ] Lifting lug design calculations verified
- [ ] Thermal stress analysis completed (if applicable)

### Welding Preparation

- [ ] Welding procedures qualified per SANS 9956-3
- [ ] Welder qualifications current per SANS 9606-1
- [ ] Base materials compatibility verified
- [ ] Consumables specification approved
- [ ] Heat treatment requirements defined

## FABRICATION CHECKLIST

### Shell Assembly

- [ ] Plates inspected for defects
- [ ] Fit-up tolerances within specification
- [ ] Tack welding performed properly
- [ ] Progressive dimensional checks completed
- [ ] Welding sequence followed

### Dished End Installation

- [ ] End dimensions verified with template
- [ ] Knuckle radius >= 50 mm verified ({{f0 .Spec.KnuckleRadiusMM}} mm specified)
- [ ] Crown radius between D and 1.5 D confirmed ({{f0 .Spec.CrownRadiusMM}} mm specified)
- [ ] End-to-shell fit-up acceptable
- [ ] Welding completed per procedure

### Nozzle Installation
{{range .Nozzles}}
- [ ] {{.Name}} ({{.Service}}, NB {{f0 .BoreMM}}) located and oriented per drawing{{end}}
- [ ] Reinforcement plates installed correctly
- [ ] Flange facing and bolt holes correct
- [ ] Internal projection minimized

### Support Installation

- [ ] Saddle position per specification ({{f0 .Spec.SaddlePositionMM}} mm from center)
- [ ] Contact angle 120° verified
- [ ] Doubling plates installed correctly
- [ ] Anchor bolt holes positioned accurately
- [ ] Foundation interface prepared

### Final Assembly

- [ ] All welds completed per specification
- [ ] Internal/external grinding completed
- [ ] Nameplate installed per SANS 10131:2004
- [ ] Lifting lugs positioned correctly
- [ ] All openings properly closed

## INSPECTION AND TESTING CHECKLIST

### Visual Inspection

- [ ] All welds visually inspected (100%)
- [ ] Surface defects identified and repaired
- [ ] Dimensional tolerances verified
- [ ] Internal cleanliness confirmed
- [ ] External finish acceptable

### Non-Destructive Testing

- [ ] Radiographic testing completed (critical welds)
- [ ] Magnetic particle testing (as required)
- [ ] Liquid penetrant testing (as required)
- [ ] Ultrasonic testing (thick sections)
- [ ] Test reports reviewed and approved

### Pressure Testing

- [ ] Test equipment calibrated
- [ ] Test medium selected (water preferred)
- [ ] Test pressure = 1.5 x design pressure ({{f2 .Spec.HydroTestPSI}} psig)
- [ ] Hold time: minimum 30 minutes
- [ ] No visible distortion or leakage
- [ ] Pressure test certificate issued

### Quality Documentation

- [ ] Material test certificates compiled
- [ ] Welding records completed
- [ ] NDT reports included
- [ ] Pressure test certificate
- [ ] Dimensional report
- [ ] Final inspection report

## INSTALLATION CHECKLIST

### Site Preparation

- [ ] Foundation design approved
- [ ] Foundation constructed per specification
- [ ] Level and alignment within tolerance
- [ ] Drainage provisions adequate
- [ ] Access roads suitable for delivery

### Tank Installation

- [ ] Lifting plan reviewed and approved
- [ ] Crane capacity and certification verified (empty weight {{f0 .Spec.EmptyWeightKG}} kg)
- [ ] Tank positioned correctly
- [ ] Support contact verified
- [ ] Anchor bolts installed and torqued

### Piping and Instrumentation

- [ ] Piping stress analysis reviewed
- [ ] Flexible connections provided
- [ ] Valve specifications verified
- [ ] Instrumentation calibrated
- [ ] Electrical grounding installed

### Safety Systems

- [ ] Bund wall capacity >= 110% tank volume
- [ ] Bund wall drainage system operational
- [ ] Fire protection systems installed
- [ ] Emergency ventilation adequate
- [ ] Safety signage installed

## REGULATORY COMPLIANCE CHECKLIST

### Permits and Approvals

- [ ] Municipal building approval obtained
- [ ] Environmental authorization issued
- [ ] Fire department consultation completed
- [ ] Occupational health approval obtained
- [ ] Insurance notification submitted

### Standards Compliance

- [ ] SANS 10131:2004 requirements verified
- [ ] API 650 requirements confirmed
- [ ] Local bylaws compliance checked
- [ ] Environmental regulations satisfied
- [ ] Safety regulations compliance verified

### Documentation Package

- [ ] Design calculations
- [ ] Material certificates
- [ ] Fabrication records
- [ ] Test certificates
- [ ] Installation records
- [ ] Operator manual
- [ ] Maintenance schedule
- [ ] Emergency procedures

## COMMISSIONING CHECKLIST

### System Testing

- [ ] Leak test completed successfully
- [ ] Instrumentation calibration verified
- [ ] Alarm system testing completed
- [ ] Safety system functionality confirmed
- [ ] Emergency shutdown testing completed

### Training and Handover

- [ ] Operator training completed
- [ ] Maintenance personnel trained
- [ ] Documentation package handed over
- [ ] Emergency contact list provided
- [ ] Warranty conditions explained

### Final Certification

- [ ] Professional Engineer sign-off
- [ ] Quality Manager approval
- [ ] Client acceptance obtained
- [ ] Certificate of Completion issued
- [ ] Maintenance schedule activated

## SIGNATURE SECTION

**Design Engineer:** _________________ Date: _________
Pr.Eng Registration: _________________ SAIME Member

**Quality Manager:** _________________ Date: _________
Certification: _____________________ SAQI Member

**Client Representative:** ___________ Date: _________
Position: _________________________

**Inspection Authority:** ___________ Date: _________
Certification: ____________________

---
Checklist prepared by Solprov Engineering (Pty) Ltd
`
