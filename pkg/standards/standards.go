// Package standards holds the safety-standard tables that govern the tank
// design: the applicable standards themselves and the per-standard
// requirement checklist used for compliance reporting.
//
// The tables are fixed engineering data, not computed values. Requirement
// IDs refer to clause numbers in the published standards (e.g. SANS
// 10131:2004 clause 4.1). Nothing in this package derives or verifies
// compliance; it only describes what must be verified and by whom.
package standards

// Standard identifies a published engineering standard applicable to the
// tank design.
type Standard string

// Applicable standards.
const (
	SANS10131 Standard = "SANS 10131:2004"        // Above-ground storage tanks for petroleum products
	API650    Standard = "API 650"                // Welded Steel Tanks for Oil Storage
	API653    Standard = "API 653"                // Tank Inspection, Repair, Alteration, and Reconstruction
	ASMEVIII  Standard = "ASME BPVC Section VIII" // Pressure Vessels
	ISO9001   Standard = "ISO 9001"               // Quality Management Systems
	SANS1431  Standard = "SANS 1431"              // Carbon Steel Plate Specifications
	SANS62    Standard = "SANS 62-1"              // Steel Pipes and Fittings
	SANS9956  Standard = "SANS 9956-3"            // Welding Procedures
	SANS9606  Standard = "SANS 9606-1"            // Welder Qualifications
	ISO8501   Standard = "ISO 8501-1"             // Surface Preparation Standards
)

// All lists every standard referenced by the design, in citation order.
func All() []Standard {
	return []Standard{
		SANS10131, API650, API653, ASMEVIII, ISO9001,
		SANS1431, SANS62, SANS9956, SANS9606, ISO8501,
	}
}

// Requirement is a single verifiable compliance requirement drawn from one
// of the applicable standards.
type Requirement struct {
	Standard           Standard // Source standard
	ID                 string   // Clause number within the standard
	Description        string   // What must be satisfied
	VerificationMethod string   // How compliance is demonstrated
	InspectorRequired  bool     // Whether an independent inspector must sign off
}

// Checklist returns the full compliance requirement matrix for the tank
// design. The slice is freshly allocated on each call; callers may reorder
// or filter it freely.
func Checklist() []Requirement {
	return []Requirement{
		// SANS 10131:2004 site and construction requirements.
		{SANS10131, "4.1", "Bund wall construction and capacity", "Visual inspection and volume calculation", true},
		{SANS10131, "4.2", "Safety distances per Tables 1, 2, 3", "Distance measurement and verification", true},
		{SANS10131, "5.1", "Fire resistance requirements", "Fire authority consultation", true},
		{SANS10131, "6.1", "Venting requirements per API 2000", "Vent sizing calculation", true},
		{SANS10131, "A.4", "Pressure testing procedures", "Hydrostatic test performance", true},

		// API 650 shell and welding design requirements.
		{API650, "5.3", "Shell plate thickness calculation", "Stress analysis verification", true},
		{API650, "5.7", "Shell joint requirements", "Welding procedure qualification", true},
		{API650, "5.10", "Nozzle reinforcement", "Reinforcement area calculation", true},
		{API650, "8.1", "Welding requirements", "Welder qualification verification", true},

		// ISO 9001 quality system requirements.
		{ISO9001, "7.1", "Quality planning", "Quality plan documentation", false},
		{ISO9001, "7.5", "Documented information control", "Document control procedures", false},
		{ISO9001, "8.1", "Operational planning and control", "Process control verification", false},
		{ISO9001, "8.7", "Control of nonconforming outputs", "NCR system implementation", false},

		// Material certification requirements.
		{SANS1431, "6.1", "Chemical composition requirements", "Mill test certificate verification", true},
		{SANS1431, "7.1", "Mechanical property requirements", "Tensile test verification", true},

		// Welding qualification requirements.
		{SANS9956, "5.1", "Welding procedure specification", "WPS qualification and approval", true},
		{SANS9606, "4.1", "Welder qualification requirements", "Welder certification verification", true},
	}
}

// ByStandard groups requirements by their source standard, preserving the
// checklist's citation order within each group.
func ByStandard(reqs []Requirement) map[Standard][]Requirement {
	grouped := make(map[Standard][]Requirement)
	for _, r := range reqs {
		grouped[r.Standard] = append(grouped[r.Standard], r)
	}
	return grouped
}

// Covered counts the distinct standards represented in reqs.
func Covered(reqs []Requirement) int {
	seen := make(map[Standard]bool)
	for _, r := range reqs {
		seen[r.Standard] = true
	}
	return len(seen)
}
