package standards

import "testing"

func TestChecklist(t *testing.T) {
	reqs := Checklist()
	if len(reqs) != 17 {
		t.Fatalf("checklist has %d requirements, want 17", len(reqs))
	}

	// Every requirement cites a known standard and a clause.
	known := make(map[Standard]bool)
	for _, s := range All() {
		known[s] = true
	}
	for _, r := range reqs {
		if !known[r.Standard] {
			t.Errorf("requirement %s cites unknown standard %q", r.ID, r.Standard)
		}
		if r.ID == "" || r.Description == "" || r.VerificationMethod == "" {
			t.Errorf("requirement %+v has empty fields", r)
		}
	}
}

func TestChecklistFresh(t *testing.T) {
	a := Checklist()
	b := Checklist()
	a[0].Description = "mutated"
	if b[0].Description == "mutated" {
		t.Error("Checklist should return a fresh slice on each call")
	}
}

func TestByStandard(t *testing.T) {
	grouped := ByStandard(Checklist())

	wantCounts := map[Standard]int{
		SANS10131: 5,
		API650:    4,
		ISO9001:   4,
		SANS1431:  2,
		SANS9956:  1,
		SANS9606:  1,
	}
	for std, want := range wantCounts {
		if got := len(grouped[std]); got != want {
			t.Errorf("%s has %d requirements, want %d", std, got, want)
		}
	}

	// Clause order within a group follows citation order.
	sans := grouped[SANS10131]
	wantIDs := []string{"4.1", "4.2", "5.1", "6.1", "A.4"}
	for i, id := range wantIDs {
		if sans[i].ID != id {
			t.Errorf("SANS 10131 clause[%d] = %s, want %s", i, sans[i].ID, id)
		}
	}
}

func TestCovered(t *testing.T) {
	if got := Covered(Checklist()); got != 6 {
		t.Errorf("Covered = %d, want 6", got)
	}
	if got := Covered(nil); got != 0 {
		t.Errorf("Covered(nil) = %d, want 0", got)
	}
}

func TestInspectorRequired(t *testing.T) {
	for _, r := range Checklist() {
		if r.Standard == ISO9001 && r.InspectorRequired {
			t.Errorf("ISO 9001 clause %s should not require an inspector", r.ID)
		}
		if r.Standard == API650 && !r.InspectorRequired {
			t.Errorf("API 650 clause %s should require an inspector", r.ID)
		}
	}
}
