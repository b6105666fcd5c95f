package errors

import (
	"strings"
	"testing"
)

func TestValidateDocumentName(t *testing.T) {
	valid := []string{
		"analysis_report",
		"safety-checklist",
		"TECHNICAL_SPECIFICATION.md",
	}
	for _, name := range valid {
		if err := ValidateDocumentName(name); err != nil {
			t.Errorf("ValidateDocumentName(%q) = %v, want nil", name, err)
		}
	}

	invalid := []string{
		"",
		strings.Repeat("a", 129),
		"docs/report",
		"docs\\report",
		"../etc/passwd",
		"report\x00",
		"report\n",
	}
	for _, name := range invalid {
		err := ValidateDocumentName(name)
		if err == nil {
			t.Errorf("ValidateDocumentName(%q) should fail", name)
			continue
		}
		if GetCode(err) != ErrCodeInvalidDocument {
			t.Errorf("ValidateDocumentName(%q) code = %s", name, GetCode(err))
		}
	}
}

func TestValidateOutputPath(t *testing.T) {
	valid := []string{
		"tank.stp",
		"./output/docs",
		"/tmp/tankdesign/model.stp",
	}
	for _, p := range valid {
		if err := ValidateOutputPath(p); err != nil {
			t.Errorf("ValidateOutputPath(%q) = %v, want nil", p, err)
		}
	}

	invalid := []string{
		"",
		strings.Repeat("a", 501),
		"out\x00put",
		"out\nput",
	}
	for _, p := range invalid {
		err := ValidateOutputPath(p)
		if err == nil {
			t.Errorf("ValidateOutputPath(%q) should fail", p)
			continue
		}
		if GetCode(err) != ErrCodeInvalidPath {
			t.Errorf("ValidateOutputPath(%q) code = %s", p, GetCode(err))
		}
	}
}
