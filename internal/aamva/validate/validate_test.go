package validate

import (
	"errors"
	"testing"

	"github.com/drennick/aamvactl/internal/aamva/document"
	"github.com/drennick/aamvactl/internal/aamva/registry"
	"github.com/drennick/aamvactl/internal/testutil/testlog"
)

// completeDL builds a DL subfile carrying every mandatory element with
// values that pass the registry rules.
func completeDL() *document.Subfile {
	sf := document.NewSubfile(document.TypeDL)
	for code, value := range map[string]string{
		"DCA": "C", "DCB": "NONE", "DCD": "NONE",
		"DBA": "06102028", "DCS": "SMITH", "DAC": "JOHN", "DAD": "Q",
		"DBD": "06102020", "DBB": "05151990", "DBC": "1",
		"DAY": "BRO", "DAU": "069 in",
		"DAG": "123 MAIN ST", "DAI": "SACRAMENTO", "DAJ": "CA", "DAK": "95811",
		"DAQ": "D1234567", "DCF": "ABC123XYZ", "DCG": "USA",
		"DDE": "N", "DDF": "N", "DDG": "N",
	} {
		sf.SetField(code, value)
	}
	return sf
}

func completeDoc() *document.Document {
	return &document.Document{
		IIN:      "636014",
		Version:  9,
		Subfiles: []*document.Subfile{completeDL()},
	}
}

func findingsFor(findings []Finding, code string) []Finding {
	var out []Finding
	for _, f := range findings {
		if f.Code == code {
			out = append(out, f)
		}
	}
	return out
}

func TestCompleteDocumentIsClean(t *testing.T) {
	got := Validate(completeDoc(), registry.Default(), DefaultPolicy())
	if len(got) != 0 {
		t.Fatalf("expected no findings, got: %v", got)
	}
}

func TestMissingMandatoryIsFatal(t *testing.T) {
	reg := registry.Default()
	sf := document.NewSubfile(document.TypeDL)
	sf.SetField("DCS", "SMITH")
	sf.SetField("DBB", "05151990")
	doc := &document.Document{IIN: "636014", Subfiles: []*document.Subfile{sf}}

	findings := Validate(doc, reg, DefaultPolicy())
	if !HasFatal(findings) {
		t.Fatalf("expected fatal findings, got: %v", findings)
	}
	missing := findingsFor(findings, "DAQ")
	if len(missing) != 1 || missing[0].Severity != SeverityFatal {
		t.Fatalf("DAQ absence should be one fatal finding: %v", missing)
	}
	// Present fields do not get missing-mandatory findings.
	if f := findingsFor(findings, "DCS"); len(f) != 0 {
		t.Fatalf("DCS is present, got findings: %v", f)
	}
}

func TestInvalidValueIsFatal(t *testing.T) {
	doc := completeDoc()
	doc.Subfiles[0].SetField("DBC", "7")
	doc.Subfiles[0].SetField("DBB", "13311990")

	findings := Validate(doc, registry.Default(), DefaultPolicy())
	if got := findingsFor(findings, "DBC"); len(got) != 1 || got[0].Severity != SeverityFatal {
		t.Fatalf("bad enum: %v", got)
	}
	if got := findingsFor(findings, "DBB"); len(got) != 1 || got[0].Severity != SeverityFatal {
		t.Fatalf("bad date should be exactly the value finding, no cross-check noise: %v", got)
	}
}

func TestDateInconsistenciesAreWarnings(t *testing.T) {
	reg := registry.Default()

	doc := completeDoc()
	doc.Subfiles[0].SetField("DBB", "06111990")
	doc.Subfiles[0].SetField("DBD", "05151990")
	findings := Validate(doc, reg, DefaultPolicy())
	got := findingsFor(findings, "DBB")
	if len(got) != 1 || got[0].Severity != SeverityWarning {
		t.Fatalf("birth after issue: %v", got)
	}

	doc = completeDoc()
	doc.Subfiles[0].SetField("DBA", "06092020")
	findings = Validate(doc, reg, DefaultPolicy())
	got = findingsFor(findings, "DBA")
	if len(got) != 1 || got[0].Severity != SeverityWarning {
		t.Fatalf("expiration before issue: %v", got)
	}

	doc = completeDoc()
	doc.Subfiles[0].SetField("DBA", "06102040")
	findings = Validate(doc, reg, Policy{MaxValidityYears: 8})
	got = findingsFor(findings, "DBA")
	if len(got) != 1 || got[0].Severity != SeverityWarning {
		t.Fatalf("validity ceiling: %v", got)
	}
	if HasFatal(findings) {
		t.Fatalf("date inconsistencies must not be fatal: %v", findings)
	}
}

func TestJurisdictionChecksAreWarnings(t *testing.T) {
	reg := registry.Default()

	doc := completeDoc()
	doc.Subfiles[0].SetField("DAJ", "TX")
	findings := Validate(doc, reg, DefaultPolicy())
	got := findingsFor(findings, "DAJ")
	if len(got) != 1 || got[0].Severity != SeverityWarning {
		t.Fatalf("issuer/jurisdiction mismatch: %v", got)
	}

	doc = completeDoc()
	doc.IIN = "999999"
	findings = Validate(doc, reg, DefaultPolicy())
	var warned bool
	for _, f := range findings {
		if f.Severity == SeverityWarning {
			warned = true
		}
		if f.Severity == SeverityFatal {
			t.Fatalf("unknown IIN must not be fatal: %v", f)
		}
	}
	if !warned {
		t.Fatalf("unknown IIN should warn: %v", findings)
	}
}

func TestUnrecognizedCodesAreInformational(t *testing.T) {
	doc := completeDoc()
	doc.Subfiles[0].SetField("ZQX", "MYSTERY")

	findings := Validate(doc, registry.Default(), DefaultPolicy())
	got := findingsFor(findings, "ZQX")
	if len(got) != 1 || got[0].Severity != SeverityInfo {
		t.Fatalf("unrecognized code: %v", got)
	}
	if HasFatal(findings) {
		t.Fatalf("unrecognized codes must not be fatal: %v", findings)
	}
}

func TestStrictModeCollectsBeforeFailing(t *testing.T) {
	testlog.Start(t)
	reg := registry.Default()
	sf := document.NewSubfile(document.TypeDL)
	sf.SetField("DCS", "SMITH")
	sf.SetField("DBC", "7")
	doc := &document.Document{IIN: "636014", Subfiles: []*document.Subfile{sf}}

	findings, err := ValidateStrict(doc, reg, DefaultPolicy())
	if err == nil {
		t.Fatalf("expected strict failure")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want *ValidationError, got %T", err)
	}
	if len(ve.Findings) < 2 {
		t.Fatalf("strict error should carry every fatal finding: %v", ve.Findings)
	}
	if len(findings) < len(ve.Findings) {
		t.Fatalf("full findings list must still be returned")
	}

	// Non-strict never errors on the same document.
	if got := Validate(doc, reg, DefaultPolicy()); !HasFatal(got) {
		t.Fatalf("sanity: document should have fatal findings")
	}
}

func TestEmptyDocument(t *testing.T) {
	findings := Validate(&document.Document{IIN: "636014"}, registry.Default(), DefaultPolicy())
	if len(findings) != 1 || !findings[0].IsFatal() {
		t.Fatalf("empty document: %v", findings)
	}
}
