package registry

import (
	"testing"
)

func TestLookupKnownAndUnknown(t *testing.T) {
	r := Default()
	def, ok := r.Lookup("DCS")
	if !ok {
		t.Fatalf("expected DCS to be registered")
	}
	if def.Name != "Customer Family Name" || def.Kind != KindText {
		t.Fatalf("unexpected DCS definition: %+v", def)
	}
	if _, ok := r.Lookup("XXX"); ok {
		t.Fatalf("XXX should not be registered")
	}
}

func TestMandatorySets(t *testing.T) {
	r := Default()
	dl := r.Mandatory("DL")
	id := r.Mandatory("ID")
	if len(dl) != 22 {
		t.Fatalf("DL mandatory set: got %d codes, want 22", len(dl))
	}
	if len(id) != 19 {
		t.Fatalf("ID mandatory set: got %d codes, want 19", len(id))
	}
	if dl[0] != "DCA" {
		t.Fatalf("DL mandatory order: first code %q, want DCA", dl[0])
	}
	for _, code := range id {
		if code == "DCA" || code == "DCB" || code == "DCD" {
			t.Fatalf("ID mandatory set must not carry driving-privilege code %s", code)
		}
	}
	if r.Mandatory("ZC") != nil {
		t.Fatalf("jurisdiction subfiles have no mandatory elements")
	}
	// Every mandatory code must resolve to a definition.
	for _, code := range append(append([]string{}, dl...), id...) {
		if _, ok := r.Lookup(code); !ok {
			t.Fatalf("mandatory code %s has no definition", code)
		}
	}
}

func TestValidateValue(t *testing.T) {
	r := Default()
	cases := []struct {
		name       string
		code       string
		value      string
		violations int
	}{
		{"valid text", "DCS", "SMITH", 0},
		{"text too long", "DAJ", "CAL", 1},
		{"text too short", "DCS", "", 1},
		{"valid enum", "DBC", "1", 0},
		{"bad enum", "DBC", "3", 1},
		{"valid eye color", "DAY", "BRO", 0},
		{"bad eye color", "DAY", "XYZ", 1},
		{"valid date", "DBB", "05151990", 0},
		{"bad date month", "DBB", "13151990", 1},
		{"short date", "DBB", "551990", 2},
		{"valid numeric", "DAW", "180", 0},
		{"bad numeric", "DAW", "18a", 1},
		{"unknown code ignored", "XXX", "anything", 0},
		{"control chars rejected", "DAG", "123 MAIN\x01ST", 1},
	}
	for _, tc := range cases {
		got := r.ValidateValue(tc.code, tc.value)
		if len(got) != tc.violations {
			t.Fatalf("%s: got %d violations (%v), want %d", tc.name, len(got), got, tc.violations)
		}
	}
}

func TestSplitCode(t *testing.T) {
	r := Default()
	code, value, known := r.SplitCode("DCSSMITH")
	if code != "DCS" || value != "SMITH" || !known {
		t.Fatalf("split known: got %q %q %v", code, value, known)
	}
	code, value, known = r.SplitCode("ZZAFOO")
	if code != "ZZA" || value != "FOO" || known {
		t.Fatalf("split unknown falls back to width 3: got %q %q %v", code, value, known)
	}
	code, value, known = r.SplitCode("ZQ")
	if code != "ZQ" || value != "" || known {
		t.Fatalf("split short chunk: got %q %q %v", code, value, known)
	}
}

func TestWithDefinitions(t *testing.T) {
	r := Default()
	ext := Definition{
		Code: "ZCA", Name: "Court Restriction", Kind: KindText,
		MinLen: 0, MaxLen: 10, Category: CategoryCompliance,
	}
	nr, err := r.WithDefinitions(ext)
	if err != nil {
		t.Fatalf("merge: %v", err)
	}
	if _, ok := nr.Lookup("ZCA"); !ok {
		t.Fatalf("merged registry missing ZCA")
	}
	if _, ok := r.Lookup("ZCA"); ok {
		t.Fatalf("WithDefinitions must not mutate the receiver")
	}
	code, value, known := nr.SplitCode("ZCANONE")
	if code != "ZCA" || value != "NONE" || !known {
		t.Fatalf("merged split: got %q %q %v", code, value, known)
	}
}

func TestWithDefinitionsRejectsBadShape(t *testing.T) {
	r := Default()
	if _, err := r.WithDefinitions(Definition{Code: "Z", Name: "x", Kind: KindText, MaxLen: 1}); err == nil {
		t.Fatalf("expected error for 1-character code")
	}
	if _, err := r.WithDefinitions(Definition{Code: "ZCB", Name: "x", Kind: KindEnum, MaxLen: 1}); err == nil {
		t.Fatalf("expected error for enum kind without values")
	}
	if _, err := r.WithDefinitions(Definition{Code: "ZCC", Name: "x", Kind: KindText, MinLen: 5, MaxLen: 1}); err == nil {
		t.Fatalf("expected error for min > max")
	}
}

func TestJurisdiction(t *testing.T) {
	r := Default()
	j, ok := r.Jurisdiction("636014")
	if !ok || j.Abbrev != "CA" {
		t.Fatalf("636014: got %+v %v, want CA", j, ok)
	}
	if _, ok := r.Jurisdiction("000000"); ok {
		t.Fatalf("000000 should be unknown")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("05151990")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if d.Year() != 1990 || int(d.Month()) != 5 || d.Day() != 15 {
		t.Fatalf("parsed wrong date: %v", d)
	}
	if FormatDate(d) != "05151990" {
		t.Fatalf("format round trip: %q", FormatDate(d))
	}
	for _, bad := range []string{"", "0515199", "02301990", "00151990", "0515x990"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestDefaultCatalogIsWellFormed(t *testing.T) {
	r := Default()
	for _, code := range r.Codes() {
		def, _ := r.Lookup(code)
		if def.Kind == KindDate && (def.MinLen != 8 || def.MaxLen != 8) {
			t.Fatalf("%s: date elements are 8 digits, got %d..%d", code, def.MinLen, def.MaxLen)
		}
		for _, v := range def.Enum {
			if len(v) < def.MinLen || len(v) > def.MaxLen {
				t.Fatalf("%s: enum value %q outside length bounds", code, v)
			}
		}
	}
}
