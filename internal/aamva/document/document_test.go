package document

import (
	"bytes"
	"testing"
)

func TestSetFieldOverwritePreservesOrder(t *testing.T) {
	sf := NewSubfile(TypeDL)
	sf.SetField("DCS", "SMITH")
	sf.SetField("DAC", "JOHN")
	sf.SetField("DBB", "05151990")
	sf.SetField("DAC", "JANE")

	if len(sf.Fields) != 3 {
		t.Fatalf("got %d fields, want 3", len(sf.Fields))
	}
	if sf.Fields[1].Code != "DAC" || sf.Fields[1].Value != "JANE" {
		t.Fatalf("overwrite lost position: %+v", sf.Fields)
	}
	v, ok := sf.Get("DAC")
	if !ok || v != "JANE" {
		t.Fatalf("Get after overwrite: %q %v", v, ok)
	}
	if _, ok := sf.Get("DAQ"); ok {
		t.Fatalf("Get must report absence")
	}
}

func TestSubfileKind(t *testing.T) {
	cases := []struct {
		typeTag string
		want    SubfileKind
	}{
		{"DL", KindPrimary},
		{"ID", KindPrimary},
		{"ZC", KindJurisdiction},
		{"ZV", KindJurisdiction},
		{"QQ", KindUnknown},
		{"Z", KindUnknown},
	}
	for _, tc := range cases {
		if got := NewSubfile(tc.typeTag).Kind(); got != tc.want {
			t.Fatalf("kind(%q): got %v, want %v", tc.typeTag, got, tc.want)
		}
	}
}

func TestBodyLayout(t *testing.T) {
	sf := NewSubfile(TypeDL)
	sf.SetField("DCS", "SMITH")
	sf.SetField("DBB", "05151990")

	want := []byte("DLDCSSMITH\nDBB05151990\n\r")
	if got := sf.Body(); !bytes.Equal(got, want) {
		t.Fatalf("body:\n got %q\nwant %q", got, want)
	}
}

func TestPrimarySelection(t *testing.T) {
	doc := &Document{IIN: "636014"}
	doc.AddSubfile(NewSubfile("ZC"))
	if _, ok := doc.Primary(); ok {
		t.Fatalf("no primary subfile expected")
	}
	dl := NewSubfile(TypeDL)
	doc.AddSubfile(dl)
	got, ok := doc.Primary()
	if !ok || got != dl {
		t.Fatalf("Primary should find the DL subfile")
	}
	if doc.Count() != 2 {
		t.Fatalf("count: got %d, want 2", doc.Count())
	}
}
