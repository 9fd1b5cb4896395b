// Package registry is the read-only catalog of data-element
// definitions and the issuer identification number table. The catalog
// is compiled in, built once, and shared across every encode, decode,
// and validate call without locking.
package registry

import (
	"fmt"
	"sort"
	"time"
)

// Kind classifies how a data element's value is validated.
type Kind int

const (
	KindText Kind = iota + 1
	KindEnum
	KindDate
	KindNumeric
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindEnum:
		return "enum"
	case KindDate:
		return "date"
	case KindNumeric:
		return "numeric"
	default:
		return "unknown"
	}
}

// Category groups data elements for documentation and tooling.
type Category int

const (
	CategoryIdentity Category = iota + 1
	CategoryPhysical
	CategoryAddress
	CategoryDates
	CategoryCompliance
)

func (c Category) String() string {
	switch c {
	case CategoryIdentity:
		return "identity"
	case CategoryPhysical:
		return "physical"
	case CategoryAddress:
		return "address"
	case CategoryDates:
		return "dates"
	case CategoryCompliance:
		return "compliance"
	default:
		return "unknown"
	}
}

// Definition describes one data element: its code, value constraints,
// and documentary category. Definitions are value types and never
// change after registry construction.
type Definition struct {
	Code     string
	Name     string
	Kind     Kind
	MinLen   int
	MaxLen   int
	Enum     []string
	Category Category
}

// Violation is one rule the value breaks. A value may break several.
type Violation struct {
	Code    string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Code, v.Message)
}

// Jurisdiction is the issuing authority behind an IIN.
type Jurisdiction struct {
	Abbrev string
	Name   string
}

// Registry is the read-only catalog of data-element definitions plus
// the IIN table. Built once, then shared freely across goroutines.
type Registry struct {
	defs        map[string]Definition
	codeWidths  []int
	mandatoryDL []string
	mandatoryID []string
	iins        map[string]Jurisdiction
}

// fallbackCodeWidth is used to split chunks whose code is not in the
// registry. Every standard data element uses a 3-character code.
const fallbackCodeWidth = 3

// Default builds the registry from the standard data-element catalog
// and the AAMVA IIN table.
func Default() *Registry {
	r, err := build(standardDefinitions)
	if err != nil {
		// The compiled-in catalog is checked by tests; a bad entry is
		// a programming error, not a runtime condition.
		panic(err)
	}
	return r
}

// WithDefinitions returns a new registry containing the receiver's
// definitions plus defs. The receiver is not modified. A definition
// whose code is already present replaces the standard one.
func (r *Registry) WithDefinitions(defs ...Definition) (*Registry, error) {
	merged := make([]Definition, 0, len(r.defs)+len(defs))
	for _, d := range r.defs {
		merged = append(merged, d)
	}
	merged = append(merged, defs...)
	nr, err := build(merged)
	if err != nil {
		return nil, err
	}
	nr.mandatoryDL = r.mandatoryDL
	nr.mandatoryID = r.mandatoryID
	return nr, nil
}

func build(defs []Definition) (*Registry, error) {
	r := &Registry{
		defs:        make(map[string]Definition, len(defs)),
		mandatoryDL: mandatoryDL,
		mandatoryID: mandatoryID,
		iins:        iinTable,
	}
	widths := make(map[int]struct{})
	for _, d := range defs {
		if err := checkDefinition(d); err != nil {
			return nil, err
		}
		r.defs[d.Code] = d
		widths[len(d.Code)] = struct{}{}
	}
	for w := range widths {
		r.codeWidths = append(r.codeWidths, w)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(r.codeWidths)))
	return r, nil
}

func checkDefinition(d Definition) error {
	if len(d.Code) < 2 || len(d.Code) > 4 {
		return fmt.Errorf("registry: definition %q: code must be 2-4 characters", d.Code)
	}
	if d.Name == "" {
		return fmt.Errorf("registry: definition %q: missing name", d.Code)
	}
	if d.MinLen < 0 || d.MaxLen < d.MinLen {
		return fmt.Errorf("registry: definition %q: bad length bounds %d..%d", d.Code, d.MinLen, d.MaxLen)
	}
	if d.Kind == KindEnum && len(d.Enum) == 0 {
		return fmt.Errorf("registry: definition %q: enum kind without values", d.Code)
	}
	return nil
}

// Lookup returns the definition for code. The second result reports
// whether the code is known; unknown codes are not an error here, the
// validator decides what to do with them.
func (r *Registry) Lookup(code string) (Definition, bool) {
	d, ok := r.defs[code]
	return d, ok
}

// Codes returns every registered code, sorted.
func (r *Registry) Codes() []string {
	out := make([]string, 0, len(r.defs))
	for c := range r.defs {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Mandatory returns the ordered mandatory code set for a subfile type
// tag. Jurisdiction subfiles carry no mandatory elements.
func (r *Registry) Mandatory(subfileType string) []string {
	switch subfileType {
	case "DL":
		return r.mandatoryDL
	case "ID":
		return r.mandatoryID
	default:
		return nil
	}
}

// SplitCode resolves the data-element code at the head of a chunk,
// trying registered code widths longest first. Unknown codes fall back
// to the standard 3-character width so their value survives decoding.
func (r *Registry) SplitCode(chunk string) (code, value string, known bool) {
	for _, w := range r.codeWidths {
		if len(chunk) < w {
			continue
		}
		if _, ok := r.defs[chunk[:w]]; ok {
			return chunk[:w], chunk[w:], true
		}
	}
	w := fallbackCodeWidth
	if len(chunk) < w {
		w = len(chunk)
	}
	return chunk[:w], chunk[w:], false
}

// ValidateValue checks value against the definition for code. Unknown
// codes produce no violations; the validator reports those separately.
func (r *Registry) ValidateValue(code, value string) []Violation {
	d, ok := r.defs[code]
	if !ok {
		return nil
	}
	var out []Violation
	if len(value) < d.MinLen {
		out = append(out, Violation{code, fmt.Sprintf("value %q shorter than minimum length %d", value, d.MinLen)})
	}
	if len(value) > d.MaxLen {
		out = append(out, Violation{code, fmt.Sprintf("value %q longer than maximum length %d", value, d.MaxLen)})
	}
	switch d.Kind {
	case KindText:
		if !printableASCII(value) {
			out = append(out, Violation{code, "value contains non-printable characters"})
		}
	case KindNumeric:
		if !allDigits(value) {
			out = append(out, Violation{code, fmt.Sprintf("value %q is not numeric", value)})
		}
	case KindDate:
		if _, err := ParseDate(value); err != nil {
			out = append(out, Violation{code, fmt.Sprintf("value %q is not a valid MMDDCCYY date", value)})
		}
	case KindEnum:
		if !contains(d.Enum, value) {
			out = append(out, Violation{code, fmt.Sprintf("value %q not in allowed set %v", value, d.Enum)})
		}
	}
	return out
}

// Jurisdiction resolves an issuer identification number.
func (r *Registry) Jurisdiction(iin string) (Jurisdiction, bool) {
	j, ok := r.iins[iin]
	return j, ok
}

// dateLayout is the MMDDCCYY element encoding used by US issuers.
const dateLayout = "01022006"

// ParseDate parses a MMDDCCYY data-element value.
func ParseDate(value string) (time.Time, error) {
	if len(value) != 8 {
		return time.Time{}, fmt.Errorf("registry: date %q: want 8 digits", value)
	}
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("registry: date %q: %w", value, err)
	}
	return t, nil
}

// FormatDate renders t as a MMDDCCYY data-element value.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

func printableASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return false
		}
	}
	return true
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
