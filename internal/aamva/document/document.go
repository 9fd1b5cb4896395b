// Package document models the in-memory form of a barcode payload: a
// header plus an ordered sequence of subfiles, each an ordered list of
// data elements. Instances are plain values owned by the caller; one
// document never outlives a single encode/decode/validate exchange.
package document

// Wire terminators emitted by Subfile.Body and consumed by the codec.
const (
	ElementTerminator byte = '\n'
	SegmentTerminator byte = '\r'
)

// Subfile type tags for the primary record kinds.
const (
	TypeDL = "DL"
	TypeID = "ID"
)

// SubfileKind classifies a subfile by its type tag.
type SubfileKind int

const (
	KindUnknown SubfileKind = iota
	KindPrimary
	KindJurisdiction
)

func (k SubfileKind) String() string {
	switch k {
	case KindPrimary:
		return "primary"
	case KindJurisdiction:
		return "jurisdiction"
	default:
		return "unknown"
	}
}

// Field is one data element: a registry code and its raw string value.
// Unknown marks elements decoded with a code the registry does not
// know; they are carried verbatim so nothing is lost on re-encode.
type Field struct {
	Code    string `json:"code"`
	Value   string `json:"value"`
	Unknown bool   `json:"unknown,omitempty"`
}

// Subfile is one tagged block of data elements. Field order is
// significant: it is the serialized byte order.
type Subfile struct {
	Type   string  `json:"type"`
	Fields []Field `json:"fields"`
}

// NewSubfile returns an empty subfile with the given type tag.
func NewSubfile(typeTag string) *Subfile {
	return &Subfile{Type: typeTag}
}

// Kind derives the subfile kind from the type tag. Jurisdiction
// extension subfiles use Z-prefixed tags.
func (s *Subfile) Kind() SubfileKind {
	switch {
	case s.Type == TypeDL || s.Type == TypeID:
		return KindPrimary
	case len(s.Type) == 2 && s.Type[0] == 'Z':
		return KindJurisdiction
	default:
		return KindUnknown
	}
}

// SetField sets code to value. An existing code is overwritten in
// place, keeping its first-seen position; a new code is appended.
func (s *Subfile) SetField(code, value string) {
	for i := range s.Fields {
		if s.Fields[i].Code == code {
			s.Fields[i].Value = value
			return
		}
	}
	s.Fields = append(s.Fields, Field{Code: code, Value: value})
}

// Get returns the value for code and whether it is present.
func (s *Subfile) Get(code string) (string, bool) {
	for _, f := range s.Fields {
		if f.Code == code {
			return f.Value, true
		}
	}
	return "", false
}

// Has reports whether code is present.
func (s *Subfile) Has(code string) bool {
	_, ok := s.Get(code)
	return ok
}

// Body serializes the subfile: type tag, then each element as
// code+value+LF, closed by one CR.
func (s *Subfile) Body() []byte {
	n := len(s.Type) + 1
	for _, f := range s.Fields {
		n += len(f.Code) + len(f.Value) + 1
	}
	out := make([]byte, 0, n)
	out = append(out, s.Type...)
	for _, f := range s.Fields {
		out = append(out, f.Code...)
		out = append(out, f.Value...)
		out = append(out, ElementTerminator)
	}
	out = append(out, SegmentTerminator)
	return out
}

// Document is a complete payload: header identification plus the
// ordered subfiles. The first subfile is the primary record.
type Document struct {
	IIN                 string     `json:"iin"`
	Version             int        `json:"version"`
	JurisdictionVersion int        `json:"jurisdiction_version"`
	Subfiles            []*Subfile `json:"subfiles"`
}

// AddSubfile appends a subfile, preserving order.
func (d *Document) AddSubfile(s *Subfile) {
	d.Subfiles = append(d.Subfiles, s)
}

// Records returns the subfiles in serialized order.
func (d *Document) Records() []*Subfile {
	return d.Subfiles
}

// Count returns the number of subfiles.
func (d *Document) Count() int {
	return len(d.Subfiles)
}

// Primary returns the first primary-kind subfile, if any.
func (d *Document) Primary() (*Subfile, bool) {
	for _, s := range d.Subfiles {
		if s.Kind() == KindPrimary {
			return s, true
		}
	}
	return nil, false
}
