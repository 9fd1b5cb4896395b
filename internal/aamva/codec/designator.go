package codec

import "fmt"

// Wire layout constants. Offsets and lengths are zero-padded decimal
// ASCII, which caps both at 9999.
const (
	compliancePrefix = "\n@\x1e"
	fileType         = "ANSI "

	prefixLen     = len(compliancePrefix)
	headerLen     = 17
	designatorLen = 10

	maxDecimal  = 9999
	maxSubfiles = 99

	// tagShift is the legacy offset quirk: designator offsets are
	// written 2 bytes short of the true body start because the body
	// re-emits the 2-byte type tag the table already names.
	tagShift = 2
)

// Header is the parsed fixed header block.
type Header struct {
	FileType            string
	IIN                 string
	Version             int
	JurisdictionVersion int
	Count               int
}

// Designator locates one subfile's bytes within the payload.
type Designator struct {
	Type   string
	Offset int
	Length int
}

func (d Designator) String() string {
	return fmt.Sprintf("%s @%04d +%04d", d.Type, d.Offset, d.Length)
}

func appendDesignator(buf []byte, d Designator) []byte {
	buf = append(buf, d.Type...)
	buf = append(buf, fmt.Sprintf("%04d%04d", d.Offset, d.Length)...)
	return buf
}

func parseDesignator(data []byte, at int) (Designator, error) {
	raw := data[at : at+designatorLen]
	offset, err := parseDecimal(raw[2:6])
	if err != nil {
		return Designator{}, decodeErr(at+2, ErrBadDesignator)
	}
	length, err := parseDecimal(raw[6:10])
	if err != nil {
		return Designator{}, decodeErr(at+6, ErrBadDesignator)
	}
	return Designator{Type: string(raw[0:2]), Offset: offset, Length: length}, nil
}

func parseDecimal(b []byte) (int, error) {
	n := 0
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("codec: non-decimal byte %q", c)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

func allDigits(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, c := range b {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
