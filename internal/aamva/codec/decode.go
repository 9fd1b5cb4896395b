package codec

import (
	"bytes"

	"github.com/rs/zerolog/log"

	"github.com/drennick/aamvactl/internal/aamva/document"
	"github.com/drennick/aamvactl/internal/aamva/registry"
)

// Decode parses a barcode payload back into a document. It fails with
// *DecodeError only on structural violations: bad compliance prefix,
// short or malformed header, a declared subfile count the payload
// cannot hold, or a designator pointing outside the payload. Unknown
// element codes, a missing trailing segment terminator, and trailing
// bytes after the last subfile are tolerated.
func Decode(data []byte, reg *registry.Registry) (*document.Document, error) {
	hdr, err := DecodeHeader(data)
	if err != nil {
		return nil, err
	}

	designators, err := DecodeDesignators(data, hdr.Count)
	if err != nil {
		return nil, err
	}

	doc := &document.Document{
		IIN:                 hdr.IIN,
		Version:             hdr.Version,
		JurisdictionVersion: hdr.JurisdictionVersion,
	}
	for _, des := range designators {
		sf, err := decodeSubfile(data, des, reg)
		if err != nil {
			return nil, err
		}
		doc.AddSubfile(sf)
	}

	log.Debug().
		Str("iin", doc.IIN).
		Int("subfiles", doc.Count()).
		Msg("codec.Decode ok")
	return doc, nil
}

// DecodeHeader parses the compliance prefix and the fixed header block.
func DecodeHeader(data []byte) (Header, error) {
	if len(data) < prefixLen || !bytes.HasPrefix(data, []byte(compliancePrefix)) {
		return Header{}, decodeErr(0, ErrBadPrefix)
	}
	if len(data) < prefixLen+headerLen {
		return Header{}, decodeErr(prefixLen, ErrShortHeader)
	}
	raw := data[prefixLen : prefixLen+headerLen]

	hdr := Header{FileType: string(raw[0:5]), IIN: string(raw[5:11])}
	if hdr.FileType != fileType {
		// Some issuers stamp a nonstandard tag; the rest of the header
		// is still fixed-width, so keep going.
		log.Debug().Str("file_type", hdr.FileType).Msg("codec.DecodeHeader nonstandard file type")
	}
	if !allDigits(raw[5:11]) {
		return Header{}, decodeErr(prefixLen+5, ErrBadIIN)
	}

	var err error
	if hdr.Version, err = parseDecimal(raw[11:13]); err != nil {
		return Header{}, decodeErr(prefixLen+11, ErrBadHeader)
	}
	if hdr.JurisdictionVersion, err = parseDecimal(raw[13:15]); err != nil {
		return Header{}, decodeErr(prefixLen+13, ErrBadHeader)
	}
	if hdr.Count, err = parseDecimal(raw[15:17]); err != nil {
		return Header{}, decodeErr(prefixLen+15, ErrBadCount)
	}
	return hdr, nil
}

// DecodeDesignators parses count consecutive designators following the
// header. It fails when the payload cannot hold that many.
func DecodeDesignators(data []byte, count int) ([]Designator, error) {
	tableEnd := prefixLen + headerLen + designatorLen*count
	if len(data) < tableEnd {
		return nil, decodeErr(prefixLen+headerLen, ErrBadCount)
	}
	out := make([]Designator, 0, count)
	for i := 0; i < count; i++ {
		des, err := parseDesignator(data, prefixLen+headerLen+designatorLen*i)
		if err != nil {
			return nil, err
		}
		out = append(out, des)
	}
	return out, nil
}

func decodeSubfile(data []byte, des Designator, reg *registry.Registry) (*document.Subfile, error) {
	start, ok := resolveStart(data, des)
	if !ok {
		return nil, decodeErr(des.Offset, ErrBounds)
	}

	body := data[start : start+des.Length]
	sf := document.NewSubfile(des.Type)
	if len(body) <= 2 {
		return sf, nil
	}
	// The body re-emits the 2-byte type tag named by the designator.
	body = body[2:]
	if body[len(body)-1] == document.SegmentTerminator {
		body = body[:len(body)-1]
	}

	for _, chunk := range bytes.Split(body, []byte{document.ElementTerminator}) {
		if len(chunk) == 0 {
			continue
		}
		code, value, known := reg.SplitCode(string(chunk))
		setRaw(sf, code, value, !known)
	}
	return sf, nil
}

// resolveStart finds the true body start for a designator. Legacy
// payloads write offsets 2 bytes short of the body, so when the bytes
// at the designator offset do not carry the subfile's type tag the
// decoder retries one tag-width further in.
func resolveStart(data []byte, des Designator) (int, bool) {
	if des.Offset < 0 || des.Length < 0 {
		return 0, false
	}
	for _, cand := range []int{des.Offset, des.Offset + tagShift} {
		if cand+des.Length > len(data) || cand+2 > len(data) {
			continue
		}
		if string(data[cand:cand+2]) == des.Type {
			return cand, true
		}
	}
	// Tag not found at either candidate: garbled body. Take the slice
	// as declared if it is in bounds and let field splitting salvage
	// what it can.
	if des.Offset+des.Length <= len(data) {
		log.Debug().
			Str("type", des.Type).
			Int("offset", des.Offset).
			Msg("codec.Decode type tag missing at designator offset")
		return des.Offset, true
	}
	return 0, false
}

// setRaw preserves decode order while keeping codes unique within the
// subfile; a repeated code on the wire keeps its last value.
func setRaw(sf *document.Subfile, code, value string, unknown bool) {
	for i := range sf.Fields {
		if sf.Fields[i].Code == code {
			sf.Fields[i].Value = value
			sf.Fields[i].Unknown = unknown
			return
		}
	}
	sf.Fields = append(sf.Fields, document.Field{Code: code, Value: value, Unknown: unknown})
}
