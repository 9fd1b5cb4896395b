package codec

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/drennick/aamvactl/internal/aamva/document"
	"github.com/drennick/aamvactl/internal/aamva/registry"
)

// Options controls encoder behavior that depends on the consuming
// scanner fleet rather than the document itself.
type Options struct {
	// CompensatedOffsets emits designator offsets 2 bytes short of the
	// true body start, matching legacy generators. Disable to emit the
	// arithmetically exact offsets instead.
	CompensatedOffsets bool
}

// DefaultOptions matches the legacy offset arithmetic.
func DefaultOptions() Options {
	return Options{CompensatedOffsets: true}
}

// Encode serializes doc into the barcode payload byte layout: the
// compliance prefix, the fixed header, one designator per subfile, and
// the concatenated subfile bodies. It fails with *EncodeError when the
// document is structurally unencodable; it never truncates values.
func Encode(doc *document.Document, reg *registry.Registry, opts Options) ([]byte, error) {
	if doc == nil || doc.Count() == 0 {
		return nil, encodeErr(ErrNoSubfiles)
	}
	if !allDigits([]byte(doc.IIN)) || len(doc.IIN) != 6 {
		return nil, encodeErr(ErrBadIIN)
	}
	if doc.Version < 0 || doc.Version > 99 ||
		doc.JurisdictionVersion < 0 || doc.JurisdictionVersion > 99 {
		return nil, encodeErr(ErrOverflow)
	}
	if doc.Count() > maxSubfiles {
		return nil, encodeErr(ErrOverflow)
	}

	bodies := make([][]byte, 0, doc.Count())
	for _, sf := range doc.Records() {
		if len(sf.Type) != 2 {
			return nil, &EncodeError{SubfileType: sf.Type, Err: ErrBadTypeTag}
		}
		if len(sf.Fields) == 0 {
			return nil, &EncodeError{SubfileType: sf.Type, Err: ErrEmptySubfile}
		}
		for _, f := range sf.Fields {
			if def, ok := reg.Lookup(f.Code); ok && len(f.Value) > def.MaxLen {
				return nil, &EncodeError{SubfileType: sf.Type, Code: f.Code, Err: ErrValueTooLong}
			}
		}
		body := sf.Body()
		if len(body) > maxDecimal {
			return nil, &EncodeError{SubfileType: sf.Type, Err: ErrOverflow}
		}
		bodies = append(bodies, body)
	}

	base := prefixLen + headerLen + designatorLen*len(bodies)
	shift := 0
	if opts.CompensatedOffsets {
		shift = tagShift
	}

	total := base
	for _, b := range bodies {
		total += len(b)
	}

	out := make([]byte, 0, total)
	out = append(out, compliancePrefix...)
	out = append(out, fileType...)
	out = append(out, doc.IIN...)
	out = append(out, fmt.Sprintf("%02d%02d%02d", doc.Version, doc.JurisdictionVersion, len(bodies))...)

	offset := base - shift
	for i, b := range bodies {
		if offset > maxDecimal || len(b) > maxDecimal {
			return nil, &EncodeError{SubfileType: doc.Subfiles[i].Type, Err: ErrOverflow}
		}
		out = appendDesignator(out, Designator{
			Type:   doc.Subfiles[i].Type,
			Offset: offset,
			Length: len(b),
		})
		offset += len(b)
	}
	for _, b := range bodies {
		out = append(out, b...)
	}

	log.Debug().
		Str("iin", doc.IIN).
		Int("subfiles", len(bodies)).
		Int("bytes", len(out)).
		Msg("codec.Encode ok")
	return out, nil
}
