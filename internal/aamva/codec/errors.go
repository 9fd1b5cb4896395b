package codec

import (
	"errors"
	"fmt"
)

var (
	ErrNoSubfiles    = errors.New("codec: document has no subfiles")
	ErrEmptySubfile  = errors.New("codec: subfile has no data elements")
	ErrBadIIN        = errors.New("codec: issuer identification number is not 6 digits")
	ErrBadTypeTag    = errors.New("codec: subfile type tag is not 2 characters")
	ErrValueTooLong  = errors.New("codec: data element value exceeds definition maximum")
	ErrOverflow      = errors.New("codec: offset or length exceeds the 4-digit ceiling")
	ErrBadPrefix     = errors.New("codec: missing or malformed compliance prefix")
	ErrShortHeader   = errors.New("codec: header shorter than fixed width")
	ErrBadHeader     = errors.New("codec: malformed header field")
	ErrBadCount      = errors.New("codec: declared subfile count does not fit the payload")
	ErrBadDesignator = errors.New("codec: malformed subfile designator")
	ErrBounds        = errors.New("codec: designator slice exceeds payload bounds")
)

// EncodeError reports a document that cannot be serialized. SubfileType
// and Code narrow the failure down when they are known.
type EncodeError struct {
	SubfileType string
	Code        string
	Err         error
}

func (e *EncodeError) Error() string {
	switch {
	case e.SubfileType != "" && e.Code != "":
		return fmt.Sprintf("encode subfile %s element %s: %v", e.SubfileType, e.Code, e.Err)
	case e.SubfileType != "":
		return fmt.Sprintf("encode subfile %s: %v", e.SubfileType, e.Err)
	default:
		return fmt.Sprintf("encode: %v", e.Err)
	}
}

func (e *EncodeError) Unwrap() error { return e.Err }

func encodeErr(err error) error {
	return &EncodeError{Err: err}
}

// DecodeError reports a payload that fails structural parsing. At is
// the byte position the parser was looking at.
type DecodeError struct {
	At  int
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode at byte %d: %v", e.At, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeErr(at int, err error) error {
	return &DecodeError{At: at, Err: err}
}
