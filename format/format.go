package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/j2kstream/codestream"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(seg codestream.Segment) error
}

// NewEncoder returns the encoder registered under name: "line" or "json".
func NewEncoder(name string, w io.Writer) (Encoder, error) {
	switch name {
	case "line":
		return NewLineEncoder(w), nil
	case "json":
		return NewJSONEncoder(w), nil
	default:
		return nil, fmt.Errorf("unknown format: %s (expected line or json)", name)
	}
}
