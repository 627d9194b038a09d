package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/j2kstream/codestream"
)

// LineEncoder writes one tab-separated line per segment:
// offset, name, marker code, length, and for SOT the tile index, Psot and
// part index/count.
type LineEncoder struct {
	w   io.Writer
	seg codestream.Segment
}

func NewLineEncoder(w io.Writer) *LineEncoder {
	return &LineEncoder{w: w}
}

func (e *LineEncoder) Encode(seg codestream.Segment) error {
	e.seg = seg
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *LineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	s := e.seg

	fmt.Fprintf(&sb, "%d\t%s\t0x%04X\t%d", s.Offset, s.Name, s.Code.Code(), s.Length)
	if s.Tile != nil {
		fmt.Fprintf(&sb, "\ttile=%d\tpsot=%d\tpart=%d/%d",
			s.Tile.Index,
			s.Tile.Length,
			s.Tile.PartIndex,
			s.Tile.PartCount,
		)
	}
	sb.WriteByte('\n')

	return []byte(sb.String()), nil
}
