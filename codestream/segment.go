package codestream

import (
	"fmt"
	"math"
)

// Segment is one decoded marker segment.
type Segment struct {
	// Offset is the absolute position of the marker's first byte.
	Offset int
	Name   string
	Code   Marker
	// Length is the raw length field, which counts itself. It is zero for
	// markers without a length field.
	Length int
	// Tile is set only for SOT segments.
	Tile *TilePart
}

// TilePart holds the fixed fields of a SOT marker segment.
type TilePart struct {
	Index uint16
	// Length is Psot, measured from the first byte of the SOT marker.
	// Zero means the tile-part runs to the end of the codestream.
	Length    uint32
	PartIndex uint8
	PartCount uint8
}

// End returns the offset just past the segment's declared extent. For SOT
// this is the end of the whole tile-part. An end beyond the range of int
// is clamped to math.MaxInt.
func (s Segment) End() int {
	if s.Tile != nil && s.Tile.Length > 0 {
		end := int64(s.Offset) + int64(s.Tile.Length)
		if end > math.MaxInt {
			return math.MaxInt
		}
		return int(end)
	}
	if s.Code.HasLength() {
		return s.Offset + 2 + s.Length
	}
	return s.Offset + 2
}

func (s Segment) String() string {
	if s.Tile != nil {
		return fmt.Sprintf("%s@%d tile=%d part=%d/%d psot=%d",
			s.Name, s.Offset, s.Tile.Index, s.Tile.PartIndex, s.Tile.PartCount, s.Tile.Length)
	}
	return fmt.Sprintf("%s@%d len=%d", s.Name, s.Offset, s.Length)
}
