package codestream

import "encoding/binary"

// sotSegmentSize is the size of a SOT marker segment: marker, Lsot, Isot,
// Psot, TPsot and TNsot.
const sotSegmentSize = 12

type decodeResult int

const (
	decodeNone  decodeResult = iota // no recognized marker at the cursor
	decodeShort                     // more bytes are needed before deciding
	decodeOK
)

// reader reads big-endian fields from a window of the accumulator. Reading
// past the end sets short and yields zeros from then on.
type reader struct {
	buf   []byte
	pos   int
	short bool
}

func (r *reader) need(n int) bool {
	if r.short || r.pos+n > len(r.buf) {
		r.short = true
		return false
	}
	return true
}

func (r *reader) readU1() uint8 {
	if !r.need(1) {
		return 0
	}
	v := r.buf[r.pos]
	r.pos++
	return v
}

func (r *reader) readU2() uint16 {
	if !r.need(2) {
		return 0
	}
	v := binary.BigEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v
}

func (r *reader) readU4() uint32 {
	if !r.need(4) {
		return 0
	}
	v := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v
}

// decodeSegment decodes at most one marker segment at pos. It returns the
// segment and how far the cursor should advance past it. The caller
// guarantees at least two bytes are available at pos.
func decodeSegment(buf []byte, pos int) (Segment, int, decodeResult) {
	r := &reader{buf: buf, pos: pos}

	if r.readU1() != MarkerPrefix {
		return Segment{}, 0, decodeNone
	}
	m := Marker(r.readU1())
	name, ok := Lookup(m)
	if !ok {
		return Segment{}, 0, decodeNone
	}

	seg := Segment{Offset: pos, Name: name, Code: m}
	if !m.HasLength() {
		return seg, 2, decodeOK
	}

	seg.Length = int(r.readU2())
	if m == SOT {
		seg.Tile = &TilePart{
			Index:     r.readU2(),
			Length:    r.readU4(),
			PartIndex: r.readU1(),
			PartCount: r.readU1(),
		}
	}
	if r.short {
		return Segment{}, 0, decodeShort
	}

	advance := 2 + seg.Length
	if m == SOT && advance < sotSegmentSize {
		advance = sotSegmentSize
	}
	return seg, advance, decodeOK
}
