// Package fixture builds small synthetic codestreams for tests.
package fixture

import (
	"encoding/binary"
	"slices"
)

// Marker low bytes used by the builder.
const (
	SOC = 0x4F
	SIZ = 0x51
	COD = 0x52
	QCD = 0x5C
	COM = 0x64
	PLT = 0x58
	SOT = 0x90
	SOD = 0x93
	EOC = 0xD9
)

// Builder appends marker segments to a byte slice and remembers where
// each tile-part starts.
type Builder struct {
	buf       []byte
	tileParts []int
}

func New() *Builder {
	return &Builder{}
}

// Len returns the number of bytes written so far.
func (b *Builder) Len() int { return len(b.buf) }

// TileParts returns the offsets of every SOT written.
func (b *Builder) TileParts() []int { return b.tileParts }

func (b *Builder) Bytes() []byte { return b.buf }

// Raw appends bytes verbatim.
func (b *Builder) Raw(p ...byte) *Builder {
	b.buf = append(b.buf, p...)
	return b
}

// Marker appends a marker without a length field.
func (b *Builder) Marker(m byte) *Builder {
	return b.Raw(0xFF, m)
}

// Segment appends a marker followed by a length field and payload.
func (b *Builder) Segment(m byte, payload []byte) *Builder {
	b.Raw(0xFF, m)
	b.buf = binary.BigEndian.AppendUint16(b.buf, uint16(2+len(payload)))
	return b.Raw(payload...)
}

// Comment appends a Latin COM segment.
func (b *Builder) Comment(text []byte) *Builder {
	payload := append([]byte{0x00, 0x01}, text...)
	return b.Segment(COM, payload)
}

// MainHeader appends SOC, SIZ, COD and QCD with filler payloads of the
// given sizes.
func (b *Builder) MainHeader(siz, cod, qcd int) *Builder {
	return b.Marker(SOC).
		Segment(SIZ, Filler(siz)).
		Segment(COD, Filler(cod)).
		Segment(QCD, Filler(qcd))
}

// TilePart appends a complete tile-part: SOT, the given header segments,
// SOD and body. Psot covers all of it.
func (b *Builder) TilePart(tile uint16, part, count uint8, header []byte, body []byte) *Builder {
	start := len(b.buf)
	b.tileParts = append(b.tileParts, start)
	psot := uint32(12 + len(header) + 2 + len(body))

	b.Raw(0xFF, SOT)
	b.buf = binary.BigEndian.AppendUint16(b.buf, 10)
	b.buf = binary.BigEndian.AppendUint16(b.buf, tile)
	b.buf = binary.BigEndian.AppendUint32(b.buf, psot)
	b.Raw(part, count)
	b.Raw(header...)
	b.Marker(SOD)
	return b.Raw(body...)
}

// End appends EOC.
func (b *Builder) End() *Builder {
	return b.Marker(EOC)
}

// Filler returns n bytes that never contain 0xFF.
func Filler(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i % 0xFE)
	}
	return p
}

// Payload returns n bytes full of marker-like sequences, so that a parser
// which inspected them would report spurious segments.
func Payload(n int) []byte {
	p := make([]byte, n)
	for i := range p {
		if i%2 == 0 {
			p[i] = 0xFF
		} else {
			p[i] = SIZ
		}
	}
	return p
}

// Split cuts data into chunks following sizes cyclically. A size of zero
// or less yields an empty chunk. Without any positive size data is
// returned as a single chunk.
func Split(data []byte, sizes ...int) [][]byte {
	if len(data) == 0 {
		return nil
	}
	if !slices.ContainsFunc(sizes, func(n int) bool { return n > 0 }) {
		return [][]byte{data}
	}
	var chunks [][]byte
	for i := 0; len(data) > 0; i++ {
		n := max(sizes[i%len(sizes)], 0)
		if n > len(data) {
			n = len(data)
		}
		chunks = append(chunks, data[:n])
		data = data[n:]
	}
	return chunks
}
