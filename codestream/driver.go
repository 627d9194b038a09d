package codestream

// driver is the unit of work the parser runs while live. It keeps the
// history of decoded segments.
type driver struct {
	history []Segment
	// openTile indexes the most recent SOT in history that has not yet been
	// closed by a SOD, or -1.
	openTile int
}

func newDriver() driver {
	return driver{openTile: -1}
}

// step decodes one segment at the cursor, or resynchronizes by one byte,
// or asks the parser to wait for more data.
func (d *driver) step(p *Parser) {
	if len(p.buf)-p.pos < 2 {
		p.wait()
		return
	}

	seg, n, res := decodeSegment(p.buf, p.pos)
	switch res {
	case decodeShort:
		p.wait()
		return
	case decodeNone:
		p.Advance(1)
		return
	}
	p.Advance(n)

	d.history = append(d.history, seg)
	if seg.Code == SOT {
		d.openTile = len(d.history) - 1
	}

	if p.handler != nil {
		p.handler.OnSegment(p, seg)
	}

	if seg.Code == SOD && d.openTile >= 0 {
		sot := d.history[d.openTile]
		d.openTile = -1
		// Psot of zero runs to EOC; nothing to skip to.
		if sot.Tile.Length == 0 {
			return
		}
		if end := sot.End(); end > p.pos {
			p.log.Debugf("skipping tile-part payload %d..%d", p.pos, end)
			p.Advance(end - p.pos)
		}
	}
}
