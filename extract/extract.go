// Package extract pulls byte ranges out of a streamed codestream without
// reading more of it than needed.
//
// Tile-parts are addressed by their position in the codestream. For
// progressive streams that put one resolution level in each tile-part the
// index of a tile-part is the index of the resolution level it carries.
package extract

import (
	"errors"
	"fmt"
	"io"

	"github.com/dhamidi/j2kstream/codestream"
	"github.com/tliron/commonlog"
)

// ErrInvalidRange is returned for tile-part bounds that cannot describe a
// range.
var ErrInvalidRange = errors.New("extract: invalid tile-part range")

// rangeCollector records SOT segments and cancels the parser once the
// last requested tile-part is fully buffered.
type rangeCollector struct {
	end       int
	tileParts []codestream.Segment
	stopAt    int
	log       commonlog.Logger
}

func (c *rangeCollector) OnSegment(p *codestream.Parser, seg codestream.Segment) {
	if c.stopAt >= 0 && seg.Offset >= c.stopAt {
		c.log.Debugf("range complete at %d, cancelling", seg.Offset)
		if err := p.Cancel(); err != nil {
			c.log.Warningf("cancel: %s", err)
		}
		return
	}
	if seg.Code != codestream.SOT {
		return
	}
	c.tileParts = append(c.tileParts, seg)
	if c.end >= 0 && len(c.tileParts) == c.end+1 && seg.Tile.Length > 0 {
		c.stopAt = seg.End()
	}
}

// ResolutionRange returns the bytes from the start of tile-part start up to
// the end of tile-part end. A negative end means the rest of the stream.
// Reading stops as soon as the requested range has arrived.
func ResolutionRange(r io.Reader, start, end int) ([]byte, error) {
	if start < 0 {
		return nil, fmt.Errorf("%w: start %d", ErrInvalidRange, start)
	}
	if end >= 0 && end < start {
		return nil, fmt.Errorf("%w: end %d before start %d", ErrInvalidRange, end, start)
	}

	log := commonlog.GetLogger("j2kstream.extract")
	c := &rangeCollector{end: end, stopAt: -1, log: log}
	p, err := codestream.Parse(r, c)
	if err != nil && !errors.Is(err, codestream.ErrParseCancelled) {
		return nil, fmt.Errorf("parse codestream: %w", err)
	}

	data := p.Bytes()
	from := startPosition(len(data), c.tileParts, start)
	to := endPosition(len(data), c.tileParts, end)
	if to < from {
		to = from
	}
	log.Infof("tile-parts %d..%d: bytes %d..%d of %d read", start, end, from, to, len(data))
	return append([]byte(nil), data[from:to]...), nil
}

func startPosition(size int, tileParts []codestream.Segment, start int) int {
	switch {
	case start == 0:
		return 0
	case start >= len(tileParts):
		return size
	}
	return tileParts[start].Offset
}

func endPosition(size int, tileParts []codestream.Segment, end int) int {
	if end < 0 || end >= len(tileParts) {
		return size
	}
	sot := tileParts[end]
	if sot.Tile.Length == 0 {
		return size
	}
	return min(sot.End(), size)
}

// Segments reads the whole codestream and returns every segment decoded.
func Segments(r io.Reader) ([]codestream.Segment, error) {
	p, err := codestream.Parse(r, nil)
	if err != nil {
		return nil, fmt.Errorf("parse codestream: %w", err)
	}
	return p.Segments(), nil
}
