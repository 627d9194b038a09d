package codestream

import (
	"io"
)

const readChunkSize = 32 * 1024

// Writer pushes bytes from an io.Writer-shaped source into a Parser.
// Cancellation of the parser surfaces as ErrParseCancelled from Write,
// which tells the source to stop sending. Close signals end of input and
// must be called once the source is drained.
type Writer struct {
	p      *Parser
	closed bool
}

// NewWriter returns a Writer feeding p.
func NewWriter(p *Parser) *Writer {
	return &Writer{p: p}
}

// Write passes b to the parser. It returns ErrParseCancelled once the
// parser has been cancelled.
func (w *Writer) Write(b []byte) (int, error) {
	if w.closed {
		return 0, ErrClosed
	}
	if w.p.Write(b) == Refused {
		return 0, ErrParseCancelled
	}
	return len(b), nil
}

// Close signals end of input to the parser.
func (w *Writer) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.p.End()
	return nil
}

// ReadFrom reads r until EOF, writing each chunk to the parser. It stops
// early with ErrParseCancelled if the parser is cancelled. It does not
// close the writer: io.Copy may bypass ReadFrom entirely, so callers end
// input with Close.
func (w *Writer) ReadFrom(r io.Reader) (int64, error) {
	buf := make([]byte, readChunkSize)
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := w.Write(buf[:n]); werr != nil {
				return total, werr
			}
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Parse runs a whole session: it resumes a new parser, feeds it everything
// from r and returns it. A cancelled session returns the parser together
// with ErrParseCancelled so callers can still read what was buffered.
func Parse(r io.Reader, h Handler, opts ...Option) (*Parser, error) {
	p := NewParser(h, opts...)
	if err := p.Resume(); err != nil {
		return p, err
	}
	w := NewWriter(p)
	if _, err := w.ReadFrom(r); err != nil {
		return p, err
	}
	if err := w.Close(); err != nil {
		return p, err
	}
	return p, p.Err()
}
