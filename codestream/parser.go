package codestream

import (
	"fmt"

	"github.com/tliron/commonlog"
)

// State is the parser's run state.
type State int

const (
	// Suspended is the initial state. Written data is buffered until Resume.
	Suspended State = iota
	// Live means the decode loop is running.
	Live
	// Waiting means the decode loop ran out of bytes. The next Write resumes it.
	Waiting
	// Cancelled is terminal.
	Cancelled
)

func (s State) String() string {
	switch s {
	case Suspended:
		return "suspended"
	case Live:
		return "live"
	case Waiting:
		return "waiting"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// WriteResult reports whether Write accepted a chunk.
type WriteResult int

const (
	Accepted WriteResult = iota
	// Refused means the parser was cancelled and the chunk was dropped.
	Refused
)

func (r WriteResult) String() string {
	if r == Refused {
		return "refused"
	}
	return "accepted"
}

// Handler receives decoded segments in stream order. OnSegment runs inline
// inside Write or Resume. It may call p.Cancel but must not call p.Write.
type Handler interface {
	OnSegment(p *Parser, seg Segment)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(p *Parser, seg Segment)

func (f HandlerFunc) OnSegment(p *Parser, seg Segment) {
	f(p, seg)
}

// Option configures a Parser.
type Option func(*Parser)

// WithLogger replaces the parser's logger.
func WithLogger(log commonlog.Logger) Option {
	return func(p *Parser) {
		p.log = log
	}
}

// Parser incrementally decodes a codestream pushed to it in chunks of any
// size. It is not safe for concurrent use.
//
// Every byte written is retained for the parser's lifetime, including
// skipped tile-part payloads, so that callers can slice arbitrary ranges
// out of Bytes after decoding stops.
type Parser struct {
	handler Handler
	log     commonlog.Logger

	state  State
	buf    []byte
	pos    int
	driver driver

	ended     bool
	completed bool
	done      chan struct{}
	err       error
}

// NewParser returns a suspended parser delivering segments to h. h may be
// nil.
func NewParser(h Handler, opts ...Option) *Parser {
	p := &Parser{
		handler: h,
		state:   Suspended,
		driver:  newDriver(),
		done:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.log == nil {
		p.log = commonlog.GetLogger("j2kstream.parser")
	}
	return p
}

// Write appends chunk to the accumulator. If the parser is waiting for data
// the decode loop runs until it starves again or is cancelled. A cancelled
// parser drops the chunk and returns Refused.
func (p *Parser) Write(chunk []byte) WriteResult {
	p.log.Debugf("write(%d)", len(chunk))

	if p.state == Cancelled {
		return Refused
	}

	p.buf = append(p.buf, chunk...)

	if p.state == Waiting {
		p.run()
	}
	return Accepted
}

// End records that no more chunks will arrive.
func (p *Parser) End() {
	p.log.Debug("end")
	p.ended = true
	p.complete()
}

// Resume runs the decode loop until it starves or the parser is cancelled.
func (p *Parser) Resume() error {
	p.log.Debug("resume")
	if p.state == Cancelled {
		return fmt.Errorf("resume: %w", ErrCancelled)
	}
	p.run()
	return nil
}

// Wait moves the parser to Waiting, so that the next Write resumes
// decoding.
func (p *Parser) Wait() error {
	if p.state == Cancelled {
		return fmt.Errorf("wait: %w", ErrCancelled)
	}
	p.wait()
	return nil
}

// Suspend stops decoding. Written data is buffered until Resume.
func (p *Parser) Suspend() error {
	p.log.Debug("suspend")
	if p.state == Cancelled {
		return fmt.Errorf("suspend: %w", ErrCancelled)
	}
	p.state = Suspended
	return nil
}

// Cancel moves the parser to the terminal Cancelled state. A decode loop in
// progress stops after the current step.
func (p *Parser) Cancel() error {
	p.log.Debug("cancel")
	if p.state == Cancelled {
		return fmt.Errorf("cancel: %w", ErrCancelled)
	}
	p.state = Cancelled
	p.complete()
	return nil
}

func (p *Parser) run() {
	p.state = Live
	for p.state == Live {
		p.driver.step(p)
	}
	p.complete()
}

func (p *Parser) wait() {
	p.log.Debug("wait")
	p.state = Waiting
}

// complete resolves Done once input is exhausted and the loop has starved,
// or once the parser is cancelled. Later transitions do not change the
// outcome.
func (p *Parser) complete() {
	if p.completed {
		return
	}
	switch {
	case p.state == Cancelled:
		p.err = ErrParseCancelled
	case p.ended && p.state == Waiting:
	default:
		return
	}
	p.completed = true
	close(p.done)
	p.log.Debugf("complete at %d of %d bytes, %d segments", p.pos, len(p.buf), len(p.driver.history))
}

// Done is closed when the session completes.
func (p *Parser) Done() <-chan struct{} {
	return p.done
}

// Err returns ErrParseCancelled if the session was cancelled before input
// was exhausted, and nil otherwise.
func (p *Parser) Err() error {
	return p.err
}

// Advance moves the cursor forward by n bytes. The cursor may move past
// the end of the available data; the next decode step then waits.
func (p *Parser) Advance(n int) {
	if n <= 0 {
		return
	}
	p.pos += n
}

// Position returns the cursor.
func (p *Parser) Position() int {
	return p.pos
}

// Bytes returns every byte written so far. Later writes never modify the
// returned slice. It aliases the accumulator and must not be modified; use
// Snapshot for a private copy.
func (p *Parser) Bytes() []byte {
	return p.buf[:len(p.buf):len(p.buf)]
}

// Segments returns a copy of the segments decoded so far.
func (p *Parser) Segments() []Segment {
	return append([]Segment(nil), p.driver.history...)
}

func (p *Parser) Handler() Handler {
	return p.handler
}

func (p *Parser) State() State {
	return p.state
}

// Ended reports whether End has been called.
func (p *Parser) Ended() bool {
	return p.ended
}

// Snapshot is an immutable view of the parser at one point in time.
type Snapshot struct {
	Bytes    []byte
	Position int
	State    State
	Segments int
}

// Snapshot captures the accumulator, cursor and state together. Bytes is a
// copy, so modifying it does not affect the parser.
func (p *Parser) Snapshot() Snapshot {
	return Snapshot{
		Bytes:    append([]byte(nil), p.buf...),
		Position: p.pos,
		State:    p.state,
		Segments: len(p.driver.history),
	}
}
