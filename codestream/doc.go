// Package codestream parses a JPEG 2000 codestream incrementally, one
// marker segment at a time, as bytes are pushed to it.
//
// A Parser accepts chunks of any size through Write and delivers each
// decoded segment to a Handler. When a SOD marker is seen the parser skips
// straight to the end of the tile-part using the length declared in the
// preceding SOT segment, so decode work is bounded by the number of
// tile-parts rather than the size of the file. A Handler can stop the
// session early by calling Cancel; after that Write refuses further data.
//
//	p, err := codestream.Parse(f, codestream.HandlerFunc(func(p *codestream.Parser, seg codestream.Segment) {
//	    fmt.Println(seg)
//	}))
//	if err != nil && !errors.Is(err, codestream.ErrParseCancelled) {
//	    return err
//	}
//
// Unrecognized bytes are never an error: the parser advances one byte at a
// time until it finds a known marker again.
package codestream
