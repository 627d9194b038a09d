package codestream

import (
	"encoding/binary"
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// Comment registration values (Rcom).
const (
	RegistrationBinary uint16 = 0
	RegistrationLatin  uint16 = 1
)

// Comment is the payload of a COM marker segment.
type Comment struct {
	Registration uint16
	Data         []byte
}

// ParseComment extracts the COM payload for seg from data, which is
// normally the parser's Bytes.
func ParseComment(data []byte, seg Segment) (Comment, error) {
	if seg.Code != COM {
		return Comment{}, fmt.Errorf("%s at %d: %w", seg.Name, seg.Offset, ErrNotComment)
	}
	end := seg.End()
	if seg.Length < 4 || end > len(data) {
		return Comment{}, fmt.Errorf("comment at %d: %w", seg.Offset, ErrTruncated)
	}
	body := data[seg.Offset+4 : end]
	return Comment{
		Registration: binary.BigEndian.Uint16(body),
		Data:         body[2:],
	}, nil
}

// Text decodes a Latin (ISO 8859-15) comment.
func (c Comment) Text() (string, error) {
	switch c.Registration {
	case RegistrationLatin:
		b, err := charmap.ISO8859_15.NewDecoder().Bytes(c.Data)
		if err != nil {
			return "", fmt.Errorf("decode comment: %w", err)
		}
		return string(b), nil
	case RegistrationBinary:
		return "", ErrBinaryComment
	default:
		return "", fmt.Errorf("%w: %d", ErrUnknownComment, c.Registration)
	}
}
