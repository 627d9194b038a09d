package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/j2kstream/codestream"
)

// JSONEncoder writes one JSON object per line for each segment.
type JSONEncoder struct {
	w   io.Writer
	seg codestream.Segment
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

func (e *JSONEncoder) Encode(seg codestream.Segment) error {
	e.seg = seg
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(append(text, '\n'))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	return json.Marshal(e.buildSegmentData())
}

type jsonSegment struct {
	Offset     int           `json:"offset"`
	MarkerName string        `json:"markerName"`
	Marker     uint8         `json:"marker"`
	Length     int           `json:"length"`
	Tile       *jsonTilePart `json:"tile,omitempty"`
}

type jsonTilePart struct {
	TileIndex      uint16 `json:"tileIndex"`
	TilePartLength uint32 `json:"tilePartLength"`
	TilePartIndex  uint8  `json:"tilePartIndex"`
	TilePartCount  uint8  `json:"tilePartCount"`
}

func (e *JSONEncoder) buildSegmentData() jsonSegment {
	s := e.seg
	data := jsonSegment{
		Offset:     s.Offset,
		MarkerName: s.Name,
		Marker:     uint8(s.Code),
		Length:     s.Length,
	}
	if s.Tile != nil {
		data.Tile = &jsonTilePart{
			TileIndex:      s.Tile.Index,
			TilePartLength: s.Tile.Length,
			TilePartIndex:  s.Tile.PartIndex,
			TilePartCount:  s.Tile.PartCount,
		}
	}
	return data
}
