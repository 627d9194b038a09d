package format

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/dhamidi/j2kstream/codestream"
)

var sot = codestream.Segment{
	Offset: 67,
	Name:   "Sot",
	Code:   codestream.SOT,
	Length: 10,
	Tile:   &codestream.TilePart{Index: 2, Length: 4014, PartIndex: 1, PartCount: 3},
}

var siz = codestream.Segment{Offset: 2, Name: "Siz", Code: codestream.SIZ, Length: 41}

func TestLineEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewLineEncoder(&buf)
	if err := enc.Encode(siz); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if err := enc.Encode(sot); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	want := "2\tSiz\t0xFF51\t41\n" +
		"67\tSot\t0xFF90\t10\ttile=2\tpsot=4014\tpart=1/3\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestJSONEncoder(t *testing.T) {
	var buf bytes.Buffer
	enc := NewJSONEncoder(&buf)
	if err := enc.Encode(sot); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got["markerName"] != "Sot" {
		t.Errorf("markerName = %v, want Sot", got["markerName"])
	}
	if got["marker"] != float64(0x90) {
		t.Errorf("marker = %v, want %d", got["marker"], 0x90)
	}
	tile, ok := got["tile"].(map[string]any)
	if !ok {
		t.Fatalf("tile = %v, want object", got["tile"])
	}
	if tile["tilePartLength"] != float64(4014) {
		t.Errorf("tilePartLength = %v, want 4014", tile["tilePartLength"])
	}

	buf.Reset()
	enc.Encode(siz)
	if bytes.Contains(buf.Bytes(), []byte("tile")) {
		t.Errorf("non-SOT segment has tile fields: %s", buf.Bytes())
	}
}

func TestNewEncoder(t *testing.T) {
	for _, name := range []string{"line", "json"} {
		if _, err := NewEncoder(name, &bytes.Buffer{}); err != nil {
			t.Errorf("NewEncoder(%q) error = %v", name, err)
		}
	}
	if _, err := NewEncoder("xml", &bytes.Buffer{}); err == nil {
		t.Error("NewEncoder(\"xml\") succeeded, want error")
	}
}
