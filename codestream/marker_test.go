package codestream

import "testing"

func TestMarkerCatalog(t *testing.T) {
	tests := []struct {
		m         Marker
		name      string
		known     bool
		hasLength bool
	}{
		{SOC, "Soc", true, false},
		{SIZ, "Siz", true, true},
		{CAP, "Cap", true, true},
		{COM, "Com", true, true},
		{SOT, "Sot", true, true},
		{EPH, "Eph", true, true},
		{SOD, "Sod", true, false},
		{EOC, "Eoc", true, false},
		{RSV0, "Rsv0", true, false},
		{RSV7, "Rsv7", true, false},
		{0xD8, "0xFFD8", false, false},
		{0x30, "0xFF30", false, true},
		{0xFF, "0xFFFF", false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.String(); got != tt.name {
				t.Errorf("String() = %q, want %q", got, tt.name)
			}
			if got := tt.m.Known(); got != tt.known {
				t.Errorf("Known() = %v, want %v", got, tt.known)
			}
			if got := tt.m.HasLength(); got != tt.hasLength {
				t.Errorf("HasLength() = %v, want %v", got, tt.hasLength)
			}
		})
	}

	if got := SOT.Code(); got != 0xFF90 {
		t.Errorf("SOT.Code() = %#x, want 0xff90", got)
	}
}

func TestDecodeSegment(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		res     decodeResult
		advance int
	}{
		{"not a marker", []byte{0x12, 0xFF}, decodeNone, 0},
		{"unknown marker", []byte{0xFF, 0x01, 0x00, 0x04}, decodeNone, 0},
		{"no length", []byte{0xFF, 0x4F}, decodeOK, 2},
		{"length", []byte{0xFF, 0x52, 0x00, 0x0C}, decodeOK, 14},
		{"short length", []byte{0xFF, 0x52, 0x00}, decodeShort, 0},
		{"sot", []byte{0xFF, 0x90, 0x00, 0x0A, 0x00, 0x03, 0x00, 0x00, 0x01, 0x00, 0x02, 0x05}, decodeOK, 12},
		{"sot short lsot", []byte{0xFF, 0x90, 0x00, 0x02, 0x00, 0x03, 0x00, 0x00, 0x01, 0x00, 0x02, 0x05}, decodeOK, 12},
		{"short sot", []byte{0xFF, 0x90, 0x00, 0x0A, 0x00, 0x03, 0x00, 0x00, 0x01}, decodeShort, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, n, res := decodeSegment(tt.buf, 0)
			if res != tt.res {
				t.Fatalf("result = %d, want %d", res, tt.res)
			}
			if n != tt.advance {
				t.Errorf("advance = %d, want %d", n, tt.advance)
			}
			if res == decodeOK && seg.Offset != 0 {
				t.Errorf("Offset = %d, want 0", seg.Offset)
			}
		})
	}

	seg, _, _ := decodeSegment([]byte{0x00, 0xFF, 0x90, 0x00, 0x0A, 0x00, 0x03, 0x00, 0x00, 0x01, 0x00, 0x02, 0x05}, 1)
	want := TilePart{Index: 3, Length: 256, PartIndex: 2, PartCount: 5}
	if seg.Tile == nil || *seg.Tile != want {
		t.Errorf("Tile = %+v, want %+v", seg.Tile, want)
	}
	if seg.Offset != 1 || seg.End() != 257 {
		t.Errorf("Offset = %d, End() = %d, want 1, 257", seg.Offset, seg.End())
	}
}
