package codestream

import "fmt"

// MarkerPrefix is the first byte of every marker.
const MarkerPrefix byte = 0xFF

// Marker is the low byte of a two-byte 0xFFxx marker code.
type Marker uint8

// Marker codes recognized by the segment decoder.
const (
	SOC Marker = 0x4F // Start of codestream
	CAP Marker = 0x50 // Extended capability
	SIZ Marker = 0x51 // Image and tile size
	COD Marker = 0x52 // Coding style default
	COC Marker = 0x53 // Coding style component
	TLM Marker = 0x55 // Tile-part lengths
	PRF Marker = 0x56 // Profile
	PLM Marker = 0x57 // Packet length, main header
	PLT Marker = 0x58 // Packet length, tile-part header
	CPF Marker = 0x59 // Corresponding profile values
	QCD Marker = 0x5C // Quantization default
	QCC Marker = 0x5D // Quantization component
	RGN Marker = 0x5E // Region of interest
	POC Marker = 0x5F // Progression order change
	PPM Marker = 0x60 // Packed packet headers, main header
	PPT Marker = 0x61 // Packed packet headers, tile-part header
	CRG Marker = 0x63 // Component registration
	COM Marker = 0x64 // Comment
	SOT Marker = 0x90 // Start of tile-part
	SOP Marker = 0x91 // Start of packet
	EPH Marker = 0x92 // End of packet header
	SOD Marker = 0x93 // Start of data
	EOC Marker = 0xD9 // End of codestream

	// Reserved delimiters. These carry no length field.
	RSV0 Marker = 0xD0
	RSV7 Marker = 0xD7
)

// rsvLast ends the length-less reserved range. It is not in the catalog.
const rsvLast Marker = 0xD8

type markerInfo struct {
	name      string
	hasLength bool
}

var catalog = func() map[Marker]markerInfo {
	m := map[Marker]markerInfo{
		SOC: {"Soc", false},
		CAP: {"Cap", true},
		SIZ: {"Siz", true},
		COD: {"Cod", true},
		COC: {"Coc", true},
		TLM: {"Tlm", true},
		PRF: {"Prf", true},
		PLM: {"Plm", true},
		PLT: {"Plt", true},
		CPF: {"Cpf", true},
		QCD: {"Qcd", true},
		QCC: {"Qcc", true},
		RGN: {"Rgn", true},
		POC: {"Poc", true},
		PPM: {"Ppm", true},
		PPT: {"Ppt", true},
		CRG: {"Crg", true},
		COM: {"Com", true},
		SOT: {"Sot", true},
		SOP: {"Sop", true},
		EPH: {"Eph", true},
		SOD: {"Sod", false},
		EOC: {"Eoc", false},
	}
	for c := RSV0; c <= RSV7; c++ {
		m[c] = markerInfo{fmt.Sprintf("Rsv%d", int(c-RSV0)), false}
	}
	return m
}()

// Lookup reports the catalog name of m and whether m is recognized.
func Lookup(m Marker) (string, bool) {
	info, ok := catalog[m]
	return info.name, ok
}

// Known reports whether m is in the marker catalog.
func (m Marker) Known() bool {
	_, ok := catalog[m]
	return ok
}

// HasLength reports whether a 2-byte length field follows the marker.
// Only SOC, SOD, EOC and the reserved delimiter range 0xD0-0xD8 go without.
func (m Marker) HasLength() bool {
	if info, ok := catalog[m]; ok {
		return info.hasLength
	}
	return m < RSV0 || m > rsvLast
}

// Code returns the full two-byte marker value.
func (m Marker) Code() uint16 {
	return uint16(MarkerPrefix)<<8 | uint16(m)
}

func (m Marker) String() string {
	if name, ok := Lookup(m); ok {
		return name
	}
	return fmt.Sprintf("0x%04X", m.Code())
}
