package host

import (
	"encoding/binary"
	"fmt"
)

// headerMagic is the 4-byte identifier every program file opens with
// (spec.md §6.3).
const headerMagic = "TMBY"

// headerSize is the fixed on-disk size of ProgramHeader: 4-byte magic +
// 3 version bytes + 1 pad + three uint32 sizes + the three fixed-width
// ASCII fields.
const headerSize = 4 + 4 + 12 + 32 + 32 + 64

// ProgramHeader is the fixed-size prologue every loadable program file
// carries ahead of its raw ROM image (spec.md §6.3). Name/Author/
// Description are NUL-padded ASCII; Go code trims the padding on read
// and re-pads on write.
type ProgramHeader struct {
	VersionMajor, VersionMinor, VersionPatch uint8
	ProgramSize                              uint32
	WRAMSize                                 uint32
	SRAMSize                                 uint32
	Name                                     string
	Author                                   string
	Description                              string
}

func decodeField(b []byte) string {
	n := 0
	for n < len(b) && b[n] != 0 {
		n++
	}
	return string(b[:n])
}

func encodeField(dst []byte, s string) {
	n := copy(dst, s)
	for i := n; i < len(dst); i++ {
		dst[i] = 0
	}
}

// ParseHeader reads a ProgramHeader from the start of buf and returns it
// along with the remaining bytes, which are the raw ROM image to hand
// the CPU.
func ParseHeader(buf []byte) (ProgramHeader, []byte, error) {
	if len(buf) < headerSize {
		return ProgramHeader{}, nil, fmt.Errorf("host: program file too short for header (%d bytes, need %d)", len(buf), headerSize)
	}
	if string(buf[0:4]) != headerMagic {
		return ProgramHeader{}, nil, fmt.Errorf("host: bad program magic %q, want %q", buf[0:4], headerMagic)
	}
	h := ProgramHeader{
		VersionMajor: buf[4],
		VersionMinor: buf[5],
		VersionPatch: buf[6],
		ProgramSize:  binary.LittleEndian.Uint32(buf[8:12]),
		WRAMSize:     binary.LittleEndian.Uint32(buf[12:16]),
		SRAMSize:     binary.LittleEndian.Uint32(buf[16:20]),
		Name:         decodeField(buf[20:52]),
		Author:       decodeField(buf[52:84]),
		Description:  decodeField(buf[84:148]),
	}
	rest := buf[headerSize:]
	if int(h.ProgramSize) > len(rest) {
		return ProgramHeader{}, nil, fmt.Errorf("host: header claims program size %d, only %d bytes follow", h.ProgramSize, len(rest))
	}
	return h, rest[:h.ProgramSize], nil
}

// EncodeHeader serializes a ProgramHeader followed by rom into a single
// buffer suitable for writing to a program file. ProgramSize is set from
// len(rom) regardless of the value passed in h.
func EncodeHeader(h ProgramHeader, rom []byte) []byte {
	buf := make([]byte, headerSize+len(rom))
	copy(buf[0:4], headerMagic)
	buf[4] = h.VersionMajor
	buf[5] = h.VersionMinor
	buf[6] = h.VersionPatch
	binary.LittleEndian.PutUint32(buf[8:12], uint32(len(rom)))
	binary.LittleEndian.PutUint32(buf[12:16], h.WRAMSize)
	binary.LittleEndian.PutUint32(buf[16:20], h.SRAMSize)
	encodeField(buf[20:52], h.Name)
	encodeField(buf[52:84], h.Author)
	encodeField(buf[84:148], h.Description)
	copy(buf[headerSize:], rom)
	return buf
}
