package host

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	rom := []byte{0x20, 0x00, 0x00, 0x30, 0x00, 0x00}
	h := ProgramHeader{
		VersionMajor: 1, VersionMinor: 2, VersionPatch: 3,
		WRAMSize: 0x1000, SRAMSize: 0x2000,
		Name: "demo", Author: "tester", Description: "a test program",
	}
	buf := EncodeHeader(h, rom)

	got, gotROM, err := ParseHeader(buf)
	require.NoError(t, err)
	require.Equal(t, rom, gotROM)
	require.Equal(t, uint8(1), got.VersionMajor)
	require.Equal(t, uint8(2), got.VersionMinor)
	require.Equal(t, uint8(3), got.VersionPatch)
	require.Equal(t, uint32(0x1000), got.WRAMSize)
	require.Equal(t, uint32(0x2000), got.SRAMSize)
	require.Equal(t, "demo", got.Name)
	require.Equal(t, "tester", got.Author)
	require.Equal(t, "a test program", got.Description)
}

func TestHeaderRejectsBadMagic(t *testing.T) {
	buf := EncodeHeader(ProgramHeader{}, nil)
	buf[0] = 'X'
	_, _, err := ParseHeader(buf)
	require.Error(t, err)
}

func TestHeaderRejectsTruncatedFile(t *testing.T) {
	_, _, err := ParseHeader([]byte{'T', 'M', 'B', 'Y'})
	require.Error(t, err)
}

func TestHeaderRejectsOversizedProgramSize(t *testing.T) {
	buf := EncodeHeader(ProgramHeader{}, []byte{1, 2, 3})
	// Corrupt the recorded program size to claim more bytes than follow.
	buf[8] = 0xFF
	_, _, err := ParseHeader(buf)
	require.Error(t, err)
}
