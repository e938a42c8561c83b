package host

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// sanitizePath resolves name against baseDir and rejects any path that
// would escape it, the same containment check the reference file-I/O
// device uses for guest-requested paths: absolute paths are rejected
// outright, and the cleaned join is checked with filepath.Rel so a name
// that climbs out of baseDir is rejected. ".." segments that stay inside
// baseDir (e.g. "a/../b") are accepted.
func sanitizePath(baseDir, name string) (string, error) {
	if filepath.IsAbs(name) {
		return "", fmt.Errorf("host: path %q must be relative", name)
	}
	joined := filepath.Join(baseDir, name)
	rel, err := filepath.Rel(baseDir, joined)
	if err != nil {
		return "", fmt.Errorf("host: path %q does not resolve under %q: %w", name, baseDir, err)
	}
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", fmt.Errorf("host: path %q escapes %q", name, baseDir)
	}
	return joined, nil
}

// LoadProgramFile reads a host.ProgramHeader-prefixed program file from
// disk, confined to baseDir (spec.md §6.3), and returns the parsed header
// alongside the ROM bytes ready to hand to host.NewMachine.
func LoadProgramFile(baseDir, name string) (ProgramHeader, []byte, error) {
	path, err := sanitizePath(baseDir, name)
	if err != nil {
		return ProgramHeader{}, nil, err
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return ProgramHeader{}, nil, fmt.Errorf("host: reading %q: %w", path, err)
	}
	return ParseHeader(raw)
}

// SaveProgramFile writes a ProgramHeader-prefixed program file, confined
// to baseDir.
func SaveProgramFile(baseDir, name string, h ProgramHeader, rom []byte) error {
	path, err := sanitizePath(baseDir, name)
	if err != nil {
		return err
	}
	return os.WriteFile(path, EncodeHeader(h, rom), 0o644)
}
