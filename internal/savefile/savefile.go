// Package savefile reads and writes the gzip container Heroes3 savegames
// ship in, and slices hero byte regions out of the decompressed payload at
// caller-supplied offsets. It never derives offsets from the payload.
package savefile

import (
	"bytes"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"heroedit/internal/errors"
)

var gzipMagic = []byte{0x1f, 0x8b}

// Open reads a savegame and returns its decompressed payload. Files without
// the gzip magic are returned as-is; some tools store saves uncompressed.
func Open(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading savegame %s", path)
	}
	if !bytes.HasPrefix(raw, gzipMagic) {
		return raw, nil
	}
	zr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "opening gzip stream in %s", path)
	}
	defer func() { _ = zr.Close() }()
	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, errors.Wrapf(err, "decompressing savegame %s", path)
	}
	return data, nil
}

// Save writes the payload back as a gzip container.
func Save(path string, data []byte) error {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		return errors.Wrap(err, "compressing savegame")
	}
	if err := zw.Close(); err != nil {
		return errors.Wrap(err, "compressing savegame")
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "writing savegame %s", path)
	}
	return nil
}

// Backup copies the file next to itself with a .bak suffix, overwriting
// any existing backup.
func Backup(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading savegame %s", path)
	}
	if err := os.WriteFile(path+".bak", raw, 0o644); err != nil {
		return errors.Wrapf(err, "writing backup for %s", path)
	}
	return nil
}

// Region slices the hero byte region out of a decompressed payload.
func Region(data []byte, offset, size int) ([]byte, error) {
	if offset < 0 || size <= 0 || offset+size > len(data) {
		return nil, errors.OutOfRangef("hero region %d..%d outside savegame of %d bytes",
			offset, offset+size, len(data))
	}
	return data[offset : offset+size], nil
}

// Replace writes a revised hero region back into a decompressed payload at
// the same offset, returning a new payload.
func Replace(data []byte, offset int, region []byte) ([]byte, error) {
	if offset < 0 || offset+len(region) > len(data) {
		return nil, errors.OutOfRangef("hero region %d..%d outside savegame of %d bytes",
			offset, offset+len(region), len(data))
	}
	out := make([]byte, len(data))
	copy(out, data)
	copy(out[offset:], region)
	return out, nil
}
