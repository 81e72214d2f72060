// Package codec decodes and encodes the fixed-offset byte sections of a
// hero record: army slots, worn artifacts, and the inventory list. All
// integers are little-endian. Army and inventory fields that were empty at
// load and are still empty keep their original bytes verbatim, because the
// format uses two different sentinel encodings for empty and the choice
// between them is not recoverable from logical state.
package codec

import (
	"encoding/binary"

	"heroedit/internal/errors"
)

func readU32(buf []byte, off int) uint32 {
	return binary.LittleEndian.Uint32(buf[off : off+4])
}

func readU64(buf []byte, off int) uint64 {
	return binary.LittleEndian.Uint64(buf[off : off+8])
}

func putU32(buf []byte, off int, v uint32) {
	binary.LittleEndian.PutUint32(buf[off:off+4], v)
}

func putU64(buf []byte, off int, v uint64) {
	binary.LittleEndian.PutUint64(buf[off:off+8], v)
}

// fill writes n copies of the sentinel byte at off.
func fill(buf []byte, off, n int, sentinel byte) {
	for i := 0; i < n; i++ {
		buf[off+i] = sentinel
	}
}

// allBytes reports whether the n bytes at off all equal the sentinel.
func allBytes(buf []byte, off, n int, sentinel byte) bool {
	for i := 0; i < n; i++ {
		if buf[off+i] != sentinel {
			return false
		}
	}
	return true
}

// checkBounds guards codec reads and writes against a region shorter than
// the position table promises; that mismatch is a configuration defect.
func checkBounds(buf []byte, off, n int, what string) error {
	if off < 0 || off+n > len(buf) {
		return errors.Internalf("%s at offset %d..%d outside region of %d bytes", what, off, off+n, len(buf))
	}
	return nil
}
