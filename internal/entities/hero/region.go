package hero

import (
	"heroedit/internal/errors"
)

// ByteRegion is the hero's contiguous byte range within the save file. It
// holds a mutable current buffer and an immutable original buffer captured
// once at load. Both buffers always have the same length; only the current
// buffer is ever written.
type ByteRegion struct {
	current  []byte
	original []byte
}

// NewByteRegion captures raw as both the original and the initial current
// buffer. The input slice is copied; the region does not alias caller memory.
func NewByteRegion(raw []byte) *ByteRegion {
	r := &ByteRegion{
		current:  make([]byte, len(raw)),
		original: make([]byte, len(raw)),
	}
	copy(r.current, raw)
	copy(r.original, raw)
	return r
}

// Len returns the region length in bytes.
func (r *ByteRegion) Len() int {
	return len(r.current)
}

// Current returns the live current buffer. Codecs borrow it for the duration
// of a decode call; callers must not retain it across edits.
func (r *ByteRegion) Current() []byte {
	return r.current
}

// Original returns the load-time buffer. Callers must treat it as read-only.
func (r *ByteRegion) Original() []byte {
	return r.original
}

// CloneCurrent returns a copy of the current buffer for encoders to write
// into, leaving the region untouched until SetCurrent.
func (r *ByteRegion) CloneCurrent() []byte {
	out := make([]byte, len(r.current))
	copy(out, r.current)
	return out
}

// SetCurrent replaces the current buffer. The replacement must match the
// region length.
func (r *ByteRegion) SetCurrent(b []byte) error {
	if len(b) != len(r.current) {
		return errors.InvalidArgumentf("buffer length %d does not match region length %d", len(b), len(r.current))
	}
	copy(r.current, b)
	return nil
}
