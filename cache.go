package editorui

import (
	"bytes"
	"unsafe"

	"github.com/pluginfx/editorui/gui"
)

// The draw-output cache holds an owned deep copy of the last frame whose
// output differed. Comparing a freshly computed frame against it decides
// whether a repaint request is worth sending to the host. The comparison
// is structural and binary: reordered but equivalent draws, or floats
// with a different bit pattern, count as different. Brute force, but the
// frames arrive at UI rates, not render rates.

// cacheEquals reports whether the draw output matches the cached copy:
// same list count, and per list pair identical flags plus command, index
// and vertex buffers matching in element count and raw byte content.
// Any mismatch short-circuits.
func (e *Editor) cacheEquals(data *gui.DrawData) bool {
	if data == nil || !data.Valid {
		return len(e.cache) == 0
	}
	if len(data.Lists) != len(e.cache) {
		return false
	}

	for i, a := range data.Lists {
		b := e.cache[i]
		if a.Flags != b.Flags {
			return false
		}
		if !buffersEqual(a.CmdBuffer, b.CmdBuffer) {
			return false
		}
		if !buffersEqual(a.IdxBuffer, b.IdxBuffer) {
			return false
		}
		if !buffersEqual(a.VtxBuffer, b.VtxBuffer) {
			return false
		}
	}

	return true
}

// updateCache replaces the cache with deep copies of the new output.
// The GUI context recycles its lists on the next frame, so retaining them
// directly would leave the cache pointing at reused buffers. The previous
// copies go back to the draw-list pool.
func (e *Editor) updateCache(data *gui.DrawData) {
	e.releaseCache()
	if data == nil || !data.Valid {
		return
	}

	for _, src := range data.Lists {
		dst := gui.AcquireDrawList()
		dst.CopyFrom(src)
		e.cache = append(e.cache, dst)
	}
}

// releaseCache returns the owned copies to the pool.
func (e *Editor) releaseCache() {
	for i, dl := range e.cache {
		gui.ReleaseDrawList(dl)
		e.cache[i] = nil
	}
	e.cache = e.cache[:0]
}

// buffersEqual reports whether two buffers match in element count and in
// raw byte content.
func buffersEqual[T any](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	return bytes.Equal(rawBytes(a), rawBytes(b))
}

// rawBytes views a slice's backing array as bytes. The element types used
// here (DrawCmd, uint16, Vertex) are flat and pointer-free.
func rawBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	var elem T
	return unsafe.Slice((*byte)(unsafe.Pointer(&s[0])), len(s)*int(unsafe.Sizeof(elem)))
}
