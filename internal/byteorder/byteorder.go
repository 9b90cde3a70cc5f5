// Package byteorder detects the host's native byte order.
//
// GEOCON files are written with all multi-byte scalars in the writer's
// native order. Readers compare the file's magic number against both the
// native and byte-swapped forms to decide whether every header field and
// node must be swapped on the way in; the swap itself is done by
// parameterizing encoding/binary's Read/Write and Uint32/PutUint32 calls
// on the detected binary.ByteOrder rather than by a manual bit-reversal,
// so this package only needs to answer "which order is this host".
package byteorder

import "unsafe"

// Native reports whether the host is big-endian, by inspecting the low
// byte of the integer 1 the way the original C implementation does.
func Native() bool {
	var one uint32 = 1
	b := (*[4]byte)(unsafe.Pointer(&one))
	return b[0] == 0
}
