// Package mem contains byte-slice helpers shared by the cipher packages.
package mem

import (
	"crypto/subtle"
	"unsafe"
)

// XOR XORs a and b into dst. Uses subtle.XORBytes for slices larger than 16 bytes and a scalar loop for a single
// block or less.
func XOR(dst, a, b []byte) {
	if len(dst) > 16 {
		subtle.XORBytes(dst, a, b)
	} else {
		for i := range dst {
			dst[i] = a[i] ^ b[i]
		}
	}
}

// AnyOverlap reports whether x and y share memory at any (not necessarily corresponding) index.
func AnyOverlap(x, y []byte) bool {
	return len(x) > 0 && len(y) > 0 &&
		uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}

// InexactOverlap reports whether x and y share memory at any non-corresponding index. Buffers which start at the
// same address are allowed to overlap, which is what in-place encryption and decryption look like.
func InexactOverlap(x, y []byte) bool {
	if len(x) == 0 || len(y) == 0 || &x[0] == &y[0] {
		return false
	}
	return AnyOverlap(x, y)
}
