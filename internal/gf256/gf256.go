// Package gf256 implements arithmetic in GF(2^8) modulo the AES polynomial x^8 + x^4 + x^3 + x + 1.
package gf256

// Poly is the low byte of the reducing polynomial; the x^8 term is implicit.
const Poly = 0x1b

// Xtime multiplies a by x (i.e. 2) in GF(2^8).
func Xtime(a byte) byte {
	return a<<1 ^ (a>>7)*Poly
}

// Mul multiplies a and b in GF(2^8) using double-and-add.
func Mul(a, b byte) byte {
	var p byte
	for range 8 {
		if b&1 != 0 {
			p ^= a
		}
		a = Xtime(a)
		b >>= 1
	}
	return p
}

// Inv returns the multiplicative inverse of a, or zero if a is zero.
func Inv(a byte) byte {
	// a^254 using the same addition chain as the bitsliced S-box: a^2 * a^4 * ... * a^128.
	x2 := Mul(a, a)
	x4 := Mul(x2, x2)
	x8 := Mul(x4, x4)
	x16 := Mul(x8, x8)
	x32 := Mul(x16, x16)
	x64 := Mul(x32, x32)
	x128 := Mul(x64, x64)

	res := x2
	res = Mul(res, x4)
	res = Mul(res, x8)
	res = Mul(res, x16)
	res = Mul(res, x32)
	res = Mul(res, x64)
	res = Mul(res, x128)
	return res
}
