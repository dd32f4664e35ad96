// Package round implements the AES state transformations and their inverses.
//
// A Block is a 4x4 matrix of bytes stored in column-major order: the byte at row r and column c is b[4*c+r]. Every
// transformation mutates its block in place.
package round

import (
	"github.com/codahale/rijndael/internal/gf256"
	"github.com/codahale/rijndael/internal/mem"
	"github.com/codahale/rijndael/internal/sbox"
)

// Block is the AES state.
type Block [16]byte

// Encrypt applies one full encryption round: SubBytes, ShiftRows, MixColumns, and AddRoundKey.
func Encrypt(b *Block, rk *[16]byte) {
	SubBytes(b)
	ShiftRows(b)
	MixColumns(b)
	AddRoundKey(b, rk)
}

// EncryptLast applies the final encryption round, which omits MixColumns.
func EncryptLast(b *Block, rk *[16]byte) {
	SubBytes(b)
	ShiftRows(b)
	AddRoundKey(b, rk)
}

// Decrypt applies one full decryption round: InvShiftRows, InvSubBytes, AddRoundKey, and InvMixColumns.
func Decrypt(b *Block, rk *[16]byte) {
	InvShiftRows(b)
	InvSubBytes(b)
	AddRoundKey(b, rk)
	InvMixColumns(b)
}

// DecryptLast applies the final decryption round, which omits InvMixColumns.
func DecryptLast(b *Block, rk *[16]byte) {
	InvShiftRows(b)
	InvSubBytes(b)
	AddRoundKey(b, rk)
}

// SubBytes replaces each byte with its forward S-box value.
func SubBytes(b *Block) {
	for i := range b {
		b[i] = sbox.Sub(b[i])
	}
}

// InvSubBytes replaces each byte with its inverse S-box value.
func InvSubBytes(b *Block) {
	for i := range b {
		b[i] = sbox.InvSub(b[i])
	}
}

// ShiftRows rotates row r left by r columns.
func ShiftRows(b *Block) {
	// Row 1: [a b c d] -> [b c d a]
	b[1], b[5], b[9], b[13] = b[5], b[9], b[13], b[1]
	// Row 2: [a b c d] -> [c d a b]
	b[2], b[6], b[10], b[14] = b[10], b[14], b[2], b[6]
	// Row 3: [a b c d] -> [d a b c]
	b[3], b[7], b[11], b[15] = b[15], b[3], b[7], b[11]
}

// InvShiftRows rotates row r right by r columns.
func InvShiftRows(b *Block) {
	b[1], b[5], b[9], b[13] = b[13], b[1], b[5], b[9]
	b[2], b[6], b[10], b[14] = b[10], b[14], b[2], b[6]
	b[3], b[7], b[11], b[15] = b[7], b[11], b[15], b[3]
}

// MixColumns multiplies each column by the fixed polynomial {03}x^3 + {01}x^2 + {01}x + {02}.
func MixColumns(b *Block) {
	for c := 0; c < 16; c += 4 {
		a0, a1, a2, a3 := b[c], b[c+1], b[c+2], b[c+3]
		t := a0 ^ a1 ^ a2 ^ a3
		b[c] = a0 ^ t ^ gf256.Xtime(a0^a1)
		b[c+1] = a1 ^ t ^ gf256.Xtime(a1^a2)
		b[c+2] = a2 ^ t ^ gf256.Xtime(a2^a3)
		b[c+3] = a3 ^ t ^ gf256.Xtime(a3^a0)
	}
}

// InvMixColumns multiplies each column by {0b}x^3 + {0d}x^2 + {09}x + {0e}, the inverse of the MixColumns
// polynomial.
func InvMixColumns(b *Block) {
	for c := 0; c < 16; c += 4 {
		a0, a1, a2, a3 := b[c], b[c+1], b[c+2], b[c+3]
		b[c] = gf256.Mul(a0, 0x0e) ^ gf256.Mul(a1, 0x0b) ^ gf256.Mul(a2, 0x0d) ^ gf256.Mul(a3, 0x09)
		b[c+1] = gf256.Mul(a0, 0x09) ^ gf256.Mul(a1, 0x0e) ^ gf256.Mul(a2, 0x0b) ^ gf256.Mul(a3, 0x0d)
		b[c+2] = gf256.Mul(a0, 0x0d) ^ gf256.Mul(a1, 0x09) ^ gf256.Mul(a2, 0x0e) ^ gf256.Mul(a3, 0x0b)
		b[c+3] = gf256.Mul(a0, 0x0b) ^ gf256.Mul(a1, 0x0d) ^ gf256.Mul(a2, 0x09) ^ gf256.Mul(a3, 0x0e)
	}
}

// AddRoundKey XORs the round key into the block. It is its own inverse.
func AddRoundKey(b *Block, rk *[16]byte) {
	mem.XOR(b[:], b[:], rk[:])
}
