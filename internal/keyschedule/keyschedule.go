// Package keyschedule implements the AES-128 key expansion.
package keyschedule

import "github.com/codahale/rijndael/internal/sbox"

const (
	// KeySize is the size of a cipher key in bytes.
	KeySize = 16

	// Rounds is the number of AES-128 rounds.
	Rounds = 10

	// Size is the size of an expanded schedule in bytes: one round key for the initial AddRoundKey and one for each
	// round.
	Size = KeySize * (Rounds + 1)
)

// Schedule holds the round keys derived from a single cipher key, stored contiguously.
type Schedule [Size]byte

// Expand derives the round keys for key. The schedule is returned by value, so every caller gets its own copy.
func Expand(key *[KeySize]byte) Schedule {
	var s Schedule
	copy(s[:KeySize], key[:])

	for i := KeySize; i < Size; i += 4 {
		var w [4]byte
		copy(w[:], s[i-4:i])

		if i%KeySize == 0 {
			// RotWord, SubWord, then Rcon.
			w[0], w[1], w[2], w[3] = sbox.Sub(w[1]), sbox.Sub(w[2]), sbox.Sub(w[3]), sbox.Sub(w[0])
			w[0] ^= sbox.Rcon(i / KeySize)
		}

		for j := range 4 {
			s[i+j] = s[i-KeySize+j] ^ w[j]
		}
	}

	return s
}

// RoundKey returns a pointer to the key for round i, where round 0 is the initial AddRoundKey. It panics if i is not
// between 0 and Rounds.
func (s *Schedule) RoundKey(i int) *[KeySize]byte {
	return (*[KeySize]byte)(s[i*KeySize : (i+1)*KeySize])
}
