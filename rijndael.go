// Package rijndael implements the AES-128 block cipher: encryption and decryption of a single 16-byte block under a
// 16-byte key, as specified in [FIPS 197].
//
// This is a bare primitive. Callers are responsible for composing it with a mode of operation (e.g. via
// [crypto/cipher] and NewCipher), padding, and nonce management. The implementation is table-based and makes no
// attempt to run in constant time.
//
// [FIPS 197]: https://nvlpubs.nist.gov/nistpubs/FIPS/NIST.FIPS.197-upd1.pdf
package rijndael

import (
	"errors"
	"fmt"

	"github.com/codahale/rijndael/internal/keyschedule"
	"github.com/codahale/rijndael/internal/round"
)

const (
	// BlockSize is the size of an AES block in bytes.
	BlockSize = 16

	// KeySize is the size of an AES-128 key in bytes.
	KeySize = keyschedule.KeySize

	// Rounds is the number of rounds applied to each block.
	Rounds = keyschedule.Rounds

	// ScheduleSize is the size of the expanded key schedule in bytes.
	ScheduleSize = keyschedule.Size
)

// ErrInvalidLength is returned when a block or key is not exactly 16 bytes long.
var ErrInvalidLength = errors.New("rijndael: invalid length")

// EncryptBlock encrypts a single 16-byte plaintext block with a 16-byte key and returns the ciphertext in a newly
// allocated slice. Neither argument is modified.
//
// If either argument is the wrong length, EncryptBlock returns nil and an error wrapping ErrInvalidLength.
func EncryptBlock(plaintext, key []byte) ([]byte, error) {
	if err := checkLengths("plaintext", plaintext, key); err != nil {
		return nil, err
	}

	s := keyschedule.Expand((*[KeySize]byte)(key))
	b := round.Block(plaintext)
	encrypt(&b, &s)
	return b[:], nil
}

// DecryptBlock decrypts a single 16-byte ciphertext block with a 16-byte key and returns the plaintext in a newly
// allocated slice. Neither argument is modified.
//
// If either argument is the wrong length, DecryptBlock returns nil and an error wrapping ErrInvalidLength.
func DecryptBlock(ciphertext, key []byte) ([]byte, error) {
	if err := checkLengths("ciphertext", ciphertext, key); err != nil {
		return nil, err
	}

	s := keyschedule.Expand((*[KeySize]byte)(key))
	b := round.Block(ciphertext)
	decrypt(&b, &s)
	return b[:], nil
}

func checkLengths(name string, block, key []byte) error {
	if len(block) != BlockSize {
		return fmt.Errorf("%w: %s is %d bytes, want %d", ErrInvalidLength, name, len(block), BlockSize)
	}

	return checkKey(key)
}

func checkKey(key []byte) error {
	if len(key) != KeySize {
		return fmt.Errorf("%w: key is %d bytes, want %d", ErrInvalidLength, len(key), KeySize)
	}
	return nil
}

func encrypt(b *round.Block, s *keyschedule.Schedule) {
	round.AddRoundKey(b, s.RoundKey(0))
	for r := 1; r < Rounds; r++ {
		round.Encrypt(b, s.RoundKey(r))
	}
	round.EncryptLast(b, s.RoundKey(Rounds))
}

func decrypt(b *round.Block, s *keyschedule.Schedule) {
	round.AddRoundKey(b, s.RoundKey(Rounds))
	for r := Rounds - 1; r > 0; r-- {
		round.Decrypt(b, s.RoundKey(r))
	}
	round.DecryptLast(b, s.RoundKey(0))
}
