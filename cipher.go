package rijndael

import (
	"crypto/cipher"

	"github.com/codahale/rijndael/internal/keyschedule"
	"github.com/codahale/rijndael/internal/mem"
	"github.com/codahale/rijndael/internal/round"
)

// NewCipher returns a cipher.Block which encrypts and decrypts with the given 16-byte key, for use with the modes of
// operation in [crypto/cipher].
//
// The key is expanded once, into storage owned by the returned value, and is never modified afterward, so the
// returned cipher.Block is safe for concurrent use.
func NewCipher(key []byte) (cipher.Block, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}

	return &blockCipher{s: keyschedule.Expand((*[KeySize]byte)(key))}, nil
}

type blockCipher struct {
	s keyschedule.Schedule
}

func (c *blockCipher) BlockSize() int {
	return BlockSize
}

func (c *blockCipher) Encrypt(dst, src []byte) {
	checkBuffers(dst, src)
	b := round.Block(src[:BlockSize])
	encrypt(&b, &c.s)
	copy(dst, b[:])
}

func (c *blockCipher) Decrypt(dst, src []byte) {
	checkBuffers(dst, src)
	b := round.Block(src[:BlockSize])
	decrypt(&b, &c.s)
	copy(dst, b[:])
}

func checkBuffers(dst, src []byte) {
	if len(src) < BlockSize {
		panic("rijndael: input not full block")
	}

	if len(dst) < BlockSize {
		panic("rijndael: output not full block")
	}

	if mem.InexactOverlap(dst[:BlockSize], src[:BlockSize]) {
		panic("rijndael: invalid buffer overlap")
	}
}

var _ cipher.Block = (*blockCipher)(nil)
