package rijndael_test

import (
	"bytes"
	"crypto/aes"
	"encoding/hex"
	"errors"
	"sync"
	"testing"

	"github.com/codahale/rijndael"
	"github.com/codahale/rijndael/internal/testdata"
)

var vectors = []struct { //nolint:gochecknoglobals // test vectors
	key string
	pt  string
	ct  string
}{
	// FIPS 197 Appendix C.1.
	{"000102030405060708090a0b0c0d0e0f", "00112233445566778899aabbccddeeff", "69c4e0d86a7b0430d8cdb78070b4c55a"},
	// FIPS 197 Appendix B.
	{"2b7e151628aed2a6abf7158809cf4f3c", "3243f6a8885a308d313198a2e0370734", "3925841d02dc09fbdc118597196a0b32"},
	// https://csrc.nist.gov/CSRC/media/Projects/Cryptographic-Standards-and-Guidelines/documents/examples/AES_Core128.pdf
	{"2b7e151628aed2a6abf7158809cf4f3c", "6bc1bee22e409f96e93d7e117393172a", "3ad77bb40d7a3660a89ecaf32466ef97"},
	{"2b7e151628aed2a6abf7158809cf4f3c", "ae2d8a571e03ac9c9eb76fac45af8e51", "f5d3d58503b9699de785895a96fdbaaf"},
	{"2b7e151628aed2a6abf7158809cf4f3c", "30c81c46a35ce411e5fbc1191a0a52ef", "43b1cd7f598ece23881b00e3ed030688"},
	{"2b7e151628aed2a6abf7158809cf4f3c", "f69f2445df4f9b17ad2b417be66c3710", "7b0c785e27e8ad3f8223207104725dd4"},
	// All zeros.
	{"00000000000000000000000000000000", "00000000000000000000000000000000", "66e94bd4ef8a2c3b884cfa59ca342b2e"},
}

func TestEncryptBlock(t *testing.T) {
	for _, tt := range vectors {
		key, pt := decode(t, tt.key), decode(t, tt.pt)

		ct, err := rijndael.EncryptBlock(pt, key)
		if err != nil {
			t.Fatal(err)
		}

		if got, want := hex.EncodeToString(ct), tt.ct; got != want {
			t.Errorf("EncryptBlock(%s, %s) = %s, want = %s", tt.pt, tt.key, got, want)
		}
	}
}

func TestDecryptBlock(t *testing.T) {
	for _, tt := range vectors {
		key, ct := decode(t, tt.key), decode(t, tt.ct)

		pt, err := rijndael.DecryptBlock(ct, key)
		if err != nil {
			t.Fatal(err)
		}

		if got, want := hex.EncodeToString(pt), tt.pt; got != want {
			t.Errorf("DecryptBlock(%s, %s) = %s, want = %s", tt.ct, tt.key, got, want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	drbg := testdata.New("rijndael round trip")
	for range 1000 {
		key, pt := drbg.Data(rijndael.KeySize), drbg.Data(rijndael.BlockSize)

		ct, err := rijndael.EncryptBlock(pt, key)
		if err != nil {
			t.Fatal(err)
		}

		got, err := rijndael.DecryptBlock(ct, key)
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(got, pt) {
			t.Fatalf("DecryptBlock(EncryptBlock(%x, %x)) = %x", pt, key, got)
		}
	}
}

func TestMatchesCryptoAES(t *testing.T) {
	drbg := testdata.New("rijndael crypto/aes")
	for range 1000 {
		key, pt := drbg.Data(rijndael.KeySize), drbg.Data(rijndael.BlockSize)

		ref, err := aes.NewCipher(key)
		if err != nil {
			t.Fatal(err)
		}
		want := make([]byte, aes.BlockSize)
		ref.Encrypt(want, pt)

		got, err := rijndael.EncryptBlock(pt, key)
		if err != nil {
			t.Fatal(err)
		}

		if !bytes.Equal(got, want) {
			t.Fatalf("EncryptBlock(%x, %x) = %x, want = %x", pt, key, got, want)
		}
	}
}

func TestInputsAreNotModified(t *testing.T) {
	key := decode(t, "000102030405060708090a0b0c0d0e0f")
	pt := decode(t, "00112233445566778899aabbccddeeff")
	keyCopy, ptCopy := bytes.Clone(key), bytes.Clone(pt)

	ct, err := rijndael.EncryptBlock(pt, key)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(key, keyCopy) || !bytes.Equal(pt, ptCopy) {
		t.Fatal("EncryptBlock modified its arguments")
	}

	ctCopy := bytes.Clone(ct)
	if _, err := rijndael.DecryptBlock(ct, key); err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(key, keyCopy) || !bytes.Equal(ct, ctCopy) {
		t.Fatal("DecryptBlock modified its arguments")
	}
}

func TestInvalidLength(t *testing.T) {
	ok := make([]byte, 16)
	ops := []struct {
		name string
		f    func(block, key []byte) ([]byte, error)
	}{
		{"EncryptBlock", rijndael.EncryptBlock},
		{"DecryptBlock", rijndael.DecryptBlock},
	}

	for _, op := range ops {
		for _, n := range []int{0, 15, 17, 32} {
			bad := make([]byte, n)

			out, err := op.f(bad, ok)
			if !errors.Is(err, rijndael.ErrInvalidLength) {
				t.Errorf("%s(block[%d]) error = %v, want = %v", op.name, n, err, rijndael.ErrInvalidLength)
			}
			if out != nil {
				t.Errorf("%s(block[%d]) = %x, want nil", op.name, n, out)
			}

			out, err = op.f(ok, bad)
			if !errors.Is(err, rijndael.ErrInvalidLength) {
				t.Errorf("%s(key[%d]) error = %v, want = %v", op.name, n, err, rijndael.ErrInvalidLength)
			}
			if out != nil {
				t.Errorf("%s(key[%d]) = %x, want nil", op.name, n, out)
			}
		}
	}
}

func TestConcurrentKeys(t *testing.T) {
	drbg := testdata.New("rijndael concurrency")
	type job struct {
		key, pt, ct []byte
	}

	jobs := make([]job, 32)
	for i := range jobs {
		key, pt := drbg.Data(rijndael.KeySize), drbg.Data(rijndael.BlockSize)
		ct, err := rijndael.EncryptBlock(pt, key)
		if err != nil {
			t.Fatal(err)
		}
		jobs[i] = job{key: key, pt: pt, ct: ct}
	}

	var wg sync.WaitGroup
	for _, j := range jobs {
		wg.Go(func() {
			for range 200 {
				ct, err := rijndael.EncryptBlock(j.pt, j.key)
				if err != nil || !bytes.Equal(ct, j.ct) {
					t.Errorf("EncryptBlock(%x, %x) = %x, %v; want = %x", j.pt, j.key, ct, err, j.ct)
					return
				}

				pt, err := rijndael.DecryptBlock(j.ct, j.key)
				if err != nil || !bytes.Equal(pt, j.pt) {
					t.Errorf("DecryptBlock(%x, %x) = %x, %v; want = %x", j.ct, j.key, pt, err, j.pt)
					return
				}
			}
		})
	}
	wg.Wait()
}

func decode(tb testing.TB, s string) []byte {
	tb.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		tb.Fatal(err)
	}
	return b
}
