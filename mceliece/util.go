package mceliece

import (
	"crypto"
	"crypto/rand"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"hash"
	"io"
	"strings"

	sha3 "golang.org/x/crypto/sha3"
)

// Utility functions.

// Size of the seed extracted from the caller's random source before
// any deterministic sampling takes place.
const seed_len = 32

// Read a fresh seed from the provided random source (nil to use the OS
// RNG).
func read_seed(rng io.Reader) ([]byte, error) {
	if rng == nil {
		rng = rand.Reader
	}
	seed := make([]byte, seed_len)
	if _, err := io.ReadFull(rng, seed); err != nil {
		return nil, err
	}
	return seed, nil
}

// Get a new hash instance for the provided identifier. Supported
// functions are SHA-1, SHA-224, SHA-256, SHA-384, SHA-512, SHA3-256 and
// SHA3-512.
func new_digest(id crypto.Hash) (hash.Hash, error) {
	switch id {
	case crypto.SHA1:
		return sha1.New(), nil
	case crypto.SHA224:
		return sha256.New224(), nil
	case crypto.SHA256:
		return sha256.New(), nil
	case crypto.SHA384:
		return sha512.New384(), nil
	case crypto.SHA512:
		return sha512.New(), nil
	case crypto.SHA3_256:
		return sha3.New256(), nil
	case crypto.SHA3_512:
		return sha3.New512(), nil
	default:
		return nil, ErrUnsupportedHash
	}
}

// SupportedHashes lists the digest identifiers accepted by the CCA2
// conversions.
var SupportedHashes = []crypto.Hash{
	crypto.SHA1, crypto.SHA224, crypto.SHA256, crypto.SHA384,
	crypto.SHA512, crypto.SHA3_256, crypto.SHA3_512,
}

// Names of the supported digests, as accepted by ParseHash. Read-only.
var hash_names = map[string]crypto.Hash{
	"sha1":     crypto.SHA1,
	"sha224":   crypto.SHA224,
	"sha256":   crypto.SHA256,
	"sha384":   crypto.SHA384,
	"sha512":   crypto.SHA512,
	"sha3-256": crypto.SHA3_256,
	"sha3-512": crypto.SHA3_512,
}

// ParseHash returns the digest identifier for a name such as "sha256",
// "SHA-256" or "sha3-512".
func ParseHash(name string) (crypto.Hash, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if id, ok := hash_names[s]; ok {
		return id, nil
	}
	// Accept the hyphenated SHA-2 forms ("sha-256").
	if id, ok := hash_names[strings.Replace(s, "sha-", "sha", 1)]; ok {
		return id, nil
	}
	return 0, ErrUnsupportedHash
}

// Hash the concatenation of the provided chunks.
func digest_concat(id crypto.Hash, chunks ...[]byte) ([]byte, error) {
	h, err := new_digest(id)
	if err != nil {
		return nil, err
	}
	for _, c := range chunks {
		h.Write(c)
	}
	return h.Sum(nil), nil
}

// XOR dst with the SHAKE256 keystream derived from seed. This is the
// PRNG used by the CCA2 conversions to mask message bytes.
func xor_keystream(seed []byte, dst []byte) {
	sh := sha3.NewShake256()
	sh.Write(seed)
	var buf [136]byte
	for off := 0; off < len(dst); off += len(buf) {
		sh.Read(buf[:])
		end := off + len(buf)
		if end > len(dst) {
			end = len(dst)
		}
		for i := off; i < end; i++ {
			dst[i] ^= buf[i-off]
		}
	}
}

// A deterministic PRNG based on SHAKE256. All sampling during key
// generation goes through this object, so that the whole process is
// reproducible from the seed and cannot fail once the seed is obtained.
type shake_prng struct {
	state sha3.ShakeHash
	buf   [136]byte
	ptr   int
}

// Create a new PRNG, initialized with the provided seed.
func new_shake_prng(seed []byte) *shake_prng {
	r := new(shake_prng)
	r.state = sha3.NewShake256()
	r.state.Write(seed)
	r.ptr = len(r.buf)
	return r
}

// NewSeededReader returns a deterministic random source that outputs
// the SHAKE256 stream of the provided seed. It never fails. This is
// convenient for reproducible key generation in tests; the seed MUST be
// secret and have enough entropy when used for real keys.
func NewSeededReader(seed []byte) io.Reader {
	return new_shake_prng(seed)
}

// Read implements io.Reader.
func (r *shake_prng) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = r.next_u8()
	}
	return len(p), nil
}

// Get next byte.
func (r *shake_prng) next_u8() uint8 {
	ptr := r.ptr
	if ptr == len(r.buf) {
		r.refill()
		ptr = 0
	}
	r.ptr = ptr + 1
	return r.buf[ptr]
}

// Get next 32-bit value (little-endian).
func (r *shake_prng) next_u32() uint32 {
	ptr := r.ptr
	if ptr >= (len(r.buf) - 3) {
		r.refill()
		ptr = 0
	}
	r.ptr = ptr + 4
	return uint32(r.buf[ptr]) | (uint32(r.buf[ptr+1]) << 8) |
		(uint32(r.buf[ptr+2]) << 16) | (uint32(r.buf[ptr+3]) << 24)
}

// Get a uniform value in [0, bound-1]; bound MUST be non-zero.
// Rejection sampling on the smallest enclosing power of two.
func (r *shake_prng) next_below(bound uint32) uint32 {
	mask := uint32(0xFFFFFFFF)
	if bound <= 0x80000000 {
		mask = next_pow2(bound) - 1
	}
	for {
		x := r.next_u32() & mask
		if x < bound {
			return x
		}
	}
}

// Refill the output buffer.
func (r *shake_prng) refill() {
	r.state.Read(r.buf[:])
	r.ptr = 0
}

// Smallest power of two which is not lower than x (x <= 2^31).
func next_pow2(x uint32) uint32 {
	p := uint32(1)
	for p < x {
		p <<= 1
	}
	return p
}
