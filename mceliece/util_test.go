package mceliece

import (
	"bytes"
	"crypto"
	"errors"
	"testing"
)

var size_params = []struct {
	m, t int
}{
	{4, 2}, {8, 8}, {11, 50},
}

func TestPublicKeySize(t *testing.T) {
	var expected = []int{20, 6148, 383492}
	for i, sp := range size_params {
		p, err := NewParameters(sp.m, sp.t)
		if err != nil {
			t.Fatal(err)
		}
		s := p.PublicKeySize()
		if s != expected[i] {
			t.Fatalf("ERR: m=%d t=%d -> %d (exp: %d)\n", sp.m, sp.t, s, expected[i])
		}
	}
}

func TestCCA2PublicKeySize(t *testing.T) {
	var expected = []int{12, 1540, 103366}
	for i, sp := range size_params {
		p, err := NewParameters(sp.m, sp.t)
		if err != nil {
			t.Fatal(err)
		}
		s := p.CCA2PublicKeySize()
		if s != expected[i] {
			t.Fatalf("ERR: m=%d t=%d -> %d (exp: %d)\n", sp.m, sp.t, s, expected[i])
		}
	}
}

func TestPrivateKeySize(t *testing.T) {
	var expected = []int{84, 5656, 289924}
	for i, sp := range size_params {
		p, err := NewParameters(sp.m, sp.t)
		if err != nil {
			t.Fatal(err)
		}
		s := p.PrivateKeySize()
		if s != expected[i] {
			t.Fatalf("ERR: m=%d t=%d -> %d (exp: %d)\n", sp.m, sp.t, s, expected[i])
		}
	}
}

func TestCCA2PrivateKeySize(t *testing.T) {
	var expected = []int{44, 536, 4204}
	for i, sp := range size_params {
		p, err := NewParameters(sp.m, sp.t)
		if err != nil {
			t.Fatal(err)
		}
		s := p.CCA2PrivateKeySize()
		if s != expected[i] {
			t.Fatalf("ERR: m=%d t=%d -> %d (exp: %d)\n", sp.m, sp.t, s, expected[i])
		}
	}
}

func TestSeededReader(t *testing.T) {
	seed := []byte("seeded reader")
	var b1, b2 [300]byte
	NewSeededReader(seed).Read(b1[:])
	r := NewSeededReader(seed)
	r.Read(b2[:100])
	r.Read(b2[100:])
	if !bytes.Equal(b1[:], b2[:]) {
		t.Fatalf("ERR: seeded reader output depends on read sizes")
	}
	var b3 [300]byte
	NewSeededReader([]byte("other seed")).Read(b3[:])
	if bytes.Equal(b1[:], b3[:]) {
		t.Fatalf("ERR: distinct seeds yield the same stream")
	}
}

func TestNextBelow(t *testing.T) {
	pc := new_shake_prng([]byte("next below"))
	for _, bound := range []uint32{1, 2, 3, 7, 16, 1000, 65536, 0x80000001, 0xFFFFFFFF} {
		for i := 0; i < 200; i++ {
			x := pc.next_below(bound)
			if x >= bound {
				t.Fatalf("ERR: bound=%d -> %d\n", bound, x)
			}
		}
	}
	// All residues show up for a small bound.
	var seen [5]bool
	for i := 0; i < 200; i++ {
		seen[pc.next_below(5)] = true
	}
	for j, ok := range seen {
		if !ok {
			t.Fatalf("ERR: value %d never sampled\n", j)
		}
	}
}

func TestReadSeedShortSource(t *testing.T) {
	_, err := read_seed(bytes.NewReader(make([]byte, seed_len-1)))
	if err == nil {
		t.Fatalf("ERR: short random source accepted")
	}
}

func TestXorKeystream(t *testing.T) {
	seed := []byte("keystream")
	msg := make([]byte, 500)
	for i := range msg {
		msg[i] = byte(i)
	}
	buf := bytes.Clone(msg)
	xor_keystream(seed, buf)
	if bytes.Equal(buf, msg) {
		t.Fatalf("ERR: keystream is empty")
	}
	// The keystream is a prefix-stable stream.
	short := bytes.Clone(msg[:137])
	xor_keystream(seed, short)
	if !bytes.Equal(short, buf[:137]) {
		t.Fatalf("ERR: keystream is not prefix-stable")
	}
	xor_keystream(seed, buf)
	if !bytes.Equal(buf, msg) {
		t.Fatalf("ERR: keystream is not an involution")
	}
}

func TestParseHash(t *testing.T) {
	var tv = []struct {
		name string
		id   crypto.Hash
	}{
		{"sha1", crypto.SHA1},
		{"SHA-1", crypto.SHA1},
		{"sha224", crypto.SHA224},
		{"sha256", crypto.SHA256},
		{"SHA-256", crypto.SHA256},
		{" sha384 ", crypto.SHA384},
		{"sha512", crypto.SHA512},
		{"sha3-256", crypto.SHA3_256},
		{"SHA3-512", crypto.SHA3_512},
	}
	for _, v := range tv {
		id, err := ParseHash(v.name)
		if err != nil || id != v.id {
			t.Fatalf("ERR: %q -> %v, %v (exp: %v)\n", v.name, id, err, v.id)
		}
	}
	if _, err := ParseHash("md5"); !errors.Is(err, ErrUnsupportedHash) {
		t.Fatalf("ERR: md5 accepted (%v)\n", err)
	}
	for _, id := range SupportedHashes {
		if _, err := new_digest(id); err != nil {
			t.Fatalf("ERR: %v listed but not supported\n", id)
		}
	}
	if _, err := new_digest(crypto.MD5); !errors.Is(err, ErrUnsupportedHash) {
		t.Fatalf("ERR: MD5 digest accepted")
	}
}
