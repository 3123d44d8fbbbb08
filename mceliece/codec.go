package mceliece

import (
	"encoding/binary"
)

// Key encoding.
//
// Every encoded key starts with a header byte giving its kind, followed
// by the extension degree m (one byte) and the error capability t (two
// bytes, big-endian):
//
//	0x10  plain public key:  G (k rows of n bits)
//	0x11  CCA2 public key:   G (k rows of n-k bits)
//	0x20  plain private key: field polynomial, Goppa polynomial, P1, P2,
//	                         S^-1 (k rows of k bits)
//	0x21  CCA2 private key:  field polynomial, Goppa polynomial, P
//
// Matrix rows use the vector encoding, (cols+7)/8 bytes each. The field
// polynomial is over 4 bytes; the Goppa polynomial is monic and only
// its t low coefficients are stored (2 bytes each, constant term
// first); permutation entries use 2 bytes each. All multi-byte values
// are big-endian. The check matrix and the square-root matrix are
// recomputed when decoding private keys.

const (
	header_public       = 0x10
	header_cca2_public  = 0x11
	header_private      = 0x20
	header_cca2_private = 0x21
)

// Length of the common prefix: header, m, t.
const key_prefix_len = 4

func matrix_encoded_len(rows, cols int) int {
	return rows * ((cols + 7) >> 3)
}

// PublicKeySize returns the encoded length of a plain public key.
func (p *Parameters) PublicKeySize() int {
	return key_prefix_len + matrix_encoded_len(p.K(), p.N())
}

// CCA2PublicKeySize returns the encoded length of a CCA2 public key.
func (p *Parameters) CCA2PublicKeySize() int {
	return key_prefix_len + matrix_encoded_len(p.K(), p.N()-p.K())
}

// PrivateKeySize returns the encoded length of a plain private key.
func (p *Parameters) PrivateKeySize() int {
	return key_prefix_len + 4 + 2*p.t + 4*p.N() + matrix_encoded_len(p.K(), p.K())
}

// CCA2PrivateKeySize returns the encoded length of a CCA2 private key.
func (p *Parameters) CCA2PrivateKeySize() int {
	return key_prefix_len + 4 + 2*p.t + 2*p.N()
}

func encode_prefix(dst []byte, header byte, m, t int) []byte {
	dst = append(dst, header, byte(m))
	return binary.BigEndian.AppendUint16(dst, uint16(t))
}

func encode_matrix(dst []byte, a *Matrix) []byte {
	for i := 0; i < a.rows; i++ {
		dst = append(dst, a.Row(i).Bytes()...)
	}
	return dst
}

func encode_permutation(dst []byte, p *Permutation) []byte {
	for _, x := range p.perm {
		dst = binary.BigEndian.AppendUint16(dst, uint16(x))
	}
	return dst
}

func encode_code(dst []byte, f *Field, goppa []uint32) []byte {
	dst = binary.BigEndian.AppendUint32(dst, uint32(f.poly))
	for _, c := range goppa[:len(goppa)-1] {
		dst = binary.BigEndian.AppendUint16(dst, uint16(c))
	}
	return dst
}

// Bytes returns the encoded public key.
func (pk *PublicKey) Bytes() []byte {
	m := log2(pk.n)
	dst := make([]byte, 0, key_prefix_len+matrix_encoded_len(pk.g.rows, pk.g.cols))
	dst = encode_prefix(dst, header_public, m, pk.t)
	return encode_matrix(dst, pk.g)
}

// Bytes returns the encoded public key.
func (pk *CCA2PublicKey) Bytes() []byte {
	m := log2(pk.n)
	dst := make([]byte, 0, key_prefix_len+matrix_encoded_len(pk.g.rows, pk.g.cols))
	dst = encode_prefix(dst, header_cca2_public, m, pk.t)
	return encode_matrix(dst, pk.g)
}

// Bytes returns the encoded private key.
func (sk *PrivateKey) Bytes() []byte {
	m := int(sk.field.m)
	dst := make([]byte, 0, key_prefix_len+4+2*sk.t+4*sk.n+matrix_encoded_len(sk.k, sk.k))
	dst = encode_prefix(dst, header_private, m, sk.t)
	dst = encode_code(dst, sk.field, sk.goppa)
	dst = encode_permutation(dst, sk.p1)
	dst = encode_permutation(dst, sk.p2)
	return encode_matrix(dst, sk.sinv)
}

// Bytes returns the encoded private key.
func (sk *CCA2PrivateKey) Bytes() []byte {
	m := int(sk.field.m)
	dst := make([]byte, 0, key_prefix_len+4+2*sk.t+2*sk.n)
	dst = encode_prefix(dst, header_cca2_private, m, sk.t)
	dst = encode_code(dst, sk.field, sk.goppa)
	return encode_permutation(dst, sk.p)
}

// Integer base-2 logarithm of a power of two.
func log2(n int) int {
	m := 0
	for (1 << uint(m)) < n {
		m++
	}
	return m
}

// A decoder over an encoded key; the first error sticks and all later
// reads return zero values.
type key_reader struct {
	buf []byte
	err bool
}

func (r *key_reader) take(n int) []byte {
	if r.err || n > len(r.buf) {
		r.err = true
		return nil
	}
	b := r.buf[:n]
	r.buf = r.buf[n:]
	return b
}

func (r *key_reader) u16() int {
	b := r.take(2)
	if b == nil {
		return 0
	}
	return int(binary.BigEndian.Uint16(b))
}

func (r *key_reader) u32() uint32 {
	b := r.take(4)
	if b == nil {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

func (r *key_reader) matrix(rows, cols int) *Matrix {
	a := NewMatrix(rows, cols)
	rl := (cols + 7) >> 3
	for i := 0; i < rows; i++ {
		b := r.take(rl)
		if b == nil {
			return nil
		}
		v, err := VectorFromBytes(cols, b)
		if err != nil {
			r.err = true
			return nil
		}
		a.data[i] = v.bits
	}
	return a
}

func (r *key_reader) permutation(n int) *Permutation {
	s := make([]int, n)
	for i := range s {
		s[i] = r.u16()
	}
	if r.err {
		return nil
	}
	p, err := PermutationFromSlice(s)
	if err != nil {
		r.err = true
		return nil
	}
	return p
}

// Read the common prefix and check it against the expected header.
func (r *key_reader) parameters(header byte) *Parameters {
	b := r.take(2)
	if b == nil || b[0] != header {
		r.err = true
		return nil
	}
	m := int(b[1])
	t := r.u16()
	if r.err || m < 1 || m > max_key_m {
		r.err = true
		return nil
	}
	// The field polynomial is not known yet for private keys; the
	// smallest one is used to validate (m, t) only.
	params, err := NewParameters(m, t)
	if err != nil {
		r.err = true
		return nil
	}
	return params
}

// Read the field and Goppa polynomials. The Goppa polynomial must be
// irreducible of degree t.
func (r *key_reader) code(params *Parameters) (*Field, []uint32) {
	poly := uint64(r.u32())
	if r.err {
		return nil, nil
	}
	f, err := NewFieldWithPoly(params.m, poly)
	if err != nil {
		r.err = true
		return nil, nil
	}
	goppa := make([]uint32, params.t+1)
	for i := 0; i < params.t; i++ {
		goppa[i] = uint32(r.u16())
		if !f.Contains(goppa[i]) {
			r.err = true
		}
	}
	goppa[params.t] = 1
	if r.err || !poly_is_irreducible(f, goppa) {
		r.err = true
		return nil, nil
	}
	return f, goppa
}

// DecodePublicKey decodes a plain public key.
func DecodePublicKey(src []byte) (*PublicKey, error) {
	r := &key_reader{buf: src}
	params := r.parameters(header_public)
	if params == nil || len(src) != params.PublicKeySize() {
		return nil, ErrInvalidKey
	}
	g := r.matrix(params.K(), params.N())
	if r.err || len(r.buf) != 0 {
		return nil, ErrInvalidKey
	}
	return &PublicKey{n: params.N(), t: params.t, g: g}, nil
}

// DecodeCCA2PublicKey decodes a CCA2 public key.
func DecodeCCA2PublicKey(src []byte) (*CCA2PublicKey, error) {
	r := &key_reader{buf: src}
	params := r.parameters(header_cca2_public)
	if params == nil || len(src) != params.CCA2PublicKeySize() {
		return nil, ErrInvalidKey
	}
	g := r.matrix(params.K(), params.N()-params.K())
	if r.err || len(r.buf) != 0 {
		return nil, ErrInvalidKey
	}
	return &CCA2PublicKey{n: params.N(), t: params.t, g: g}, nil
}

// DecodePrivateKey decodes a plain private key. The scrambling matrix
// inverse must be invertible.
func DecodePrivateKey(src []byte) (*PrivateKey, error) {
	r := &key_reader{buf: src}
	params := r.parameters(header_private)
	if params == nil || len(src) != params.PrivateKeySize() {
		return nil, ErrInvalidKey
	}
	f, goppa := r.code(params)
	p1 := r.permutation(params.N())
	p2 := r.permutation(params.N())
	sinv := r.matrix(params.K(), params.K())
	if r.err || len(r.buf) != 0 {
		return nil, ErrInvalidKey
	}
	if _, err := sinv.Inverse(); err != nil {
		return nil, ErrInvalidKey
	}
	sk, err := new_private_key(f, goppa, nil, p1, p2, sinv)
	if err != nil {
		return nil, ErrInvalidKey
	}
	return sk, nil
}

// DecodeCCA2PrivateKey decodes a CCA2 private key.
func DecodeCCA2PrivateKey(src []byte) (*CCA2PrivateKey, error) {
	r := &key_reader{buf: src}
	params := r.parameters(header_cca2_private)
	if params == nil || len(src) != params.CCA2PrivateKeySize() {
		return nil, ErrInvalidKey
	}
	f, goppa := r.code(params)
	p := r.permutation(params.N())
	if r.err || len(r.buf) != 0 {
		return nil, ErrInvalidKey
	}
	sk, err := new_cca2_private_key(f, goppa, nil, p)
	if err != nil {
		return nil, ErrInvalidKey
	}
	return sk, nil
}

// DecodeKey decodes any key kind, selected by the header byte. The
// result is one of *PublicKey, *PrivateKey, *CCA2PublicKey or
// *CCA2PrivateKey.
func DecodeKey(src []byte) (Key, error) {
	if len(src) == 0 {
		return nil, ErrInvalidKey
	}
	var k Key
	var err error
	switch src[0] {
	case header_public:
		k, err = DecodePublicKey(src)
	case header_cca2_public:
		k, err = DecodeCCA2PublicKey(src)
	case header_private:
		k, err = DecodePrivateKey(src)
	case header_cca2_private:
		k, err = DecodeCCA2PrivateKey(src)
	default:
		err = ErrInvalidKey
	}
	if err != nil {
		return nil, err
	}
	return k, nil
}
