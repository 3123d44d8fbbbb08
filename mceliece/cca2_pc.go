package mceliece

import (
	"crypto"
	"crypto/subtle"
	"io"
)

// Pointcheval conversion.
//
// A random r' of k bits is the message of the McEliece primitive, and a
// random r of k/8 bytes is appended to the message. The error vector is
// derived from H(m || r) and (m || r) is masked with the keystream
// seeded by r':
//
//	c1 = r'*G + Encode(n, t, H(m || r))
//	c2 = (m || r) XOR PRNG(r')
//
// The ciphertext is c1 || c2.

// EncryptPointcheval encrypts msg (of any length) with the Pointcheval
// conversion. Parameters are as for [EncryptFujisakiOkamoto].
func EncryptPointcheval(rng io.Reader, pub *CCA2PublicKey,
	id crypto.Hash, msg []byte) ([]byte, error) {

	if _, err := new_digest(id); err != nil {
		return nil, err
	}
	seed, err := read_seed(rng)
	if err != nil {
		return nil, err
	}
	return pc_encrypt_seeded(seed, pub, id, msg)
}

func pc_encrypt_seeded(seed []byte, pub *CCA2PublicKey,
	id crypto.Hash, msg []byte) ([]byte, error) {

	pc := new_shake_prng(seed)
	k := pub.K()
	rp := random_vector(k, pc)
	mr := make([]byte, len(msg)+(k>>3))
	copy(mr, msg)
	pc.Read(mr[len(msg):])

	hv, err := digest_concat(id, mr)
	if err != nil {
		return nil, err
	}
	z, err := digest_to_error_vector(pub.n, pub.t, hv)
	if err != nil {
		return nil, err
	}
	c1, err := pub.EncryptPrimitive(rp, z)
	if err != nil {
		return nil, err
	}
	xor_keystream(rp.Bytes(), mr)
	return append(c1.Bytes(), mr...), nil
}

// DecryptPointcheval decrypts a ciphertext produced by
// [EncryptPointcheval]. Any failure yields ErrInvalidCiphertext.
func DecryptPointcheval(priv *CCA2PrivateKey,
	id crypto.Hash, ct []byte) ([]byte, error) {

	if _, err := new_digest(id); err != nil {
		return nil, err
	}
	c1Len := (priv.n + 7) >> 3
	rLen := priv.k >> 3
	if len(ct) < c1Len+rLen {
		return nil, ErrInvalidCiphertext
	}
	c1, err := VectorFromBytes(priv.n, ct[:c1Len])
	if err != nil {
		return nil, ErrInvalidCiphertext
	}

	rp, z, ok := priv.decrypt_primitive(c1)
	mr := make([]byte, len(ct)-c1Len)
	copy(mr, ct[c1Len:])
	xor_keystream(rp.Bytes(), mr)

	hv, _ := digest_concat(id, mr)
	z2, _ := digest_to_error_vector(priv.n, priv.t, hv)
	ok &= subtle.ConstantTimeCompare(z2.Bytes(), z.Bytes())
	if ok != 1 {
		return nil, ErrInvalidCiphertext
	}
	return mr[:len(mr)-rLen], nil
}
