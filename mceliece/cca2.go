package mceliece

import (
	"crypto"
	"fmt"
	"io"
	"strings"
)

// Scheme identifies one of the CCA2 conversions.
type Scheme int

const (
	FujisakiOkamoto Scheme = iota + 1
	KobaraImai
	Pointcheval
)

// Canonical scheme names, and the short aliases accepted by
// ParseScheme. Read-only.
var scheme_names = map[Scheme]string{
	FujisakiOkamoto: "fujisaki-okamoto",
	KobaraImai:      "kobara-imai",
	Pointcheval:     "pointcheval",
}

var scheme_aliases = map[string]Scheme{
	"fo":               FujisakiOkamoto,
	"fujisaki-okamoto": FujisakiOkamoto,
	"ki":               KobaraImai,
	"kobara-imai":      KobaraImai,
	"pc":               Pointcheval,
	"pointcheval":      Pointcheval,
}

// String implements fmt.Stringer.
func (s Scheme) String() string {
	if name, ok := scheme_names[s]; ok {
		return name
	}
	return fmt.Sprintf("Scheme(%d)", int(s))
}

// ParseScheme returns the scheme for a name ("fo", "ki", "pc" or the
// full names), case-insensitive.
func ParseScheme(name string) (Scheme, error) {
	if s, ok := scheme_aliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: unknown scheme %q", ErrInvalidParameter, name)
}

// EncryptCCA2 encrypts msg with the selected conversion.
func EncryptCCA2(scheme Scheme, rng io.Reader, pub *CCA2PublicKey,
	id crypto.Hash, msg []byte) ([]byte, error) {

	switch scheme {
	case FujisakiOkamoto:
		return EncryptFujisakiOkamoto(rng, pub, id, msg)
	case KobaraImai:
		return EncryptKobaraImai(rng, pub, id, msg)
	case Pointcheval:
		return EncryptPointcheval(rng, pub, id, msg)
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, scheme)
	}
}

// DecryptCCA2 decrypts ct with the selected conversion.
func DecryptCCA2(scheme Scheme, priv *CCA2PrivateKey,
	id crypto.Hash, ct []byte) ([]byte, error) {

	switch scheme {
	case FujisakiOkamoto:
		return DecryptFujisakiOkamoto(priv, id, ct)
	case KobaraImai:
		return DecryptKobaraImai(priv, id, ct)
	case Pointcheval:
		return DecryptPointcheval(priv, id, ct)
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, scheme)
	}
}
