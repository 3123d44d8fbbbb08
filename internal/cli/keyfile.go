package cli

import (
	"encoding/pem"
	"fmt"
	"io"
	"os"

	"github.com/pornin/go-mceliece/mceliece"
)

// PEM block types for the four key kinds.
const (
	pemPublicKey      = "MCELIECE PUBLIC KEY"
	pemPrivateKey     = "MCELIECE PRIVATE KEY"
	pemCCA2PublicKey  = "MCELIECE CCA2 PUBLIC KEY"
	pemCCA2PrivateKey = "MCELIECE CCA2 PRIVATE KEY"
)

func pemType(k mceliece.Key) string {
	switch k.(type) {
	case *mceliece.PublicKey:
		return pemPublicKey
	case *mceliece.PrivateKey:
		return pemPrivateKey
	case *mceliece.CCA2PublicKey:
		return pemCCA2PublicKey
	case *mceliece.CCA2PrivateKey:
		return pemCCA2PrivateKey
	default:
		return ""
	}
}

// encodeKeyPEM armours the binary encoding of k.
func encodeKeyPEM(k mceliece.Key) []byte {
	return pem.EncodeToMemory(&pem.Block{
		Type:  pemType(k),
		Bytes: k.Bytes(),
	})
}

// decodeKeyPEM parses a PEM-armoured key. The block type must agree with
// the key kind found in the encoding.
func decodeKeyPEM(data []byte) (mceliece.Key, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found")
	}
	k, err := mceliece.DecodeKey(block.Bytes)
	if err != nil {
		return nil, err
	}
	if pemType(k) != block.Type {
		return nil, fmt.Errorf("PEM type %q does not match key contents", block.Type)
	}
	return k, nil
}

func writeKeyFile(path string, k mceliece.Key, perm os.FileMode) error {
	if err := os.WriteFile(path, encodeKeyPEM(k), perm); err != nil {
		return fmt.Errorf("failed to write key: %w", err)
	}
	return nil
}

func readKeyFile(path string) (mceliece.Key, error) {
	if path == "" {
		return nil, fmt.Errorf("no key file given (--key)")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read key: %w", err)
	}
	k, err := decodeKeyPEM(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return k, nil
}

// readInput reads all of path, or of stdin for "-".
func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" || path == "" {
		return io.ReadAll(stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes data to path, or to stdout for "-".
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "-" || path == "" {
		_, err := stdout.Write(data)
		return err
	}
	return os.WriteFile(path, data, 0644)
}
