package cli

import (
	"crypto"
	"fmt"

	"github.com/pornin/go-mceliece/mceliece"
	"github.com/spf13/cobra"
)

// Flags shared by encrypt and decrypt.
func cipherFlags(cmd *cobra.Command) {
	cmd.Flags().String("key", "", "key file (PEM)")
	cmd.Flags().String("scheme", "fo", "CCA2 conversion (fo, ki, pc)")
	cmd.Flags().String("digest", "sha256", "digest function for the CCA2 conversion")
	cmd.Flags().String("in", "-", "input file (- for stdin)")
	cmd.Flags().String("out", "-", "output file (- for stdout)")
}

// Scheme and digest selected for a CCA2 operation.
func (a *app) conversion() (mceliece.Scheme, crypto.Hash, error) {
	scheme, err := mceliece.ParseScheme(a.v.GetString("scheme"))
	if err != nil {
		return 0, 0, err
	}
	id, err := mceliece.ParseHash(a.v.GetString("digest"))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", err, a.v.GetString("digest"))
	}
	return scheme, id, nil
}

func (a *app) encryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a message with a public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEncrypt(cmd)
		},
	}
	cipherFlags(cmd)
	return cmd
}

func (a *app) runEncrypt(cmd *cobra.Command) error {
	k, err := readKeyFile(a.v.GetString("key"))
	if err != nil {
		return err
	}
	msg, err := readInput(cmd.InOrStdin(), a.v.GetString("in"))
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var ct []byte
	switch pub := k.(type) {
	case *mceliece.CCA2PublicKey:
		scheme, id, err := a.conversion()
		if err != nil {
			return err
		}
		a.log.Debug("encrypting", "scheme", scheme, "digest", id, "n", pub.N(), "t", pub.T(), "size", len(msg))
		ct, err = mceliece.EncryptCCA2(scheme, nil, pub, id, msg)
		if err != nil {
			return fmt.Errorf("encryption failed: %w", err)
		}
	case *mceliece.PublicKey:
		a.log.Warn("plain McEliece key: no chosen-ciphertext security")
		if len(msg) > mceliece.MaxPlaintextSize(pub) {
			return fmt.Errorf("message too long for a plain key (%d > %d bytes)",
				len(msg), mceliece.MaxPlaintextSize(pub))
		}
		ct, err = mceliece.Encrypt(nil, pub, msg)
		if err != nil {
			return fmt.Errorf("encryption failed: %w", err)
		}
	default:
		return fmt.Errorf("%s is not a public key", a.v.GetString("key"))
	}
	return writeOutput(cmd.OutOrStdout(), a.v.GetString("out"), ct)
}

func (a *app) decryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a message with a private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDecrypt(cmd)
		},
	}
	cipherFlags(cmd)
	return cmd
}

func (a *app) runDecrypt(cmd *cobra.Command) error {
	k, err := readKeyFile(a.v.GetString("key"))
	if err != nil {
		return err
	}
	ct, err := readInput(cmd.InOrStdin(), a.v.GetString("in"))
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	var msg []byte
	switch priv := k.(type) {
	case *mceliece.CCA2PrivateKey:
		scheme, id, err := a.conversion()
		if err != nil {
			return err
		}
		a.log.Debug("decrypting", "scheme", scheme, "digest", id, "size", len(ct))
		msg, err = mceliece.DecryptCCA2(scheme, priv, id, ct)
		if err != nil {
			return fmt.Errorf("decryption failed: %w", err)
		}
	case *mceliece.PrivateKey:
		msg, err = mceliece.Decrypt(priv, ct)
		if err != nil {
			return fmt.Errorf("decryption failed: %w", err)
		}
	default:
		return fmt.Errorf("%s is not a private key", a.v.GetString("key"))
	}
	return writeOutput(cmd.OutOrStdout(), a.v.GetString("out"), msg)
}
