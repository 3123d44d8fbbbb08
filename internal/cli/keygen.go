package cli

import (
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/pornin/go-mceliece/mceliece"
	"github.com/spf13/cobra"
)

func (a *app) keygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a key pair",
		Long: `Generate a McEliece key pair and write it to <out>.pub and <out>.key.

The private key file is created with mode 0600. With --seed, generation
is deterministic: the same seed and parameters give the same keys.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runKeygen(cmd)
		},
	}
	cmd.Flags().Int("m", 11, "extension degree of the field (code length 2^m)")
	cmd.Flags().Int("t", 50, "error-correction capability")
	cmd.Flags().Bool("plain", false, "generate a plain (non-CCA2) key pair")
	cmd.Flags().String("seed", "", "hex-encoded seed for deterministic generation")
	cmd.Flags().String("out", "mceliece", "output file prefix")
	return cmd
}

func (a *app) runKeygen(cmd *cobra.Command) error {
	params, err := mceliece.NewParameters(a.v.GetInt("m"), a.v.GetInt("t"))
	if err != nil {
		return err
	}
	var rng io.Reader
	if s := a.v.GetString("seed"); s != "" {
		seed, err := hex.DecodeString(s)
		if err != nil {
			return fmt.Errorf("invalid seed: %w", err)
		}
		rng = mceliece.NewSeededReader(seed)
		a.log.Warn("using deterministic seed; keys are only as secret as the seed")
	}

	a.log.Info("generating key pair", "params", params.String(), "plain", a.v.GetBool("plain"))
	start := time.Now()
	var pub, priv mceliece.Key
	if a.v.GetBool("plain") {
		pub, priv, err = mceliece.KeyGen(params, rng)
	} else {
		pub, priv, err = mceliece.KeyGenCCA2(params, rng)
	}
	if err != nil {
		return fmt.Errorf("key generation failed: %w", err)
	}
	a.log.Debug("key pair generated", "elapsed", time.Since(start))

	out := a.v.GetString("out")
	if err := writeKeyFile(out+".pub", pub, 0644); err != nil {
		return err
	}
	if err := writeKeyFile(out+".key", priv, 0600); err != nil {
		return err
	}
	a.log.Info("keys written",
		"public", out+".pub", "public_size", len(pub.Bytes()),
		"private", out+".key", "private_size", len(priv.Bytes()))
	return nil
}
