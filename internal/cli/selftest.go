package cli

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/pornin/go-mceliece/mceliece"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func (a *app) selftestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Round-trip random messages through every conversion",
		Long: `Generate a fresh CCA2 key pair, then encrypt and decrypt random
messages of random lengths, cycling through the conversions and the
supported digests. A plain key pair is checked the same way with
messages up to its capacity.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSelftest(cmd)
		},
	}
	cmd.Flags().Int("m", 11, "extension degree of the field (code length 2^m)")
	cmd.Flags().Int("t", 50, "error-correction capability")
	cmd.Flags().Int("rounds", 100, "number of messages per key type")
	cmd.Flags().Int("max-size", 1024, "maximum CCA2 message size in bytes")
	return cmd
}

// Uniform value in [0, bound).
func randomBelow(bound int) int {
	var b [4]byte
	rand.Read(b[:])
	v := int(b[0]) | int(b[1])<<8 | int(b[2])<<16 | int(b[3]&0x7F)<<24
	return v % bound
}

func (a *app) runSelftest(cmd *cobra.Command) error {
	params, err := mceliece.NewParameters(a.v.GetInt("m"), a.v.GetInt("t"))
	if err != nil {
		return err
	}
	rounds := a.v.GetInt("rounds")
	maxSize := a.v.GetInt("max-size")
	if rounds < 1 || maxSize < 0 {
		return fmt.Errorf("invalid rounds (%d) or max-size (%d)", rounds, maxSize)
	}

	a.log.Info("generating key pairs", "params", params.String())
	start := time.Now()
	cpk, csk, err := mceliece.KeyGenCCA2(params, nil)
	if err != nil {
		return err
	}
	pk, sk, err := mceliece.KeyGen(params, nil)
	if err != nil {
		return err
	}
	a.log.Debug("key pairs generated", "elapsed", time.Since(start))

	bar := progressbar.NewOptions(2*rounds,
		progressbar.OptionSetWriter(cmd.ErrOrStderr()),
		progressbar.OptionSetDescription("selftest"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish())

	schemes := []mceliece.Scheme{mceliece.FujisakiOkamoto, mceliece.KobaraImai, mceliece.Pointcheval}
	failures := 0
	for i := 0; i < rounds; i++ {
		scheme := schemes[i%len(schemes)]
		id := mceliece.SupportedHashes[i%len(mceliece.SupportedHashes)]
		msg := make([]byte, randomBelow(maxSize+1))
		rand.Read(msg)
		ct, err := mceliece.EncryptCCA2(scheme, nil, cpk, id, msg)
		if err == nil {
			var pt []byte
			pt, err = mceliece.DecryptCCA2(scheme, csk, id, ct)
			if err == nil && !bytes.Equal(pt, msg) {
				err = fmt.Errorf("plaintext mismatch")
			}
		}
		if err != nil {
			failures++
			a.log.Error("round failed", "round", i, "scheme", scheme, "digest", id, "size", len(msg), "error", err)
		}
		_ = bar.Add(1)
	}

	plainMax := mceliece.MaxPlaintextSize(pk)
	for i := 0; i < rounds; i++ {
		msg := make([]byte, randomBelow(plainMax+1))
		rand.Read(msg)
		ct, err := mceliece.Encrypt(nil, pk, msg)
		if err == nil {
			var pt []byte
			pt, err = mceliece.Decrypt(sk, ct)
			if err == nil && !bytes.Equal(pt, msg) {
				err = fmt.Errorf("plaintext mismatch")
			}
		}
		if err != nil {
			failures++
			a.log.Error("round failed", "round", i, "plain", true, "size", len(msg), "error", err)
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()

	out := cmd.OutOrStdout()
	if failures > 0 {
		color.New(color.FgRed).Fprintf(out, "FAIL: %d of %d rounds failed\n", failures, 2*rounds)
		return fmt.Errorf("selftest failed")
	}
	color.New(color.FgGreen).Fprintf(out, "PASS: %d rounds, %s\n", 2*rounds, time.Since(start).Round(time.Millisecond))
	return nil
}
