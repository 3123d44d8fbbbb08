package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pornin/go-mceliece/mceliece"
	"github.com/spf13/cobra"
)

func (a *app) paramsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "params",
		Short: "Show code dimensions and key sizes for a parameter set",
		Long: `Show the code length, dimension and key sizes for the given (m, t).
With --keysize, m is the smallest degree with 2^m >= keysize and t is
chosen as (n/2)/m.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runParams(cmd)
		},
	}
	cmd.Flags().Int("m", 11, "extension degree of the field (code length 2^m)")
	cmd.Flags().Int("t", 50, "error-correction capability")
	cmd.Flags().Int("keysize", 0, "derive (m, t) from a code length in bits")
	cmd.Flags().StringP("output", "o", "text", "output format (text, json)")
	return cmd
}

// paramsInfo is the JSON form of a parameter set.
type paramsInfo struct {
	M                  int    `json:"m"`
	T                  int    `json:"t"`
	N                  int    `json:"n"`
	K                  int    `json:"k"`
	FieldPolynomial    string `json:"field_polynomial"`
	PublicKeySize      int    `json:"public_key_size"`
	PrivateKeySize     int    `json:"private_key_size"`
	CCA2PublicKeySize  int    `json:"cca2_public_key_size"`
	CCA2PrivateKeySize int    `json:"cca2_private_key_size"`
	MaxPlaintextSize   int    `json:"max_plaintext_size"`
}

func newParamsInfo(p *mceliece.Parameters) *paramsInfo {
	return &paramsInfo{
		M:                  p.M(),
		T:                  p.T(),
		N:                  p.N(),
		K:                  p.K(),
		FieldPolynomial:    fmt.Sprintf("%#x", p.FieldPolynomial()),
		PublicKeySize:      p.PublicKeySize(),
		PrivateKeySize:     p.PrivateKeySize(),
		CCA2PublicKeySize:  p.CCA2PublicKeySize(),
		CCA2PrivateKeySize: p.CCA2PrivateKeySize(),
		MaxPlaintextSize:   (p.K() - 1) >> 3,
	}
}

func (a *app) runParams(cmd *cobra.Command) error {
	var p *mceliece.Parameters
	var err error
	if bits := a.v.GetInt("keysize"); bits > 0 {
		p, err = mceliece.ParametersForKeySize(bits)
	} else {
		p, err = mceliece.NewParameters(a.v.GetInt("m"), a.v.GetInt("t"))
	}
	if err != nil {
		return err
	}
	info := newParamsInfo(p)
	w := cmd.OutOrStdout()
	switch format := a.v.GetString("output"); format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	case "text":
		printParams(w, info)
		return nil
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}

func printParams(w io.Writer, info *paramsInfo) {
	fmt.Fprintf(w, "m:                     %d\n", info.M)
	fmt.Fprintf(w, "t:                     %d\n", info.T)
	fmt.Fprintf(w, "n:                     %d\n", info.N)
	fmt.Fprintf(w, "k:                     %d\n", info.K)
	fmt.Fprintf(w, "Field polynomial:      %s\n", info.FieldPolynomial)
	fmt.Fprintf(w, "Public key:            %d bytes\n", info.PublicKeySize)
	fmt.Fprintf(w, "Private key:           %d bytes\n", info.PrivateKeySize)
	fmt.Fprintf(w, "CCA2 public key:       %d bytes\n", info.CCA2PublicKeySize)
	fmt.Fprintf(w, "CCA2 private key:      %d bytes\n", info.CCA2PrivateKeySize)
	fmt.Fprintf(w, "Plain message limit:   %d bytes\n", info.MaxPlaintextSize)
}
