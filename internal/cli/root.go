package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Shared state of one command invocation.
type app struct {
	v   *viper.Viper
	log *slog.Logger
}

// NewRootCommand builds the mceliece command tree. Every call returns an
// independent tree with its own configuration.
func NewRootCommand() *cobra.Command {
	a := &app{v: viper.New(), log: slog.New(slog.NewTextHandler(io.Discard, nil))}
	root := &cobra.Command{
		Use:   "mceliece",
		Short: "McEliece post-quantum public-key encryption",
		Long: `mceliece generates McEliece key pairs over binary Goppa codes and
encrypts or decrypts files with them.

CCA2 keys (the default) are used with one of the conversions:
  - fo: Fujisaki-Okamoto
  - ki: Kobara-Imai
  - pc: Pointcheval

Plain keys (keygen --plain) only support short messages and are not
secure against chosen-ciphertext attacks.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	root.PersistentFlags().String("config", "",
		"config file (default is $HOME/.mceliece.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false,
		"verbose output")

	root.AddCommand(a.keygenCmd())
	root.AddCommand(a.encryptCmd())
	root.AddCommand(a.decryptCmd())
	root.AddCommand(a.selftestCmd())
	root.AddCommand(a.paramsCmd())
	root.AddCommand(versionCmd())
	return root
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// Load the configuration for the command being run. Precedence is
// flag, environment (MCELIECE_*), config file, flag default.
func (a *app) init(cmd *cobra.Command) error {
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	a.v.SetEnvPrefix("MCELIECE")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cfg := a.v.GetString("config")
	if cfg != "" {
		a.v.SetConfigFile(cfg)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigName(".mceliece")
		a.v.SetConfigType("yaml")
	}
	if err := a.v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if cfg != "" || !errors.As(err, &nf) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	a.log = newLogger(cmd.ErrOrStderr(), a.v.GetBool("verbose"))
	if f := a.v.ConfigFileUsed(); f != "" {
		a.log.Debug("configuration loaded", "file", f)
	}
	return nil
}
