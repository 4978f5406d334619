package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"greenbench/internal/config"
)

var exit = os.Exit

// Execute builds the command tree, runs it and exits with the mapped code.
func Execute() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n=== CRITICAL ERROR: Command Execution Panic ===\n")
			fmt.Fprintf(os.Stderr, "Error: %v\n", r)
			exit(ExitFailure)
		}
	}()

	err := newRootCmd().Execute()
	exit(exitCode(err, os.Stderr))
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "greenbench",
		Short: "Time inefficient and efficient sample workloads",
		Long: `greenbench runs named workloads once each, measures their wall time with a
monotonic clock and prints one "<name>: <seconds> seconds" line per workload.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(v, cfgFile); err != nil {
				return &ExitError{Code: ExitUsage, Err: err}
			}
			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./greenbench.yaml)")
	flags.BoolP("verbose", "v", false, "Enable debug logging")
	flags.String("log-file", "", "Also write logs to this file")
	flags.Int("scale", 1, "Multiply workload iteration counts")
	bindFlags(v, flags, "verbose", "log-file", "scale")

	rootCmd.AddCommand(newRunCmd(v), newListCmd(v), newVersionCmd())
	return rootCmd
}

// bindFlags binds the named flags to viper keys, mapping dashes to
// underscores so flags and config keys line up.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet, names ...string) {
	for _, name := range names {
		key := strings.ReplaceAll(name, "-", "_")
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}
