package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhcs/bap-taint/cmd/propagate"
	"github.com/abhcs/bap-taint/cmd/scheme"
	"github.com/abhcs/bap-taint/cmd/version"
	"github.com/abhcs/bap-taint/pkg/shared/config"
)

var (
	cfgFile   string
	AppConfig *config.Config
	rootCmd   = &cobra.Command{
		Use:                   "bap-taint [command]",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "bap-taint orchestrates taint propagation sessions against disassembled code.",
		Long: `bap-taint drives an external data-flow analysis engine over disassembled code:
	it marks a taint source at a chosen instruction, launches the engine, and applies
	the resulting instruction coloring back to the disassembler host.
	`,
	}
)

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is config.yml)")
	rootCmd.AddCommand(propagate.PropagateCmd)
	rootCmd.AddCommand(scheme.NewSchemeCmd())
	rootCmd.AddCommand(version.NewVersionCmd())
}

func Execute() int {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing command: %v\n", err)
		return 1
	}
	return 0
}

func initConfig() {
	var err error

	if cfgFile == "" {
		cfgFile = "config.yml"
	}
	AppConfig, err = config.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize config: %v\n", err)
		os.Exit(1)
	}
	if err := config.ValidateConfig(AppConfig); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	propagate.Init(AppConfig)
	version.Init(AppConfig)
}
