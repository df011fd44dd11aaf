package version

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhcs/bap-taint/pkg/shared"
	"github.com/abhcs/bap-taint/pkg/shared/config"
)

var (
	AppConfig     *config.Config
	CoreVersion   = "unknown"
	GolangVersion = "unknown"
	BuildTime     = "unknown"
)

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

// NewVersionCmd creates a new cobra.Command for the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "version",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Print the version number of the application and installed observer plugins",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Core Version: v%s\n", CoreVersion)
			fmt.Printf("Go Version: %s\n", GolangVersion)
			fmt.Printf("Build Time: %s\n", BuildTime)
			printObserverPlugins()
		},
	}
}

// printObserverPlugins lists the observer plugin binaries the propagate
// command would load.
func printObserverPlugins() {
	var home string
	if AppConfig != nil {
		home = AppConfig.Plugins.Home
	}
	pluginsHome := shared.GetPluginsHome(home)

	entries, err := os.ReadDir(pluginsHome)
	if err != nil {
		fmt.Println("Observer Plugins: none")
		return
	}

	fmt.Println("Observer Plugins:")
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fmt.Printf("  %s\n", entry.Name())
	}
}
