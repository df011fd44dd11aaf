package scheme

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhcs/bap-taint/internal/session"
)

// legend explains what each rule means for a line in the disassembly view.
var legend = map[string]struct {
	meaning string
	sprint  func(a ...interface{}) string
}{
	"gray":   {"not visited by the analysis", color.New(color.FgHiBlack).SprintFunc()},
	"white":  {"visited, no taint reached it", color.New(color.FgWhite).SprintFunc()},
	"red":    {"taint reached this line", color.New(color.FgRed).SprintFunc()},
	"yellow": {"the taint source itself", color.New(color.FgYellow).SprintFunc()},
}

// NewSchemeCmd creates a new cobra.Command for the scheme command.
func NewSchemeCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "scheme",
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 "Print the color-mapping scheme handed to the engine",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, rule := range session.Scheme() {
				entry := legend[rule.Color]
				fmt.Printf("%-12s %s (%s)\n", entry.sprint(rule.Color), entry.meaning, rule.Predicate)
			}
			fmt.Println()
			return session.WriteScheme(os.Stdout)
		},
	}
}
