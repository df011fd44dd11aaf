package propagate

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhcs/bap-taint/internal/callbacks"
	"github.com/abhcs/bap-taint/internal/host"
	"github.com/abhcs/bap-taint/internal/observers"
	"github.com/abhcs/bap-taint/internal/runner"
	"github.com/abhcs/bap-taint/internal/session"
	"github.com/abhcs/bap-taint/pkg/shared"
	"github.com/abhcs/bap-taint/pkg/shared/config"
	"github.com/abhcs/bap-taint/pkg/shared/logger"
)

// RunOptionsPropagate holds the arguments for the propagate command.
type RunOptionsPropagate struct {
	Address  string
	Function string
	Engine   string
	Depth    int
}

// Global variables for configuration and command arguments
var (
	AppConfig             *config.Config
	propagateOptions      RunOptionsPropagate
	examplePropagateUsage = `  # Taint the register value at an instruction and propagate with defaults
  bap-taint propagate reg --addr 0x401000 --func main

  # Taint the memory pointed to by an operand, with the legacy engine
  bap-taint propagate ptr --addr 0x401000 --engine legacy

  # Bound the primus simulation to 8192 RTL instructions
  bap-taint propagate reg --addr 0x401000 --func main --depth 8192`
)

// PropagateCmd groups the two taint gestures: one subcommand per taint kind.
var PropagateCmd = &cobra.Command{
	Use:                   "propagate {reg|ptr} --addr ADDRESS [--func NAME] [--engine primus|legacy] [--depth N]",
	SilenceUsage:          true,
	DisableFlagsInUseLine: true,
	Example:               examplePropagateUsage,
	Short:                 "Starts a taint propagation session from the given instruction",
}

func init() {
	PropagateCmd.AddCommand(
		newKindCmd(shared.TaintRegister, "Propagate taint from the register value at the address"),
		newKindCmd(shared.TaintPointer, "Propagate taint from the memory the operand points to"),
	)

	flags := PropagateCmd.PersistentFlags()
	flags.StringVarP(&propagateOptions.Address, "addr", "a", "", "instruction address to taint (hex)")
	flags.StringVarP(&propagateOptions.Function, "func", "f", "", "function containing the address (primus entry point)")
	flags.StringVarP(&propagateOptions.Engine, "engine", "e", "", "analysis engine, primus or legacy (default primus)")
	flags.IntVarP(&propagateOptions.Depth, "depth", "d", 0, "how many RTL instructions to propagate (default 4096)")
}

// Init initializes the global configuration variable.
func Init(cfg *config.Config) {
	AppConfig = cfg
}

func newKindCmd(kind shared.TaintKind, short string) *cobra.Command {
	return &cobra.Command{
		Use:                   string(kind),
		SilenceUsage:          true,
		DisableFlagsInUseLine: true,
		Short:                 short,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !shared.HasFlags(cmd.Flags()) {
				return cmd.Help()
			}
			return runPropagateCommand(kind)
		},
	}
}

// runPropagateCommand executes one full session for the given taint kind.
func runPropagateCommand(kind shared.TaintKind) error {
	log := logger.NewLogger(AppConfig, "core-propagate")

	if propagateOptions.Address == "" {
		return fmt.Errorf("an instruction address is required: pass --addr")
	}
	addr, err := shared.ParseAddress(propagateOptions.Address)
	if err != nil {
		log.Error("invalid propagate arguments", "error", err)
		return err
	}

	h := &host.Headless{
		Address:     addr,
		Function:    propagateOptions.Function,
		Interpreter: AppConfig.Bap.ScriptInterpreter,
		Logger:      log,
	}

	registry := callbacks.NewRegistry(log)
	manager := observers.LoadAll(shared.GetPluginsHome(AppConfig.Plugins.Home), registry, log)
	defer manager.Close()

	current, err := h.CurrentAddress()
	if err != nil {
		return err
	}

	params := session.Resolve(h, flagPrompter{}, current, kind, session.Defaults{
		Engine:     AppConfig.Engine.Name,
		MaxLength:  AppConfig.Engine.MaxLength,
		MaxVisited: AppConfig.Engine.MaxVisited,
	}, log)

	builder := session.NewBuilder(AppConfig.Bap.TempDir, log)
	sess, err := builder.Build(params)
	if err != nil {
		log.Error("failed to build session", "error", err)
		return err
	}

	log.Info("propagating taint",
		"from", shared.FormatAddress(params.Address),
		"kind", params.Kind,
		"engine", params.Engine.Name())

	done := make(chan struct{})
	r := runner.New(AppConfig.Bap.Path, log)
	if err := r.Launch(context.Background(), sess.Descriptor().Args, func(error) {
		sess.Finish(h, registry)
		close(done)
	}); err != nil {
		sess.Artifacts().Release()
		log.Error("failed to launch engine", "error", err)
		return err
	}

	<-done
	log.Info("propagate command completed")
	return nil
}

// flagPrompter answers session prompts from command-line flags. An unset
// flag is the same as a user leaving the prompt empty.
type flagPrompter struct{}

func (flagPrompter) AskString(_ string, defaultValue string) (string, error) {
	if propagateOptions.Engine != "" {
		return propagateOptions.Engine, nil
	}
	return defaultValue, nil
}

func (flagPrompter) AskInt(_ string, defaultValue int) (int, error) {
	if propagateOptions.Depth > 0 {
		return propagateOptions.Depth, nil
	}
	return defaultValue, nil
}
