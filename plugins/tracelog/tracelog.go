package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/abhcs/bap-taint/pkg/shared"
)

// Here is a real implementation of Observer that appends every propagation
// event to a trace file.
type ObserverTracelog struct {
	logger hclog.Logger
}

func (o *ObserverTracelog) Notify(event shared.Event) (bool, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		o.logger.Error("unable to get home folder", "error", err)
		return false, err
	}

	traceDir := filepath.Join(home, ".bap-taint")
	if err := os.MkdirAll(traceDir, os.ModePerm); err != nil {
		o.logger.Error("unable to create trace folder", "path", traceDir, "error", err)
		return false, err
	}

	tracePath := filepath.Join(traceDir, "trace.log")
	f, err := os.OpenFile(tracePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		o.logger.Error("unable to open trace file", "path", tracePath, "error", err)
		return false, err
	}
	defer f.Close()

	line := fmt.Sprintf("%s taint-%s 0x%X\n",
		time.Now().UTC().Format(time.RFC3339), event.Kind, event.Address)
	if _, err := f.WriteString(line); err != nil {
		return false, err
	}

	o.logger.Info("propagation event traced", "kind", event.Kind, "address", event.Address)
	return true, nil
}

func main() {
	logger := hclog.New(&hclog.LoggerOptions{
		Level:      hclog.Trace,
		Output:     os.Stderr,
		JSONFormat: true,
	})

	observer := &ObserverTracelog{
		logger: logger,
	}

	var pluginMap = map[string]plugin.Plugin{
		shared.PluginTypeObserver: &shared.ObserverPlugin{Impl: observer},
	}

	plugin.Serve(&plugin.ServeConfig{
		HandshakeConfig: shared.HandshakeConfig,
		Plugins:         pluginMap,
	})
}
