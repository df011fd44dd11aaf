// Package observers bridges external observer plugins into the callback
// registry. Each binary in the plugins home is started as a go-plugin
// subprocess and its Notify is installed as a callback for both taint kinds.
package observers

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-plugin"

	"github.com/abhcs/bap-taint/internal/callbacks"
	"github.com/abhcs/bap-taint/pkg/shared"
)

// Manager owns the running observer plugin processes.
type Manager struct {
	clients []*plugin.Client
	logger  hclog.Logger
}

// LoadAll starts every plugin binary found in pluginsHome and installs its
// observer into the registry. A plugin that fails to start is logged and
// skipped; observers are an extension point, never a reason to block a
// session. The returned manager must be closed once no more events will be
// dispatched.
func LoadAll(pluginsHome string, registry *callbacks.Registry, logger hclog.Logger) *Manager {
	m := &Manager{logger: logger}

	entries, err := os.ReadDir(pluginsHome)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("failed to read plugins folder", "path", pluginsHome, "error", err)
		}
		return m
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m.load(filepath.Join(pluginsHome, entry.Name()), registry)
	}

	return m
}

func (m *Manager) load(pluginPath string, registry *callbacks.Registry) {
	client := plugin.NewClient(&plugin.ClientConfig{
		HandshakeConfig: shared.HandshakeConfig,
		Plugins:         shared.PluginMap,
		Cmd:             exec.Command(pluginPath),
		Logger:          m.logger,
	})

	rpcClient, err := client.Client()
	if err != nil {
		m.logger.Warn("failed to start observer plugin", "plugin", pluginPath, "error", err)
		client.Kill()
		return
	}

	raw, err := rpcClient.Dispense(shared.PluginTypeObserver)
	if err != nil {
		m.logger.Warn("failed to dispense observer plugin", "plugin", pluginPath, "error", err)
		client.Kill()
		return
	}

	observer, ok := raw.(shared.Observer)
	if !ok {
		m.logger.Warn("plugin does not implement the observer contract", "plugin", pluginPath)
		client.Kill()
		return
	}

	m.clients = append(m.clients, client)
	logger := m.logger
	registry.Install(func(event shared.Event) {
		if _, err := observer.Notify(event); err != nil {
			logger.Warn("observer plugin rejected event", "plugin", pluginPath, "error", err)
		}
	})
	m.logger.Debug("observer plugin installed", "plugin", pluginPath)
}

// Close stops all observer plugin processes.
func (m *Manager) Close() {
	for _, client := range m.clients {
		client.Kill()
	}
	m.clients = nil
}
