package shared

import (
	"os"
	"path/filepath"

	"github.com/hashicorp/go-plugin"
)

const PluginTypeObserver string = "observer"

var HandshakeConfig = plugin.HandshakeConfig{
	ProtocolVersion:  1,
	MagicCookieKey:   "BAP_TAINT",
	MagicCookieValue: "7c41f6b29dd0c83e5a9f4e0baf1d2f31a6f0c758",
}

var PluginMap = map[string]plugin.Plugin{
	PluginTypeObserver: &ObserverPlugin{},
}

// GetPluginsHome returns the directory observer plugin binaries are loaded
// from: configured path, BAP_TAINT_PLUGINS_FOLDER, or ~/.bap-taint/plugins.
func GetPluginsHome(configured string) string {
	if configured != "" {
		return configured
	}
	if envPlugins := os.Getenv("BAP_TAINT_PLUGINS_FOLDER"); envPlugins != "" {
		return envPlugins
	}
	home, err := os.UserHomeDir()
	if err != nil {
		panic("unable to get home folder")
	}
	return filepath.Join(home, ".bap-taint", "plugins")
}
