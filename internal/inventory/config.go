package inventory

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	repositoryConfigFileNameConstant = ".readix.yaml"
	defaultDiscoveryMaxDepthConstant = 4
)

// Config is the optional per-repository assessment configuration. A missing
// or unreadable file yields the zero Config.
type Config struct {
	OrgName              string   `yaml:"org_name" json:"org_name"`
	AppRoots             []string `yaml:"app_roots" json:"app_roots"`
	AppDiscoveryMaxDepth int      `yaml:"app_discovery_max_depth" json:"app_discovery_max_depth"`
	ExcludeDirs          []string `yaml:"exclude_dirs" json:"exclude_dirs"`
	ExcludeGlobs         []string `yaml:"exclude_globs" json:"exclude_globs"`
	DefaultCodeowner     string   `yaml:"default_codeowner" json:"default_codeowner"`
}

// LoadConfig reads .readix.yaml from the repository root.
func LoadConfig(repositoryRoot string) Config {
	var configuration Config
	configurationBytes, readError := os.ReadFile(filepath.Join(repositoryRoot, repositoryConfigFileNameConstant))
	if readError != nil {
		return configuration
	}
	if unmarshalError := yaml.Unmarshal(configurationBytes, &configuration); unmarshalError != nil {
		return Config{}
	}
	return configuration
}

// DiscoveryMaxDepth returns the configured walk depth cap or the default.
func (configuration Config) DiscoveryMaxDepth() int {
	if configuration.AppDiscoveryMaxDepth > 0 {
		return configuration.AppDiscoveryMaxDepth
	}
	return defaultDiscoveryMaxDepthConstant
}
