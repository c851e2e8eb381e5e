package remediate

import (
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/readix/readix/internal/inventory"
)

type dependabotSchedule struct {
	Interval string `yaml:"interval"`
}

type dependabotUpdate struct {
	PackageEcosystem string             `yaml:"package-ecosystem"`
	Directory        string             `yaml:"directory"`
	Schedule         dependabotSchedule `yaml:"schedule"`
}

type dependabotConfig struct {
	Version int                `yaml:"version"`
	Updates []dependabotUpdate `yaml:"updates"`
}

var dependabotEcosystemByKind = map[inventory.UnitKind]string{
	inventory.NodeUnitKind:   "npm",
	inventory.PythonUnitKind: "pip",
	inventory.GoUnitKind:     "gomod",
	inventory.RustUnitKind:   "cargo",
}

func dependabotDirectory(unitPath string) string {
	if unitPath == "." || unitPath == "" {
		return "/"
	}
	return "/" + strings.Trim(unitPath, "./")
}

// GenerateDependabotYAML emits a weekly Dependabot configuration covering
// GitHub Actions plus one entry per application ecosystem root.
func GenerateDependabotYAML(units []inventory.Unit) (string, error) {
	configuration := dependabotConfig{
		Version: 2,
		Updates: []dependabotUpdate{{
			PackageEcosystem: "github-actions",
			Directory:        "/",
			Schedule:         dependabotSchedule{Interval: "weekly"},
		}},
	}

	seen := map[string]bool{}
	for _, unit := range units {
		ecosystem, supported := dependabotEcosystemByKind[unit.Kind]
		if !supported {
			continue
		}
		directory := dependabotDirectory(unit.Path)
		dedupeKey := ecosystem + " " + directory
		if seen[dedupeKey] {
			continue
		}
		seen[dedupeKey] = true
		configuration.Updates = append(configuration.Updates, dependabotUpdate{
			PackageEcosystem: ecosystem,
			Directory:        directory,
			Schedule:         dependabotSchedule{Interval: "weekly"},
		})
	}

	serialized, marshalError := yaml.Marshal(configuration)
	if marshalError != nil {
		return "", marshalError
	}
	return string(serialized), nil
}
