package inventory

import (
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// UnitKind classifies an application unit by its ecosystem.
type UnitKind string

const (
	// NodeUnitKind marks a package.json ecosystem unit.
	NodeUnitKind UnitKind = "node"
	// PythonUnitKind marks a pyproject/requirements ecosystem unit.
	PythonUnitKind UnitKind = "python"
	// GoUnitKind marks a go.mod ecosystem unit.
	GoUnitKind UnitKind = "go"
	// RustUnitKind marks a Cargo.toml ecosystem unit.
	RustUnitKind UnitKind = "rust"
	// JavaUnitKind marks a maven/gradle ecosystem unit.
	JavaUnitKind UnitKind = "java"
	// UnknownUnitKind marks a unit with no recognized manifest.
	UnknownUnitKind UnitKind = "unknown"

	repositoryRootUnitPathConstant = "."
	manifestReadLimitConstant      = 200_000
)

// Unit is one discovered application root. Path is relative to the
// repository root, "." for the root itself.
type Unit struct {
	Path        string   `json:"path"`
	Kind        UnitKind `json:"kind"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
}

// RootDirectory resolves the unit's absolute directory under the repository root.
func (unit Unit) RootDirectory(repositoryRoot string) string {
	if unit.Path == repositoryRootUnitPathConstant {
		return repositoryRoot
	}
	return filepath.Join(repositoryRoot, unit.Path)
}

var goModuleLinePattern = regexp.MustCompile(`(?m)^\s*module\s+(\S+)\s*$`)

type nodePackageManifest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type pythonProjectManifest struct {
	Project struct {
		Name        string `toml:"name"`
		Description string `toml:"description"`
	} `toml:"project"`
}

type rustCargoManifest struct {
	Package struct {
		Name        string `toml:"name"`
		Description string `toml:"description"`
	} `toml:"package"`
}

// DescribeUnit derives a unit's kind, name, and description from the
// manifests in its directory. Unreadable manifests degrade to defaults.
func DescribeUnit(repositoryRoot string, unitDirectory string) Unit {
	relativePath := relativeUnitPath(repositoryRoot, unitDirectory)
	unit := Unit{Path: relativePath, Kind: UnknownUnitKind, Name: relativePath}
	if relativePath == repositoryRootUnitPathConstant {
		unit.Name = filepath.Base(repositoryRoot)
	}

	packageJSONPath := filepath.Join(unitDirectory, "package.json")
	pyprojectPath := filepath.Join(unitDirectory, "pyproject.toml")
	requirementsPath := filepath.Join(unitDirectory, "requirements.txt")
	goModPath := filepath.Join(unitDirectory, "go.mod")
	cargoPath := filepath.Join(unitDirectory, "Cargo.toml")

	switch {
	case fileExists(packageJSONPath):
		unit.Kind = NodeUnitKind
		var manifest nodePackageManifest
		if unmarshalError := json.Unmarshal(readFileCapped(packageJSONPath, manifestReadLimitConstant), &manifest); unmarshalError == nil {
			if len(manifest.Name) > 0 {
				unit.Name = manifest.Name
			}
			unit.Description = manifest.Description
		}
	case fileExists(pyprojectPath) || fileExists(requirementsPath):
		unit.Kind = PythonUnitKind
		if fileExists(pyprojectPath) {
			var manifest pythonProjectManifest
			if unmarshalError := toml.Unmarshal(readFileCapped(pyprojectPath, manifestReadLimitConstant), &manifest); unmarshalError == nil {
				if len(manifest.Project.Name) > 0 {
					unit.Name = manifest.Project.Name
				}
				unit.Description = manifest.Project.Description
			}
		}
	case fileExists(goModPath):
		unit.Kind = GoUnitKind
		if match := goModuleLinePattern.FindSubmatch(readFileCapped(goModPath, 50_000)); match != nil {
			unit.Name = strings.TrimSpace(string(match[1]))
		}
	case fileExists(cargoPath):
		unit.Kind = RustUnitKind
		var manifest rustCargoManifest
		if unmarshalError := toml.Unmarshal(readFileCapped(cargoPath, manifestReadLimitConstant), &manifest); unmarshalError == nil {
			if len(manifest.Package.Name) > 0 {
				unit.Name = manifest.Package.Name
			}
			unit.Description = manifest.Package.Description
		}
	case fileExists(filepath.Join(unitDirectory, "pom.xml")),
		fileExists(filepath.Join(unitDirectory, "build.gradle")),
		fileExists(filepath.Join(unitDirectory, "build.gradle.kts")):
		unit.Kind = JavaUnitKind
	default:
		unit.Kind = inferKindFromSources(unitDirectory)
	}

	return unit
}

func inferKindFromSources(unitDirectory string) UnitKind {
	entries, readError := os.ReadDir(unitDirectory)
	if readError != nil {
		return UnknownUnitKind
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".py":
			return PythonUnitKind
		case ".go":
			return GoUnitKind
		case ".rs":
			return RustUnitKind
		}
	}
	return UnknownUnitKind
}

func relativeUnitPath(repositoryRoot string, unitDirectory string) string {
	relativePath, relativeError := filepath.Rel(repositoryRoot, unitDirectory)
	if relativeError != nil {
		return unitDirectory
	}
	return filepath.ToSlash(relativePath)
}

func fileExists(candidatePath string) bool {
	_, statError := os.Stat(candidatePath)
	return statError == nil
}

func readFileCapped(filePath string, maximumBytes int) []byte {
	contents, readError := os.ReadFile(filePath)
	if readError != nil {
		return nil
	}
	if len(contents) > maximumBytes {
		return contents[:maximumBytes]
	}
	return contents
}
