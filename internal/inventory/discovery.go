package inventory

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var defaultExcludedDirectories = map[string]bool{
	".git":          true,
	".hg":           true,
	".svn":          true,
	"node_modules":  true,
	"dist":          true,
	"build":         true,
	"target":        true,
	".venv":         true,
	"venv":          true,
	".tox":          true,
	".pytest_cache": true,
	"__pycache__":   true,
	".mypy_cache":   true,
	".ruff_cache":   true,
	"vendor":        true,
	".idea":         true,
	".vscode":       true,
}

var defaultExcludedGlobs = []string{
	"**/.git/**",
	"**/node_modules/**",
	"**/dist/**",
	"**/build/**",
	"**/target/**",
	"**/.venv/**",
	"**/venv/**",
	"**/.tox/**",
	"**/__pycache__/**",
}

var unitManifestNames = []string{
	"package.json",
	"pyproject.toml",
	"requirements.txt",
	"go.mod",
	"Cargo.toml",
	"pom.xml",
	"build.gradle",
	"build.gradle.kts",
	"*.csproj",
}

// DiscoverUnits finds every application unit under the repository root.
// Configured app_roots override the walk entirely. Without manifests the
// repository root itself is the single unit.
func DiscoverUnits(repositoryRoot string, configuration Config) []Unit {
	if len(configuration.AppRoots) > 0 {
		units := make([]Unit, 0, len(configuration.AppRoots))
		for _, relativeRoot := range configuration.AppRoots {
			units = append(units, DescribeUnit(repositoryRoot, filepath.Join(repositoryRoot, relativeRoot)))
		}
		return dedupeUnits(units)
	}

	excludedDirectories := map[string]bool{}
	for directoryName := range defaultExcludedDirectories {
		excludedDirectories[directoryName] = true
	}
	for _, directoryName := range configuration.ExcludeDirs {
		excludedDirectories[directoryName] = true
	}
	excludedGlobs := append(append([]string{}, defaultExcludedGlobs...), configuration.ExcludeGlobs...)
	maximumDepth := configuration.DiscoveryMaxDepth()

	var units []Unit
	walkError := filepath.WalkDir(repositoryRoot, func(currentPath string, entry fs.DirEntry, entryError error) error {
		if entryError != nil {
			return nil
		}
		if !entry.IsDir() {
			return nil
		}
		relativePath := relativeUnitPath(repositoryRoot, currentPath)
		if relativePath != repositoryRootUnitPathConstant {
			if excludedDirectories[entry.Name()] {
				return filepath.SkipDir
			}
			if unitDepth(relativePath) > maximumDepth {
				return filepath.SkipDir
			}
			if matchesAnyGlob(relativePath+"/", excludedGlobs) {
				return filepath.SkipDir
			}
		}
		if directoryHasManifest(currentPath) {
			units = append(units, DescribeUnit(repositoryRoot, currentPath))
		}
		return nil
	})
	if walkError != nil {
		units = nil
	}

	if len(units) == 0 {
		units = []Unit{DescribeUnit(repositoryRoot, repositoryRoot)}
	}
	return dedupeUnits(units)
}

func unitDepth(relativePath string) int {
	if relativePath == repositoryRootUnitPathConstant {
		return 0
	}
	return strings.Count(relativePath, "/") + 1
}

func matchesAnyGlob(relativePath string, globs []string) bool {
	for _, glob := range globs {
		matched, matchError := doublestar.Match(glob, relativePath)
		if matchError == nil && matched {
			return true
		}
	}
	return false
}

func directoryHasManifest(directoryPath string) bool {
	for _, manifestName := range unitManifestNames {
		if strings.Contains(manifestName, "*") {
			matches, globError := filepath.Glob(filepath.Join(directoryPath, manifestName))
			if globError == nil && len(matches) > 0 {
				return true
			}
			continue
		}
		if fileExists(filepath.Join(directoryPath, manifestName)) {
			return true
		}
	}
	return false
}

func dedupeUnits(units []Unit) []Unit {
	unitsByPath := map[string]Unit{}
	for _, unit := range units {
		if _, alreadySeen := unitsByPath[unit.Path]; !alreadySeen {
			unitsByPath[unit.Path] = unit
		}
	}
	deduped := make([]Unit, 0, len(unitsByPath))
	for _, unit := range unitsByPath {
		deduped = append(deduped, unit)
	}
	sort.Slice(deduped, func(first, second int) bool {
		firstDepth := strings.Count(deduped[first].Path, "/")
		secondDepth := strings.Count(deduped[second].Path, "/")
		if firstDepth != secondDepth {
			return firstDepth < secondDepth
		}
		return deduped[first].Path < deduped[second].Path
	})
	return deduped
}

var languageNamesByKind = map[UnitKind]string{
	NodeUnitKind:   "JavaScript/TypeScript",
	PythonUnitKind: "Python",
	GoUnitKind:     "Go",
	RustUnitKind:   "Rust",
	JavaUnitKind:   "Java",
}

// DetectLanguages maps unit kinds to display languages with stable de-duplication.
func DetectLanguages(units []Unit) []string {
	var languages []string
	seen := map[string]bool{}
	for _, unit := range units {
		languageName, recognized := languageNamesByKind[unit.Kind]
		if !recognized || seen[languageName] {
			continue
		}
		seen[languageName] = true
		languages = append(languages, languageName)
	}
	return languages
}
