package evidence

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	defaultReadLimitConstant  = 200_000
	workflowReadLimitConstant = 400_000
	smallReadLimitConstant    = 50_000
)

func fileExists(candidatePath string) bool {
	_, statError := os.Stat(candidatePath)
	return statError == nil
}

func directoryExists(candidatePath string) bool {
	info, statError := os.Stat(candidatePath)
	return statError == nil && info.IsDir()
}

func safeReadText(filePath string, maximumBytes int) string {
	contents, readError := os.ReadFile(filePath)
	if readError != nil {
		return ""
	}
	if len(contents) > maximumBytes {
		contents = contents[:maximumBytes]
	}
	return string(contents)
}

func safeReadLower(filePath string, maximumBytes int) string {
	return strings.ToLower(safeReadText(filePath, maximumBytes))
}

func containsAny(haystack string, needles []string) bool {
	for _, needle := range needles {
		if strings.Contains(haystack, strings.ToLower(needle)) {
			return true
		}
	}
	return false
}

// ExistsAny reports whether any of the relative paths exist under root and
// returns the paths that do.
func ExistsAny(rootDirectory string, relativePaths []string) (bool, []string) {
	var hits []string
	for _, relativePath := range relativePaths {
		if fileExists(filepath.Join(rootDirectory, relativePath)) {
			hits = append(hits, relativePath)
		}
	}
	return len(hits) > 0, hits
}

// GlobAny reports whether any of the glob patterns (supporting **) match
// under root and returns the de-duplicated relative matches.
func GlobAny(rootDirectory string, patterns []string) (bool, []string) {
	var hits []string
	seen := map[string]bool{}
	rootFS := os.DirFS(rootDirectory)
	for _, pattern := range patterns {
		matches, globError := doublestar.Glob(rootFS, pattern)
		if globError != nil {
			continue
		}
		for _, match := range matches {
			if !seen[match] {
				seen[match] = true
				hits = append(hits, match)
			}
		}
	}
	return len(hits) > 0, hits
}

// TextAny reports which of the named files contain at least one needle
// (case-insensitive).
func TextAny(rootDirectory string, relativeFiles []string, needles []string) (bool, []string) {
	var foundIn []string
	for _, relativeFile := range relativeFiles {
		filePath := filepath.Join(rootDirectory, relativeFile)
		if !fileExists(filePath) {
			continue
		}
		if containsAny(safeReadLower(filePath, defaultReadLimitConstant), needles) {
			foundIn = append(foundIn, relativeFile)
		}
	}
	return len(foundIn) > 0, foundIn
}

func workflowFiles(rootDirectory string) []string {
	workflowDirectory := filepath.Join(rootDirectory, ".github", "workflows")
	entries, readError := os.ReadDir(workflowDirectory)
	if readError != nil {
		return nil
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".yml") || strings.HasSuffix(name, ".yaml") {
			files = append(files, filepath.Join(workflowDirectory, name))
		}
	}
	return files
}

// WorkflowTextContains reports which CI workflow files contain every needle.
func WorkflowTextContains(rootDirectory string, needles []string) (bool, []string) {
	var hits []string
	for _, workflowPath := range workflowFiles(rootDirectory) {
		text := safeReadLower(workflowPath, workflowReadLimitConstant)
		allPresent := true
		for _, needle := range needles {
			if !strings.Contains(text, strings.ToLower(needle)) {
				allPresent = false
				break
			}
		}
		if allPresent {
			hits = append(hits, filepath.ToSlash(filepath.Join(".github", "workflows", filepath.Base(workflowPath))))
		}
	}
	return len(hits) > 0, hits
}

func anyWorkflowContainsAny(rootDirectory string, needles []string) bool {
	for _, workflowPath := range workflowFiles(rootDirectory) {
		if containsAny(safeReadLower(workflowPath, workflowReadLimitConstant), needles) {
			return true
		}
	}
	return false
}

// PackageJSONHasScript reports whether package.json defines the named script.
func PackageJSONHasScript(applicationRoot string, scriptName string) bool {
	manifestPath := filepath.Join(applicationRoot, "package.json")
	if !fileExists(manifestPath) {
		return false
	}
	var manifest struct {
		Scripts map[string]any `json:"scripts"`
	}
	if unmarshalError := json.Unmarshal([]byte(safeReadText(manifestPath, defaultReadLimitConstant)), &manifest); unmarshalError != nil {
		return false
	}
	_, defined := manifest.Scripts[scriptName]
	return defined
}

// PyprojectHasTool reports whether pyproject.toml configures the named tool.
func PyprojectHasTool(applicationRoot string, toolKey string) bool {
	manifestPath := filepath.Join(applicationRoot, "pyproject.toml")
	if !fileExists(manifestPath) {
		return false
	}
	var manifest struct {
		Tool map[string]any `toml:"tool"`
	}
	if unmarshalError := toml.Unmarshal([]byte(safeReadText(manifestPath, defaultReadLimitConstant)), &manifest); unmarshalError != nil {
		return false
	}
	_, configured := manifest.Tool[toolKey]
	return configured
}

// TSConfigStrict reports whether a tsconfig enables strict mode (or the
// strict family of options).
func TSConfigStrict(applicationRoot string) bool {
	candidates := []string{"tsconfig.json", "tsconfig.base.json", "tsconfig.app.json"}
	for _, candidate := range candidates {
		configPath := filepath.Join(applicationRoot, candidate)
		if !fileExists(configPath) {
			continue
		}
		var config struct {
			CompilerOptions struct {
				Strict           bool `json:"strict"`
				NoImplicitAny    bool `json:"noImplicitAny"`
				StrictNullChecks bool `json:"strictNullChecks"`
			} `json:"compilerOptions"`
		}
		if unmarshalError := json.Unmarshal([]byte(safeReadText(configPath, defaultReadLimitConstant)), &config); unmarshalError != nil {
			continue
		}
		if config.CompilerOptions.Strict {
			return true
		}
		if config.CompilerOptions.NoImplicitAny && config.CompilerOptions.StrictNullChecks {
			return true
		}
	}
	return false
}
