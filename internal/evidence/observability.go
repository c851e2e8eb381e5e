package evidence

import (
	"io/fs"
	"path/filepath"
	"strings"
)

const (
	healthCheckScanLimitConstant  = 30
	logScrubbingScanLimitConstant = 50
)

var sourceFileExtensions = map[string]bool{
	".py":   true,
	".ts":   true,
	".js":   true,
	".go":   true,
	".rs":   true,
	".java": true,
}

func manifestContainsAny(applicationRoot string, manifestName string, tokens []string) (bool, bool) {
	manifestPath := filepath.Join(applicationRoot, manifestName)
	if !fileExists(manifestPath) {
		return false, false
	}
	return true, containsAny(safeReadLower(manifestPath, defaultReadLimitConstant), tokens)
}

// HasLoggingLibrary detects a structured logging dependency per ecosystem.
func HasLoggingLibrary(applicationRoot string) bool {
	if present, found := manifestContainsAny(applicationRoot, "go.mod", []string{"uber-go/zap", "sirupsen/logrus", "rs/zerolog", "go.uber.org/zap"}); present {
		return found
	}
	if present, found := manifestContainsAny(applicationRoot, "pyproject.toml", []string{"structlog", "loguru"}); present {
		return found
	}
	if present, found := manifestContainsAny(applicationRoot, "package.json", []string{"pino", "winston", "bunyan"}); present {
		return found
	}
	return false
}

// HasMetricsLibrary detects a metrics/telemetry dependency per ecosystem.
func HasMetricsLibrary(applicationRoot string) bool {
	goTokens := []string{"prometheus", "opentelemetry", "datadog", "statsd"}
	if present, found := manifestContainsAny(applicationRoot, "go.mod", goTokens); present {
		return found
	}
	if present, found := manifestContainsAny(applicationRoot, "pyproject.toml", goTokens); present {
		return found
	}
	if present, found := manifestContainsAny(applicationRoot, "package.json", []string{"prom-client", "opentelemetry", "datadog", "statsd"}); present {
		return found
	}
	return false
}

// HasTracingLibrary detects an OpenTelemetry dependency.
func HasTracingLibrary(applicationRoot string) bool {
	for _, manifestName := range []string{"go.mod", "pyproject.toml", "package.json"} {
		if present, found := manifestContainsAny(applicationRoot, manifestName, []string{"opentelemetry"}); present {
			return found
		}
	}
	return false
}

// HasErrorTracking detects error-tracking SDK dependencies in any manifest.
func HasErrorTracking(applicationRoot string) bool {
	tokens := []string{"sentry", "bugsnag", "rollbar", "honeybadger"}
	for _, manifestName := range []string{"package.json", "pyproject.toml", "requirements.txt", "go.mod"} {
		manifestPath := filepath.Join(applicationRoot, manifestName)
		if !fileExists(manifestPath) {
			continue
		}
		if containsAny(safeReadLower(manifestPath, defaultReadLimitConstant), tokens) {
			return true
		}
	}
	return false
}

// HasHealthChecks scans typical entrypoint paths for health/readiness
// endpoint signals, capped to a small number of files.
func HasHealthChecks(applicationRoot string) bool {
	tokens := []string{"healthz", "readiness", "/health", "/ready", "health_check", "liveness"}
	scanned := 0
	for _, relativeCandidate := range []string{"main.go", "cmd", "src", "app", "server", "api"} {
		candidatePath := filepath.Join(applicationRoot, relativeCandidate)
		if !fileExists(candidatePath) {
			continue
		}
		if !directoryExists(candidatePath) {
			if containsAny(safeReadLower(candidatePath, defaultReadLimitConstant), tokens) {
				return true
			}
			scanned++
			continue
		}
		found := false
		_ = filepath.WalkDir(candidatePath, func(currentPath string, entry fs.DirEntry, entryError error) error {
			if entryError != nil || entry.IsDir() {
				return nil
			}
			if scanned > healthCheckScanLimitConstant {
				return filepath.SkipAll
			}
			if !sourceFileExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
				return nil
			}
			if containsAny(safeReadLower(currentPath, smallReadLimitConstant), tokens) {
				found = true
				return filepath.SkipAll
			}
			scanned++
			return nil
		})
		if found {
			return true
		}
	}
	return false
}

// HasLogScrubbing looks for redaction signals in docs, then scans common
// source directories with a per-directory file cap.
func HasLogScrubbing(repositoryRoot string) bool {
	documented, _ := TextAny(repositoryRoot, []string{"README.md", "AGENTS.md", "SECURITY.md"}, []string{"redact", "scrub", "pii", "mask", "secrets redaction"})
	if documented {
		return true
	}
	for _, directoryName := range []string{"src", "app", "pkg", "internal"} {
		directoryPath := filepath.Join(repositoryRoot, directoryName)
		if !directoryExists(directoryPath) {
			continue
		}
		scanned := 0
		found := false
		_ = filepath.WalkDir(directoryPath, func(currentPath string, entry fs.DirEntry, entryError error) error {
			if entryError != nil || entry.IsDir() {
				return nil
			}
			if scanned > logScrubbingScanLimitConstant {
				return filepath.SkipAll
			}
			if !sourceFileExtensions[strings.ToLower(filepath.Ext(entry.Name()))] {
				return nil
			}
			text := safeReadLower(currentPath, 40_000)
			if strings.Contains(text, "redact") || strings.Contains(text, "scrub") {
				found = true
				return filepath.SkipAll
			}
			scanned++
			return nil
		})
		if found {
			return true
		}
	}
	return false
}
