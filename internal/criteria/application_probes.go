package criteria

import (
	"strings"

	"github.com/readix/readix/internal/evidence"
	"github.com/readix/readix/internal/inventory"
)

func unitLooksLikeLibrary(unit inventory.Unit) bool {
	if unit.Kind != inventory.PythonUnitKind && unit.Kind != inventory.NodeUnitKind {
		return false
	}
	return strings.Contains(strings.ToLower(unit.Description), "library")
}

func (engine *Engine) buildApplicationProbes() map[string]applicationProbe {
	root := engine.repositoryRoot
	return map[string]applicationProbe{
		"deps_pinned": func(unit inventory.Unit) UnitResult {
			if evidence.DependenciesPinned(root, unit.RootDirectory(root)) {
				return makeUnitResult(unit.Path, PassStatus, "Lockfile(s) detected.", nil)
			}
			return makeUnitResult(unit.Path, FailStatus, "No lockfile detected for this app.", nil)
		},
		"lint_config": func(unit inventory.Unit) UnitResult {
			if evidence.HasLinter(unit.RootDirectory(root)) {
				return makeUnitResult(unit.Path, PassStatus, "Linter config/tooling detected.", nil)
			}
			return makeUnitResult(unit.Path, FailStatus, "No linter config/tooling detected.", nil)
		},
		"formatter": func(unit inventory.Unit) UnitResult {
			if evidence.HasFormatter(unit.RootDirectory(root)) {
				return makeUnitResult(unit.Path, PassStatus, "Formatter config/tooling detected.", nil)
			}
			return makeUnitResult(unit.Path, FailStatus, "No formatter config/tooling detected.", nil)
		},
		"type_check": func(unit inventory.Unit) UnitResult {
			if evidence.HasTypeChecking(unit.RootDirectory(root)) {
				return makeUnitResult(unit.Path, PassStatus, "Type checking detected (or inherent in language).", nil)
			}
			return makeUnitResult(unit.Path, FailStatus, "No type checking signals detected.", nil)
		},
		"unit_tests_exist":    engine.unitTestsExist,
		"unit_tests_runnable": engine.unitTestsRunnable,
		"build_cmd_doc": func(unit inventory.Unit) UnitResult {
			if evidence.BuildCommandDocumented(root, unit.RootDirectory(root)) {
				return makeUnitResult(unit.Path, PassStatus, "Build command appears present or documented.", []string{"README.md", "AGENTS.md", "package.json", "Makefile"})
			}
			return makeUnitResult(unit.Path, FailStatus, "No clear build command/script detected or documented.", []string{"README.md", "AGENTS.md", "package.json", "Makefile"})
		},
		"pre_commit_hooks": func(unit inventory.Unit) UnitResult {
			if evidence.HasPreCommitTooling(root, unit.RootDirectory(root)) {
				return makeUnitResult(unit.Path, PassStatus, "Pre-commit / git hook tooling detected.", []string{".pre-commit-config.yaml", ".husky/", "lefthook.yml"})
			}
			return makeUnitResult(unit.Path, FailStatus, "No pre-commit / git hook tooling detected.", nil)
		},
		"integration_tests": func(unit inventory.Unit) UnitResult {
			if evidence.HasIntegrationTests(unit.RootDirectory(root)) {
				return makeUnitResult(unit.Path, PassStatus, "Integration/E2E test signals detected.", []string{"tests/integration", "cypress/", "playwright.config.*"})
			}
			if unitLooksLikeLibrary(unit) {
				return makeUnitResult(unit.Path, SkipStatus, "App appears to be a library; integration tests may be inapplicable.", nil)
			}
			return makeUnitResult(unit.Path, FailStatus, "No integration/E2E test signals detected.", nil)
		},
		"structured_logging": func(unit inventory.Unit) UnitResult {
			if evidence.HasLoggingLibrary(unit.RootDirectory(root)) {
				return makeUnitResult(unit.Path, PassStatus, "Structured logging library detected (best-effort).", nil)
			}
			return makeUnitResult(unit.Path, FailStatus, "No structured logging library detected (best-effort).", nil)
		},
		"metrics_instrumentation": func(unit inventory.Unit) UnitResult {
			if evidence.HasMetricsLibrary(unit.RootDirectory(root)) {
				return makeUnitResult(unit.Path, PassStatus, "Metrics/telemetry library detected (best-effort).", nil)
			}
			return makeUnitResult(unit.Path, FailStatus, "No metrics/telemetry library detected (best-effort).", nil)
		},
		"tracing_instrumentation": func(unit inventory.Unit) UnitResult {
			if evidence.HasTracingLibrary(unit.RootDirectory(root)) {
				return makeUnitResult(unit.Path, PassStatus, "Tracing library detected (best-effort).", nil)
			}
			return makeUnitResult(unit.Path, FailStatus, "No tracing library detected (best-effort).", nil)
		},
		"error_tracking": func(unit inventory.Unit) UnitResult {
			if evidence.HasErrorTracking(unit.RootDirectory(root)) {
				return makeUnitResult(unit.Path, PassStatus, "Error tracking signals detected (best-effort).", nil)
			}
			return makeUnitResult(unit.Path, FailStatus, "No error tracking signals detected (best-effort).", nil)
		},
		"health_checks": func(unit inventory.Unit) UnitResult {
			if unitLooksLikeLibrary(unit) {
				return makeUnitResult(unit.Path, SkipStatus, "App appears to be a library; health checks are inapplicable.", nil)
			}
			if evidence.HasHealthChecks(unit.RootDirectory(root)) {
				return makeUnitResult(unit.Path, PassStatus, "Health/readiness signals detected (best-effort).", nil)
			}
			return makeUnitResult(unit.Path, SkipStatus, "No health-check signals detected; may be inapplicable for non-service repos.", nil)
		},
	}
}

func (engine *Engine) unitTestsExist(unit inventory.Unit) UnitResult {
	unitRoot := unit.RootDirectory(engine.repositoryRoot)
	var testsDetected bool
	switch unit.Kind {
	case inventory.GoUnitKind:
		testsDetected = evidence.HasGoTests(unitRoot)
	case inventory.PythonUnitKind:
		testsDetected = evidence.HasPythonTests(unitRoot)
	case inventory.NodeUnitKind:
		testsDetected = evidence.HasNodeTests(unitRoot)
	case inventory.RustUnitKind:
		// Scanning for #[test] attributes is expensive; tests/ or src/ is the
		// conventional signal in Cargo projects.
		testsDetected = filePresent(unitRoot, "tests") || filePresent(unitRoot, "src")
	default:
		testsDetected = filePresent(unitRoot, "tests")
	}
	if testsDetected {
		return makeUnitResult(unit.Path, PassStatus, "Test files/directories detected.", nil)
	}
	return makeUnitResult(unit.Path, FailStatus, "No obvious unit test signals detected.", nil)
}

func (engine *Engine) unitTestsRunnable(unit inventory.Unit) UnitResult {
	root := engine.repositoryRoot
	unitRoot := unit.RootDirectory(root)
	switch unit.Kind {
	case inventory.GoUnitKind:
		if filePresent(unitRoot, "go.mod") {
			return makeUnitResult(unit.Path, PassStatus, "Go tests are runnable via `go test` when go.mod exists.", []string{"go.mod"})
		}
		return makeUnitResult(unit.Path, SkipStatus, "No go.mod; go test command may be unclear.", nil)
	case inventory.PythonUnitKind:
		if evidence.PyprojectHasTool(unitRoot, "pytest") || filePresent(unitRoot, "pytest.ini") || filePresent(unitRoot, "tox.ini") {
			return makeUnitResult(unit.Path, PassStatus, "Pytest configuration detected.", []string{"pyproject.toml", "pytest.ini", "tox.ini"})
		}
		if evidence.HasCITestJob(root) {
			return makeUnitResult(unit.Path, PassStatus, "Repo CI appears to run tests (best-effort).", []string{".github/workflows/*"})
		}
		return makeUnitResult(unit.Path, FailStatus, "No clear test runner configuration detected.", nil)
	case inventory.NodeUnitKind:
		if evidence.PackageJSONHasScript(unitRoot, "test") {
			return makeUnitResult(unit.Path, PassStatus, "package.json defines a `test` script.", []string{"package.json"})
		}
		if evidence.HasCITestJob(root) {
			return makeUnitResult(unit.Path, PassStatus, "Repo CI appears to run tests (best-effort).", []string{".github/workflows/*"})
		}
		return makeUnitResult(unit.Path, FailStatus, "No `test` script in package.json and no clear test runner config.", nil)
	}
	if evidence.HasCITestJob(root) {
		return makeUnitResult(unit.Path, PassStatus, "Repo CI appears to run tests (best-effort).", []string{".github/workflows/*"})
	}
	return makeUnitResult(unit.Path, SkipStatus, "App type unknown; cannot confidently determine test command.", nil)
}

func filePresent(rootDirectory string, name string) bool {
	found, _ := evidence.ExistsAny(rootDirectory, []string{name})
	return found
}
