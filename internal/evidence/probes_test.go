package evidence_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/readix/readix/internal/evidence"
)

func writeFixtureFile(testInstance *testing.T, rootDirectory string, relativePath string, contents string) {
	testInstance.Helper()
	absolutePath := filepath.Join(rootDirectory, relativePath)
	require.NoError(testInstance, os.MkdirAll(filepath.Dir(absolutePath), 0o755))
	require.NoError(testInstance, os.WriteFile(absolutePath, []byte(contents), 0o644))
}

func TestExistsAny(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	writeFixtureFile(testInstance, rootDirectory, "README.md", "# demo\n")

	found, hits := evidence.ExistsAny(rootDirectory, []string{"README.md", "README.rst"})
	require.True(testInstance, found)
	require.Equal(testInstance, []string{"README.md"}, hits)

	found, hits = evidence.ExistsAny(rootDirectory, []string{"CHANGELOG.md"})
	require.False(testInstance, found)
	require.Empty(testInstance, hits)
}

func TestGlobAny(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	writeFixtureFile(testInstance, rootDirectory, "docs/flows/checkout.mermaid", "graph TD\n")

	found, hits := evidence.GlobAny(rootDirectory, []string{"**/*.mermaid", "**/*.puml"})
	require.True(testInstance, found)
	require.Equal(testInstance, []string{"docs/flows/checkout.mermaid"}, hits)
}

func TestTextAny(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	writeFixtureFile(testInstance, rootDirectory, "README.md", "Set the ENVIRONMENT VARIABLE before running.\n")

	found, foundIn := evidence.TextAny(rootDirectory, []string{"README.md", "AGENTS.md"}, []string{"environment variable"})
	require.True(testInstance, found)
	require.Equal(testInstance, []string{"README.md"}, foundIn)
}

func TestWorkflowTextContains(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	writeFixtureFile(testInstance, rootDirectory, ".github/workflows/ci.yml", "jobs:\n  lint:\n    steps:\n      - run: make lint\n")
	writeFixtureFile(testInstance, rootDirectory, ".github/workflows/release.yaml", "jobs:\n  publish:\n    steps:\n      - run: make release\n")

	found, hits := evidence.WorkflowTextContains(rootDirectory, []string{"lint"})
	require.True(testInstance, found)
	require.Equal(testInstance, []string{".github/workflows/ci.yml"}, hits)

	// All needles must land in the same workflow file.
	found, _ = evidence.WorkflowTextContains(rootDirectory, []string{"lint", "release"})
	require.False(testInstance, found)
}

func TestPackageJSONHasScript(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	writeFixtureFile(testInstance, rootDirectory, "package.json", `{"name":"demo","scripts":{"test":"jest"}}`)

	require.True(testInstance, evidence.PackageJSONHasScript(rootDirectory, "test"))
	require.False(testInstance, evidence.PackageJSONHasScript(rootDirectory, "build"))
}

func TestTSConfigStrict(testInstance *testing.T) {
	testCases := []struct {
		name           string
		configBody     string
		expectedStrict bool
	}{
		{name: "strict_enabled", configBody: `{"compilerOptions":{"strict":true}}`, expectedStrict: true},
		{name: "strict_family", configBody: `{"compilerOptions":{"noImplicitAny":true,"strictNullChecks":true}}`, expectedStrict: true},
		{name: "loose", configBody: `{"compilerOptions":{"noImplicitAny":true}}`, expectedStrict: false},
	}
	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			rootDirectory := subtest.TempDir()
			writeFixtureFile(subtest, rootDirectory, "tsconfig.json", testCase.configBody)
			require.Equal(subtest, testCase.expectedStrict, evidence.TSConfigStrict(rootDirectory))
		})
	}
}

func TestGitignoreComprehensive(testInstance *testing.T) {
	testCases := []struct {
		name     string
		contents string
		expected bool
	}{
		{name: "three_common_entries", contents: "node_modules\n.env\ndist\n", expected: true},
		{name: "minimal", contents: "*.log\n", expected: false},
	}
	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			rootDirectory := subtest.TempDir()
			writeFixtureFile(subtest, rootDirectory, ".gitignore", testCase.contents)
			require.Equal(subtest, testCase.expected, evidence.GitignoreComprehensive(rootDirectory))
		})
	}

	testInstance.Run("missing_file", func(subtest *testing.T) {
		require.False(subtest, evidence.GitignoreComprehensive(subtest.TempDir()))
	})
}

func TestDependenciesPinned(testInstance *testing.T) {
	repositoryRoot := testInstance.TempDir()
	applicationRoot := filepath.Join(repositoryRoot, "services", "api")
	require.NoError(testInstance, os.MkdirAll(applicationRoot, 0o755))

	require.False(testInstance, evidence.DependenciesPinned(repositoryRoot, applicationRoot))

	writeFixtureFile(testInstance, repositoryRoot, "go.sum", "example.com/mod v1.0.0 h1:abc\n")
	require.True(testInstance, evidence.DependenciesPinned(repositoryRoot, applicationRoot))
}

func TestLanguageDefaults(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	writeFixtureFile(testInstance, rootDirectory, "go.mod", "module example.com/demo\n")

	require.True(testInstance, evidence.HasFormatter(rootDirectory), "gofmt is inherent to Go units")
	require.True(testInstance, evidence.HasTypeChecking(rootDirectory), "compile-time typing is inherent to Go units")
	require.False(testInstance, evidence.HasLinter(rootDirectory), "a Go unit still needs golangci-lint config")

	writeFixtureFile(testInstance, rootDirectory, ".golangci.yml", "linters:\n  enable:\n    - govet\n")
	require.True(testInstance, evidence.HasLinter(rootDirectory))
}

func TestCISignals(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	require.False(testInstance, evidence.HasCI(rootDirectory))

	writeFixtureFile(testInstance, rootDirectory, ".github/workflows/ci.yml", "jobs:\n  verify:\n    steps:\n      - run: make lint\n      - run: go test ./... -cover\n      - uses: actions/cache@v4\n")
	require.True(testInstance, evidence.HasCI(rootDirectory))
	require.True(testInstance, evidence.HasCILintJob(rootDirectory))
	require.True(testInstance, evidence.HasCITestJob(rootDirectory))
	require.True(testInstance, evidence.HasCICache(rootDirectory))
	require.True(testInstance, evidence.HasCoverageTracking(rootDirectory))
	require.False(testInstance, evidence.HasCoverageThreshold(rootDirectory))

	writeFixtureFile(testInstance, rootDirectory, ".coveragerc", "[report]\nfail_under = 80\n")
	require.True(testInstance, evidence.HasCoverageThreshold(rootDirectory))
}

func TestSecurityTooling(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	require.False(testInstance, evidence.HasSecretScanningTooling(rootDirectory))
	writeFixtureFile(testInstance, rootDirectory, ".gitleaks.toml", "[allowlist]\n")
	require.True(testInstance, evidence.HasSecretScanningTooling(rootDirectory))

	require.False(testInstance, evidence.HasDependencyUpdateAutomation(rootDirectory))
	writeFixtureFile(testInstance, rootDirectory, ".github/dependabot.yml", "version: 2\n")
	require.True(testInstance, evidence.HasDependencyUpdateAutomation(rootDirectory))

	require.False(testInstance, evidence.HasStaticSecurityScanning(rootDirectory))
	writeFixtureFile(testInstance, rootDirectory, ".github/workflows/codeql.yml", "name: codeql\n")
	require.True(testInstance, evidence.HasStaticSecurityScanning(rootDirectory))
}

func TestObservabilityLibraryDetection(testInstance *testing.T) {
	testCases := []struct {
		name            string
		manifestPath    string
		manifestBody    string
		expectedLogging bool
		expectedMetrics bool
		expectedTracing bool
	}{
		{
			name:            "go_manifest_with_zap_and_otel",
			manifestPath:    "go.mod",
			manifestBody:    "module example.com/svc\n\nrequire (\n\tgo.uber.org/zap v1.27.0\n\tgo.opentelemetry.io/otel v1.24.0 // opentelemetry\n)\n",
			expectedLogging: true,
			expectedMetrics: true,
			expectedTracing: true,
		},
		{
			name:         "node_manifest_without_observability",
			manifestPath: "package.json",
			manifestBody: `{"dependencies":{"express":"^4.0.0"}}`,
		},
		{
			name:            "python_manifest_with_structlog",
			manifestPath:    "pyproject.toml",
			manifestBody:    "[project]\nname = \"svc\"\ndependencies = [\"structlog\"]\n",
			expectedLogging: true,
		},
	}
	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			rootDirectory := subtest.TempDir()
			writeFixtureFile(subtest, rootDirectory, testCase.manifestPath, testCase.manifestBody)
			require.Equal(subtest, testCase.expectedLogging, evidence.HasLoggingLibrary(rootDirectory))
			require.Equal(subtest, testCase.expectedMetrics, evidence.HasMetricsLibrary(rootDirectory))
			require.Equal(subtest, testCase.expectedTracing, evidence.HasTracingLibrary(rootDirectory))
		})
	}
}

func TestHasHealthChecks(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	require.False(testInstance, evidence.HasHealthChecks(rootDirectory))
	writeFixtureFile(testInstance, rootDirectory, "src/server.go", "mux.HandleFunc(\"/healthz\", handleHealth)\n")
	require.True(testInstance, evidence.HasHealthChecks(rootDirectory))
}

func TestHasLogScrubbing(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	require.False(testInstance, evidence.HasLogScrubbing(rootDirectory))
	writeFixtureFile(testInstance, rootDirectory, "internal/logging/redact.go", "func Redact(value string) string { return mask(value) }\n")
	require.True(testInstance, evidence.HasLogScrubbing(rootDirectory))
}

func TestHasAutomationWorkflows(testInstance *testing.T) {
	testInstance.Run("automation_directory", func(subtest *testing.T) {
		rootDirectory := subtest.TempDir()
		writeFixtureFile(subtest, rootDirectory, "automation/refresh-deps.sh", "#!/bin/sh\n")
		found, hits := evidence.HasAutomationWorkflows(rootDirectory)
		require.True(subtest, found)
		require.Equal(subtest, []string{"automation/"}, hits)
	})

	testInstance.Run("scheduled_workflow", func(subtest *testing.T) {
		rootDirectory := subtest.TempDir()
		writeFixtureFile(subtest, rootDirectory, ".github/workflows/nightly.yml", "on:\n  schedule:\n    - cron: '0 3 * * *'\n")
		found, hits := evidence.HasAutomationWorkflows(rootDirectory)
		require.True(subtest, found)
		require.Equal(subtest, []string{".github/workflows/nightly.yml"}, hits)
	})

	testInstance.Run("no_signals", func(subtest *testing.T) {
		found, _ := evidence.HasAutomationWorkflows(subtest.TempDir())
		require.False(subtest, found)
	})
}

func TestBuildCommandDocumented(testInstance *testing.T) {
	testInstance.Run("makefile_build_target", func(subtest *testing.T) {
		rootDirectory := subtest.TempDir()
		writeFixtureFile(subtest, rootDirectory, "Makefile", "build:\n\tgo build ./...\n")
		require.True(subtest, evidence.BuildCommandDocumented(rootDirectory, rootDirectory))
	})

	testInstance.Run("readme_mention", func(subtest *testing.T) {
		rootDirectory := subtest.TempDir()
		writeFixtureFile(subtest, rootDirectory, "README.md", "Run `cargo build` to compile.\n")
		require.True(subtest, evidence.BuildCommandDocumented(rootDirectory, rootDirectory))
	})

	testInstance.Run("nothing_documented", func(subtest *testing.T) {
		rootDirectory := subtest.TempDir()
		require.False(subtest, evidence.BuildCommandDocumented(rootDirectory, rootDirectory))
	})
}
