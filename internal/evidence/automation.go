package evidence

import (
	"path/filepath"
	"strings"
)

// HasCI reports whether any recognized CI configuration exists.
func HasCI(repositoryRoot string) bool {
	if directoryExists(filepath.Join(repositoryRoot, ".github", "workflows")) {
		return true
	}
	if fileExists(filepath.Join(repositoryRoot, ".gitlab-ci.yml")) {
		return true
	}
	return fileExists(filepath.Join(repositoryRoot, "azure-pipelines.yml"))
}

// HasCILintJob reports whether a workflow mentions linting.
func HasCILintJob(repositoryRoot string) bool {
	found, _ := WorkflowTextContains(repositoryRoot, []string{"lint"})
	return found
}

// HasCITestJob reports whether a workflow mentions testing.
func HasCITestJob(repositoryRoot string) bool {
	found, _ := WorkflowTextContains(repositoryRoot, []string{"test"})
	return found
}

// HasCICache reports whether workflows use dependency caching.
func HasCICache(repositoryRoot string) bool {
	found, _ := WorkflowTextContains(repositoryRoot, []string{"cache"})
	return found
}

// HasCoverageTracking detects coverage reporting in workflows or local config.
func HasCoverageTracking(repositoryRoot string) bool {
	if anyWorkflowContainsAny(repositoryRoot, []string{"codecov", "coveralls", "coverage", "pytest --cov", "go test", "nyc", "istanbul"}) {
		return true
	}
	return fileExists(filepath.Join(repositoryRoot, ".coveragerc"))
}

// HasCoverageThreshold detects an enforced coverage floor in workflows or
// coverage config.
func HasCoverageThreshold(repositoryRoot string) bool {
	for _, workflowPath := range workflowFiles(repositoryRoot) {
		text := safeReadLower(workflowPath, workflowReadLimitConstant)
		if strings.Contains(text, "coverage") && (strings.Contains(text, "fail-under") || strings.Contains(text, "fail_under") || strings.Contains(text, "threshold")) {
			return true
		}
	}
	coverageRCPath := filepath.Join(repositoryRoot, ".coveragerc")
	return fileExists(coverageRCPath) && strings.Contains(safeReadLower(coverageRCPath, defaultReadLimitConstant), "fail_under")
}

// HasFlakyTestDetection looks for retry/quarantine tooling in workflows.
func HasFlakyTestDetection(repositoryRoot string) bool {
	for _, workflowPath := range workflowFiles(repositoryRoot) {
		text := safeReadLower(workflowPath, workflowReadLimitConstant)
		if strings.Contains(text, "flaky") {
			return true
		}
		if strings.Contains(text, "retry") && strings.Contains(text, "test") {
			return true
		}
		if containsAny(text, []string{"buildpulse", "rerunfailures", "rerun-failed", "pytest-rerunfailures"}) {
			return true
		}
	}
	return false
}

// HasTestTiming looks for timing/benchmark signals in workflows.
func HasTestTiming(repositoryRoot string) bool {
	return anyWorkflowContainsAny(repositoryRoot, []string{"--durations", "test timing", "benchmark", "microbench", "pytest -vv", "go test -run", "jest --runinband"})
}

// HasDocGenAutomation detects documentation build/deploy workflows.
func HasDocGenAutomation(repositoryRoot string) bool {
	for _, generatorToken := range []string{"mkdocs", "sphinx", "docusaurus", "docs"} {
		if found, hits := WorkflowTextContains(repositoryRoot, []string{generatorToken}); found && len(hits) > 0 {
			return true
		}
	}
	return false
}

// HasStaticSecurityScanning detects CodeQL or semgrep configuration.
func HasStaticSecurityScanning(repositoryRoot string) bool {
	workflowsDirectory := filepath.Join(repositoryRoot, ".github", "workflows")
	if fileExists(filepath.Join(workflowsDirectory, "codeql.yml")) || fileExists(filepath.Join(workflowsDirectory, "codeql.yaml")) {
		return true
	}
	if fileExists(filepath.Join(repositoryRoot, ".semgrep.yml")) || fileExists(filepath.Join(repositoryRoot, ".semgrep.yaml")) {
		return true
	}
	found, _ := WorkflowTextContains(repositoryRoot, []string{"semgrep"})
	return found
}

// HasSecretScanningTooling detects gitleaks configuration or workflow usage.
func HasSecretScanningTooling(repositoryRoot string) bool {
	for _, configName := range []string{".gitleaks.toml", ".gitleaks.yml", ".gitleaks.yaml", "gitleaks.toml"} {
		if fileExists(filepath.Join(repositoryRoot, configName)) {
			return true
		}
	}
	found, _ := WorkflowTextContains(repositoryRoot, []string{"gitleaks"})
	return found
}

// HasDependencyUpdateAutomation detects Dependabot or Renovate configuration.
func HasDependencyUpdateAutomation(repositoryRoot string) bool {
	if fileExists(filepath.Join(repositoryRoot, ".github", "dependabot.yml")) {
		return true
	}
	return fileExists(filepath.Join(repositoryRoot, "renovate.json")) || fileExists(filepath.Join(repositoryRoot, ".github", "renovate.json"))
}

var unusedDependencyTokens = []string{"depcheck", "knip", "pip-extra-reqs", "deptry", "go mod tidy", "cargo udeps"}

// HasUnusedDependencyDetection looks for unused-dependency tooling in
// workflows or manifests.
func HasUnusedDependencyDetection(repositoryRoot string) bool {
	if anyWorkflowContainsAny(repositoryRoot, unusedDependencyTokens) {
		return true
	}
	return anyConfigContainsAny(repositoryRoot, []string{"package.json", "pyproject.toml"}, unusedDependencyTokens)
}

// HasComplexityTool looks for complexity analyzers in workflows or lint config.
func HasComplexityTool(repositoryRoot string) bool {
	tokens := []string{"radon", "lizard", "gocyclo", "sonarqube"}
	if anyWorkflowContainsAny(repositoryRoot, tokens) {
		return true
	}
	configNames := append(append([]string{}, eslintConfigNames...), "pyproject.toml")
	return anyConfigContainsAny(repositoryRoot, configNames, append(tokens, "complexity"))
}

// HasDeadCodeTool looks for dead-code analyzers in workflows or manifests.
func HasDeadCodeTool(repositoryRoot string) bool {
	tokens := []string{"vulture", "ts-prune", "knip", "unimported", "deadcode"}
	if anyWorkflowContainsAny(repositoryRoot, tokens) {
		return true
	}
	return anyConfigContainsAny(repositoryRoot, []string{"pyproject.toml", "package.json"}, tokens)
}

// HasDuplicateCodeTool looks for duplication checkers in workflows.
func HasDuplicateCodeTool(repositoryRoot string) bool {
	return anyWorkflowContainsAny(repositoryRoot, []string{"jscpd", "pmd cpd", "duplication", "sonarqube"})
}

var moduleBoundaryTokens = []string{"boundar", "import-linter", "depguard"}

// HasModuleBoundaryEnforcement looks for explicit boundary configuration,
// not just the presence of a build tool.
func HasModuleBoundaryEnforcement(repositoryRoot string) bool {
	if anyWorkflowContainsAny(repositoryRoot, moduleBoundaryTokens) {
		return true
	}
	return anyConfigContainsAny(repositoryRoot, []string{"pyproject.toml", "package.json", ".golangci.yml", ".golangci.yaml", "nx.json"}, moduleBoundaryTokens)
}

// HasTodoTracking detects TODO scanners or an enforced TODO policy.
func HasTodoTracking(repositoryRoot string) bool {
	for _, workflowPath := range workflowFiles(repositoryRoot) {
		text := safeReadLower(workflowPath, workflowReadLimitConstant)
		if strings.Contains(text, "todo") && (strings.Contains(text, "fail") || strings.Contains(text, "grep")) {
			return true
		}
		if containsAny(text, []string{"todor", "todo-check"}) {
			return true
		}
	}
	configNames := append(append([]string{}, eslintConfigNames...), "pyproject.toml")
	for _, configName := range configNames {
		configPath := filepath.Join(repositoryRoot, configName)
		if !fileExists(configPath) {
			continue
		}
		text := safeReadLower(configPath, workflowReadLimitConstant)
		if strings.Contains(text, "no-warning-comments") {
			return true
		}
		if strings.Contains(text, "todo") && strings.Contains(text, "ticket") {
			return true
		}
	}
	return false
}

// HasAlerting detects alert rule files or documented alert integrations.
func HasAlerting(repositoryRoot string) bool {
	if found, _ := GlobAny(repositoryRoot, []string{"**/alertmanager*.yml", "**/alertmanager*.yaml", "**/*alert*.yml", "**/*alert*.yaml", "**/prometheus/**"}); found {
		return true
	}
	mentioned, _ := TextAny(repositoryRoot, []string{"README.md", "AGENTS.md"}, []string{"pagerduty", "opsgenie", "alertmanager", "prometheus alert", "alerts.yml", "alerts.yaml"})
	return mentioned
}

// HasAutomationWorkflows detects in-repo maintenance automation: a dedicated
// automation directory or scheduled CI workflows.
func HasAutomationWorkflows(repositoryRoot string) (bool, []string) {
	for _, directoryName := range []string{".automation", "automation"} {
		if directoryExists(filepath.Join(repositoryRoot, directoryName)) {
			return true, []string{directoryName + "/"}
		}
	}
	return WorkflowTextContains(repositoryRoot, []string{"schedule"})
}

func anyConfigContainsAny(repositoryRoot string, configNames []string, tokens []string) bool {
	for _, configName := range configNames {
		configPath := filepath.Join(repositoryRoot, configName)
		if !fileExists(configPath) {
			continue
		}
		if containsAny(safeReadLower(configPath, workflowReadLimitConstant), tokens) {
			return true
		}
	}
	return false
}
