package criteria

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/readix/readix/internal/evidence"
)

const documentationFreshnessWindowDays = 180

func singleRepositoryResult(status Status, reason string, evidenceHits []string) []UnitResult {
	return []UnitResult{makeUnitResult(repositoryUnitNameConstant, status, reason, evidenceHits)}
}

func (engine *Engine) repositoryFileExists(relativePath string) bool {
	_, statError := os.Stat(filepath.Join(engine.repositoryRoot, relativePath))
	return statError == nil
}

func (engine *Engine) workflowEvidence() []string {
	if engine.repositoryFileExists(filepath.Join(".github", "workflows")) {
		return []string{".github/workflows/*"}
	}
	return nil
}

func (engine *Engine) buildRepositoryProbes() map[string]repositoryProbe {
	root := engine.repositoryRoot
	return map[string]repositoryProbe{
		"readme": func() []UnitResult {
			found, hits := evidence.ExistsAny(root, []string{"README.md", "README.rst", "README.txt", "README"})
			if found {
				return singleRepositoryResult(PassStatus, "Found README.", hits)
			}
			return singleRepositoryResult(FailStatus, "No README found.", nil)
		},
		"gitignore": func() []UnitResult {
			if evidence.GitignoreComprehensive(root) {
				return singleRepositoryResult(PassStatus, ".gitignore exists and contains common exclusions.", []string{".gitignore"})
			}
			if engine.repositoryFileExists(".gitignore") {
				return singleRepositoryResult(FailStatus, ".gitignore exists but seems minimal (missing common exclusions).", []string{".gitignore"})
			}
			return singleRepositoryResult(FailStatus, "No .gitignore found.", nil)
		},
		"large_file_detection": func() []UnitResult {
			if evidence.HasLargeFileDetection(root) {
				var hits []string
				if engine.repositoryFileExists(".gitattributes") {
					hits = append(hits, ".gitattributes")
				}
				if engine.repositoryFileExists(".pre-commit-config.yaml") {
					hits = append(hits, ".pre-commit-config.yaml")
				}
				return singleRepositoryResult(PassStatus, "Large-file detection appears configured.", hits)
			}
			return singleRepositoryResult(FailStatus, "No evidence of large-file detection hooks or LFS policy.", nil)
		},
		"ci_configured": func() []UnitResult {
			if evidence.HasCI(root) {
				var hits []string
				if engine.repositoryFileExists(filepath.Join(".github", "workflows")) {
					hits = append(hits, ".github/workflows/")
				}
				if engine.repositoryFileExists(".gitlab-ci.yml") {
					hits = append(hits, ".gitlab-ci.yml")
				}
				if engine.repositoryFileExists("azure-pipelines.yml") {
					hits = append(hits, "azure-pipelines.yml")
				}
				return singleRepositoryResult(PassStatus, "CI configuration detected.", hits)
			}
			return singleRepositoryResult(FailStatus, "No CI configuration detected.", nil)
		},
		"ci_lint_job": func() []UnitResult {
			if !evidence.HasCI(root) {
				return singleRepositoryResult(SkipStatus, "CI not detected; cannot evaluate lint job.", nil)
			}
			if evidence.HasCILintJob(root) {
				return singleRepositoryResult(PassStatus, "CI appears to run lint/validation.", []string{".github/workflows/*"})
			}
			return singleRepositoryResult(FailStatus, "CI detected, but no obvious lint job found.", engine.workflowEvidence())
		},
		"ci_test_job": func() []UnitResult {
			if !evidence.HasCI(root) {
				return singleRepositoryResult(SkipStatus, "CI not detected; cannot evaluate test job.", nil)
			}
			if evidence.HasCITestJob(root) {
				return singleRepositoryResult(PassStatus, "CI appears to run tests.", []string{".github/workflows/*"})
			}
			return singleRepositoryResult(FailStatus, "CI detected, but no obvious test job found.", engine.workflowEvidence())
		},
		"codeowners": func() []UnitResult {
			if evidence.HasCodeowners(root) {
				hits := []string{".github/CODEOWNERS"}
				if engine.repositoryFileExists("CODEOWNERS") {
					hits = []string{"CODEOWNERS"}
				}
				return singleRepositoryResult(PassStatus, "CODEOWNERS file found.", hits)
			}
			return singleRepositoryResult(FailStatus, "No CODEOWNERS file found.", nil)
		},
		"pr_template": func() []UnitResult {
			if evidence.HasPullRequestTemplate(root) {
				return singleRepositoryResult(PassStatus, "PR template found.", []string{".github/pull_request_template.md"})
			}
			return singleRepositoryResult(FailStatus, "No PR template found.", nil)
		},
		"issue_templates": func() []UnitResult {
			if evidence.HasIssueTemplates(root) {
				return singleRepositoryResult(PassStatus, "Issue templates directory found.", []string{".github/ISSUE_TEMPLATE/"})
			}
			return singleRepositoryResult(FailStatus, "No issue templates directory found.", nil)
		},
		"devcontainer": func() []UnitResult {
			if evidence.HasDevcontainer(root) {
				return singleRepositoryResult(PassStatus, "Devcontainer configuration found.", []string{".devcontainer/devcontainer.json"})
			}
			return singleRepositoryResult(FailStatus, "No devcontainer configuration found.", nil)
		},
		"env_template": func() []UnitResult {
			if evidence.HasEnvTemplate(root) {
				return singleRepositoryResult(PassStatus, "Environment template found.", []string{".env.example"})
			}
			return singleRepositoryResult(FailStatus, "No .env.example (or equivalent) found.", nil)
		},
		"agents_md": func() []UnitResult {
			if engine.repositoryFileExists("AGENTS.md") {
				return singleRepositoryResult(PassStatus, "AGENTS.md found at repo root.", []string{"AGENTS.md"})
			}
			return singleRepositoryResult(FailStatus, "No AGENTS.md found at repo root.", nil)
		},
		"contributing": func() []UnitResult {
			if engine.repositoryFileExists("CONTRIBUTING.md") {
				return singleRepositoryResult(PassStatus, "CONTRIBUTING.md found.", []string{"CONTRIBUTING.md"})
			}
			return singleRepositoryResult(FailStatus, "No CONTRIBUTING.md found.", nil)
		},
		"coverage_tracking": func() []UnitResult {
			if evidence.HasCoverageTracking(root) {
				return singleRepositoryResult(PassStatus, "Coverage tracking evidence found (CI/config).", []string{".github/workflows/*", ".coveragerc"})
			}
			if !evidence.HasCI(root) {
				return singleRepositoryResult(SkipStatus, "CI not detected; coverage tracking unclear.", nil)
			}
			return singleRepositoryResult(FailStatus, "No coverage tracking evidence found in CI/config.", engine.workflowEvidence())
		},
		"coverage_threshold": func() []UnitResult {
			if evidence.HasCoverageThreshold(root) {
				return singleRepositoryResult(PassStatus, "Coverage threshold evidence found.", []string{".github/workflows/*", ".coveragerc"})
			}
			if evidence.HasCoverageTracking(root) {
				return singleRepositoryResult(FailStatus, "Coverage tracking found, but no threshold evidence detected.", []string{".github/workflows/*", ".coveragerc"})
			}
			return singleRepositoryResult(SkipStatus, "No coverage tooling detected; cannot evaluate threshold.", nil)
		},
		"env_vars_documented": func() []UnitResult {
			if evidence.EnvVarsDocumented(root) {
				return singleRepositoryResult(PassStatus, "Environment variables appear documented (or template exists).", []string{"README.md", "AGENTS.md", ".env.example"})
			}
			return singleRepositoryResult(FailStatus, "No clear evidence of environment variable documentation or templates.", []string{"README.md", "AGENTS.md"})
		},
		"docs_freshness": func() []UnitResult {
			return []UnitResult{engine.documentationFreshness()}
		},
		"doc_gen_automation": func() []UnitResult {
			if evidence.HasDocGenAutomation(root) {
				return singleRepositoryResult(PassStatus, "Docs automation signals found in workflows.", []string{".github/workflows/*"})
			}
			if !evidence.HasCI(root) {
				return singleRepositoryResult(SkipStatus, "CI not detected; cannot evaluate docs automation.", nil)
			}
			return singleRepositoryResult(FailStatus, "No obvious docs generation/build automation found.", []string{".github/workflows/*"})
		},
		"service_flow_docs": func() []UnitResult {
			if evidence.HasDiagrams(root) {
				return singleRepositoryResult(PassStatus, "Architecture/service flow documentation signals found.", []string{"docs/", "**/*.mermaid", "**/*.puml"})
			}
			return singleRepositoryResult(FailStatus, "No clear architecture/service-flow documentation signals found.", []string{"docs/", "README.md", "AGENTS.md"})
		},
		"local_services_setup": func() []UnitResult {
			if evidence.HasLocalServicesSetup(root) {
				return singleRepositoryResult(PassStatus, "Local services setup detected (compose/docker).", []string{"docker-compose.yml", "compose.yml", "docker/"})
			}
			return singleRepositoryResult(SkipStatus, "No local services setup detected; may be unnecessary for this repo.", nil)
		},
		"db_migrations": func() []UnitResult {
			if evidence.HasDatabaseMigrations(root) {
				return singleRepositoryResult(PassStatus, "Database migration/schema tooling detected.", []string{"migrations/", "alembic/", "prisma/"})
			}
			return singleRepositoryResult(SkipStatus, "No migrations detected; may be inapplicable (no database).", nil)
		},
		"runbooks": func() []UnitResult {
			if evidence.HasRunbooks(root) {
				return singleRepositoryResult(PassStatus, "Runbook/playbook signals found.", []string{"runbooks/", "docs/runbooks/", "README.md"})
			}
			return singleRepositoryResult(FailStatus, "No runbook/playbook signals found.", nil)
		},
		"dependabot": func() []UnitResult {
			if evidence.HasDependencyUpdateAutomation(root) {
				var hits []string
				if engine.repositoryFileExists(filepath.Join(".github", "dependabot.yml")) {
					hits = append(hits, ".github/dependabot.yml")
				}
				if engine.repositoryFileExists("renovate.json") {
					hits = append(hits, "renovate.json")
				}
				return singleRepositoryResult(PassStatus, "Automated dependency update config found.", hits)
			}
			return singleRepositoryResult(FailStatus, "No Dependabot/Renovate configuration detected.", nil)
		},
		"sast_scanning": func() []UnitResult {
			if evidence.HasStaticSecurityScanning(root) {
				return singleRepositoryResult(PassStatus, "Static scanning configuration detected.", []string{".github/workflows/codeql.yml", ".semgrep.yml"})
			}
			if !evidence.HasCI(root) {
				return singleRepositoryResult(SkipStatus, "CI not detected; cannot evaluate scanning.", nil)
			}
			return singleRepositoryResult(FailStatus, "No static security scanning config detected.", engine.workflowEvidence())
		},
		"secret_scanning_tooling": func() []UnitResult {
			if evidence.HasSecretScanningTooling(root) {
				return singleRepositoryResult(PassStatus, "Secret scanning tooling/config detected.", []string{".gitleaks.toml", ".github/workflows/*"})
			}
			if !evidence.HasCI(root) {
				return singleRepositoryResult(SkipStatus, "CI not detected; secret scanning unclear.", nil)
			}
			return singleRepositoryResult(FailStatus, "No repo-local detectable secret scanning tooling found.", []string{".github/workflows/*"})
		},
		"security_policy": func() []UnitResult {
			if evidence.HasSecurityPolicy(root) {
				return singleRepositoryResult(PassStatus, "SECURITY.md found.", []string{"SECURITY.md"})
			}
			return singleRepositoryResult(FailStatus, "No SECURITY.md found.", nil)
		},
		"log_scrubbing": func() []UnitResult {
			if evidence.HasLogScrubbing(root) {
				return singleRepositoryResult(PassStatus, "Log scrubbing/redaction signals found (best-effort).", []string{"AGENTS.md", "SECURITY.md", "src/*"})
			}
			return singleRepositoryResult(FailStatus, "No obvious log scrubbing/redaction signals found (best-effort).", nil)
		},
		"branch_protection": func() []UnitResult {
			// Never locally determinable.
			return singleRepositoryResult(SkipStatus, "Requires repository host settings (branch protection / required reviews).", nil)
		},
		"ci_cache": func() []UnitResult {
			if !evidence.HasCI(root) {
				return singleRepositoryResult(SkipStatus, "CI not detected; cannot evaluate caching.", nil)
			}
			if evidence.HasCICache(root) {
				return singleRepositoryResult(PassStatus, "Caching signals found in workflows.", []string{".github/workflows/*"})
			}
			return singleRepositoryResult(FailStatus, "No obvious caching signals found in workflows.", []string{".github/workflows/*"})
		},
		"flaky_tests": func() []UnitResult {
			if !evidence.HasCI(root) {
				return singleRepositoryResult(SkipStatus, "CI not detected; cannot evaluate flaky test detection.", nil)
			}
			if evidence.HasFlakyTestDetection(root) {
				return singleRepositoryResult(PassStatus, "Flaky test detection signals found.", []string{".github/workflows/*"})
			}
			return singleRepositoryResult(FailStatus, "No flaky test detection signals found.", []string{".github/workflows/*"})
		},
		"test_timing": func() []UnitResult {
			if !evidence.HasCI(root) {
				return singleRepositoryResult(SkipStatus, "CI not detected; cannot evaluate test timing.", nil)
			}
			if evidence.HasTestTiming(root) {
				return singleRepositoryResult(PassStatus, "Test timing/benchmark signals found.", []string{".github/workflows/*"})
			}
			return singleRepositoryResult(FailStatus, "No test timing/benchmark signals found.", []string{".github/workflows/*"})
		},
		"unused_deps": func() []UnitResult {
			if evidence.HasUnusedDependencyDetection(root) {
				return singleRepositoryResult(PassStatus, "Unused dependency detection signals found.", []string{".github/workflows/*", "package.json", "pyproject.toml"})
			}
			return singleRepositoryResult(FailStatus, "No unused dependency detection signals found.", nil)
		},
		"complexity": func() []UnitResult {
			if evidence.HasComplexityTool(root) {
				return singleRepositoryResult(PassStatus, "Complexity analysis signals found.", []string{".github/workflows/*", ".eslintrc*", "pyproject.toml"})
			}
			return singleRepositoryResult(FailStatus, "No complexity analysis signals found.", nil)
		},
		"dead_code": func() []UnitResult {
			if evidence.HasDeadCodeTool(root) {
				return singleRepositoryResult(PassStatus, "Dead code detection signals found.", []string{".github/workflows/*", "package.json", "pyproject.toml"})
			}
			return singleRepositoryResult(FailStatus, "No dead code detection signals found.", nil)
		},
		"dup_code": func() []UnitResult {
			if evidence.HasDuplicateCodeTool(root) {
				return singleRepositoryResult(PassStatus, "Duplicate code detection signals found.", []string{".github/workflows/*"})
			}
			return singleRepositoryResult(FailStatus, "No duplicate code detection signals found.", nil)
		},
		"module_boundaries": func() []UnitResult {
			if evidence.HasModuleBoundaryEnforcement(root) {
				return singleRepositoryResult(PassStatus, "Module boundary enforcement signals found.", []string{".github/workflows/*", "pyproject.toml", ".golangci.yml"})
			}
			return singleRepositoryResult(FailStatus, "No module boundary enforcement signals found.", nil)
		},
		"todo_tracking": func() []UnitResult {
			if evidence.HasTodoTracking(root) {
				return singleRepositoryResult(PassStatus, "Tech debt tracking/TODO policy signals found.", []string{".github/workflows/*", ".eslintrc*", "pyproject.toml"})
			}
			return singleRepositoryResult(FailStatus, "No obvious tech debt tracking/TODO policy signals found.", nil)
		},
		"alerting": func() []UnitResult {
			if evidence.HasAlerting(root) {
				return singleRepositoryResult(PassStatus, "Alerting configuration signals found.", []string{"prometheus/", "**/alert*.yml"})
			}
			return singleRepositoryResult(FailStatus, "No alerting configuration signals found.", nil)
		},
		"automation_workflows_present": func() []UnitResult {
			if found, hits := evidence.HasAutomationWorkflows(root); found {
				return singleRepositoryResult(PassStatus, "In-repo automation workflows found.", hits)
			}
			return singleRepositoryResult(FailStatus, "No obvious in-repo automation workflows found.", nil)
		},
	}
}

func (engine *Engine) documentationFreshness() UnitResult {
	documentationFiles := []string{"README.md", "AGENTS.md", "CONTRIBUTING.md"}
	var existing []string
	for _, fileName := range documentationFiles {
		if engine.repositoryFileExists(fileName) {
			existing = append(existing, fileName)
		}
	}
	if len(existing) == 0 {
		return makeUnitResult(repositoryUnitNameConstant, FailStatus, "No README/AGENTS/CONTRIBUTING files found to evaluate freshness.", nil)
	}
	if engine.documentHistory == nil {
		return makeUnitResult(repositoryUnitNameConstant, SkipStatus, "Unable to evaluate freshness (git history unavailable).", nil)
	}
	lastChange, historyError := engine.documentHistory.LastChangeTime(existing)
	if historyError != nil || lastChange.IsZero() {
		return makeUnitResult(repositoryUnitNameConstant, SkipStatus, "Unable to evaluate freshness (git history unavailable).", nil)
	}
	ageDays := int(time.Since(lastChange).Hours() / 24)
	if ageDays <= documentationFreshnessWindowDays {
		return makeUnitResult(
			repositoryUnitNameConstant,
			PassStatus,
			fmt.Sprintf("Docs updated %d days ago (<= %d).", ageDays, documentationFreshnessWindowDays),
			documentationFiles,
		)
	}
	return makeUnitResult(
		repositoryUnitNameConstant,
		FailStatus,
		fmt.Sprintf("Docs updated %d days ago (> %d).", ageDays, documentationFreshnessWindowDays),
		documentationFiles,
	)
}
