package catalog

// Scope determines whether a criterion is judged once per repository or
// once per discovered application unit.
type Scope string

const (
	// RepositoryScope criteria are evaluated once against the repository root.
	RepositoryScope Scope = "repo"
	// ApplicationScope criteria are evaluated per discovered application unit.
	ApplicationScope Scope = "app"
)

// Pillar names shared across the rubric, scoring, and reports.
const (
	StyleValidationPillarName    = "Style & Validation"
	BuildSystemPillarName        = "Build System"
	TestingPillarName            = "Testing"
	DocumentationPillarName      = "Documentation"
	DevEnvironmentPillarName     = "Dev Environment"
	CodeQualityPillarName        = "Code Quality"
	ObservabilityPillarName      = "Observability"
	SecurityGovernancePillarName = "Security & Governance"
)

// Pillar describes one of the eight readiness dimensions.
type Pillar struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Why           string `json:"why"`
	WhatItCatches string `json:"what_it_catches"`
}

// LevelDefinition describes one of the five maturity levels.
type LevelDefinition struct {
	Level           int    `json:"level"`
	Name            string `json:"name"`
	Description     string `json:"description"`
	AgentCapability string `json:"agent_capability"`
}

// Criterion is a single binary readiness check.
type Criterion struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Pillar      string `json:"pillar"`
	Level       int    `json:"level"`
	Scope       Scope  `json:"scope"`
	Weight      int    `json:"weight"`
	Why         string `json:"why"`
	Remediation string `json:"remediation"`
}

var pillarDefinitions = []Pillar{
	{
		ID:            "style_validation",
		Name:          StyleValidationPillarName,
		Why:           "Fast, local feedback (lint/format/typecheck) prevents agents from iterating blindly on avoidable errors.",
		WhatItCatches: "Syntax/style drift, type errors, low-signal CI failures.",
	},
	{
		ID:            "build_system",
		Name:          BuildSystemPillarName,
		Why:           "Deterministic build and release paths let agents verify changes end-to-end without tribal knowledge.",
		WhatItCatches: "Unclear build commands, unpinned deps, missing CI/release automation.",
	},
	{
		ID:            "testing",
		Name:          TestingPillarName,
		Why:           "Tests are the safety net that lets agents move fast without breaking behavior.",
		WhatItCatches: "Lack of unit/integration tests, brittle or slow test loops.",
	},
	{
		ID:            "documentation",
		Name:          DocumentationPillarName,
		Why:           "Written instructions replace oral tradition. Agents need explicit setup/run/deploy/debug guidance.",
		WhatItCatches: "Missing setup steps, undocumented env vars, unclear operational procedures.",
	},
	{
		ID:            "dev_environment",
		Name:          DevEnvironmentPillarName,
		Why:           "Reproducible environments eliminate 'works on my machine' and make agent verification reliable.",
		WhatItCatches: "Inconsistent local setup, missing env templates, undocumented local services.",
	},
	{
		ID:            "code_quality",
		Name:          CodeQualityPillarName,
		Why:           "Agents scale better in modular, low-complexity codebases with explicit architectural boundaries.",
		WhatItCatches: "High complexity, dead/duplicate code, weak module boundaries, unmanaged tech debt.",
	},
	{
		ID:            "observability",
		Name:          ObservabilityPillarName,
		Why:           "Logs/metrics/traces turn failures into explanations. Agents need runtime visibility to debug effectively.",
		WhatItCatches: "Opaque runtime errors, lack of runbooks, missing telemetry and alert signals.",
	},
	{
		ID:            "security_governance",
		Name:          SecurityGovernancePillarName,
		Why:           "Acceleration without guardrails increases risk. Ownership and automated scanning keep velocity safe.",
		WhatItCatches: "Missing ownership, weak review boundaries, absent scanning and dependency hygiene.",
	},
}

var levelDefinitions = []LevelDefinition{
	{
		Level:           1,
		Name:            "Functional",
		Description:     "Baseline tooling exists; code can run/build/test with manual effort.",
		AgentCapability: "Small, supervised changes; limited self-validation.",
	},
	{
		Level:           2,
		Name:            "Documented",
		Description:     "Setup and workflows are written down; basic automation exists.",
		AgentCapability: "Reliable onboarding; agents can follow documented commands.",
	},
	{
		Level:           3,
		Name:            "Standardized",
		Description:     "Processes are defined and enforced through automation (practical production target).",
		AgentCapability: "Routine maintenance (bug fixes, tests, docs, dependency upgrades) with tight feedback loops.",
	},
	{
		Level:           4,
		Name:            "Optimized",
		Description:     "Fast feedback and continuous measurement; systems tuned for productivity.",
		AgentCapability: "Larger refactors and feature work with strong verification and faster iteration.",
	},
	{
		Level:           5,
		Name:            "Autonomous",
		Description:     "Self-improving systems and orchestrated maintenance; minimal human intervention.",
		AgentCapability: "Proactive improvement and parallelized work decomposition (rare; incremental).",
	},
}

var criterionDefinitions = []Criterion{
	// Level 1: Functional
	{
		ID:          "readme",
		Title:       "README present",
		Pillar:      DocumentationPillarName,
		Level:       1,
		Scope:       RepositoryScope,
		Weight:      5,
		Why:         "Agents need a single canonical starting point to understand purpose and basic commands.",
		Remediation: "Add a README.md with: purpose, prerequisites, setup, build/test commands, and a quickstart.",
	},
	{
		ID:          "gitignore",
		Title:       "Git ignore is present and reasonably comprehensive",
		Pillar:      SecurityGovernancePillarName,
		Level:       1,
		Scope:       RepositoryScope,
		Weight:      3,
		Why:         "Prevents accidental commits of secrets, build artifacts, and local environment noise.",
		Remediation: "Add/update .gitignore to exclude env files, IDE metadata, caches, and build outputs.",
	},
	{
		ID:          "deps_pinned",
		Title:       "Dependencies are pinned (lockfiles present)",
		Pillar:      BuildSystemPillarName,
		Level:       1,
		Scope:       ApplicationScope,
		Weight:      5,
		Why:         "Agents need deterministic installs. Unpinned dependencies create non-reproducible failures.",
		Remediation: "Commit lockfiles (e.g., package-lock.json, pnpm-lock.yaml, poetry.lock, uv.lock, go.sum, Cargo.lock).",
	},
	{
		ID:          "lint_config",
		Title:       "Linter configuration exists",
		Pillar:      StyleValidationPillarName,
		Level:       1,
		Scope:       ApplicationScope,
		Weight:      5,
		Why:         "Linters turn many bugs into immediate feedback, reducing low-signal CI loops.",
		Remediation: "Add a linter (ESLint/Biome, Ruff, golangci-lint, Clippy) and commit its config.",
	},
	{
		ID:          "formatter",
		Title:       "Formatter configuration exists (or language-standard formatter enforced)",
		Pillar:      StyleValidationPillarName,
		Level:       1,
		Scope:       ApplicationScope,
		Weight:      4,
		Why:         "Formatting consistency prevents noisy diffs and reduces review friction for agent-generated changes.",
		Remediation: "Add Prettier/Biome/Black/Ruff format and ensure it runs locally and in CI.",
	},
	{
		ID:          "type_check",
		Title:       "Type checking exists (or compile-time typing is inherent)",
		Pillar:      StyleValidationPillarName,
		Level:       1,
		Scope:       ApplicationScope,
		Weight:      4,
		Why:         "Type checking catches integration errors earlier than runtime tests.",
		Remediation: "Enable TS strict mode or add mypy/pyright. Ensure type checks run in CI.",
	},
	{
		ID:          "unit_tests_exist",
		Title:       "Unit tests exist",
		Pillar:      TestingPillarName,
		Level:       1,
		Scope:       ApplicationScope,
		Weight:      5,
		Why:         "Unit tests are the fastest correctness signal for iterative agent work.",
		Remediation: "Add a minimal unit test suite and a standard test runner (pytest/jest/go test/etc).",
	},
	{
		ID:          "unit_tests_runnable",
		Title:       "Unit tests are runnable via a standard command",
		Pillar:      TestingPillarName,
		Level:       1,
		Scope:       ApplicationScope,
		Weight:      4,
		Why:         "Agents need an obvious, repeatable command to validate behavior before committing.",
		Remediation: "Document and standardize: `npm test` / `pytest` / `go test ./...` and ensure it works locally.",
	},
	{
		ID:          "build_cmd_doc",
		Title:       "Build command exists and is discoverable",
		Pillar:      BuildSystemPillarName,
		Level:       1,
		Scope:       ApplicationScope,
		Weight:      4,
		Why:         "Agents must be able to compile/build packages without guessing.",
		Remediation: "Add a build script/target and document it in README/AGENTS (e.g., `npm run build`, `make build`).",
	},

	// Level 2: Documented
	{
		ID:          "agents_md",
		Title:       "AGENTS.md exists (agent-facing development instructions)",
		Pillar:      DocumentationPillarName,
		Level:       2,
		Scope:       RepositoryScope,
		Weight:      5,
		Why:         "Agent-facing docs remove ambiguity: setup, commands, conventions, and 'how we work here'.",
		Remediation: "Add AGENTS.md with: setup, dev loops, common tasks, repo map, and verification commands.",
	},
	{
		ID:          "contributing",
		Title:       "CONTRIBUTING documentation exists",
		Pillar:      DocumentationPillarName,
		Level:       2,
		Scope:       RepositoryScope,
		Weight:      3,
		Why:         "Contribution guidance standardizes change flow and reduces back-and-forth.",
		Remediation: "Add CONTRIBUTING.md with local dev steps, testing, PR expectations, and review notes.",
	},
	{
		ID:          "pre_commit_hooks",
		Title:       "Pre-commit hooks exist (or equivalent local automation)",
		Pillar:      StyleValidationPillarName,
		Level:       2,
		Scope:       ApplicationScope,
		Weight:      4,
		Why:         "Pre-commit hooks prevent agents from creating avoidable CI churn.",
		Remediation: "Add pre-commit (Python) or Husky/lint-staged (Node) or equivalent git hook tooling.",
	},
	{
		ID:          "large_file_detection",
		Title:       "Large-file detection exists",
		Pillar:      StyleValidationPillarName,
		Level:       2,
		Scope:       RepositoryScope,
		Weight:      2,
		Why:         "Prevents accidental commits of huge binaries that break agent loops and CI performance.",
		Remediation: "Add pre-commit large-file hooks and/or Git LFS policies via .gitattributes.",
	},
	{
		ID:          "ci_configured",
		Title:       "CI is configured",
		Pillar:      BuildSystemPillarName,
		Level:       2,
		Scope:       RepositoryScope,
		Weight:      5,
		Why:         "Agents need a consistent verification pipeline that mirrors production expectations.",
		Remediation: "Add CI workflows to run lint/typecheck/tests on PRs.",
	},
	{
		ID:          "ci_lint_job",
		Title:       "CI runs linting/validation",
		Pillar:      StyleValidationPillarName,
		Level:       2,
		Scope:       RepositoryScope,
		Weight:      3,
		Why:         "Enforcing validation in CI prevents drift and makes agent output predictable.",
		Remediation: "Add a lint job to CI (e.g., `ruff check`, `eslint`, `golangci-lint`).",
	},
	{
		ID:          "ci_test_job",
		Title:       "CI runs tests",
		Pillar:      TestingPillarName,
		Level:       2,
		Scope:       RepositoryScope,
		Weight:      4,
		Why:         "Agents rely on CI as a backstop and as evidence of correctness.",
		Remediation: "Add a test job that runs the standard local test command across supported environments.",
	},
	{
		ID:          "codeowners",
		Title:       "CODEOWNERS exists",
		Pillar:      SecurityGovernancePillarName,
		Level:       2,
		Scope:       RepositoryScope,
		Weight:      4,
		Why:         "Clear ownership ensures critical paths get appropriate review when agents move fast.",
		Remediation: "Add CODEOWNERS in .github/ or repo root with ownership for key directories.",
	},
	{
		ID:          "pr_template",
		Title:       "PR template exists",
		Pillar:      SecurityGovernancePillarName,
		Level:       2,
		Scope:       RepositoryScope,
		Weight:      2,
		Why:         "A PR template helps agents include context, risk, and verification evidence consistently.",
		Remediation: "Add .github/pull_request_template.md with checklist: tests, docs, risk, rollout/rollback notes.",
	},
	{
		ID:          "issue_templates",
		Title:       "Issue templates exist",
		Pillar:      SecurityGovernancePillarName,
		Level:       2,
		Scope:       RepositoryScope,
		Weight:      1,
		Why:         "Structured issues reduce ambiguity and help agents pick up well-scoped work.",
		Remediation: "Add .github/ISSUE_TEMPLATE/ with templates for bug, feature, and incident followups.",
	},
	{
		ID:          "devcontainer",
		Title:       "Devcontainer exists",
		Pillar:      DevEnvironmentPillarName,
		Level:       2,
		Scope:       RepositoryScope,
		Weight:      3,
		Why:         "Reproducible dev environments reduce setup variance for humans and agents.",
		Remediation: "Add .devcontainer/devcontainer.json (or equivalent) with dependencies and recommended extensions.",
	},
	{
		ID:          "env_template",
		Title:       "Environment template exists (.env.example)",
		Pillar:      DevEnvironmentPillarName,
		Level:       2,
		Scope:       RepositoryScope,
		Weight:      3,
		Why:         "Agents cannot guess environment variables safely. Templates prevent trial-and-error loops.",
		Remediation: "Add .env.example documenting required variables and safe defaults (no secrets).",
	},

	// Level 3: Standardized
	{
		ID:          "integration_tests",
		Title:       "Integration/E2E tests exist where applicable",
		Pillar:      TestingPillarName,
		Level:       3,
		Scope:       ApplicationScope,
		Weight:      4,
		Why:         "Integration tests validate system behavior and reduce regressions from refactors.",
		Remediation: "Add a minimal integration/e2e suite (or document why it's not applicable).",
	},
	{
		ID:          "coverage_tracking",
		Title:       "Coverage tracking exists",
		Pillar:      TestingPillarName,
		Level:       3,
		Scope:       RepositoryScope,
		Weight:      2,
		Why:         "Coverage signals help agents understand risk and where to add tests.",
		Remediation: "Add Codecov/Coveralls or local coverage reporting (pytest-cov, nyc, go test -cover).",
	},
	{
		ID:          "coverage_threshold",
		Title:       "Coverage threshold is enforced",
		Pillar:      TestingPillarName,
		Level:       3,
		Scope:       RepositoryScope,
		Weight:      2,
		Why:         "A threshold prevents silent test erosion as agents make frequent edits.",
		Remediation: "Configure CI to fail if coverage drops below a defined threshold.",
	},
	{
		ID:          "env_vars_documented",
		Title:       "Environment variables are documented",
		Pillar:      DocumentationPillarName,
		Level:       3,
		Scope:       RepositoryScope,
		Weight:      3,
		Why:         "Agents need explicit runtime configuration knowledge to validate behavior locally.",
		Remediation: "Document required env vars in AGENTS/README and keep .env.example updated.",
	},
	{
		ID:          "docs_freshness",
		Title:       "Docs appear maintained (freshness signal)",
		Pillar:      DocumentationPillarName,
		Level:       3,
		Scope:       RepositoryScope,
		Weight:      2,
		Why:         "Stale instructions cause agents to fail repeatedly with outdated commands.",
		Remediation: "Update README/AGENTS/CONTRIBUTING when commands or architecture changes.",
	},
	{
		ID:          "doc_gen_automation",
		Title:       "Automated documentation generation/build exists",
		Pillar:      DocumentationPillarName,
		Level:       3,
		Scope:       RepositoryScope,
		Weight:      1,
		Why:         "Doc automation reduces drift and makes updates cheaper for agents.",
		Remediation: "Add a docs build workflow (mkdocs/sphinx/docusaurus) or a generator step.",
	},
	{
		ID:          "service_flow_docs",
		Title:       "Service flow / architecture is documented (diagrams or structured docs)",
		Pillar:      DocumentationPillarName,
		Level:       3,
		Scope:       RepositoryScope,
		Weight:      2,
		Why:         "Agents are more effective when system boundaries and flows are explicit.",
		Remediation: "Add architecture docs (mermaid/plantuml) and keep a short system map.",
	},
	{
		ID:          "local_services_setup",
		Title:       "Local services setup exists (e.g., docker compose) if needed",
		Pillar:      DevEnvironmentPillarName,
		Level:       3,
		Scope:       RepositoryScope,
		Weight:      2,
		Why:         "Agents need a reproducible way to run dependencies (db, cache, queues) locally.",
		Remediation: "Add docker compose or scripts to start required local dependencies.",
	},
	{
		ID:          "db_migrations",
		Title:       "Database migrations / schema management exists (if applicable)",
		Pillar:      DevEnvironmentPillarName,
		Level:       3,
		Scope:       RepositoryScope,
		Weight:      1,
		Why:         "Schema drift breaks agent verification and creates deployment risk.",
		Remediation: "Add migrations tooling (alembic/prisma/flyway/etc) or document schema strategy.",
	},
	{
		ID:          "structured_logging",
		Title:       "Structured logging is present",
		Pillar:      ObservabilityPillarName,
		Level:       3,
		Scope:       ApplicationScope,
		Weight:      2,
		Why:         "Structured logs accelerate debugging by making failures searchable and contextual.",
		Remediation: "Adopt structured logging (JSON) and document log fields and redaction rules.",
	},
	{
		ID:          "metrics_instrumentation",
		Title:       "Metrics instrumentation is present",
		Pillar:      ObservabilityPillarName,
		Level:       3,
		Scope:       ApplicationScope,
		Weight:      2,
		Why:         "Metrics turn behavior into measurable signals agents can reason about.",
		Remediation: "Add metrics instrumentation (Prometheus/OpenTelemetry/StatsD) and document key metrics.",
	},
	{
		ID:          "tracing_instrumentation",
		Title:       "Distributed tracing is present",
		Pillar:      ObservabilityPillarName,
		Level:       3,
		Scope:       ApplicationScope,
		Weight:      1,
		Why:         "Traces connect failures across services; agents can find root causes faster.",
		Remediation: "Instrument traces via OpenTelemetry and propagate trace/request IDs.",
	},
	{
		ID:          "error_tracking",
		Title:       "Error tracking is present",
		Pillar:      ObservabilityPillarName,
		Level:       3,
		Scope:       ApplicationScope,
		Weight:      1,
		Why:         "Error tracking provides high-signal failures and context beyond logs alone.",
		Remediation: "Add error tracking (Sentry/Bugsnag/etc) with contextual metadata.",
	},
	{
		ID:          "runbooks",
		Title:       "Runbooks/playbooks exist (or are linked)",
		Pillar:      ObservabilityPillarName,
		Level:       3,
		Scope:       RepositoryScope,
		Weight:      1,
		Why:         "Runbooks encode operational response so agents can act safely during incidents.",
		Remediation: "Create runbooks for common failure modes and link them from README/AGENTS.",
	},
	{
		ID:          "health_checks",
		Title:       "Health/readiness checks exist (if deployed service)",
		Pillar:      ObservabilityPillarName,
		Level:       3,
		Scope:       ApplicationScope,
		Weight:      1,
		Why:         "Health endpoints enable automated validation and safe rollouts.",
		Remediation: "Add /health and /ready endpoints and test them in CI.",
	},
	{
		ID:          "dependabot",
		Title:       "Automated dependency updates are configured",
		Pillar:      SecurityGovernancePillarName,
		Level:       3,
		Scope:       RepositoryScope,
		Weight:      2,
		Why:         "Dependency hygiene reduces risk as agents ship more frequently.",
		Remediation: "Enable Dependabot/Renovate for dependencies and CI workflows.",
	},
	{
		ID:          "sast_scanning",
		Title:       "Static security scanning is configured (SAST)",
		Pillar:      SecurityGovernancePillarName,
		Level:       3,
		Scope:       RepositoryScope,
		Weight:      2,
		Why:         "Automated scanning is a scalable guardrail for accelerated change.",
		Remediation: "Add CodeQL/Semgrep scanning in CI and review findings regularly.",
	},
	{
		ID:          "secret_scanning_tooling",
		Title:       "Secret scanning tooling exists (repo-local detectable)",
		Pillar:      SecurityGovernancePillarName,
		Level:       3,
		Scope:       RepositoryScope,
		Weight:      2,
		Why:         "Agents should not introduce secrets; scanning catches leaks quickly.",
		Remediation: "Add gitleaks or equivalent scanning in CI and a baseline allowlist as needed.",
	},
	{
		ID:          "security_policy",
		Title:       "Security policy exists (SECURITY.md)",
		Pillar:      SecurityGovernancePillarName,
		Level:       3,
		Scope:       RepositoryScope,
		Weight:      1,
		Why:         "Clarifies reporting and response expectations for security issues.",
		Remediation: "Add SECURITY.md describing reporting channels and response SLAs.",
	},
	{
		ID:          "log_scrubbing",
		Title:       "Log redaction / scrubbing mechanisms exist (best-effort detection)",
		Pillar:      SecurityGovernancePillarName,
		Level:       3,
		Scope:       RepositoryScope,
		Weight:      1,
		Why:         "As output volume increases, preventing PII/secret leakage into logs becomes critical.",
		Remediation: "Implement redaction utilities, document sensitive fields, and enforce via lint/tests.",
	},
	{
		ID:          "branch_protection",
		Title:       "Branch protection / required reviews are enabled (requires repo-host metadata)",
		Pillar:      SecurityGovernancePillarName,
		Level:       3,
		Scope:       RepositoryScope,
		Weight:      3,
		Why:         "Agents move fast; review gates and protected branches prevent unsafe changes from landing unreviewed.",
		Remediation: "Enable protected branches and required reviews in repository settings.",
	},

	// Level 4: Optimized
	{
		ID:          "ci_cache",
		Title:       "CI uses caching (fast feedback proxy)",
		Pillar:      BuildSystemPillarName,
		Level:       4,
		Scope:       RepositoryScope,
		Weight:      2,
		Why:         "Faster CI loops increase agent throughput and reduce time-to-fix.",
		Remediation: "Add dependency caching (e.g., actions/cache) and parallelize test jobs where possible.",
	},
	{
		ID:          "flaky_tests",
		Title:       "Flaky test detection exists",
		Pillar:      TestingPillarName,
		Level:       4,
		Scope:       RepositoryScope,
		Weight:      2,
		Why:         "Flaky tests waste agent cycles and create mistrust in feedback signals.",
		Remediation: "Add retries/quarantine mechanisms and track flaky tests explicitly.",
	},
	{
		ID:          "test_timing",
		Title:       "Test performance tracking exists (timings/benchmarks)",
		Pillar:      TestingPillarName,
		Level:       4,
		Scope:       RepositoryScope,
		Weight:      1,
		Why:         "Optimizing test runtime improves agent iteration speed and CI cost.",
		Remediation: "Emit timings (pytest --durations, go test timing) and monitor regressions.",
	},
	{
		ID:          "unused_deps",
		Title:       "Unused dependency detection exists",
		Pillar:      CodeQualityPillarName,
		Level:       4,
		Scope:       RepositoryScope,
		Weight:      1,
		Why:         "Unused deps increase attack surface and slow down builds and agents.",
		Remediation: "Add depcheck/knip/deptry/go mod tidy checks in CI.",
	},
	{
		ID:          "complexity",
		Title:       "Complexity analysis exists",
		Pillar:      CodeQualityPillarName,
		Level:       4,
		Scope:       RepositoryScope,
		Weight:      1,
		Why:         "Complex functions are harder for agents to modify safely.",
		Remediation: "Add complexity rules/tools (eslint complexity, radon/lizard/gocyclo) and refactor hot spots.",
	},
	{
		ID:          "dead_code",
		Title:       "Dead code detection exists",
		Pillar:      CodeQualityPillarName,
		Level:       4,
		Scope:       RepositoryScope,
		Weight:      1,
		Why:         "Dead code confuses agents and increases hallucinated changes to unused paths.",
		Remediation: "Add vulture/ts-prune/knip or equivalent and remove unused code.",
	},
	{
		ID:          "dup_code",
		Title:       "Duplicate code detection exists",
		Pillar:      CodeQualityPillarName,
		Level:       4,
		Scope:       RepositoryScope,
		Weight:      1,
		Why:         "Duplicate logic multiplies maintenance cost and increases inconsistency risk.",
		Remediation: "Add jscpd/CPD/Sonar-style duplication checks and refactor shared utilities.",
	},
	{
		ID:          "module_boundaries",
		Title:       "Module boundary enforcement exists (architectural constraints)",
		Pillar:      CodeQualityPillarName,
		Level:       4,
		Scope:       RepositoryScope,
		Weight:      1,
		Why:         "Explicit boundaries prevent agents from making changes that violate architecture.",
		Remediation: "Add boundary enforcement (import-linter, eslint boundaries, depguard) and document modules.",
	},
	{
		ID:          "todo_tracking",
		Title:       "Tech debt tracking exists (TODO policy/scanner)",
		Pillar:      CodeQualityPillarName,
		Level:       4,
		Scope:       RepositoryScope,
		Weight:      1,
		Why:         "Without guardrails, agents can accumulate TODO debt quickly.",
		Remediation: "Enforce TODO format (with ticket) and add CI scanners for TODO/FIXME.",
	},
	{
		ID:          "alerting",
		Title:       "Alerting signals/config exist",
		Pillar:      ObservabilityPillarName,
		Level:       4,
		Scope:       RepositoryScope,
		Weight:      1,
		Why:         "Alerting closes the loop: agents can detect regressions and verify safe operation.",
		Remediation: "Add alert rules and document alert routing and on-call expectations.",
	},

	// Level 5: Autonomous
	{
		ID:          "automation_workflows_present",
		Title:       "Automation workflows exist (repeatable maintenance in-repo)",
		Pillar:      BuildSystemPillarName,
		Level:       5,
		Scope:       RepositoryScope,
		Weight:      1,
		Why:         "Level 5 requires repeatable automation and self-serve maintenance routines.",
		Remediation: "Add standardized automation workflows for recurring maintenance tasks.",
	},
}

// Pillars returns the pillar definitions in presentation order.
func Pillars() []Pillar {
	pillars := make([]Pillar, len(pillarDefinitions))
	copy(pillars, pillarDefinitions)
	return pillars
}

// Levels returns the maturity level definitions in ascending order.
func Levels() []LevelDefinition {
	levels := make([]LevelDefinition, len(levelDefinitions))
	copy(levels, levelDefinitions)
	return levels
}

// Criteria returns every criterion in catalog order (level, then definition order).
func Criteria() []Criterion {
	criteria := make([]Criterion, len(criterionDefinitions))
	copy(criteria, criterionDefinitions)
	return criteria
}

// LevelName resolves a level number to its defined name.
func LevelName(level int) string {
	for _, definition := range levelDefinitions {
		if definition.Level == level {
			return definition.Name
		}
	}
	return ""
}
