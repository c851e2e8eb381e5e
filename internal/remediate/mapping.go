package remediate

const generatedDependabotTemplateName = "__generated_dependabot__"

func newFileOp(path string, templateName string, reason string) FileOp {
	return FileOp{Path: path, Action: CreateIfMissingAction, Template: templateName, Reason: reason, Status: PlannedStatus}
}

// scaffoldForCriterion maps a criterion id to its scaffolding operations.
// Criteria without a safe scaffold come back with auto=false and a manual
// pointer to the assessment report.
func scaffoldForCriterion(criterionID string) (auto bool, fileOps []FileOp, manualSteps []string, description string) {
	switch criterionID {
	case "agents_md":
		return true,
			[]FileOp{newFileOp("AGENTS.md", "AGENTS.md.tmpl", "Provide agent-facing development instructions.")},
			nil,
			"Add AGENTS.md so agents (and new engineers) have a single source of truth for commands, loops, and expectations."
	case "contributing":
		return true,
			[]FileOp{newFileOp("CONTRIBUTING.md", "CONTRIBUTING.md.tmpl", "Standardize contribution and PR expectations.")},
			nil,
			"Add CONTRIBUTING.md to reduce review churn and make change flow explicit."
	case "pr_template":
		return true,
			[]FileOp{newFileOp(".github/pull_request_template.md", "pull_request_template.md.tmpl", "Make PR context and verification evidence consistent.")},
			nil,
			"Add a PR template to consistently capture risk and verification evidence."
	case "issue_templates":
		return true,
			[]FileOp{
				newFileOp(".github/ISSUE_TEMPLATE/bug_report.md", "ISSUE_TEMPLATE/bug_report.md.tmpl", "Ensure bugs are reported with reproducible steps."),
				newFileOp(".github/ISSUE_TEMPLATE/feature_request.md", "ISSUE_TEMPLATE/feature_request.md.tmpl", "Ensure features are proposed with acceptance criteria."),
				newFileOp(".github/ISSUE_TEMPLATE/incident_followup.md", "ISSUE_TEMPLATE/incident_followup.md.tmpl", "Track incident follow-ups with action items."),
				newFileOp(".github/ISSUE_TEMPLATE/config.yml", "ISSUE_TEMPLATE/config.yml.tmpl", "Route security issues away from public trackers."),
			},
			nil,
			"Add issue templates to improve issue quality and make work easier to pick up (for humans and agents)."
	case "codeowners":
		return true,
			[]FileOp{newFileOp(".github/CODEOWNERS", "CODEOWNERS.tmpl", "Define ownership to route reviews and approvals.")},
			[]string{"Replace placeholder owners in .github/CODEOWNERS with real GitHub users/teams."},
			"Add CODEOWNERS to make ownership explicit and enforceable."
	case "security_policy":
		return true,
			[]FileOp{newFileOp("SECURITY.md", "SECURITY.md.tmpl", "Provide a security reporting channel and policy.")},
			[]string{"Update contact channels in SECURITY.md to match your organization."},
			"Add SECURITY.md to standardize vulnerability reporting and reduce risk."
	case "env_template":
		return true,
			[]FileOp{newFileOp(".env.example", "env.example.tmpl", "Document required environment variables without secrets.")},
			[]string{"Add required env vars with safe defaults in .env.example (do not include secrets)."},
			"Add an environment template so agents do not guess runtime configuration."
	case "devcontainer":
		return true,
			[]FileOp{newFileOp(".devcontainer/devcontainer.json", "devcontainer.json.tmpl", "Provide a reproducible dev environment.")},
			[]string{"Customize devcontainer.json with language runtimes and tools required by your repo."},
			"Add a devcontainer scaffold to reduce \"works on my machine\" issues."
	case "gitignore":
		return true,
			[]FileOp{newFileOp(".gitignore", "gitignore.tmpl", "Prevent committing secrets and build artifacts.")},
			[]string{"Review .gitignore and tune for repo-specific tooling."},
			"Add/update .gitignore to reduce accidental commits of secrets and noisy artifacts."
	case "readme":
		return true,
			[]FileOp{newFileOp("README.md", "README.md.tmpl", "Provide a canonical entry point for humans and agents.")},
			[]string{"Update README.md with real setup/run commands and a short repo overview."},
			"Add a README as a canonical entry point (purpose, quickstart, and links)."
	case "pre_commit_hooks", "large_file_detection":
		// One pre-commit config satisfies both criteria.
		return true,
			[]FileOp{newFileOp(".pre-commit-config.yaml", "pre-commit-config.yaml.tmpl", "Add local automation and large-file detection.")},
			[]string{"If your environment is locked down, mirror pre-commit hook repos internally."},
			"Add pre-commit hooks to prevent avoidable CI churn and accidental large file commits."
	case "dependabot":
		return true,
			[]FileOp{newFileOp(".github/dependabot.yml", generatedDependabotTemplateName, "Automate dependency update PRs.")},
			nil,
			"Enable automated dependency update PRs to keep dependencies current with less manual effort."
	case "secret_scanning_tooling":
		return true,
			[]FileOp{newFileOp(".gitleaks.toml", "gitleaks.toml.tmpl", "Provide a baseline secret scanning configuration.")},
			[]string{"Wire secret scanning into CI (or an internal pipeline) so it runs on PRs."},
			"Add a secret scanning baseline and ensure it runs on PRs."
	}

	return false,
		nil,
		[]string{"See the assessment report for recommended remediation steps."},
		"This criterion is not auto-scaffoldable and likely requires repo-specific engineering work."
}
