package evidence

import (
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
)

var excludedScanDirectories = map[string]bool{
	".git":          true,
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

func anyFileMatches(rootDirectory string, matcher func(fileName string) bool) bool {
	found := false
	_ = filepath.WalkDir(rootDirectory, func(currentPath string, entry fs.DirEntry, entryError error) error {
		if entryError != nil {
			return nil
		}
		if entry.IsDir() {
			if excludedScanDirectories[entry.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if matcher(entry.Name()) {
			found = true
			return filepath.SkipAll
		}
		return nil
	})
	return found
}

// HasGoTests reports whether any *_test.go file exists under the application root.
func HasGoTests(applicationRoot string) bool {
	return anyFileMatches(applicationRoot, func(fileName string) bool {
		return strings.HasSuffix(fileName, "_test.go")
	})
}

// HasPythonTests reports whether a tests directory or test_*.py files exist.
func HasPythonTests(applicationRoot string) bool {
	if directoryExists(filepath.Join(applicationRoot, "tests")) {
		return true
	}
	return anyFileMatches(applicationRoot, func(fileName string) bool {
		return strings.HasPrefix(fileName, "test_") && strings.HasSuffix(fileName, ".py")
	})
}

// HasNodeTests reports whether a test script or a conventional test directory exists.
func HasNodeTests(applicationRoot string) bool {
	if PackageJSONHasScript(applicationRoot, "test") {
		return true
	}
	for _, directoryName := range []string{"test", "tests", "__tests__"} {
		if directoryExists(filepath.Join(applicationRoot, directoryName)) {
			return true
		}
	}
	return false
}

// HasIntegrationTests looks for integration/e2e suite directories or configs.
func HasIntegrationTests(applicationRoot string) bool {
	for _, directoryName := range []string{"integration", "integration_tests", "e2e", "cypress", "playwright", "tests/integration", "tests/e2e"} {
		if directoryExists(filepath.Join(applicationRoot, directoryName)) {
			return true
		}
	}
	for _, configName := range []string{"playwright.config.ts", "playwright.config.js"} {
		if fileExists(filepath.Join(applicationRoot, configName)) {
			return true
		}
	}
	return false
}

var lockfileNames = []string{
	"package-lock.json",
	"yarn.lock",
	"pnpm-lock.yaml",
	"npm-shrinkwrap.json",
	"poetry.lock",
	"uv.lock",
	"Pipfile.lock",
	"requirements.lock",
	"go.sum",
	"Cargo.lock",
	"Gemfile.lock",
}

// DependenciesPinned reports whether a lockfile exists at the repository
// root or the application root.
func DependenciesPinned(repositoryRoot string, applicationRoot string) bool {
	for _, lockfileName := range lockfileNames {
		if fileExists(filepath.Join(repositoryRoot, lockfileName)) || fileExists(filepath.Join(applicationRoot, lockfileName)) {
			return true
		}
	}
	return false
}

var eslintConfigNames = []string{
	".eslintrc", ".eslintrc.js", ".eslintrc.cjs", ".eslintrc.json", ".eslintrc.yml", ".eslintrc.yaml",
	"eslint.config.js", "eslint.config.mjs", "eslint.config.cjs",
}

// HasLinter detects linter configuration across the supported ecosystems.
func HasLinter(applicationRoot string) bool {
	if fileExists(filepath.Join(applicationRoot, "package.json")) {
		if existsAnyName(applicationRoot, eslintConfigNames) || existsAnyName(applicationRoot, []string{"biome.json", ".biome.json"}) {
			return true
		}
	}
	if fileExists(filepath.Join(applicationRoot, "pyproject.toml")) {
		if PyprojectHasTool(applicationRoot, "ruff") || PyprojectHasTool(applicationRoot, "flake8") || PyprojectHasTool(applicationRoot, "pylint") {
			return true
		}
	}
	if existsAnyName(applicationRoot, []string{"setup.cfg", "tox.ini", ".pylintrc"}) {
		return true
	}
	if existsAnyName(applicationRoot, []string{".golangci.yml", ".golangci.yaml"}) {
		return true
	}
	if linted, _ := WorkflowTextContains(applicationRoot, []string{"golangci-lint"}); linted {
		return true
	}
	if fileExists(filepath.Join(applicationRoot, "Cargo.toml")) {
		if clippyConfigured, _ := WorkflowTextContains(applicationRoot, []string{"clippy"}); clippyConfigured {
			return true
		}
	}
	return false
}

// HasFormatter detects formatter configuration, treating Go and Rust as
// covered by their language-standard formatters.
func HasFormatter(applicationRoot string) bool {
	if fileExists(filepath.Join(applicationRoot, "package.json")) {
		if existsAnyName(applicationRoot, []string{".prettierrc", ".prettierrc.json", ".prettierrc.yml", ".prettierrc.yaml", ".prettierrc.js", "prettier.config.js"}) {
			return true
		}
		if existsAnyName(applicationRoot, []string{"biome.json", ".biome.json"}) {
			return true
		}
	}
	if fileExists(filepath.Join(applicationRoot, "pyproject.toml")) {
		if PyprojectHasTool(applicationRoot, "black") || PyprojectHasTool(applicationRoot, "ruff") {
			return true
		}
	}
	if fileExists(filepath.Join(applicationRoot, "go.mod")) {
		return true
	}
	if matched, globError := filepath.Glob(filepath.Join(applicationRoot, "*.go")); globError == nil && len(matched) > 0 {
		return true
	}
	if fileExists(filepath.Join(applicationRoot, "Cargo.toml")) {
		return true
	}
	return false
}

// HasTypeChecking detects type-check tooling, treating compiled languages
// as inherently covered.
func HasTypeChecking(applicationRoot string) bool {
	if TSConfigStrict(applicationRoot) {
		return true
	}
	if fileExists(filepath.Join(applicationRoot, "pyproject.toml")) {
		if PyprojectHasTool(applicationRoot, "mypy") || PyprojectHasTool(applicationRoot, "pyright") {
			return true
		}
	}
	if existsAnyName(applicationRoot, []string{"mypy.ini", "pyrightconfig.json"}) {
		return true
	}
	if fileExists(filepath.Join(applicationRoot, "go.mod")) || fileExists(filepath.Join(applicationRoot, "Cargo.toml")) {
		return true
	}
	return false
}

// HasPreCommitTooling detects pre-commit, husky, or lefthook configuration.
func HasPreCommitTooling(repositoryRoot string, applicationRoot string) bool {
	if fileExists(filepath.Join(repositoryRoot, ".pre-commit-config.yaml")) {
		return true
	}
	packageJSONPath := filepath.Join(applicationRoot, "package.json")
	if fileExists(packageJSONPath) {
		if strings.Contains(safeReadLower(packageJSONPath, defaultReadLimitConstant), "husky") {
			return true
		}
		if directoryExists(filepath.Join(applicationRoot, ".husky")) {
			return true
		}
	}
	if existsAnyName(repositoryRoot, []string{"lefthook.yml", "lefthook.yaml"}) {
		return true
	}
	return false
}

var makefileBuildTargetPattern = regexp.MustCompile(`(?m)^build\s*:`)

// BuildCommandDocumented reports whether a build script/target exists or
// the docs name a conventional build command.
func BuildCommandDocumented(repositoryRoot string, applicationRoot string) bool {
	if PackageJSONHasScript(applicationRoot, "build") || PackageJSONHasScript(applicationRoot, "compile") {
		return true
	}
	makefilePath := filepath.Join(repositoryRoot, "Makefile")
	if fileExists(makefilePath) && makefileBuildTargetPattern.MatchString(safeReadLower(makefilePath, defaultReadLimitConstant)) {
		return true
	}
	documented, _ := TextAny(
		repositoryRoot,
		[]string{"README.md", "AGENTS.md"},
		[]string{"npm run build", "pnpm build", "yarn build", "make build", "go build", "cargo build", "gradle build", "mvn package"},
	)
	return documented
}

// GitignoreComprehensive requires .gitignore to carry at least three of the
// common exclusion entries.
func GitignoreComprehensive(repositoryRoot string) bool {
	gitignorePath := filepath.Join(repositoryRoot, ".gitignore")
	if !fileExists(gitignorePath) {
		return false
	}
	text := safeReadLower(gitignorePath, defaultReadLimitConstant)
	commonEntries := []string{"node_modules", ".env", ".ds_store", ".idea", ".vscode", "__pycache__", "dist", "build"}
	hits := 0
	for _, entry := range commonEntries {
		if strings.Contains(text, entry) {
			hits++
		}
	}
	return hits >= 3
}

// HasLargeFileDetection checks for LFS attributes or a large-file pre-commit hook.
func HasLargeFileDetection(repositoryRoot string) bool {
	gitattributesPath := filepath.Join(repositoryRoot, ".gitattributes")
	if fileExists(gitattributesPath) && strings.Contains(safeReadLower(gitattributesPath, smallReadLimitConstant), "lfs") {
		return true
	}
	preCommitPath := filepath.Join(repositoryRoot, ".pre-commit-config.yaml")
	return fileExists(preCommitPath) && strings.Contains(safeReadLower(preCommitPath, defaultReadLimitConstant), "check-added-large-files")
}

// HasDevcontainer reports whether a devcontainer definition exists.
func HasDevcontainer(repositoryRoot string) bool {
	return fileExists(filepath.Join(repositoryRoot, ".devcontainer", "devcontainer.json"))
}

// HasEnvTemplate looks for the conventional environment template files.
func HasEnvTemplate(repositoryRoot string) bool {
	found, _ := ExistsAny(repositoryRoot, []string{".env.example", ".env.template", ".env.sample", "env.example", "config/.env.example"})
	return found
}

// HasCodeowners reports whether a CODEOWNERS file exists at either location.
func HasCodeowners(repositoryRoot string) bool {
	return fileExists(filepath.Join(repositoryRoot, "CODEOWNERS")) || fileExists(filepath.Join(repositoryRoot, ".github", "CODEOWNERS"))
}

// HasPullRequestTemplate checks the conventional template locations.
func HasPullRequestTemplate(repositoryRoot string) bool {
	found, _ := ExistsAny(repositoryRoot, []string{
		filepath.Join(".github", "pull_request_template.md"),
		filepath.Join(".github", "PULL_REQUEST_TEMPLATE.md"),
		"PULL_REQUEST_TEMPLATE.md",
	})
	return found
}

// HasIssueTemplates reports whether the issue template directory exists.
func HasIssueTemplates(repositoryRoot string) bool {
	return directoryExists(filepath.Join(repositoryRoot, ".github", "ISSUE_TEMPLATE"))
}

// HasSecurityPolicy reports whether SECURITY.md exists.
func HasSecurityPolicy(repositoryRoot string) bool {
	return fileExists(filepath.Join(repositoryRoot, "SECURITY.md"))
}

// EnvVarsDocumented reports whether docs mention environment variables or a
// template file exists.
func EnvVarsDocumented(repositoryRoot string) bool {
	documented, _ := TextAny(repositoryRoot, []string{"README.md", "AGENTS.md"}, []string{"env var", "environment variable", "ENV_", ".env"})
	return documented || HasEnvTemplate(repositoryRoot)
}

// HasLocalServicesSetup detects docker compose files or a docker directory.
func HasLocalServicesSetup(repositoryRoot string) bool {
	found, _ := ExistsAny(repositoryRoot, []string{"docker-compose.yml", "docker-compose.yaml", "compose.yml", "compose.yaml"})
	return found || directoryExists(filepath.Join(repositoryRoot, "docker"))
}

// HasDatabaseMigrations detects conventional migration directories and tools.
func HasDatabaseMigrations(repositoryRoot string) bool {
	found, _ := ExistsAny(repositoryRoot, []string{"migrations", "db/migrations", "prisma/migrations", "alembic", "knexfile.js", "flyway", "liquibase"})
	return found
}

// HasRunbooks detects runbook directories or documentation links.
func HasRunbooks(repositoryRoot string) bool {
	for _, directoryName := range []string{"runbooks", "runbook", "ops/runbooks", "docs/runbooks", "playbooks", "docs/playbooks"} {
		if directoryExists(filepath.Join(repositoryRoot, directoryName)) {
			return true
		}
	}
	linked, _ := TextAny(repositoryRoot, []string{"README.md", "AGENTS.md", "docs/README.md"}, []string{"runbook", "playbook"})
	return linked
}

// HasDiagrams detects architecture diagram files or docs mentioning architecture.
func HasDiagrams(repositoryRoot string) bool {
	found, hits := GlobAny(repositoryRoot, []string{"**/*.mermaid", "**/*.mmd", "**/*.puml", "**/*.plantuml", "**/*.drawio", "**/architecture/**"})
	if found && len(hits) > 0 {
		return true
	}
	mentioned, _ := TextAny(repositoryRoot, []string{"README.md", "docs/README.md", "AGENTS.md"}, []string{"architecture", "system design", "diagram"})
	return mentioned
}

func existsAnyName(rootDirectory string, names []string) bool {
	for _, name := range names {
		if fileExists(filepath.Join(rootDirectory, name)) {
			return true
		}
	}
	return false
}
