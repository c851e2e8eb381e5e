package remediate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/readix/readix/internal/inventory"
)

const topLevelDirectoryListLimitConstant = 20

var commandCategories = []string{"build", "lint", "typecheck", "format", "test", "run"}

var skippedTopLevelDirectories = map[string]bool{
	"node_modules": true, "dist": true, "build": true, "target": true,
	"venv": true, ".venv": true, "__pycache__": true,
}

// listTopLevelDirectories returns the visible top-level directories of the
// repository, for the README repo map block.
func listTopLevelDirectories(repositoryRoot string) []string {
	entries, readError := os.ReadDir(repositoryRoot)
	if readError != nil {
		return nil
	}
	directories := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") || skippedTopLevelDirectories[entry.Name()] {
			continue
		}
		directories = append(directories, entry.Name()+"/")
	}
	sort.Strings(directories)
	if len(directories) > topLevelDirectoryListLimitConstant {
		directories = directories[:topLevelDirectoryListLimitConstant]
	}
	return directories
}

func packageJSONScripts(applicationRoot string) map[string]any {
	contents, readError := os.ReadFile(filepath.Join(applicationRoot, "package.json"))
	if readError != nil {
		return nil
	}
	var manifest struct {
		Scripts map[string]any `json:"scripts"`
	}
	if unmarshalError := json.Unmarshal(contents, &manifest); unmarshalError != nil {
		return nil
	}
	return manifest.Scripts
}

func unitPrefix(unit inventory.Unit) string {
	if unit.Path == "." || unit.Path == "" {
		return ""
	}
	return fmt.Sprintf("(from %s) ", unit.Path)
}

// DetectStandardCommands infers the per-category commands of every
// application unit. Categories with no reliable inference get a TODO
// placeholder so the generated docs stay honest.
func DetectStandardCommands(repositoryRoot string, units []inventory.Unit) map[string][]string {
	commands := map[string][]string{}
	for _, category := range commandCategories {
		commands[category] = []string{}
	}

	appendCommand := func(category string, command string) {
		for _, existing := range commands[category] {
			if existing == command {
				return
			}
		}
		commands[category] = append(commands[category], command)
	}

	for _, unit := range units {
		prefix := unitPrefix(unit)
		unitRoot := unit.RootDirectory(repositoryRoot)

		switch unit.Kind {
		case inventory.NodeUnitKind:
			scripts := packageJSONScripts(unitRoot)
			scriptOrFallback := func(scriptName string, fallback string) string {
				if _, present := scripts[scriptName]; present {
					return prefix + "npm run " + scriptName
				}
				return prefix + fallback
			}
			appendCommand("build", scriptOrFallback("build", "# TODO: add a build script (e.g., npm run build)"))
			appendCommand("lint", scriptOrFallback("lint", "# TODO: add a lint script (e.g., npm run lint)"))
			appendCommand("typecheck", scriptOrFallback("typecheck", "# TODO: add a typecheck script (e.g., npm run typecheck)"))
			appendCommand("format", scriptOrFallback("format", "# TODO: add a format script (e.g., npm run format)"))
			appendCommand("test", prefix+"npm test")
			appendCommand("run", scriptOrFallback("start", "# TODO: document how to run the app"))

		case inventory.PythonUnitKind:
			appendCommand("build", prefix+"# TODO: document build/packaging (if applicable)")
			appendCommand("lint", prefix+"# TODO: run lint (e.g., ruff check .)")
			appendCommand("typecheck", prefix+"# TODO: run type checks (e.g., mypy .)")
			appendCommand("format", prefix+"# TODO: run formatter (e.g., ruff format . or black .)")
			if directoryExists(filepath.Join(unitRoot, "tests")) {
				appendCommand("test", prefix+"python -m pytest")
			} else {
				appendCommand("test", prefix+"# TODO: add and run tests (e.g., python -m pytest)")
			}
			appendCommand("run", prefix+"# TODO: document how to run the app / service")

		case inventory.GoUnitKind:
			appendCommand("build", prefix+"go build ./...")
			appendCommand("lint", prefix+"# TODO: run golangci-lint (if configured)")
			appendCommand("typecheck", prefix+"go vet ./...")
			appendCommand("format", prefix+"gofmt -w .")
			appendCommand("test", prefix+"go test ./...")
			appendCommand("run", prefix+"# TODO: document how to run the binary/service")

		case inventory.RustUnitKind:
			appendCommand("build", prefix+"cargo build")
			appendCommand("lint", prefix+"cargo clippy")
			appendCommand("typecheck", prefix+"cargo check")
			appendCommand("format", prefix+"cargo fmt")
			appendCommand("test", prefix+"cargo test")
			appendCommand("run", prefix+"cargo run")

		case inventory.JavaUnitKind:
			appendCommand("build", prefix+"# TODO: document build (e.g., ./gradlew build or mvn package)")
			appendCommand("lint", prefix+"# TODO: document lint/static analysis (if applicable)")
			appendCommand("typecheck", prefix+"# TODO: document compilation / static checks")
			appendCommand("format", prefix+"# TODO: document formatting")
			appendCommand("test", prefix+"# TODO: document tests (e.g., ./gradlew test or mvn test)")
			appendCommand("run", prefix+"# TODO: document how to run")

		default:
			appendCommand("build", prefix+"# TODO: document build")
			appendCommand("lint", prefix+"# TODO: document lint")
			appendCommand("typecheck", prefix+"# TODO: document typecheck")
			appendCommand("format", prefix+"# TODO: document format")
			appendCommand("test", prefix+"# TODO: document tests")
			appendCommand("run", prefix+"# TODO: document how to run")
		}
	}

	return commands
}

// FormatCommandsBlock renders detected commands as the Markdown block
// substituted into README and AGENTS templates.
func FormatCommandsBlock(commands map[string][]string) string {
	var builder strings.Builder
	for _, category := range commandCategories {
		builder.WriteString("- **" + capitalize(category) + ":**\n")
		categoryCommands := commands[category]
		if len(categoryCommands) == 0 {
			builder.WriteString("  - `# TODO: add command`\n")
		}
		for _, command := range categoryCommands {
			builder.WriteString("  - `" + command + "`\n")
		}
		builder.WriteString("\n")
	}
	return strings.TrimSpace(builder.String()) + "\n"
}

func capitalize(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

func directoryExists(candidatePath string) bool {
	fileInfo, statError := os.Stat(candidatePath)
	return statError == nil && fileInfo.IsDir()
}
