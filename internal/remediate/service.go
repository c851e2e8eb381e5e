package remediate

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/readix/readix/internal/criteria"
	"github.com/readix/readix/internal/inventory"
	"github.com/readix/readix/internal/recommend"
	"github.com/readix/readix/internal/report"
)

//go:embed templates
var templateFiles embed.FS

const (
	defaultMaxItemsConstant   = 10
	minimumPlanItemsConstant  = 3
	defaultOwnerPlaceholder   = "platform-owners"
	templatesDirectoryName    = "templates"
	outputsDirectoryName      = "outputs"
	readinessFileName         = "readiness.json"
	planMarkdownFileName      = "remediation_plan.md"
	planJSONFileName          = "remediation_plan.json"
	scaffoldDirectoryPermissions = 0o755
	scaffoldFilePermissions      = 0o644
)

// ErrReadinessDocumentMissing indicates the run directory lacks a
// readiness.json to plan from.
var ErrReadinessDocumentMissing = errors.New("readiness.json not found in run directory")

// Clock supplies the current time.
type Clock func() time.Time

// ServiceDependencies carries the collaborators of the remediation service.
type ServiceDependencies struct {
	Logger *zap.Logger
	Clock  Clock
}

// Options configures one remediation run.
type Options struct {
	RepositoryRoot string
	RunDirectory   string
	Apply          bool
	MaxItems       int
}

// Service builds remediation plans and optionally scaffolds missing files.
type Service struct {
	logger *zap.Logger
	clock  Clock
}

// NewService constructs a remediation service.
func NewService(dependencies ServiceDependencies) *Service {
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := dependencies.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Service{logger: logger, clock: clock}
}

func loadReadinessDocument(runDirectory string) (report.Document, error) {
	readinessPath := filepath.Join(runDirectory, outputsDirectoryName, readinessFileName)
	contents, readError := os.ReadFile(readinessPath)
	if readError != nil {
		return report.Document{}, fmt.Errorf("%w: %s", ErrReadinessDocumentMissing, readinessPath)
	}
	var document report.Document
	if unmarshalError := json.Unmarshal(contents, &document); unmarshalError != nil {
		return report.Document{}, unmarshalError
	}
	return document, nil
}

// fallbackActionItems derives action items from failing criteria at the
// blocking level when the document carries none.
func fallbackActionItems(document report.Document, maxItems int) []recommend.ActionItem {
	blockingLevel := document.Scores.BlockingLevel
	failing := make([]criteria.Result, 0)
	for _, result := range document.Criteria {
		if result.Status == criteria.FailStatus && result.Level == blockingLevel {
			failing = append(failing, result)
		}
	}
	sort.SliceStable(failing, func(first int, second int) bool {
		if failing[first].Weight != failing[second].Weight {
			return failing[first].Weight > failing[second].Weight
		}
		if failing[first].Pillar != failing[second].Pillar {
			return failing[first].Pillar < failing[second].Pillar
		}
		return failing[first].ID < failing[second].ID
	})
	limit := maxItems
	if limit < minimumPlanItemsConstant {
		limit = minimumPlanItemsConstant
	}
	if len(failing) > limit {
		failing = failing[:limit]
	}
	actionItems := make([]recommend.ActionItem, 0, len(failing))
	for _, result := range failing {
		actionItems = append(actionItems, recommend.ActionItem{
			CriterionID: result.ID,
			Title:       result.Title,
			Pillar:      result.Pillar,
			Why:         result.Why,
			Remediation: result.Remediation,
		})
	}
	return actionItems
}

func (service *Service) templateVariables(options Options, document report.Document, units []inventory.Unit) map[string]string {
	repositoryDescription := document.Meta.RepositoryDescription
	if repositoryDescription == "" {
		repositoryDescription = "(TODO: add a short description of the repository's purpose.)"
	}

	defaultOwner := inventory.LoadConfig(options.RepositoryRoot).DefaultCodeowner
	defaultOwner = strings.TrimPrefix(strings.TrimSpace(defaultOwner), "@")
	if defaultOwner == "" {
		defaultOwner = defaultOwnerPlaceholder
	}

	repositoryMapLines := make([]string, 0)
	for _, directory := range listTopLevelDirectories(options.RepositoryRoot) {
		repositoryMapLines = append(repositoryMapLines, fmt.Sprintf("- `%s` (TODO: describe)", directory))
	}
	repositoryMapBlock := strings.Join(repositoryMapLines, "\n")
	if repositoryMapBlock == "" {
		repositoryMapBlock = "- (TODO: add repo map)"
	}

	return map[string]string{
		"REPO_NAME":        document.Meta.RepositoryName,
		"REPO_DESCRIPTION": repositoryDescription,
		"DEFAULT_OWNER":    defaultOwner,
		"QUICKSTART_BLOCK": "```bash\n# TODO: document install + run\n```",
		"REPO_MAP_BLOCK":   repositoryMapBlock,
		"CI_BLOCK":         "- CI should run lint/typecheck/tests on every PR.\n- Document how to reproduce CI checks locally.",
		"SETUP_BLOCK":      "```bash\n# TODO: document local setup\n```",
		"COMMANDS_BLOCK":   FormatCommandsBlock(DetectStandardCommands(options.RepositoryRoot, units)),
		"LICENSE_BLOCK":    "(TODO: add license information or link to LICENSE file.)",
	}
}

func renderScaffoldTemplate(templateName string, variables map[string]string) (string, bool) {
	contents, readError := templateFiles.ReadFile(templatesDirectoryName + "/" + templateName)
	if readError != nil {
		return "", false
	}
	rendered := string(contents)
	for variableName, variableValue := range variables {
		rendered = strings.ReplaceAll(rendered, "{{"+variableName+"}}", variableValue)
	}
	return rendered, true
}

func writeTextIfMissing(destinationPath string, contents string) (status string, note string, writeError error) {
	if _, statError := os.Stat(destinationPath); statError == nil {
		return SkippedExistsStatus, "Skipped (already exists): " + destinationPath, nil
	}
	if mkdirError := os.MkdirAll(filepath.Dir(destinationPath), scaffoldDirectoryPermissions); mkdirError != nil {
		return "", "", mkdirError
	}
	if fileError := os.WriteFile(destinationPath, []byte(contents), scaffoldFilePermissions); fileError != nil {
		return "", "", fileError
	}
	return CreatedStatus, "Created: " + destinationPath, nil
}

func (service *Service) applyFileOp(fileOp *FileOp, options Options, variables map[string]string, units []inventory.Unit) error {
	destinationPath := filepath.Join(options.RepositoryRoot, fileOp.Path)

	var contents string
	if fileOp.Template == generatedDependabotTemplateName {
		generated, generateError := GenerateDependabotYAML(units)
		if generateError != nil {
			return generateError
		}
		contents = generated
	} else {
		rendered, templateFound := renderScaffoldTemplate(fileOp.Template, variables)
		if !templateFound {
			fileOp.Status = SkippedMissingTemplateStatus
			fileOp.Note = "Template not found: " + fileOp.Template
			return nil
		}
		contents = rendered
	}

	status, note, writeError := writeTextIfMissing(destinationPath, contents)
	if writeError != nil {
		return writeError
	}
	fileOp.Status = status
	fileOp.Note = note
	return nil
}

// Run builds the remediation plan for an assessment run, applies it when
// requested, and writes the plan artifacts into the run directory.
func (service *Service) Run(options Options) (Plan, error) {
	if options.RepositoryRoot == "" {
		options.RepositoryRoot = "."
	}
	maxItems := options.MaxItems
	if maxItems <= 0 {
		maxItems = defaultMaxItemsConstant
	}

	document, loadError := loadReadinessDocument(options.RunDirectory)
	if loadError != nil {
		return Plan{}, loadError
	}

	actionItems := document.ActionItems
	if len(actionItems) == 0 {
		actionItems = fallbackActionItems(document, maxItems)
	}
	if len(actionItems) > maxItems {
		actionItems = actionItems[:maxItems]
	}

	units := document.Meta.Applications
	variables := service.templateVariables(options, document, units)

	planItems := make([]PlanItem, 0, len(actionItems))
	for _, actionItem := range actionItems {
		if actionItem.CriterionID == "" {
			continue
		}
		auto, fileOps, manualSteps, description := scaffoldForCriterion(actionItem.CriterionID)
		planItem := PlanItem{
			CriterionID:  actionItem.CriterionID,
			Title:        actionItem.Title,
			AutoScaffold: auto,
			Description:  description,
			FileOps:      fileOps,
			ManualSteps:  manualSteps,
		}
		if options.Apply {
			for opIndex := range planItem.FileOps {
				if applyError := service.applyFileOp(&planItem.FileOps[opIndex], options, variables, units); applyError != nil {
					return Plan{}, applyError
				}
			}
		}
		planItems = append(planItems, planItem)
	}

	mode := PlanMode
	if options.Apply {
		mode = ApplyMode
	}
	targetLevel := document.Scores.BlockingLevel + 1
	if targetLevel > 5 {
		targetLevel = 5
	}
	plan := Plan{
		Mode:           mode,
		GeneratedAt:    service.clock().UTC(),
		RepositoryName: document.Meta.RepositoryName,
		RepositoryPath: options.RepositoryRoot,
		RunID:          document.Meta.RunID,
		RunDirectory:   options.RunDirectory,
		LevelAchieved:  document.Scores.LevelAchieved,
		Overall:        document.Scores.Overall,
		BlockingLevel:  document.Scores.BlockingLevel,
		TargetLevel:    targetLevel,
		Items:          planItems,
	}

	if writeError := service.writePlanArtifacts(plan); writeError != nil {
		return Plan{}, writeError
	}

	service.logger.Info("remediation plan written",
		zap.String("mode", plan.Mode),
		zap.Int("item_count", len(plan.Items)),
		zap.String("run_directory", plan.RunDirectory),
	)
	return plan, nil
}

func (service *Service) writePlanArtifacts(plan Plan) error {
	outputsDirectory := filepath.Join(plan.RunDirectory, outputsDirectoryName)
	if mkdirError := os.MkdirAll(outputsDirectory, scaffoldDirectoryPermissions); mkdirError != nil {
		return mkdirError
	}

	markdown := renderPlanMarkdown(plan)
	if writeError := os.WriteFile(filepath.Join(outputsDirectory, planMarkdownFileName), []byte(markdown), scaffoldFilePermissions); writeError != nil {
		return writeError
	}

	serialized, marshalError := json.MarshalIndent(plan, "", "  ")
	if marshalError != nil {
		return marshalError
	}
	return os.WriteFile(filepath.Join(outputsDirectory, planJSONFileName), append(serialized, '\n'), scaffoldFilePermissions)
}

func renderPlanMarkdown(plan Plan) string {
	var builder strings.Builder

	builder.WriteString("# Agent Readiness remediation plan\n\n")
	fmt.Fprintf(&builder, "**Repository:** `%s`\n", plan.RepositoryName)
	fmt.Fprintf(&builder, "**Generated:** %s\n", plan.GeneratedAt.Format(time.RFC3339))
	fmt.Fprintf(&builder, "**Assessment run:** `%s`\n\n", plan.RunID)

	builder.WriteString("## Current state\n\n")
	fmt.Fprintf(&builder, "- **Level achieved:** %d / 5\n", plan.LevelAchieved)
	fmt.Fprintf(&builder, "- **Overall pass rate:** %.0f%% (%d/%d)\n", plan.Overall.Percent, plan.Overall.Passed, plan.Overall.Total)
	fmt.Fprintf(&builder, "- **Blocking level:** L%d (must reach >=80%% to unlock L%d)\n\n", plan.BlockingLevel, plan.TargetLevel)

	builder.WriteString("## Recommended remediations\n\n")
	for _, item := range plan.Items {
		badge := "MANUAL"
		if item.AutoScaffold && len(item.FileOps) > 0 {
			badge = "AUTO"
		}
		fmt.Fprintf(&builder, "### %s: %s (%s)\n\n", item.CriterionID, item.Title, badge)
		builder.WriteString(item.Description + "\n\n")
		if len(item.FileOps) > 0 {
			builder.WriteString("**Suggested file operations:**\n")
			for _, fileOp := range item.FileOps {
				fmt.Fprintf(&builder, "- `%s` %s (%s)\n", fileOp.Path, fileOp.Action, fileOp.Status)
				if fileOp.Reason != "" {
					fmt.Fprintf(&builder, "  - Reason: %s\n", fileOp.Reason)
				}
				if fileOp.Note != "" {
					fmt.Fprintf(&builder, "  - Result: %s\n", fileOp.Note)
				}
			}
			builder.WriteString("\n")
		}
		if len(item.ManualSteps) > 0 {
			builder.WriteString("**Manual follow-ups:**\n")
			for _, manualStep := range item.ManualSteps {
				builder.WriteString("- " + manualStep + "\n")
			}
			builder.WriteString("\n")
		}
	}

	if len(plan.Items) == 0 {
		builder.WriteString("No remediation items were generated. This usually means the report had no action items and no failing criteria at the blocking level.\n\n")
	}

	if plan.Mode == PlanMode {
		builder.WriteString("## Apply mode\n\n")
		builder.WriteString("To scaffold the safe, missing files listed above (without overwriting anything), re-run:\n\n")
		fmt.Fprintf(&builder, "```bash\nreadix remediate --run %s --apply\n```\n\n", plan.RunDirectory)
		builder.WriteString("Then review changes with `git status` and open a PR.\n")
	}

	return builder.String()
}
