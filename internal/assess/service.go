package assess

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/readix/readix/internal/criteria"
	"github.com/readix/readix/internal/inventory"
	"github.com/readix/readix/internal/report"
	"github.com/readix/readix/internal/repometa"
)

const (
	runTimestampLayoutConstant = "20060102T150405Z"
	runSuffixLengthConstant    = 8

	inputsDirectoryNameConstant  = "inputs"
	outputsDirectoryNameConstant = "outputs"

	configFileNameConstant         = "config.json"
	unitsFileNameConstant          = "units.json"
	readinessFileNameConstant      = "readiness.json"
	markdownReportFileNameConstant = "report.md"
	htmlReportFileNameConstant     = "report.html"

	runDirectoryPermissions = 0o755
	artifactPermissions     = 0o644
)

// ErrRepositoryRootNotConfigured indicates the service was constructed
// without a repository root.
var ErrRepositoryRootNotConfigured = errors.New("repository root not configured")

// Clock supplies the current time.
type Clock func() time.Time

// RunIDSuffixProvider supplies the random suffix of a run identifier.
type RunIDSuffixProvider func() string

// ServiceDependencies carries the collaborators of an assessment service.
type ServiceDependencies struct {
	Logger              *zap.Logger
	GitExecutor         repometa.GitExecutor
	Clock               Clock
	RunIDSuffixProvider RunIDSuffixProvider
}

// Options configures one assessment run.
type Options struct {
	RepositoryRoot  string
	OutputDirectory string
	OrgName         string
}

// RunResult reports where the assessment artifacts were written.
type RunResult struct {
	RunID        string
	RunDirectory string
	Document     report.Document
}

// Service orchestrates an assessment end to end.
type Service struct {
	logger              *zap.Logger
	gitExecutor         repometa.GitExecutor
	clock               Clock
	runIDSuffixProvider RunIDSuffixProvider
}

// NewService constructs an assessment service. A nil logger falls back to a
// no-op logger; a nil git executor degrades git-backed metadata to fallback
// values.
func NewService(dependencies ServiceDependencies) *Service {
	logger := dependencies.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := dependencies.Clock
	if clock == nil {
		clock = time.Now
	}
	suffixProvider := dependencies.RunIDSuffixProvider
	if suffixProvider == nil {
		suffixProvider = defaultRunIDSuffix
	}
	return &Service{
		logger:              logger,
		gitExecutor:         dependencies.GitExecutor,
		clock:               clock,
		runIDSuffixProvider: suffixProvider,
	}
}

func defaultRunIDSuffix() string {
	identifier := strings.ReplaceAll(uuid.NewString(), "-", "")
	return identifier[:runSuffixLengthConstant]
}

func (service *Service) newRunID() string {
	return service.clock().UTC().Format(runTimestampLayoutConstant) + "-" + service.runIDSuffixProvider()
}

// Run executes the assessment and writes all artifacts under the output
// directory.
func (service *Service) Run(executionContext context.Context, options Options) (RunResult, error) {
	if options.RepositoryRoot == "" {
		return RunResult{}, ErrRepositoryRootNotConfigured
	}

	repositoryConfiguration := inventory.LoadConfig(options.RepositoryRoot)
	units := inventory.DiscoverUnits(options.RepositoryRoot, repositoryConfiguration)
	languages := inventory.DetectLanguages(units)
	service.logger.Info("discovered application units",
		zap.Int("unit_count", len(units)),
		zap.Strings("languages", languages),
	)

	detector := repometa.NewDetector(options.RepositoryRoot, service.gitExecutor)
	metadata := detector.Collect(executionContext)

	var documentHistory criteria.DocumentHistory
	if service.gitExecutor != nil {
		documentHistory = detector.History(executionContext)
	}
	results := criteria.NewEngine(options.RepositoryRoot, units, documentHistory).EvaluateAll()

	orgName := options.OrgName
	if orgName == "" {
		orgName = repositoryConfiguration.OrgName
	}

	runID := service.newRunID()
	document := report.Build(report.BuildInputs{
		RunID:       runID,
		GeneratedAt: service.clock(),
		OrgName:     orgName,
		Repository:  metadata,
		Languages:   languages,
		Units:       units,
		Results:     results,
	})

	runDirectory := filepath.Join(options.OutputDirectory, runID)
	if writeError := service.writeArtifacts(runDirectory, repositoryConfiguration, units, document); writeError != nil {
		return RunResult{}, writeError
	}

	service.logger.Info("assessment complete",
		zap.String("run_id", runID),
		zap.Int("level_achieved", document.Scores.LevelAchieved),
		zap.Float64("overall_percent", document.Scores.Overall.Percent),
	)
	return RunResult{RunID: runID, RunDirectory: runDirectory, Document: document}, nil
}

func writeJSONArtifact(path string, payload any) error {
	serialized, marshalError := json.MarshalIndent(payload, "", "  ")
	if marshalError != nil {
		return marshalError
	}
	return os.WriteFile(path, append(serialized, '\n'), artifactPermissions)
}

func (service *Service) writeArtifacts(
	runDirectory string,
	repositoryConfiguration inventory.Config,
	units []inventory.Unit,
	document report.Document,
) error {
	inputsDirectory := filepath.Join(runDirectory, inputsDirectoryNameConstant)
	outputsDirectory := filepath.Join(runDirectory, outputsDirectoryNameConstant)
	for _, directory := range []string{inputsDirectory, outputsDirectory} {
		if mkdirError := os.MkdirAll(directory, runDirectoryPermissions); mkdirError != nil {
			return mkdirError
		}
	}

	if writeError := writeJSONArtifact(filepath.Join(inputsDirectory, configFileNameConstant), repositoryConfiguration); writeError != nil {
		return writeError
	}
	if writeError := writeJSONArtifact(filepath.Join(inputsDirectory, unitsFileNameConstant), units); writeError != nil {
		return writeError
	}
	if writeError := writeJSONArtifact(filepath.Join(outputsDirectory, readinessFileNameConstant), document); writeError != nil {
		return writeError
	}

	markdown := report.RenderMarkdown(document)
	if writeError := os.WriteFile(filepath.Join(outputsDirectory, markdownReportFileNameConstant), []byte(markdown), artifactPermissions); writeError != nil {
		return writeError
	}

	html, renderError := report.RenderHTML(document)
	if renderError != nil {
		return renderError
	}
	return os.WriteFile(filepath.Join(outputsDirectory, htmlReportFileNameConstant), []byte(html), artifactPermissions)
}
