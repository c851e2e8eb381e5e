package remediate_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/readix/readix/internal/criteria"
	"github.com/readix/readix/internal/inventory"
	"github.com/readix/readix/internal/recommend"
	"github.com/readix/readix/internal/remediate"
	"github.com/readix/readix/internal/report"
	"github.com/readix/readix/internal/scoring"
)

func writeReadinessDocument(testInstance *testing.T, runDirectory string, document report.Document) {
	testInstance.Helper()
	outputsDirectory := filepath.Join(runDirectory, "outputs")
	require.NoError(testInstance, os.MkdirAll(outputsDirectory, 0o755))
	serialized, marshalError := json.Marshal(document)
	require.NoError(testInstance, marshalError)
	require.NoError(testInstance, os.WriteFile(filepath.Join(outputsDirectory, "readiness.json"), serialized, 0o644))
}

func fixtureDocument() report.Document {
	return report.Document{
		Meta: report.Meta{
			RunID:                 "20260831T143000Z-ab12cd34",
			RepositoryName:        "billing-service",
			RepositoryDescription: "Handles invoicing.",
			Applications: []inventory.Unit{
				{Path: ".", Kind: inventory.GoUnitKind, Name: "billing-service"},
				{Path: "web", Kind: inventory.NodeUnitKind, Name: "web"},
			},
		},
		Scores: report.Scores{
			Overall:       scoring.OverallScore{Passed: 10, Total: 20, Percent: 50},
			LevelAchieved: 1,
			BlockingLevel: 1,
		},
		ActionItems: []recommend.ActionItem{
			{CriterionID: "agents_md", Title: "AGENTS.md exists", Pillar: "Documentation"},
			{CriterionID: "dependabot", Title: "Automated dependency update PRs", Pillar: "Security & Governance"},
			{CriterionID: "branch_protection", Title: "Branch protection", Pillar: "Security & Governance"},
		},
	}
}

func TestRunPlanModeWritesArtifactsWithoutTouchingRepo(testInstance *testing.T) {
	repositoryRoot := testInstance.TempDir()
	runDirectory := testInstance.TempDir()
	writeReadinessDocument(testInstance, runDirectory, fixtureDocument())

	plan, runError := remediate.NewService(remediate.ServiceDependencies{}).Run(remediate.Options{
		RepositoryRoot: repositoryRoot,
		RunDirectory:   runDirectory,
	})
	require.NoError(testInstance, runError)

	require.Equal(testInstance, remediate.PlanMode, plan.Mode)
	require.Len(testInstance, plan.Items, 3)
	require.True(testInstance, plan.Items[0].AutoScaffold)
	require.Equal(testInstance, remediate.PlannedStatus, plan.Items[0].FileOps[0].Status)

	// branch_protection has no safe scaffold.
	require.False(testInstance, plan.Items[2].AutoScaffold)
	require.Empty(testInstance, plan.Items[2].FileOps)
	require.NotEmpty(testInstance, plan.Items[2].ManualSteps)

	_, agentsStatError := os.Stat(filepath.Join(repositoryRoot, "AGENTS.md"))
	require.True(testInstance, os.IsNotExist(agentsStatError))

	planMarkdown, readError := os.ReadFile(filepath.Join(runDirectory, "outputs", "remediation_plan.md"))
	require.NoError(testInstance, readError)
	require.Contains(testInstance, string(planMarkdown), "# Agent Readiness remediation plan")
	require.Contains(testInstance, string(planMarkdown), "agents_md")
	require.Contains(testInstance, string(planMarkdown), "## Apply mode")

	planJSON, readJSONError := os.ReadFile(filepath.Join(runDirectory, "outputs", "remediation_plan.json"))
	require.NoError(testInstance, readJSONError)
	var decodedPlan remediate.Plan
	require.NoError(testInstance, json.Unmarshal(planJSON, &decodedPlan))
	require.Equal(testInstance, "20260831T143000Z-ab12cd34", decodedPlan.RunID)
	require.Equal(testInstance, 2, decodedPlan.TargetLevel)
}

func TestRunApplyModeScaffoldsMissingFiles(testInstance *testing.T) {
	repositoryRoot := testInstance.TempDir()
	runDirectory := testInstance.TempDir()
	writeReadinessDocument(testInstance, runDirectory, fixtureDocument())

	existingContents := "# existing agents file\n"
	require.NoError(testInstance, os.WriteFile(filepath.Join(repositoryRoot, "AGENTS.md"), []byte(existingContents), 0o644))

	plan, runError := remediate.NewService(remediate.ServiceDependencies{}).Run(remediate.Options{
		RepositoryRoot: repositoryRoot,
		RunDirectory:   runDirectory,
		Apply:          true,
	})
	require.NoError(testInstance, runError)
	require.Equal(testInstance, remediate.ApplyMode, plan.Mode)

	// Existing files are never overwritten.
	require.Equal(testInstance, remediate.SkippedExistsStatus, plan.Items[0].FileOps[0].Status)
	preserved, readError := os.ReadFile(filepath.Join(repositoryRoot, "AGENTS.md"))
	require.NoError(testInstance, readError)
	require.Equal(testInstance, existingContents, string(preserved))

	// dependabot.yml is generated from the discovered units.
	require.Equal(testInstance, remediate.CreatedStatus, plan.Items[1].FileOps[0].Status)
	dependabotContents, dependabotReadError := os.ReadFile(filepath.Join(repositoryRoot, ".github", "dependabot.yml"))
	require.NoError(testInstance, dependabotReadError)

	var decodedDependabot struct {
		Version int `yaml:"version"`
		Updates []struct {
			PackageEcosystem string `yaml:"package-ecosystem"`
			Directory        string `yaml:"directory"`
			Schedule         struct {
				Interval string `yaml:"interval"`
			} `yaml:"schedule"`
		} `yaml:"updates"`
	}
	require.NoError(testInstance, yaml.Unmarshal(dependabotContents, &decodedDependabot))
	require.Equal(testInstance, 2, decodedDependabot.Version)
	require.Len(testInstance, decodedDependabot.Updates, 3)
	require.Equal(testInstance, "github-actions", decodedDependabot.Updates[0].PackageEcosystem)
	require.Equal(testInstance, "gomod", decodedDependabot.Updates[1].PackageEcosystem)
	require.Equal(testInstance, "/web", decodedDependabot.Updates[2].Directory)
	require.Equal(testInstance, "weekly", decodedDependabot.Updates[1].Schedule.Interval)
}

func TestRunApplyModeSubstitutesTemplateVariables(testInstance *testing.T) {
	repositoryRoot := testInstance.TempDir()
	require.NoError(testInstance, os.MkdirAll(filepath.Join(repositoryRoot, "cmd"), 0o755))
	runDirectory := testInstance.TempDir()

	document := fixtureDocument()
	document.ActionItems = []recommend.ActionItem{
		{CriterionID: "readme", Title: "README exists"},
		{CriterionID: "codeowners", Title: "CODEOWNERS present"},
	}
	writeReadinessDocument(testInstance, runDirectory, document)

	_, runError := remediate.NewService(remediate.ServiceDependencies{}).Run(remediate.Options{
		RepositoryRoot: repositoryRoot,
		RunDirectory:   runDirectory,
		Apply:          true,
	})
	require.NoError(testInstance, runError)

	readmeContents, readError := os.ReadFile(filepath.Join(repositoryRoot, "README.md"))
	require.NoError(testInstance, readError)
	require.Contains(testInstance, string(readmeContents), "# billing-service")
	require.Contains(testInstance, string(readmeContents), "Handles invoicing.")
	require.Contains(testInstance, string(readmeContents), "`cmd/` (TODO: describe)")
	require.Contains(testInstance, string(readmeContents), "go build ./...")
	require.NotContains(testInstance, string(readmeContents), "{{")

	codeownersContents, codeownersReadError := os.ReadFile(filepath.Join(repositoryRoot, ".github", "CODEOWNERS"))
	require.NoError(testInstance, codeownersReadError)
	require.Contains(testInstance, string(codeownersContents), "* @platform-owners")
}

func TestRunFallsBackToFailingCriteriaAtBlockingLevel(testInstance *testing.T) {
	runDirectory := testInstance.TempDir()
	document := fixtureDocument()
	document.ActionItems = nil
	document.Criteria = []criteria.Result{
		{ID: "readme", Title: "README exists", Pillar: "Documentation", Level: 1, Weight: 3, Status: criteria.FailStatus},
		{ID: "gitignore", Title: "Comprehensive .gitignore", Pillar: "Security & Governance", Level: 1, Weight: 2, Status: criteria.FailStatus},
		{ID: "ci_configured", Title: "CI configured", Pillar: "Build System", Level: 2, Weight: 3, Status: criteria.FailStatus},
		{ID: "agents_md", Title: "AGENTS.md exists", Pillar: "Documentation", Level: 1, Weight: 3, Status: criteria.PassStatus},
	}
	writeReadinessDocument(testInstance, runDirectory, document)

	plan, runError := remediate.NewService(remediate.ServiceDependencies{}).Run(remediate.Options{
		RepositoryRoot: testInstance.TempDir(),
		RunDirectory:   runDirectory,
	})
	require.NoError(testInstance, runError)

	require.Len(testInstance, plan.Items, 2)
	require.Equal(testInstance, "readme", plan.Items[0].CriterionID)
	require.Equal(testInstance, "gitignore", plan.Items[1].CriterionID)
}

func TestRunMissingReadinessDocument(testInstance *testing.T) {
	_, runError := remediate.NewService(remediate.ServiceDependencies{}).Run(remediate.Options{
		RepositoryRoot: testInstance.TempDir(),
		RunDirectory:   testInstance.TempDir(),
	})
	require.ErrorIs(testInstance, runError, remediate.ErrReadinessDocumentMissing)
}

func TestRemediateCommand(testInstance *testing.T) {
	testInstance.Run("requires_run_flag", func(subtest *testing.T) {
		builder := &remediate.CommandBuilder{}
		command, buildError := builder.Build()
		require.NoError(subtest, buildError)

		var combinedOutput bytes.Buffer
		command.SetOut(&combinedOutput)
		command.SetErr(&combinedOutput)
		command.SetArgs([]string{})
		require.Error(subtest, command.Execute())
	})

	testInstance.Run("plan_mode_prints_destination", func(subtest *testing.T) {
		runDirectory := subtest.TempDir()
		writeReadinessDocument(subtest, runDirectory, fixtureDocument())

		builder := &remediate.CommandBuilder{}
		command, buildError := builder.Build()
		require.NoError(subtest, buildError)

		var standardOutput bytes.Buffer
		command.SetOut(&standardOutput)
		command.SetErr(&standardOutput)
		command.SetArgs([]string{subtest.TempDir(), "--run", runDirectory})
		require.NoError(subtest, command.Execute())
		require.True(subtest, strings.Contains(standardOutput.String(), "Remediation plan written"))
	})
}
