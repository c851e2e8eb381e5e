package assess_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/readix/readix/internal/assess"
	"github.com/readix/readix/internal/report"
)

func writeFixtureFile(testInstance *testing.T, repositoryRoot string, relativePath string, contents string) {
	testInstance.Helper()
	absolutePath := filepath.Join(repositoryRoot, relativePath)
	require.NoError(testInstance, os.MkdirAll(filepath.Dir(absolutePath), 0o755))
	require.NoError(testInstance, os.WriteFile(absolutePath, []byte(contents), 0o644))
}

func fixedClock() time.Time {
	return time.Date(2026, 8, 31, 14, 30, 0, 0, time.UTC)
}

func newFixedService(testInstance *testing.T) *assess.Service {
	testInstance.Helper()
	return assess.NewService(assess.ServiceDependencies{
		Clock:               fixedClock,
		RunIDSuffixProvider: func() string { return "ab12cd34" },
	})
}

func TestRunWritesArtifactTree(testInstance *testing.T) {
	repositoryRoot := testInstance.TempDir()
	writeFixtureFile(testInstance, repositoryRoot, "README.md", "# demo\n\nA demo service.\n")
	writeFixtureFile(testInstance, repositoryRoot, "go.mod", "module example.com/demo\n")
	outputDirectory := testInstance.TempDir()

	runResult, runError := newFixedService(testInstance).Run(context.Background(), assess.Options{
		RepositoryRoot:  repositoryRoot,
		OutputDirectory: outputDirectory,
		OrgName:         "Acme",
	})
	require.NoError(testInstance, runError)

	require.Equal(testInstance, "20260831T143000Z-ab12cd34", runResult.RunID)
	require.Equal(testInstance, filepath.Join(outputDirectory, runResult.RunID), runResult.RunDirectory)

	for _, artifactPath := range []string{
		"inputs/config.json",
		"inputs/units.json",
		"outputs/readiness.json",
		"outputs/report.md",
		"outputs/report.html",
	} {
		fileInfo, statError := os.Stat(filepath.Join(runResult.RunDirectory, artifactPath))
		require.NoError(testInstance, statError, "artifact %s", artifactPath)
		require.Positive(testInstance, fileInfo.Size(), "artifact %s", artifactPath)
	}

	serialized, readError := os.ReadFile(filepath.Join(runResult.RunDirectory, "outputs", "readiness.json"))
	require.NoError(testInstance, readError)
	var document report.Document
	require.NoError(testInstance, json.Unmarshal(serialized, &document))
	require.Equal(testInstance, runResult.RunID, document.Meta.RunID)
	require.Equal(testInstance, "Acme", document.Meta.OrgName)
	require.Equal(testInstance, "A demo service.", document.Meta.RepositoryDescription)
	require.NotEmpty(testInstance, document.Criteria)
	require.GreaterOrEqual(testInstance, document.Scores.LevelAchieved, 1)
}

func TestRunRequiresRepositoryRoot(testInstance *testing.T) {
	_, runError := newFixedService(testInstance).Run(context.Background(), assess.Options{})
	require.ErrorIs(testInstance, runError, assess.ErrRepositoryRootNotConfigured)
}

func TestRunHonorsRepositoryConfigOrgName(testInstance *testing.T) {
	repositoryRoot := testInstance.TempDir()
	writeFixtureFile(testInstance, repositoryRoot, ".readix.yaml", "org_name: Configured Org\n")
	writeFixtureFile(testInstance, repositoryRoot, "README.md", "# demo\n")

	runResult, runError := newFixedService(testInstance).Run(context.Background(), assess.Options{
		RepositoryRoot:  repositoryRoot,
		OutputDirectory: testInstance.TempDir(),
	})
	require.NoError(testInstance, runError)
	require.Equal(testInstance, "Configured Org", runResult.Document.Meta.OrgName)
}

func TestAssessCommandPrintsRunDirectory(testInstance *testing.T) {
	repositoryRoot := testInstance.TempDir()
	writeFixtureFile(testInstance, repositoryRoot, "README.md", "# demo\n")
	outputDirectory := testInstance.TempDir()

	builder := &assess.CommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	var standardOutput bytes.Buffer
	command.SetOut(&standardOutput)
	command.SetErr(&standardOutput)
	command.SetArgs([]string{repositoryRoot, "--out", outputDirectory})
	command.SetContext(context.Background())

	require.NoError(testInstance, command.Execute())

	printedRunDirectory := bytes.TrimSpace(standardOutput.Bytes())
	require.NotEmpty(testInstance, printedRunDirectory)
	fileInfo, statError := os.Stat(string(printedRunDirectory))
	require.NoError(testInstance, statError)
	require.True(testInstance, fileInfo.IsDir())
}
