package repometa_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/readix/readix/internal/execshell"
	"github.com/readix/readix/internal/repometa"
)

type scriptedGitExecutor struct {
	outputsByCommand map[string]string
	failingCommands  map[string]bool
}

func (executor *scriptedGitExecutor) ExecuteGit(_ context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error) {
	commandLine := strings.Join(details.Arguments, " ")
	if executor.failingCommands[commandLine] {
		return execshell.ExecutionResult{ExitCode: 128}, errors.New("git command failed")
	}
	output, known := executor.outputsByCommand[commandLine]
	if !known {
		return execshell.ExecutionResult{ExitCode: 128}, errors.New("unexpected git command: " + commandLine)
	}
	return execshell.ExecutionResult{StandardOutput: output}, nil
}

func TestRepositoryNameFromRemote(testInstance *testing.T) {
	testCases := []struct {
		name         string
		remoteURL    string
		expectedName string
		expectedOrg  string
	}{
		{
			name:         "ssh_remote",
			remoteURL:    "git@github.com:acme/billing-service.git",
			expectedName: "billing-service",
			expectedOrg:  "acme",
		},
		{
			name:         "https_remote",
			remoteURL:    "https://github.com/acme/billing-service",
			expectedName: "billing-service",
			expectedOrg:  "acme",
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subtest *testing.T) {
			executor := &scriptedGitExecutor{outputsByCommand: map[string]string{
				"remote get-url origin": testCase.remoteURL + "\n",
			}}
			detector := repometa.NewDetector(subtest.TempDir(), executor)
			require.Equal(subtest, testCase.expectedName, detector.RepositoryName(context.Background()))
			require.Equal(subtest, testCase.expectedOrg, detector.OrganizationName(context.Background()))
		})
	}
}

func TestRepositoryNameFallsBackToDirectoryName(testInstance *testing.T) {
	repositoryRoot := filepath.Join(testInstance.TempDir(), "inventory-api")
	require.NoError(testInstance, os.MkdirAll(repositoryRoot, 0o755))
	executor := &scriptedGitExecutor{failingCommands: map[string]bool{"remote get-url origin": true}}

	detector := repometa.NewDetector(repositoryRoot, executor)
	require.Equal(testInstance, "inventory-api", detector.RepositoryName(context.Background()))
	require.Empty(testInstance, detector.OrganizationName(context.Background()))
}

func TestCollectGathersGitFields(testInstance *testing.T) {
	repositoryRoot := testInstance.TempDir()
	readmeContents := "# Billing Service\n\nHandles invoicing and payment reconciliation.\n"
	require.NoError(testInstance, os.WriteFile(filepath.Join(repositoryRoot, "README.md"), []byte(readmeContents), 0o644))

	executor := &scriptedGitExecutor{outputsByCommand: map[string]string{
		"remote get-url origin":               "git@github.com:acme/billing-service.git",
		"rev-parse HEAD":                      "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678\n",
		"symbolic-ref refs/remotes/origin/HEAD": "refs/remotes/origin/main\n",
	}}

	metadata := repometa.NewDetector(repositoryRoot, executor).Collect(context.Background())
	require.Equal(testInstance, "billing-service", metadata.Name)
	require.Equal(testInstance, "Handles invoicing and payment reconciliation.", metadata.Description)
	require.Equal(testInstance, "main", metadata.DefaultBranch)
	require.Equal(testInstance, "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678", metadata.CommitSHA)
}

func TestCollectToleratesMissingGit(testInstance *testing.T) {
	repositoryRoot := testInstance.TempDir()
	metadata := repometa.NewDetector(repositoryRoot, nil).Collect(context.Background())
	require.Equal(testInstance, filepath.Base(repositoryRoot), metadata.Name)
	require.Empty(testInstance, metadata.CommitSHA)
	require.Empty(testInstance, metadata.DefaultBranch)
}

func TestDescriptionTruncatesLongLines(testInstance *testing.T) {
	repositoryRoot := testInstance.TempDir()
	longLine := strings.Repeat("x", 400)
	require.NoError(testInstance, os.WriteFile(filepath.Join(repositoryRoot, "README.md"), []byte("# Title\n\n"+longLine+"\n"), 0o644))

	description := repometa.NewDetector(repositoryRoot, nil).Description()
	require.Len(testInstance, description, 200)
}

func TestHistoryLastChangeTime(testInstance *testing.T) {
	testInstance.Run("parses_epoch", func(subtest *testing.T) {
		executor := &scriptedGitExecutor{outputsByCommand: map[string]string{
			"log -1 --format=%ct -- README.md AGENTS.md": "1756600000\n",
		}}
		history := repometa.NewDetector(subtest.TempDir(), executor).History(context.Background())
		changeTime, historyError := history.LastChangeTime([]string{"README.md", "AGENTS.md"})
		require.NoError(subtest, historyError)
		require.Equal(subtest, time.Unix(1756600000, 0).UTC(), changeTime)
	})

	testInstance.Run("empty_output_is_zero_time", func(subtest *testing.T) {
		executor := &scriptedGitExecutor{outputsByCommand: map[string]string{
			"log -1 --format=%ct -- README.md": "",
		}}
		history := repometa.NewDetector(subtest.TempDir(), executor).History(context.Background())
		changeTime, historyError := history.LastChangeTime([]string{"README.md"})
		require.NoError(subtest, historyError)
		require.True(subtest, changeTime.IsZero())
	})

	testInstance.Run("git_failure_returns_error", func(subtest *testing.T) {
		executor := &scriptedGitExecutor{failingCommands: map[string]bool{"log -1 --format=%ct -- README.md": true}}
		history := repometa.NewDetector(subtest.TempDir(), executor).History(context.Background())
		_, historyError := history.LastChangeTime([]string{"README.md"})
		require.Error(subtest, historyError)
	})
}
