package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/readix/readix/cmd/cli"
)

func executeApplication(testInstance *testing.T, arguments ...string) (string, error) {
	testInstance.Helper()
	application := cli.NewApplication()
	var combinedOutput bytes.Buffer
	command := application.RootCommand()
	command.SetOut(&combinedOutput)
	command.SetErr(&combinedOutput)
	command.SetArgs(arguments)
	executionError := application.Execute()
	return combinedOutput.String(), executionError
}

func TestRootCommandListsSubcommands(testInstance *testing.T) {
	output, executionError := executeApplication(testInstance, "--help")
	require.NoError(testInstance, executionError)
	for _, subcommandName := range []string{"assess", "remediate", "validate"} {
		require.Contains(testInstance, output, subcommandName)
	}
}

func TestAssessThenValidateRoundTrip(testInstance *testing.T) {
	repositoryRoot := testInstance.TempDir()
	require.NoError(testInstance, os.WriteFile(filepath.Join(repositoryRoot, "README.md"), []byte("# demo\n\nA demo repository.\n"), 0o644))
	require.NoError(testInstance, os.WriteFile(filepath.Join(repositoryRoot, "go.mod"), []byte("module example.com/demo\n"), 0o644))
	outputDirectory := testInstance.TempDir()

	assessOutput, assessError := executeApplication(testInstance,
		"assess", repositoryRoot, "--out", outputDirectory, "--log-level", "error")
	require.NoError(testInstance, assessError)

	runDirectory := strings.TrimSpace(assessOutput)
	require.DirExists(testInstance, runDirectory)

	validateOutput, validateError := executeApplication(testInstance,
		"validate", runDirectory, "--log-level", "error")
	require.NoError(testInstance, validateError)
	require.Contains(testInstance, validateOutput, "OK")
}

func TestValidateRejectsEmptyRunDirectory(testInstance *testing.T) {
	_, executionError := executeApplication(testInstance,
		"validate", testInstance.TempDir(), "--log-level", "error")
	require.Error(testInstance, executionError)
}

func TestUnknownLogLevelFailsConfiguration(testInstance *testing.T) {
	_, executionError := executeApplication(testInstance, "validate", "--log-level", "loud")
	require.Error(testInstance, executionError)
	require.Contains(testInstance, executionError.Error(), "unsupported log level")
}
