package validate_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/readix/readix/internal/validate"
)

const wellFormedReadinessJSON = `{
  "framework": {"name": "f"},
  "meta": {"run_id": "r"},
  "scores": {"overall": {}, "level_achieved": 1, "levels": [], "pillars": []},
  "criteria": [],
  "action_items": []
}`

func writeRunArtifact(testInstance *testing.T, runDirectory string, relativePath string, contents string) {
	testInstance.Helper()
	absolutePath := filepath.Join(runDirectory, relativePath)
	require.NoError(testInstance, os.MkdirAll(filepath.Dir(absolutePath), 0o755))
	require.NoError(testInstance, os.WriteFile(absolutePath, []byte(contents), 0o644))
}

func writeCompleteRun(testInstance *testing.T) string {
	testInstance.Helper()
	runDirectory := testInstance.TempDir()
	largeReportBody := strings.Repeat("All criteria were evaluated against repository evidence.\n", 10)
	writeRunArtifact(testInstance, runDirectory, "outputs/readiness.json", wellFormedReadinessJSON)
	writeRunArtifact(testInstance, runDirectory, "outputs/report.md", "# Report\n\n"+largeReportBody)
	writeRunArtifact(testInstance, runDirectory, "outputs/report.html", "<!DOCTYPE html><html><body>"+largeReportBody+"</body></html>")
	return runDirectory
}

func TestValidateRunDirectory(testInstance *testing.T) {
	testInstance.Run("complete_run_passes", func(subtest *testing.T) {
		validationReport := validate.ValidateRunDirectory(writeCompleteRun(subtest))
		require.True(subtest, validationReport.Valid())
	})

	testInstance.Run("missing_outputs_directory", func(subtest *testing.T) {
		validationReport := validate.ValidateRunDirectory(subtest.TempDir())
		require.False(subtest, validationReport.Valid())
		require.Len(subtest, validationReport.Issues, 1)
		require.Contains(subtest, validationReport.Issues[0].Message, "outputs directory is missing")
	})

	testInstance.Run("missing_report_files", func(subtest *testing.T) {
		runDirectory := subtest.TempDir()
		writeRunArtifact(subtest, runDirectory, "outputs/readiness.json", wellFormedReadinessJSON)
		validationReport := validate.ValidateRunDirectory(runDirectory)
		require.False(subtest, validationReport.Valid())
		require.Len(subtest, validationReport.Issues, 2)
	})

	testInstance.Run("invalid_json", func(subtest *testing.T) {
		runDirectory := writeCompleteRun(subtest)
		writeRunArtifact(subtest, runDirectory, "outputs/readiness.json", "{not json")
		validationReport := validate.ValidateRunDirectory(runDirectory)
		require.False(subtest, validationReport.Valid())
		require.Contains(subtest, validationReport.Issues[0].Message, "not valid JSON")
	})

	testInstance.Run("missing_document_keys", func(subtest *testing.T) {
		runDirectory := writeCompleteRun(subtest)
		writeRunArtifact(subtest, runDirectory, "outputs/readiness.json", `{"framework": {}, "meta": {}}`)
		validationReport := validate.ValidateRunDirectory(runDirectory)
		require.False(subtest, validationReport.Valid())
		messages := []string{}
		for _, issue := range validationReport.Issues {
			messages = append(messages, issue.Message)
		}
		require.Contains(subtest, strings.Join(messages, "; "), `missing required key "scores"`)
		require.Contains(subtest, strings.Join(messages, "; "), `missing required key "criteria"`)
	})

	testInstance.Run("missing_score_keys", func(subtest *testing.T) {
		runDirectory := writeCompleteRun(subtest)
		writeRunArtifact(subtest, runDirectory, "outputs/readiness.json",
			`{"framework": {}, "meta": {}, "scores": {"overall": {}}, "criteria": [], "action_items": []}`)
		validationReport := validate.ValidateRunDirectory(runDirectory)
		require.False(subtest, validationReport.Valid())
		messages := []string{}
		for _, issue := range validationReport.Issues {
			messages = append(messages, issue.Message)
		}
		require.Contains(subtest, strings.Join(messages, "; "), `scores is missing required key "level_achieved"`)
	})

	testInstance.Run("truncated_report_fails", func(subtest *testing.T) {
		runDirectory := writeCompleteRun(subtest)
		writeRunArtifact(subtest, runDirectory, "outputs/report.md", "# tiny\n")
		validationReport := validate.ValidateRunDirectory(runDirectory)
		require.False(subtest, validationReport.Valid())
		require.Contains(subtest, validationReport.Issues[0].Message, "suspiciously small")
	})
}

func TestValidateCommand(testInstance *testing.T) {
	testInstance.Run("valid_run_prints_ok", func(subtest *testing.T) {
		builder := &validate.CommandBuilder{}
		command, buildError := builder.Build()
		require.NoError(subtest, buildError)

		var standardOutput bytes.Buffer
		command.SetOut(&standardOutput)
		command.SetErr(&standardOutput)
		command.SetArgs([]string{writeCompleteRun(subtest)})
		require.NoError(subtest, command.Execute())
		require.Contains(subtest, standardOutput.String(), "OK")
	})

	testInstance.Run("broken_run_fails_with_diagnostics", func(subtest *testing.T) {
		builder := &validate.CommandBuilder{}
		command, buildError := builder.Build()
		require.NoError(subtest, buildError)

		var combinedOutput bytes.Buffer
		command.SetOut(&combinedOutput)
		command.SetErr(&combinedOutput)
		command.SetArgs([]string{subtest.TempDir()})
		executionError := command.Execute()
		require.Error(subtest, executionError)
		require.Contains(subtest, combinedOutput.String(), "outputs directory is missing")
	})
}
