package validate

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	outputsDirectoryNameConstant = "outputs"

	readinessFileNameConstant      = "readiness.json"
	markdownReportFileNameConstant = "report.md"
	htmlReportFileNameConstant     = "report.html"

	minimumReportSizeBytesConstant = 200
)

var requiredDocumentKeys = []string{"framework", "meta", "scores", "criteria", "action_items"}

var requiredScoreKeys = []string{"overall", "level_achieved", "levels", "pillars"}

// Issue describes one validation failure in a run directory.
type Issue struct {
	Artifact string `json:"artifact"`
	Message  string `json:"message"`
}

// String renders the issue for diagnostics output.
func (issue Issue) String() string {
	return issue.Artifact + ": " + issue.Message
}

// Report is the outcome of validating one run directory.
type Report struct {
	RunDirectory string  `json:"run_directory"`
	Issues       []Issue `json:"issues"`
}

// Valid reports whether the run directory passed every check.
func (report Report) Valid() bool {
	return len(report.Issues) == 0
}

// ValidateRunDirectory checks the artifact files of a completed assessment
// run and collects every problem it finds.
func ValidateRunDirectory(runDirectory string) Report {
	validationReport := Report{RunDirectory: runDirectory, Issues: []Issue{}}

	outputsDirectory := filepath.Join(runDirectory, outputsDirectoryNameConstant)
	if _, statError := os.Stat(outputsDirectory); statError != nil {
		validationReport.Issues = append(validationReport.Issues, Issue{
			Artifact: outputsDirectoryNameConstant,
			Message:  "outputs directory is missing",
		})
		return validationReport
	}

	validationReport.Issues = append(validationReport.Issues, validateReadinessJSON(outputsDirectory)...)
	for _, reportFileName := range []string{markdownReportFileNameConstant, htmlReportFileNameConstant} {
		validationReport.Issues = append(validationReport.Issues, validateReportFile(outputsDirectory, reportFileName)...)
	}
	return validationReport
}

func validateReadinessJSON(outputsDirectory string) []Issue {
	readinessPath := filepath.Join(outputsDirectory, readinessFileNameConstant)
	contents, readError := os.ReadFile(readinessPath)
	if readError != nil {
		return []Issue{{Artifact: readinessFileNameConstant, Message: "file is missing or unreadable"}}
	}

	var document map[string]json.RawMessage
	if unmarshalError := json.Unmarshal(contents, &document); unmarshalError != nil {
		return []Issue{{Artifact: readinessFileNameConstant, Message: "file is not valid JSON: " + unmarshalError.Error()}}
	}

	issues := []Issue{}
	for _, requiredKey := range requiredDocumentKeys {
		if _, present := document[requiredKey]; !present {
			issues = append(issues, Issue{
				Artifact: readinessFileNameConstant,
				Message:  fmt.Sprintf("missing required key %q", requiredKey),
			})
		}
	}

	scoresPayload, scoresPresent := document["scores"]
	if !scoresPresent {
		return issues
	}
	var scores map[string]json.RawMessage
	if unmarshalError := json.Unmarshal(scoresPayload, &scores); unmarshalError != nil {
		issues = append(issues, Issue{
			Artifact: readinessFileNameConstant,
			Message:  "scores is not a JSON object",
		})
		return issues
	}
	for _, requiredKey := range requiredScoreKeys {
		if _, present := scores[requiredKey]; !present {
			issues = append(issues, Issue{
				Artifact: readinessFileNameConstant,
				Message:  fmt.Sprintf("scores is missing required key %q", requiredKey),
			})
		}
	}
	return issues
}

func validateReportFile(outputsDirectory string, reportFileName string) []Issue {
	fileInfo, statError := os.Stat(filepath.Join(outputsDirectory, reportFileName))
	if statError != nil {
		return []Issue{{Artifact: reportFileName, Message: "file is missing"}}
	}
	if fileInfo.Size() < minimumReportSizeBytesConstant {
		return []Issue{{
			Artifact: reportFileName,
			Message:  fmt.Sprintf("file is suspiciously small (%d bytes, expected at least %d)", fileInfo.Size(), minimumReportSizeBytesConstant),
		}}
	}
	return nil
}
