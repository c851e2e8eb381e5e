package validate

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	commandUseName          = "validate"
	commandUsageTemplate    = commandUseName + " <run-directory>"
	commandExampleTemplate  = "readix validate readiness-runs/20260831T143000Z-ab12cd34"
	commandShortDescription = "Validate the artifacts of an assessment run"
	commandLongDescription  = "validate confirms a run directory carries readiness.json, report.md, and report.html, that the JSON document has the expected shape, and that the reports are not truncated. It exits non-zero and lists every problem when validation fails."

	missingRunDirectoryErrorMessage = "run directory argument is required"
	validationPassedMessageConstant = "OK: all artifacts present and well formed"
	validationFailedTemplate        = "validation failed with %d issue(s)"
)

// LoggerProvider supplies the logger used by the command.
type LoggerProvider func() *zap.Logger

// CommandBuilder assembles the validate command.
type CommandBuilder struct {
	LoggerProvider LoggerProvider
}

// Build constructs the validate command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUsageTemplate,
		Short:   commandShortDescription,
		Long:    commandLongDescription,
		Example: commandExampleTemplate,
		Args:    cobra.MaximumNArgs(1),
		RunE:    builder.run,
	}
	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) == 0 {
		_ = command.Help()
		return errors.New(missingRunDirectoryErrorMessage)
	}

	validationReport := ValidateRunDirectory(arguments[0])
	if validationReport.Valid() {
		fmt.Fprintln(command.OutOrStdout(), validationPassedMessageConstant)
		return nil
	}

	for _, issue := range validationReport.Issues {
		fmt.Fprintln(command.ErrOrStderr(), issue.String())
	}
	return fmt.Errorf(validationFailedTemplate, len(validationReport.Issues))
}
