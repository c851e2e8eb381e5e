package remediate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	pathutils "github.com/readix/readix/internal/utils/path"
)

const (
	commandUseName          = "remediate"
	commandUsageTemplate    = commandUseName + " [repository-root]"
	commandExampleTemplate  = "readix remediate --run readiness-runs/20260831T143000Z-ab12cd34 --apply"
	commandShortDescription = "Plan (and optionally scaffold) readiness remediations"
	commandLongDescription  = "remediate reads the readiness.json of an assessment run and writes a remediation plan. With --apply it also scaffolds the missing hygiene files; apply mode only creates files and never overwrites existing ones."

	runFlagName       = "run"
	runFlagUsage      = "Run directory produced by readix assess"
	applyFlagName     = "apply"
	applyFlagUsage    = "Create missing files (never overwrites)"
	maxItemsFlagName  = "max-items"
	maxItemsFlagUsage = "Maximum remediation items to include"

	missingRunFlagErrorMessage = "--run is required"

	planWrittenTemplate = "Remediation plan written to %s\n"
)

// LoggerProvider supplies the logger used by the command.
type LoggerProvider func() *zap.Logger

// CommandConfiguration carries configuration-file defaults for the command.
type CommandConfiguration struct {
	RepositoryRoot string `mapstructure:"repository_root"`
	MaxItems       int    `mapstructure:"max_items"`
}

// Sanitize trims whitespace and fills defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := CommandConfiguration{
		RepositoryRoot: strings.TrimSpace(configuration.RepositoryRoot),
		MaxItems:       configuration.MaxItems,
	}
	if sanitized.RepositoryRoot == "" {
		sanitized.RepositoryRoot = "."
	}
	if sanitized.MaxItems <= 0 {
		sanitized.MaxItems = defaultMaxItemsConstant
	}
	return sanitized
}

// DefaultCommandConfiguration returns the built-in command defaults.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{}.Sanitize()
}

// CommandBuilder assembles the remediate command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
}

// Build constructs the remediate command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUsageTemplate,
		Short:   commandShortDescription,
		Long:    commandLongDescription,
		Example: commandExampleTemplate,
		Args:    cobra.MaximumNArgs(1),
		RunE:    builder.run,
	}

	command.Flags().String(runFlagName, "", runFlagUsage)
	command.Flags().Bool(applyFlagName, false, applyFlagUsage)
	command.Flags().Int(maxItemsFlagName, 0, maxItemsFlagUsage)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()

	homeExpander := pathutils.NewHomeExpander()
	runDirectory, _ := command.Flags().GetString(runFlagName)
	runDirectory = strings.TrimSpace(runDirectory)
	if runDirectory == "" {
		_ = command.Help()
		return errors.New(missingRunFlagErrorMessage)
	}
	runDirectory = homeExpander.Expand(runDirectory)

	repositoryRoot := configuration.RepositoryRoot
	if len(arguments) > 0 && strings.TrimSpace(arguments[0]) != "" {
		repositoryRoot = strings.TrimSpace(arguments[0])
	}
	repositoryRoot = homeExpander.Expand(repositoryRoot)

	applyRequested, _ := command.Flags().GetBool(applyFlagName)
	maxItems := configuration.MaxItems
	if command.Flags().Changed(maxItemsFlagName) {
		flagValue, _ := command.Flags().GetInt(maxItemsFlagName)
		if flagValue > 0 {
			maxItems = flagValue
		}
	}

	service := NewService(ServiceDependencies{Logger: resolveLogger(builder.LoggerProvider)})
	plan, runError := service.Run(Options{
		RepositoryRoot: repositoryRoot,
		RunDirectory:   runDirectory,
		Apply:          applyRequested,
		MaxItems:       maxItems,
	})
	if runError != nil {
		return runError
	}

	fmt.Fprintf(command.OutOrStdout(), planWrittenTemplate, plan.RunDirectory)
	if plan.Mode == ApplyMode {
		fmt.Fprintln(command.OutOrStdout(), "Apply mode complete. Review changes and open a PR.")
	}
	return nil
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider().Sanitize()
}

func resolveLogger(provider LoggerProvider) *zap.Logger {
	if provider == nil {
		return zap.NewNop()
	}
	logger := provider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
