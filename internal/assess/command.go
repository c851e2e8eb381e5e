package assess

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/readix/readix/internal/execshell"
	"github.com/readix/readix/internal/repometa"
	pathutils "github.com/readix/readix/internal/utils/path"
)

const (
	commandUseName          = "assess"
	commandUsageTemplate    = commandUseName + " [repository-root]"
	commandExampleTemplate  = "readix assess ~/Development/billing-service --out ./readiness-runs"
	commandShortDescription = "Assess a repository's agent readiness"
	commandLongDescription  = "assess discovers application units, evaluates every readiness criterion against repository evidence, and writes readiness.json, report.md, and report.html into a timestamped run directory."

	outputFlagName  = "out"
	outputFlagUsage = "Directory that receives the run directory"
	orgFlagName     = "org"
	orgFlagUsage    = "Organization name shown in reports"

	defaultRepositoryRootConstant  = "."
	defaultOutputDirectoryConstant = "readiness-runs"
)

// LoggerProvider supplies the logger used by the command.
type LoggerProvider func() *zap.Logger

// CommandConfiguration carries configuration-file defaults for the command.
type CommandConfiguration struct {
	RepositoryRoot  string `mapstructure:"repository_root"`
	OutputDirectory string `mapstructure:"output_directory"`
	OrgName         string `mapstructure:"org_name"`
}

// Sanitize trims whitespace and fills defaults.
func (configuration CommandConfiguration) Sanitize() CommandConfiguration {
	sanitized := CommandConfiguration{
		RepositoryRoot:  strings.TrimSpace(configuration.RepositoryRoot),
		OutputDirectory: strings.TrimSpace(configuration.OutputDirectory),
		OrgName:         strings.TrimSpace(configuration.OrgName),
	}
	if sanitized.RepositoryRoot == "" {
		sanitized.RepositoryRoot = defaultRepositoryRootConstant
	}
	if sanitized.OutputDirectory == "" {
		sanitized.OutputDirectory = defaultOutputDirectoryConstant
	}
	return sanitized
}

// DefaultCommandConfiguration returns the built-in command defaults.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{}.Sanitize()
}

// CommandBuilder assembles the assess command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider func() CommandConfiguration
	GitExecutor           GitExecutor
}

// GitExecutor mirrors the detector's executor dependency so tests can
// inject stubs.
type GitExecutor = repometa.GitExecutor

// Build constructs the assess command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandUsageTemplate,
		Short:   commandShortDescription,
		Long:    commandLongDescription,
		Example: commandExampleTemplate,
		Args:    cobra.MaximumNArgs(1),
		RunE:    builder.run,
	}

	command.Flags().String(outputFlagName, "", outputFlagUsage)
	command.Flags().String(orgFlagName, "", orgFlagUsage)

	return command, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	configuration := builder.resolveConfiguration()
	homeExpander := pathutils.NewHomeExpander()

	repositoryRoot := configuration.RepositoryRoot
	if len(arguments) > 0 && strings.TrimSpace(arguments[0]) != "" {
		repositoryRoot = strings.TrimSpace(arguments[0])
	}
	repositoryRoot = homeExpander.Expand(repositoryRoot)

	outputDirectory := configuration.OutputDirectory
	if command.Flags().Changed(outputFlagName) {
		flagValue, _ := command.Flags().GetString(outputFlagName)
		outputDirectory = strings.TrimSpace(flagValue)
	}
	outputDirectory = homeExpander.Expand(outputDirectory)

	orgName := configuration.OrgName
	if command.Flags().Changed(orgFlagName) {
		flagValue, _ := command.Flags().GetString(orgFlagName)
		orgName = strings.TrimSpace(flagValue)
	}

	logger := resolveLogger(builder.LoggerProvider)
	gitExecutor := builder.GitExecutor
	if gitExecutor == nil {
		executor, executorError := execshell.NewShellExecutor(logger, execshell.NewOSCommandRunner())
		if executorError != nil {
			return executorError
		}
		gitExecutor = executor
	}

	service := NewService(ServiceDependencies{Logger: logger, GitExecutor: gitExecutor})
	runResult, runError := service.Run(command.Context(), Options{
		RepositoryRoot:  repositoryRoot,
		OutputDirectory: outputDirectory,
		OrgName:         orgName,
	})
	if runError != nil {
		return runError
	}

	fmt.Fprintln(command.OutOrStdout(), runResult.RunDirectory)
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
