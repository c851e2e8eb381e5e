package execshell

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// CommandName identifies an executable invoked through the executor.
type CommandName string

const (
	// GitCommandName is the git executable.
	GitCommandName CommandName = "git"

	commandStartMessageConstant    = "executing command"
	commandFinishedMessageConstant = "command finished"
	commandFailedMessageConstant   = "command failed"
	commandFieldNameConstant       = "command"
	argumentsFieldNameConstant     = "arguments"
	workingDirFieldNameConstant    = "working_directory"
	exitCodeFieldNameConstant      = "exit_code"
	standardErrorFieldNameConstant = "stderr"
	commandFailureTemplateConstant = "%s %s failed with exit code %d: %s"
)

// ErrLoggerNotConfigured indicates the executor was constructed without a logger.
var ErrLoggerNotConfigured = errors.New("logger not configured")

// ErrCommandRunnerNotConfigured indicates the executor was constructed without a runner.
var ErrCommandRunnerNotConfigured = errors.New("command runner not configured")

// CommandDetails captures the invocation parameters for a command.
type CommandDetails struct {
	Arguments            []string
	WorkingDirectory     string
	EnvironmentVariables []string
	StandardInput        string
}

// ShellCommand pairs an executable name with its invocation details.
type ShellCommand struct {
	Name    CommandName
	Details CommandDetails
}

// ExecutionResult reports the outcome of a completed command.
type ExecutionResult struct {
	StandardOutput string
	StandardError  string
	ExitCode       int
}

// CommandFailedError describes a command that exited unsuccessfully.
type CommandFailedError struct {
	Command ShellCommand
	Result  ExecutionResult
}

// Error renders the failure with the command line and exit code.
func (failure CommandFailedError) Error() string {
	return fmt.Sprintf(
		commandFailureTemplateConstant,
		failure.Command.Name,
		strings.Join(failure.Command.Details.Arguments, " "),
		failure.Result.ExitCode,
		strings.TrimSpace(failure.Result.StandardError),
	)
}

// CommandRunner executes a fully specified shell command.
type CommandRunner interface {
	Run(executionContext context.Context, command ShellCommand) (ExecutionResult, error)
}

// ShellExecutor validates, logs, and dispatches shell commands.
type ShellExecutor struct {
	logger        *zap.Logger
	commandRunner CommandRunner
}

// NewShellExecutor constructs a ShellExecutor with the provided dependencies.
func NewShellExecutor(logger *zap.Logger, commandRunner CommandRunner) (*ShellExecutor, error) {
	if logger == nil {
		return nil, ErrLoggerNotConfigured
	}
	if commandRunner == nil {
		return nil, ErrCommandRunnerNotConfigured
	}
	return &ShellExecutor{logger: logger, commandRunner: commandRunner}, nil
}

// ExecuteGit runs git with the supplied details.
func (executor *ShellExecutor) ExecuteGit(executionContext context.Context, details CommandDetails) (ExecutionResult, error) {
	return executor.execute(executionContext, ShellCommand{Name: GitCommandName, Details: details})
}

func (executor *ShellExecutor) execute(executionContext context.Context, command ShellCommand) (ExecutionResult, error) {
	executor.logger.Debug(
		commandStartMessageConstant,
		zap.String(commandFieldNameConstant, string(command.Name)),
		zap.Strings(argumentsFieldNameConstant, command.Details.Arguments),
		zap.String(workingDirFieldNameConstant, command.Details.WorkingDirectory),
	)

	executionResult, executionError := executor.commandRunner.Run(executionContext, command)
	if executionError != nil {
		executor.logger.Debug(
			commandFailedMessageConstant,
			zap.String(commandFieldNameConstant, string(command.Name)),
			zap.Error(executionError),
		)
		return executionResult, executionError
	}

	if executionResult.ExitCode != 0 {
		failure := CommandFailedError{Command: command, Result: executionResult}
		executor.logger.Debug(
			commandFailedMessageConstant,
			zap.String(commandFieldNameConstant, string(command.Name)),
			zap.Int(exitCodeFieldNameConstant, executionResult.ExitCode),
			zap.String(standardErrorFieldNameConstant, executionResult.StandardError),
		)
		return executionResult, failure
	}

	executor.logger.Debug(
		commandFinishedMessageConstant,
		zap.String(commandFieldNameConstant, string(command.Name)),
		zap.Int(exitCodeFieldNameConstant, executionResult.ExitCode),
	)
	return executionResult, nil
}
