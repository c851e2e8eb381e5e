package repometa

import (
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/readix/readix/internal/execshell"
)

const (
	readmeReadLimitConstant       = 50_000
	descriptionLengthLimitConstant = 200

	remoteNameConstant        = "origin"
	originHeadReferenceConstant = "refs/remotes/origin/HEAD"
)

var remoteURLPattern = regexp.MustCompile(`[:/](?P<org>[^/]+)/(?P<repo>[^/]+?)(?:\.git)?$`)

// GitExecutor runs git commands on behalf of the detector.
type GitExecutor interface {
	ExecuteGit(executionContext context.Context, details execshell.CommandDetails) (execshell.ExecutionResult, error)
}

// Metadata carries the identity fields of the assessed repository.
type Metadata struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	DefaultBranch string `json:"default_branch"`
	CommitSHA     string `json:"commit_sha"`
}

// Detector resolves repository metadata from git and the working tree.
type Detector struct {
	repositoryRoot string
	gitExecutor    GitExecutor
}

// NewDetector constructs a Detector rooted at repositoryRoot. A nil executor
// degrades every git lookup to its fallback value.
func NewDetector(repositoryRoot string, gitExecutor GitExecutor) *Detector {
	return &Detector{repositoryRoot: repositoryRoot, gitExecutor: gitExecutor}
}

func (detector *Detector) runGit(executionContext context.Context, arguments ...string) (string, bool) {
	if detector.gitExecutor == nil {
		return "", false
	}
	result, executionError := detector.gitExecutor.ExecuteGit(executionContext, execshell.CommandDetails{
		Arguments:        arguments,
		WorkingDirectory: detector.repositoryRoot,
	})
	if executionError != nil {
		return "", false
	}
	return strings.TrimSpace(result.StandardOutput), true
}

// RepositoryName derives the repository name from the origin remote URL and
// falls back to the root directory name.
func (detector *Detector) RepositoryName(executionContext context.Context) string {
	remoteURL, remoteAvailable := detector.runGit(executionContext, "remote", "get-url", remoteNameConstant)
	if remoteAvailable {
		matches := remoteURLPattern.FindStringSubmatch(remoteURL)
		if matches != nil {
			return matches[remoteURLPattern.SubexpIndex("repo")]
		}
	}
	absoluteRoot, absoluteError := filepath.Abs(detector.repositoryRoot)
	if absoluteError != nil {
		return filepath.Base(detector.repositoryRoot)
	}
	return filepath.Base(absoluteRoot)
}

// OrganizationName derives the owning organization from the origin remote
// URL. It returns an empty string when no remote is available.
func (detector *Detector) OrganizationName(executionContext context.Context) string {
	remoteURL, remoteAvailable := detector.runGit(executionContext, "remote", "get-url", remoteNameConstant)
	if !remoteAvailable {
		return ""
	}
	matches := remoteURLPattern.FindStringSubmatch(remoteURL)
	if matches == nil {
		return ""
	}
	return matches[remoteURLPattern.SubexpIndex("org")]
}

// CommitSHA returns the head commit hash, or an empty string outside a git
// repository.
func (detector *Detector) CommitSHA(executionContext context.Context) string {
	commitSHA, _ := detector.runGit(executionContext, "rev-parse", "HEAD")
	return commitSHA
}

// DefaultBranch resolves the branch origin/HEAD points at, or an empty
// string when the remote reference is unavailable.
func (detector *Detector) DefaultBranch(executionContext context.Context) string {
	reference, referenceAvailable := detector.runGit(executionContext, "symbolic-ref", originHeadReferenceConstant)
	if !referenceAvailable || reference == "" {
		return ""
	}
	segments := strings.Split(reference, "/")
	return segments[len(segments)-1]
}

// Description extracts the first non-empty, non-heading line of the README.
func (detector *Detector) Description() string {
	for _, readmeName := range []string{"README.md", "README.rst", "README.txt", "README"} {
		contents, readError := os.ReadFile(filepath.Join(detector.repositoryRoot, readmeName))
		if readError != nil {
			continue
		}
		if len(contents) > readmeReadLimitConstant {
			contents = contents[:readmeReadLimitConstant]
		}
		for _, line := range strings.Split(string(contents), "\n") {
			trimmedLine := strings.TrimSpace(line)
			if trimmedLine == "" || strings.HasPrefix(trimmedLine, "#") {
				continue
			}
			if len(trimmedLine) > descriptionLengthLimitConstant {
				trimmedLine = trimmedLine[:descriptionLengthLimitConstant]
			}
			return trimmedLine
		}
	}
	return ""
}

// Collect gathers every metadata field with best-effort git lookups.
func (detector *Detector) Collect(executionContext context.Context) Metadata {
	return Metadata{
		Name:          detector.RepositoryName(executionContext),
		Description:   detector.Description(),
		DefaultBranch: detector.DefaultBranch(executionContext),
		CommitSHA:     detector.CommitSHA(executionContext),
	}
}

// HistoryProvider answers document change-time queries from git history.
type HistoryProvider struct {
	detector         *Detector
	executionContext context.Context
}

// History binds the detector to an execution context for change-time
// lookups.
func (detector *Detector) History(executionContext context.Context) *HistoryProvider {
	return &HistoryProvider{detector: detector, executionContext: executionContext}
}

// LastChangeTime returns the most recent commit time touching any of the
// given paths. The zero time means git recorded no change.
func (provider *HistoryProvider) LastChangeTime(paths []string) (time.Time, error) {
	arguments := append([]string{"log", "-1", "--format=%ct", "--"}, paths...)
	output, outputAvailable := provider.detector.runGit(provider.executionContext, arguments...)
	if !outputAvailable {
		return time.Time{}, errGitHistoryUnavailable
	}
	if output == "" {
		return time.Time{}, nil
	}
	epochSeconds, parseError := strconv.ParseInt(output, 10, 64)
	if parseError != nil {
		return time.Time{}, parseError
	}
	return time.Unix(epochSeconds, 0).UTC(), nil
}
