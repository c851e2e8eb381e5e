// Package criteria evaluates the rubric against a repository: it dispatches
// each criterion to its evidence probe, evaluates application-scoped
// criteria per discovered unit, and reduces unit verdicts into a single
// criterion result.
package criteria
