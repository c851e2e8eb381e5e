package criteria

import "github.com/readix/readix/internal/catalog"

// Status is a criterion or unit verdict.
type Status string

const (
	// PassStatus marks a satisfied check.
	PassStatus Status = "pass"
	// FailStatus marks a check that looked for evidence and found none.
	FailStatus Status = "fail"
	// SkipStatus marks a check whose precondition is absent or that cannot
	// be decided from repository-local evidence.
	SkipStatus Status = "skip"

	repositoryUnitNameConstant = "repo"
)

// UnitResult is the verdict for one evaluation unit of a criterion.
type UnitResult struct {
	Unit     string   `json:"unit"`
	Status   Status   `json:"status"`
	Reason   string   `json:"reason"`
	Evidence []string `json:"evidence"`
}

// Result is the reduced verdict for one criterion across all of its units.
type Result struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Pillar      string        `json:"pillar"`
	Level       int           `json:"level"`
	Scope       catalog.Scope `json:"scope"`
	Weight      int           `json:"weight"`
	Numerator   int           `json:"numerator"`
	Denominator int           `json:"denominator"`
	Status      Status        `json:"status"`
	Reason      string        `json:"reason"`
	Remediation string        `json:"remediation"`
	Why         string        `json:"why"`
	UnitResults []UnitResult  `json:"unit_results"`
}

func makeUnitResult(unit string, status Status, reason string, evidence []string) UnitResult {
	if evidence == nil {
		evidence = []string{}
	}
	return UnitResult{Unit: unit, Status: status, Reason: reason, Evidence: evidence}
}

// reduceUnits collapses unit verdicts: skipped units are excluded from the
// denominator, an empty denominator skips the criterion, and any failing
// unit fails it.
func reduceUnits(unitResults []UnitResult) (numerator int, denominator int, status Status) {
	for _, unitResult := range unitResults {
		switch unitResult.Status {
		case PassStatus:
			numerator++
			denominator++
		case FailStatus:
			denominator++
		}
	}
	if denominator == 0 {
		return 0, 0, SkipStatus
	}
	if numerator == denominator {
		return numerator, denominator, PassStatus
	}
	return numerator, denominator, FailStatus
}

// aggregateReason picks the reported reason: the first passing unit's
// reason on pass, the first failing unit's on fail, the first unit's on skip.
func aggregateReason(status Status, unitResults []UnitResult) string {
	switch status {
	case PassStatus:
		for _, unitResult := range unitResults {
			if unitResult.Status == PassStatus {
				return unitResult.Reason
			}
		}
	case FailStatus:
		for _, unitResult := range unitResults {
			if unitResult.Status == FailStatus {
				return unitResult.Reason
			}
		}
		return "One or more units failed."
	}
	if len(unitResults) > 0 {
		return unitResults[0].Reason
	}
	return "Skipped."
}
