package criteria

import (
	"fmt"
	"time"

	"github.com/readix/readix/internal/catalog"
	"github.com/readix/readix/internal/inventory"
)

// DocumentHistory reports when a set of repository files last changed.
// Implementations typically consult git history.
type DocumentHistory interface {
	LastChangeTime(relativePaths []string) (time.Time, error)
}

type repositoryProbe func() []UnitResult

type applicationProbe func(unit inventory.Unit) UnitResult

// Engine evaluates every catalog criterion against a repository and its
// discovered units.
type Engine struct {
	repositoryRoot    string
	units             []inventory.Unit
	documentHistory   DocumentHistory
	repositoryProbes  map[string]repositoryProbe
	applicationProbes map[string]applicationProbe
}

// NewEngine constructs an Engine. documentHistory may be nil when git
// history is unavailable; history-backed criteria then skip.
func NewEngine(repositoryRoot string, units []inventory.Unit, documentHistory DocumentHistory) *Engine {
	engine := &Engine{
		repositoryRoot:  repositoryRoot,
		units:           units,
		documentHistory: documentHistory,
	}
	engine.repositoryProbes = engine.buildRepositoryProbes()
	engine.applicationProbes = engine.buildApplicationProbes()
	return engine
}

// EvaluateAll evaluates the full catalog in catalog order.
func (engine *Engine) EvaluateAll() []Result {
	definitions := catalog.Criteria()
	results := make([]Result, 0, len(definitions))
	for _, criterion := range definitions {
		results = append(results, engine.evaluateCriterion(criterion))
	}
	return results
}

func (engine *Engine) evaluateCriterion(criterion catalog.Criterion) Result {
	var unitResults []UnitResult
	switch criterion.Scope {
	case catalog.RepositoryScope:
		probe, known := engine.repositoryProbes[criterion.ID]
		if !known {
			unitResults = []UnitResult{makeUnitResult(repositoryUnitNameConstant, SkipStatus, fmt.Sprintf("Unknown criterion id: %s", criterion.ID), nil)}
			break
		}
		unitResults = probe()
	case catalog.ApplicationScope:
		probe, known := engine.applicationProbes[criterion.ID]
		for _, unit := range engine.units {
			if !known {
				unitResults = append(unitResults, makeUnitResult(unit.Path, SkipStatus, fmt.Sprintf("Unknown criterion id: %s", criterion.ID), nil))
				continue
			}
			unitResults = append(unitResults, probe(unit))
		}
	default:
		unitResults = []UnitResult{makeUnitResult(repositoryUnitNameConstant, SkipStatus, fmt.Sprintf("Unknown scope: %s", criterion.Scope), nil)}
	}

	numerator, denominator, status := reduceUnits(unitResults)

	return Result{
		ID:          criterion.ID,
		Title:       criterion.Title,
		Pillar:      criterion.Pillar,
		Level:       criterion.Level,
		Scope:       criterion.Scope,
		Weight:      criterion.Weight,
		Numerator:   numerator,
		Denominator: denominator,
		Status:      status,
		Reason:      aggregateReason(status, unitResults),
		Remediation: criterion.Remediation,
		Why:         criterion.Why,
		UnitResults: unitResults,
	}
}
