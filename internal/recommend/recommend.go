package recommend

import (
	"sort"

	"github.com/readix/readix/internal/criteria"
	"github.com/readix/readix/internal/scoring"
)

const highlightLimitConstant = 3

// ActionItem is one concrete remediation step tied to a failing criterion at
// the blocking level.
type ActionItem struct {
	CriterionID string `json:"criterion_id"`
	Title       string `json:"title"`
	Pillar      string `json:"pillar"`
	Why         string `json:"why"`
	Remediation string `json:"remediation"`
}

// PickStrengths returns the top pillar scores. The input is expected to be
// sorted by descending percent already.
func PickStrengths(pillarScores []scoring.PillarScore) []scoring.PillarScore {
	if len(pillarScores) <= highlightLimitConstant {
		return append([]scoring.PillarScore{}, pillarScores...)
	}
	return append([]scoring.PillarScore{}, pillarScores[:highlightLimitConstant]...)
}

// PickOpportunities returns the highest-impact failing criteria, ordered by
// descending weight, then level, pillar, and id.
func PickOpportunities(results []criteria.Result) []criteria.Result {
	failing := make([]criteria.Result, 0, len(results))
	for _, result := range results {
		if result.Status == criteria.FailStatus {
			failing = append(failing, result)
		}
	}
	sort.SliceStable(failing, func(first int, second int) bool {
		if failing[first].Weight != failing[second].Weight {
			return failing[first].Weight > failing[second].Weight
		}
		if failing[first].Level != failing[second].Level {
			return failing[first].Level < failing[second].Level
		}
		if failing[first].Pillar != failing[second].Pillar {
			return failing[first].Pillar < failing[second].Pillar
		}
		return failing[first].ID < failing[second].ID
	})
	if len(failing) > highlightLimitConstant {
		failing = failing[:highlightLimitConstant]
	}
	return failing
}

// BlockingLevel is the level whose failures hold back progression. When the
// top level is already achieved there is nothing left to unblock.
func BlockingLevel(levelAchieved int) (int, bool) {
	if levelAchieved >= 5 {
		return 0, false
	}
	return levelAchieved, true
}

// PickActionItems returns remediation steps for failing criteria at the
// blocking level, ordered by descending weight, then pillar and id. The list
// is empty once the top level is achieved.
func PickActionItems(results []criteria.Result, levelAchieved int) []ActionItem {
	blockingLevel, hasBlockingLevel := BlockingLevel(levelAchieved)
	if !hasBlockingLevel {
		return []ActionItem{}
	}
	blocking := make([]criteria.Result, 0, len(results))
	for _, result := range results {
		if result.Status == criteria.FailStatus && result.Level == blockingLevel {
			blocking = append(blocking, result)
		}
	}
	sort.SliceStable(blocking, func(first int, second int) bool {
		if blocking[first].Weight != blocking[second].Weight {
			return blocking[first].Weight > blocking[second].Weight
		}
		if blocking[first].Pillar != blocking[second].Pillar {
			return blocking[first].Pillar < blocking[second].Pillar
		}
		return blocking[first].ID < blocking[second].ID
	})
	if len(blocking) > highlightLimitConstant {
		blocking = blocking[:highlightLimitConstant]
	}
	actionItems := make([]ActionItem, 0, len(blocking))
	for _, result := range blocking {
		actionItems = append(actionItems, ActionItem{
			CriterionID: result.ID,
			Title:       result.Title,
			Pillar:      result.Pillar,
			Why:         result.Why,
			Remediation: result.Remediation,
		})
	}
	return actionItems
}
