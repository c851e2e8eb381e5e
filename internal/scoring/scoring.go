package scoring

import (
	"math"
	"sort"

	"github.com/readix/readix/internal/criteria"
)

const (
	// levelProgressionThresholdPercent is the pass rate a level must reach
	// before the next level counts as unlocked.
	levelProgressionThresholdPercent = 80.0
	minimumLevelConstant             = 1
	maximumLevelConstant             = 5
)

// PillarScore summarizes pass rates for one pillar.
type PillarScore struct {
	Pillar  string  `json:"pillar"`
	Passed  int     `json:"passed"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// LevelScore summarizes pass rates for one maturity level.
type LevelScore struct {
	Level   int     `json:"level"`
	Name    string  `json:"name"`
	Passed  int     `json:"passed"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// OverallScore summarizes pass rates across every evaluated criterion.
type OverallScore struct {
	Passed  int     `json:"passed"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

func passRatePercent(passed int, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(passed) / float64(total) * 100)
}

// ComputePillarScores tallies pass rates per pillar. Skipped criteria are
// excluded from both numerator and denominator. The result is sorted by
// descending percent, then pillar name.
func ComputePillarScores(results []criteria.Result, pillarNames []string) []PillarScore {
	passedByPillar := map[string]int{}
	totalByPillar := map[string]int{}
	for _, result := range results {
		if result.Status == criteria.SkipStatus {
			continue
		}
		totalByPillar[result.Pillar]++
		if result.Status == criteria.PassStatus {
			passedByPillar[result.Pillar]++
		}
	}
	scores := make([]PillarScore, 0, len(pillarNames))
	for _, pillarName := range pillarNames {
		passed := passedByPillar[pillarName]
		total := totalByPillar[pillarName]
		scores = append(scores, PillarScore{
			Pillar:  pillarName,
			Passed:  passed,
			Total:   total,
			Percent: passRatePercent(passed, total),
		})
	}
	sort.SliceStable(scores, func(first int, second int) bool {
		if scores[first].Percent != scores[second].Percent {
			return scores[first].Percent > scores[second].Percent
		}
		return scores[first].Pillar < scores[second].Pillar
	})
	return scores
}

// LevelNamer resolves the display name of a maturity level.
type LevelNamer func(level int) string

// ComputeLevelScores tallies pass rates per maturity level. Every level from
// one through five is present in the result even when no criterion at that
// level was evaluable.
func ComputeLevelScores(results []criteria.Result, levelNamer LevelNamer) []LevelScore {
	passedByLevel := map[int]int{}
	totalByLevel := map[int]int{}
	for _, result := range results {
		if result.Status == criteria.SkipStatus {
			continue
		}
		totalByLevel[result.Level]++
		if result.Status == criteria.PassStatus {
			passedByLevel[result.Level]++
		}
	}
	scores := make([]LevelScore, 0, maximumLevelConstant)
	for level := minimumLevelConstant; level <= maximumLevelConstant; level++ {
		passed := passedByLevel[level]
		total := totalByLevel[level]
		scores = append(scores, LevelScore{
			Level:   level,
			Name:    levelNamer(level),
			Passed:  passed,
			Total:   total,
			Percent: passRatePercent(passed, total),
		})
	}
	return scores
}

// ComputeOverallScore tallies the pass rate across every non-skipped
// criterion.
func ComputeOverallScore(results []criteria.Result) OverallScore {
	passed := 0
	total := 0
	for _, result := range results {
		if result.Status == criteria.SkipStatus {
			continue
		}
		total++
		if result.Status == criteria.PassStatus {
			passed++
		}
	}
	return OverallScore{Passed: passed, Total: total, Percent: passRatePercent(passed, total)}
}

// ComputeLevelAchieved resolves the gated maturity level. Level one is always
// granted. Each subsequent level unlocks only when the previous level's pass
// rate meets the progression threshold; a level with no evaluable criteria
// stops progression.
func ComputeLevelAchieved(levelScores []LevelScore) int {
	percentByLevel := map[int]float64{}
	totalByLevel := map[int]int{}
	for _, score := range levelScores {
		percentByLevel[score.Level] = score.Percent
		totalByLevel[score.Level] = score.Total
	}
	achieved := minimumLevelConstant
	for previousLevel := minimumLevelConstant; previousLevel < maximumLevelConstant; previousLevel++ {
		if totalByLevel[previousLevel] == 0 {
			break
		}
		if percentByLevel[previousLevel] >= levelProgressionThresholdPercent {
			achieved = previousLevel + 1
		} else {
			break
		}
	}
	return achieved
}

// ProgressionThresholdPercent exposes the gate threshold for report text.
func ProgressionThresholdPercent() float64 {
	return levelProgressionThresholdPercent
}
