package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/readix/readix/internal/criteria"
)

const (
	passIconConstant = "✓"
	failIconConstant = "✗"
	skipIconConstant = "—"

	commitDisplayLengthConstant = 12
)

func statusIcon(status criteria.Status) string {
	switch status {
	case criteria.PassStatus:
		return passIconConstant
	case criteria.FailStatus:
		return failIconConstant
	default:
		return skipIconConstant
	}
}

func shortCommit(commitSHA string) string {
	if len(commitSHA) > commitDisplayLengthConstant {
		return commitSHA[:commitDisplayLengthConstant]
	}
	return commitSHA
}

func criteriaByPillar(results []criteria.Result) map[string][]criteria.Result {
	grouped := map[string][]criteria.Result{}
	for _, result := range results {
		grouped[result.Pillar] = append(grouped[result.Pillar], result)
	}
	for pillarName := range grouped {
		pillarResults := grouped[pillarName]
		sort.SliceStable(pillarResults, func(first int, second int) bool {
			if pillarResults[first].Level != pillarResults[second].Level {
				return pillarResults[first].Level < pillarResults[second].Level
			}
			return pillarResults[first].ID < pillarResults[second].ID
		})
		grouped[pillarName] = pillarResults
	}
	return grouped
}

// RenderMarkdown produces the human-readable report written alongside the
// JSON document.
func RenderMarkdown(document Document) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "# %s – Agent Readiness Report\n\n", document.Meta.OrgName)
	fmt.Fprintf(&builder, "- Repository: `%s`\n", document.Meta.RepositoryName)
	if document.Meta.RepositoryDescription != "" {
		fmt.Fprintf(&builder, "- Description: %s\n", document.Meta.RepositoryDescription)
	}
	fmt.Fprintf(&builder, "- Run ID: `%s`\n", document.Meta.RunID)
	fmt.Fprintf(&builder, "- Generated: %s\n", document.Meta.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	if document.Meta.CommitSHA != "" {
		fmt.Fprintf(&builder, "- Commit: `%s`\n", shortCommit(document.Meta.CommitSHA))
	}
	if len(document.Meta.Languages) > 0 {
		fmt.Fprintf(&builder, "- Languages: %s\n", strings.Join(document.Meta.Languages, ", "))
	}

	builder.WriteString("\n## Executive summary\n\n")
	fmt.Fprintf(&builder, "- Level achieved: **%d – %s**\n",
		document.Scores.LevelAchieved, levelNameByNumber(document, document.Scores.LevelAchieved))
	fmt.Fprintf(&builder, "- Progression: %s\n", document.Scores.NextLevelTarget)
	fmt.Fprintf(&builder, "- Overall pass rate: %d/%d (%.0f%%)\n",
		document.Scores.Overall.Passed, document.Scores.Overall.Total, document.Scores.Overall.Percent)

	if len(document.Highlights.Strengths) > 0 {
		builder.WriteString("\n## Top strengths\n\n")
		for _, strength := range document.Highlights.Strengths {
			fmt.Fprintf(&builder, "- **%s**: %d/%d (%.0f%%)\n",
				strength.Pillar, strength.Passed, strength.Total, strength.Percent)
		}
	}

	if len(document.Highlights.Opportunities) > 0 {
		builder.WriteString("\n## Top opportunities\n\n")
		for _, opportunity := range document.Highlights.Opportunities {
			fmt.Fprintf(&builder, "- **%s** (%s, level %d): %s\n",
				opportunity.Title, opportunity.Pillar, opportunity.Level, opportunity.Why)
		}
	}

	if len(document.ActionItems) > 0 {
		builder.WriteString("\n## Action items\n\n")
		for itemIndex, actionItem := range document.ActionItems {
			fmt.Fprintf(&builder, "%d. **%s** (%s): %s\n",
				itemIndex+1, actionItem.Title, actionItem.Pillar, actionItem.Remediation)
		}
	}

	builder.WriteString("\n## Maturity levels\n\n")
	builder.WriteString("| Level | Name | Passed | Total | Pass rate |\n")
	builder.WriteString("| --- | --- | --- | --- | --- |\n")
	for _, levelScore := range document.Scores.Levels {
		fmt.Fprintf(&builder, "| %d | %s | %d | %d | %.0f%% |\n",
			levelScore.Level, levelScore.Name, levelScore.Passed, levelScore.Total, levelScore.Percent)
	}

	builder.WriteString("\n## Pillars\n\n")
	builder.WriteString("| Pillar | Passed | Total | Pass rate |\n")
	builder.WriteString("| --- | --- | --- | --- |\n")
	for _, pillarScore := range document.Scores.Pillars {
		fmt.Fprintf(&builder, "| %s | %d | %d | %.0f%% |\n",
			pillarScore.Pillar, pillarScore.Passed, pillarScore.Total, pillarScore.Percent)
	}

	if len(document.Meta.Applications) > 0 {
		builder.WriteString("\n## Applications discovered\n\n")
		for _, application := range document.Meta.Applications {
			line := fmt.Sprintf("- `%s` (%s)", application.Path, application.Kind)
			if application.Name != "" {
				line += ": " + application.Name
			}
			builder.WriteString(line + "\n")
		}
	}

	builder.WriteString("\n## Detailed criteria\n")
	grouped := criteriaByPillar(document.Criteria)
	for _, pillar := range document.Framework.Pillars {
		pillarResults := grouped[pillar.Name]
		if len(pillarResults) == 0 {
			continue
		}
		fmt.Fprintf(&builder, "\n### %s\n\n", pillar.Name)
		for _, result := range pillarResults {
			fmt.Fprintf(&builder, "- %s **%s** (L%d): %s\n",
				statusIcon(result.Status), result.Title, result.Level, result.Reason)
			if result.Status == criteria.PassStatus {
				continue
			}
			if result.Why != "" {
				fmt.Fprintf(&builder, "  - Why: %s\n", result.Why)
			}
			if result.Status == criteria.FailStatus && result.Remediation != "" {
				fmt.Fprintf(&builder, "  - Recommendation: %s\n", result.Remediation)
			}
			for _, unitResult := range result.UnitResults {
				if len(unitResult.Evidence) > 0 {
					fmt.Fprintf(&builder, "  - Evidence (%s): %s\n",
						unitResult.Unit, strings.Join(unitResult.Evidence, ", "))
				}
			}
		}
	}

	return builder.String()
}

func levelNameByNumber(document Document, level int) string {
	for _, definition := range document.Framework.Levels {
		if definition.Level == level {
			return definition.Name
		}
	}
	return ""
}
