package report

import (
	"fmt"
	"time"

	"github.com/readix/readix/internal/catalog"
	"github.com/readix/readix/internal/criteria"
	"github.com/readix/readix/internal/inventory"
	"github.com/readix/readix/internal/recommend"
	"github.com/readix/readix/internal/repometa"
	"github.com/readix/readix/internal/scoring"
)

const (
	// FrameworkName identifies the assessment framework in report output.
	FrameworkName = "READIX Agent Readiness"
	// FrameworkVersion tracks the criteria catalog revision.
	FrameworkVersion = "1.1.0"

	criteriaModeConstant     = "binary"
	skipHandlingConstant     = "skipped criteria excluded from denominators"
	levelProgressionConstant = "gated; passing a level unlocks the next level (80% threshold on the previous level)"

	topLevelConstant = 5
)

// ScoringPolicy documents how criterion verdicts turn into scores.
type ScoringPolicy struct {
	CriteriaMode     string `json:"criteria_mode"`
	SkipHandling     string `json:"skip_handling"`
	LevelProgression string `json:"level_progression"`
}

// Framework describes the assessment framework the document was produced by.
type Framework struct {
	Name    string                    `json:"name"`
	Version string                    `json:"version"`
	Pillars []catalog.Pillar          `json:"pillars"`
	Levels  []catalog.LevelDefinition `json:"levels"`
	Scoring ScoringPolicy             `json:"scoring"`
}

// Meta identifies the assessed repository and the assessment run.
type Meta struct {
	RunID                 string           `json:"run_id"`
	GeneratedAt           time.Time        `json:"generated_at"`
	OrgName               string           `json:"org_name"`
	RepositoryName        string           `json:"repository_name"`
	RepositoryDescription string           `json:"repository_description"`
	DefaultBranch         string           `json:"default_branch"`
	CommitSHA             string           `json:"commit_sha"`
	Languages             []string         `json:"languages"`
	Applications          []inventory.Unit `json:"applications"`
}

// Scores aggregates every score view of an assessment.
type Scores struct {
	Overall         scoring.OverallScore  `json:"overall"`
	LevelAchieved   int                   `json:"level_achieved"`
	BlockingLevel   int                   `json:"blocking_level"`
	NextLevelTarget string                `json:"next_level_target"`
	Levels          []scoring.LevelScore  `json:"levels"`
	Pillars         []scoring.PillarScore `json:"pillars"`
}

// Highlights carries the headline takeaways of an assessment.
type Highlights struct {
	Strengths     []scoring.PillarScore `json:"strengths"`
	Opportunities []criteria.Result     `json:"opportunities"`
}

// Document is the full readiness assessment envelope written to
// readiness.json.
type Document struct {
	Framework   Framework              `json:"framework"`
	Meta        Meta                   `json:"meta"`
	Scores      Scores                 `json:"scores"`
	Highlights  Highlights             `json:"highlights"`
	ActionItems []recommend.ActionItem `json:"action_items"`
	Criteria    []criteria.Result      `json:"criteria"`
}

// BuildInputs bundles everything needed to assemble a Document.
type BuildInputs struct {
	RunID       string
	GeneratedAt time.Time
	OrgName     string
	Repository  repometa.Metadata
	Languages   []string
	Units       []inventory.Unit
	Results     []criteria.Result
}

func pillarNames(pillars []catalog.Pillar) []string {
	names := make([]string, 0, len(pillars))
	for _, pillar := range pillars {
		names = append(names, pillar.Name)
	}
	return names
}

func nextLevelTarget(levelAchieved int) string {
	if levelAchieved >= topLevelConstant {
		return "Top level achieved."
	}
	return fmt.Sprintf(
		"Reach %.0f%% on level %d criteria to achieve level %d (%s).",
		scoring.ProgressionThresholdPercent(),
		levelAchieved,
		levelAchieved+1,
		catalog.LevelName(levelAchieved+1),
	)
}

// Build assembles the complete readiness document from evaluation results.
func Build(inputs BuildInputs) Document {
	pillars := catalog.Pillars()
	pillarScores := scoring.ComputePillarScores(inputs.Results, pillarNames(pillars))
	levelScores := scoring.ComputeLevelScores(inputs.Results, catalog.LevelName)
	levelAchieved := scoring.ComputeLevelAchieved(levelScores)
	blockingLevel, hasBlockingLevel := recommend.BlockingLevel(levelAchieved)
	if !hasBlockingLevel {
		blockingLevel = topLevelConstant
	}

	orgName := inputs.OrgName
	if orgName == "" {
		orgName = inputs.Repository.Name
	}

	return Document{
		Framework: Framework{
			Name:    FrameworkName,
			Version: FrameworkVersion,
			Pillars: pillars,
			Levels:  catalog.Levels(),
			Scoring: ScoringPolicy{
				CriteriaMode:     criteriaModeConstant,
				SkipHandling:     skipHandlingConstant,
				LevelProgression: levelProgressionConstant,
			},
		},
		Meta: Meta{
			RunID:                 inputs.RunID,
			GeneratedAt:           inputs.GeneratedAt.UTC(),
			OrgName:               orgName,
			RepositoryName:        inputs.Repository.Name,
			RepositoryDescription: inputs.Repository.Description,
			DefaultBranch:         inputs.Repository.DefaultBranch,
			CommitSHA:             inputs.Repository.CommitSHA,
			Languages:             inputs.Languages,
			Applications:          inputs.Units,
		},
		Scores: Scores{
			Overall:         scoring.ComputeOverallScore(inputs.Results),
			LevelAchieved:   levelAchieved,
			BlockingLevel:   blockingLevel,
			NextLevelTarget: nextLevelTarget(levelAchieved),
			Levels:          levelScores,
			Pillars:         pillarScores,
		},
		Highlights: Highlights{
			Strengths:     recommend.PickStrengths(pillarScores),
			Opportunities: recommend.PickOpportunities(inputs.Results),
		},
		ActionItems: recommend.PickActionItems(inputs.Results, levelAchieved),
		Criteria:    inputs.Results,
	}
}
