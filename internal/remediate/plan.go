package remediate

import (
	"time"

	"github.com/readix/readix/internal/scoring"
)

const (
	// CreateIfMissingAction is the only file action the scaffolder performs.
	CreateIfMissingAction = "create_if_missing"

	// PlannedStatus marks an operation that has not been applied.
	PlannedStatus = "planned"
	// CreatedStatus marks a file written by apply mode.
	CreatedStatus = "created"
	// SkippedExistsStatus marks a file left untouched because it exists.
	SkippedExistsStatus = "skipped_exists"
	// SkippedMissingTemplateStatus marks an operation whose template is
	// absent from the embedded set.
	SkippedMissingTemplateStatus = "skipped_missing_template"

	// PlanMode and ApplyMode name the two remediation modes.
	PlanMode  = "plan"
	ApplyMode = "apply"
)

// FileOp is one scaffolding operation in a remediation plan.
type FileOp struct {
	Path     string `json:"path"`
	Action   string `json:"action"`
	Template string `json:"template"`
	Reason   string `json:"reason"`
	Status   string `json:"status"`
	Note     string `json:"note"`
}

// PlanItem groups the operations and manual steps for one criterion.
type PlanItem struct {
	CriterionID  string   `json:"criterion_id"`
	Title        string   `json:"title"`
	AutoScaffold bool     `json:"auto_scaffold"`
	Description  string   `json:"description"`
	FileOps      []FileOp `json:"file_ops"`
	ManualSteps  []string `json:"manual_steps"`
}

// Plan is the full remediation plan for one assessment run.
type Plan struct {
	Mode           string               `json:"mode"`
	GeneratedAt    time.Time            `json:"generated_at"`
	RepositoryName string               `json:"repository_name"`
	RepositoryPath string               `json:"repository_path"`
	RunID          string               `json:"run_id"`
	RunDirectory   string               `json:"run_directory"`
	LevelAchieved  int                  `json:"level_achieved"`
	Overall        scoring.OverallScore `json:"overall"`
	BlockingLevel  int                  `json:"blocking_level"`
	TargetLevel    int                  `json:"target_level"`
	Items          []PlanItem           `json:"items"`
}
