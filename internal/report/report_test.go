package report_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/readix/readix/internal/catalog"
	"github.com/readix/readix/internal/criteria"
	"github.com/readix/readix/internal/inventory"
	"github.com/readix/readix/internal/report"
	"github.com/readix/readix/internal/repometa"
)

func fixtureResults() []criteria.Result {
	results := make([]criteria.Result, 0, len(catalog.Criteria()))
	for index, criterion := range catalog.Criteria() {
		status := criteria.PassStatus
		reason := "Detected."
		if criterion.Level >= 3 {
			status = criteria.FailStatus
			reason = "Not detected."
		}
		if index%11 == 0 {
			status = criteria.SkipStatus
			reason = "Skipped."
		}
		results = append(results, criteria.Result{
			ID:          criterion.ID,
			Title:       criterion.Title,
			Pillar:      criterion.Pillar,
			Level:       criterion.Level,
			Scope:       criterion.Scope,
			Weight:      criterion.Weight,
			Status:      status,
			Reason:      reason,
			Why:         criterion.Why,
			Remediation: criterion.Remediation,
			UnitResults: []criteria.UnitResult{{Unit: "repo", Status: status, Reason: reason, Evidence: []string{"README.md"}}},
		})
	}
	return results
}

func fixtureDocument() report.Document {
	return report.Build(report.BuildInputs{
		RunID:       "20260831T120000Z-ab12cd34",
		GeneratedAt: time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		OrgName:     "Acme",
		Repository: repometa.Metadata{
			Name:          "billing-service",
			Description:   "Handles invoicing.",
			DefaultBranch: "main",
			CommitSHA:     "a1b2c3d4e5f60718293a4b5c6d7e8f9012345678",
		},
		Languages: []string{"Go", "Python"},
		Units: []inventory.Unit{
			{Path: ".", Kind: inventory.GoUnitKind, Name: "billing-service"},
			{Path: "tools/etl", Kind: inventory.PythonUnitKind, Name: "etl"},
		},
		Results: fixtureResults(),
	})
}

func TestBuildAssemblesEnvelope(testInstance *testing.T) {
	document := fixtureDocument()

	require.Equal(testInstance, report.FrameworkName, document.Framework.Name)
	require.Len(testInstance, document.Framework.Pillars, 8)
	require.Len(testInstance, document.Framework.Levels, 5)
	require.Len(testInstance, document.Scores.Levels, 5)
	require.Equal(testInstance, len(catalog.Criteria()), len(document.Criteria))
	require.NotEmpty(testInstance, document.Scores.NextLevelTarget)
	require.LessOrEqual(testInstance, len(document.Highlights.Strengths), 3)
	require.LessOrEqual(testInstance, len(document.Highlights.Opportunities), 3)
	require.Equal(testInstance, "Acme", document.Meta.OrgName)
}

func TestBuildFallsBackToRepositoryNameForOrg(testInstance *testing.T) {
	document := report.Build(report.BuildInputs{
		RunID:      "20260831T120000Z-ab12cd34",
		Repository: repometa.Metadata{Name: "billing-service"},
	})
	require.Equal(testInstance, "billing-service", document.Meta.OrgName)
}

func TestDocumentMarshalsRequiredKeys(testInstance *testing.T) {
	serialized, marshalError := json.Marshal(fixtureDocument())
	require.NoError(testInstance, marshalError)

	var decoded map[string]json.RawMessage
	require.NoError(testInstance, json.Unmarshal(serialized, &decoded))
	for _, requiredKey := range []string{"framework", "meta", "scores", "highlights", "action_items", "criteria"} {
		require.Contains(testInstance, decoded, requiredKey)
	}

	var decodedScores map[string]json.RawMessage
	require.NoError(testInstance, json.Unmarshal(decoded["scores"], &decodedScores))
	for _, requiredKey := range []string{"overall", "level_achieved", "blocking_level", "next_level_target", "levels", "pillars"} {
		require.Contains(testInstance, decodedScores, requiredKey)
	}
}

func TestRenderMarkdownStructure(testInstance *testing.T) {
	markdown := report.RenderMarkdown(fixtureDocument())

	require.True(testInstance, strings.HasPrefix(markdown, "# Acme – Agent Readiness Report"))
	require.Contains(testInstance, markdown, "- Repository: `billing-service`")
	require.Contains(testInstance, markdown, "- Commit: `a1b2c3d4e5f6`")
	require.Contains(testInstance, markdown, "## Executive summary")
	require.Contains(testInstance, markdown, "## Maturity levels")
	require.Contains(testInstance, markdown, "## Pillars")
	require.Contains(testInstance, markdown, "## Applications discovered")
	require.Contains(testInstance, markdown, "## Detailed criteria")
	require.Contains(testInstance, markdown, "✗")
	require.Contains(testInstance, markdown, "- Recommendation: ")
	require.Contains(testInstance, markdown, "`tools/etl` (python): etl")
}

func TestRenderHTMLStructure(testInstance *testing.T) {
	html, renderError := report.RenderHTML(fixtureDocument())
	require.NoError(testInstance, renderError)

	require.Contains(testInstance, html, "<!DOCTYPE html>")
	require.Contains(testInstance, html, "Acme – Agent Readiness Report")
	require.Contains(testInstance, html, "donut-value")
	require.Contains(testInstance, html, "radar-shape")
	require.Contains(testInstance, html, "Pillar radar")
	require.Contains(testInstance, html, "How to read this")
	require.Greater(testInstance, len(html), 2000)
}
