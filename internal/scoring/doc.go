// Package scoring aggregates criterion results into pillar, level, and
// overall scores, and resolves the gated maturity level a repository has
// achieved.
package scoring
