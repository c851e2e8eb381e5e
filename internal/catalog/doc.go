// Package catalog defines the readiness rubric: the pillars, the maturity
// levels, and the graded criteria the evaluation engine scores against.
// The rubric is data; evaluation behavior lives with the engine.
package catalog
