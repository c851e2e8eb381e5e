// Package assess runs a full readiness assessment: it discovers application
// units, evaluates the criteria catalog, scores the results, and writes the
// run artifacts to a timestamped run directory.
package assess
