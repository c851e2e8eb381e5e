// Package report assembles the readiness document produced by an assessment
// and renders it as JSON-ready structs, Markdown, and a standalone HTML page.
package report
