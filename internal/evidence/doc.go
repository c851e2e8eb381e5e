// Package evidence holds the filesystem probes the evaluation engine uses
// to find readiness signals. Probes are total: any I/O failure degrades to
// a negative result, reads are byte-capped, and recursive scans cap the
// number of files they visit.
package evidence
