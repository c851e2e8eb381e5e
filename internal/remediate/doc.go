// Package remediate turns a readiness assessment into a remediation plan
// and, in apply mode, scaffolds the missing repository hygiene files. Apply
// mode only creates files that do not exist; it never overwrites.
package remediate
