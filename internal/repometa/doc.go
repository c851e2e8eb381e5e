// Package repometa derives repository identity metadata from the working
// tree and its git history: repository name, default branch, head commit,
// description, and document change times.
package repometa
