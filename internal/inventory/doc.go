// Package inventory discovers the application units inside a repository by
// walking the tree for dependency manifests, and loads the optional
// .readix.yaml assessment configuration committed to the scanned repository.
package inventory
