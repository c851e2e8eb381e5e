// Package validate checks that an assessment run directory carries complete,
// well-formed artifacts.
package validate
