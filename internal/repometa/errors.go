package repometa

import "errors"

var errGitHistoryUnavailable = errors.New("git history unavailable")
