package syncer

import "errors"

// Precondition failures. No mutation has happened when these are returned.
var (
	ErrNotARepository   = errors.New("not inside a git repository")
	ErrNoUpstreamRemote = errors.New("upstream remote is not configured")
	ErrMergeInProgress  = errors.New("a merge is already in progress; resolve or abort it first")
	ErrDirtyWorkingTree = errors.New("working tree has uncommitted changes")
)

var (
	// ErrRemoteUnreachable wraps a failed fetch.
	ErrRemoteUnreachable = errors.New("could not fetch upstream remote")

	// ErrUnresolvedConflicts means at least one conflicted path had no
	// strategy or failed extraction. The merge is left open for manual
	// continuation; it is never auto-aborted.
	ErrUnresolvedConflicts = errors.New("conflicts require manual resolution")

	// ErrPatternNotFound is an expected per-path outcome, not a crash: the
	// path falls back to manual resolution with its conflict markers intact.
	ErrPatternNotFound = errors.New("pattern not found")

	// ErrNoStrategy marks a path the strategy table does not cover.
	ErrNoStrategy = errors.New("no resolution strategy for path")
)

// manualOutcome reports whether err is an expected fall-back to manual
// resolution rather than a write failure.
func manualOutcome(err error) bool {
	return errors.Is(err, ErrNoStrategy) || errors.Is(err, ErrPatternNotFound)
}
