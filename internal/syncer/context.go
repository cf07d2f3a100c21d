package syncer

// Status is the final outcome of one sync run.
type Status int

const (
	// StatusUpToDate means no pending upstream commits; nothing was touched.
	StatusUpToDate Status = iota
	// StatusCancelled means the operator declined the merge confirmation.
	StatusCancelled
	// StatusClean means the automatic merge succeeded without conflicts.
	StatusClean
	// StatusResolved means every conflict was resolved by a strategy and the
	// merge was committed.
	StatusResolved
	// StatusManual means at least one path is left conflicted for a human.
	StatusManual
)

// Context carries the state of one sync run through every stage. It is
// created at run start and discarded at exit; tests can build one, run a
// single stage, and assert on the result.
type Context struct {
	Branch      string
	Remote      string
	UpstreamRef string

	Pending    int
	Conflicted []string
	Resolved   []string
	Manual     []string

	// Commit range covered by the merge, captured around the merge attempt.
	RangeStart string
	RangeEnd   string

	Status Status
}
