package syncer

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/mfeng/zensync/internal/git"
)

// shortLogLimit caps how many pending commits are shown before confirmation.
const shortLogLimit = 5

// ConfirmFunc asks the operator to approve the merge. It receives the
// pending commit count and the short log of the newest pending commits.
type ConfirmFunc func(pending int, shortLog []string) (bool, error)

// Options configure one sync run.
type Options struct {
	// Remote is the upstream remote name. Defaults to "upstream".
	Remote string
	// Branch is the upstream branch to merge. Defaults to "main".
	Branch string
	// Confirm gates the merge. Nil or AssumeYes skips the prompt.
	Confirm   ConfirmFunc
	AssumeYes bool
}

// Syncer drives one reconciliation run against the upstream remote. Stages
// run strictly in sequence; each path is resolved and staged before the next
// is considered, so a failure part-way leaves earlier paths staged (an
// accepted partial-progress state, never rolled back).
type Syncer struct {
	repo *git.Repo
	opts Options
}

func New(repo *git.Repo, opts Options) *Syncer {
	if opts.Remote == "" {
		opts.Remote = "upstream"
	}
	if opts.Branch == "" {
		opts.Branch = "main"
	}
	return &Syncer{repo: repo, opts: opts}
}

// Run executes the full sync: guard, fetch, confirm, merge, resolve, commit,
// verify. The returned Context always reflects how far the run got, even
// when err is non-nil.
func (s *Syncer) Run() (*Context, error) {
	ctx := &Context{
		Remote:      s.opts.Remote,
		UpstreamRef: s.opts.Remote + "/" + s.opts.Branch,
	}

	if err := s.guard(); err != nil {
		return ctx, err
	}

	branch, err := s.repo.CurrentBranch()
	if err != nil {
		return ctx, err
	}
	ctx.Branch = branch

	log.Info("fetching upstream", "remote", ctx.Remote)
	if err := s.repo.Fetch(ctx.Remote); err != nil {
		return ctx, fmt.Errorf("%w: %v", ErrRemoteUnreachable, err)
	}

	pending, err := s.repo.AheadCount(ctx.UpstreamRef)
	if err != nil {
		return ctx, err
	}
	ctx.Pending = pending
	if pending == 0 {
		ctx.Status = StatusUpToDate
		return ctx, nil
	}

	ok, err := s.confirm(ctx)
	if err != nil {
		return ctx, err
	}
	if !ok {
		ctx.Status = StatusCancelled
		return ctx, nil
	}

	ctx.RangeStart, err = s.repo.Head()
	if err != nil {
		return ctx, err
	}

	log.Info("merging", "ref", ctx.UpstreamRef, "pending", pending)
	conflicts, err := s.repo.Merge(ctx.UpstreamRef)
	if err != nil {
		return ctx, err
	}
	ctx.Conflicted = conflicts

	if len(conflicts) == 0 {
		ctx.Status = StatusClean
		return ctx, s.finish(ctx)
	}

	if err := s.resolve(ctx); err != nil {
		return ctx, err
	}
	if len(ctx.Manual) > 0 {
		// The merge stays open with conflict markers intact so the operator
		// can continue or abort it.
		ctx.Status = StatusManual
		return ctx, ErrUnresolvedConflicts
	}

	if err := s.repo.CommitMerge(); err != nil {
		return ctx, err
	}
	ctx.Status = StatusResolved
	return ctx, s.finish(ctx)
}

// guard verifies every precondition before any network or mutating call.
func (s *Syncer) guard() error {
	if !s.repo.IsRepository() {
		return ErrNotARepository
	}
	if !s.repo.HasRemote(s.opts.Remote) {
		return fmt.Errorf("%w: %q", ErrNoUpstreamRemote, s.opts.Remote)
	}
	if s.repo.MergeInProgress() {
		return ErrMergeInProgress
	}
	clean, err := s.repo.IsClean()
	if err != nil {
		return err
	}
	if !clean {
		return ErrDirtyWorkingTree
	}
	return nil
}

func (s *Syncer) confirm(ctx *Context) (bool, error) {
	if s.opts.AssumeYes || s.opts.Confirm == nil {
		return true, nil
	}
	shortLog, err := s.repo.ShortLog(ctx.UpstreamRef, shortLogLimit)
	if err != nil {
		return false, err
	}
	return s.opts.Confirm(ctx.Pending, shortLog)
}

// resolve walks the conflicted paths in order. Expected fall-backs (no
// strategy, pattern not found) mark the path manual and continue; a write
// failure aborts immediately, leaving earlier paths staged.
func (s *Syncer) resolve(ctx *Context) error {
	resolver := NewResolver(s.repo, ctx.UpstreamRef)
	for _, path := range ctx.Conflicted {
		err := resolver.Resolve(path)
		switch {
		case err == nil:
			log.Info("resolved", "path", path, "strategy", Match(path).Strategy.String())
			ctx.Resolved = append(ctx.Resolved, path)
		case manualOutcome(err):
			log.Warn("needs manual resolution", "path", path, "reason", err)
			ctx.Manual = append(ctx.Manual, path)
		default:
			return fmt.Errorf("resolving %s: %w", path, err)
		}
	}
	return nil
}

// finish records the merged range and runs the invariant verifier. The merge
// is already committed, so invariant findings are warnings, not failures.
func (s *Syncer) finish(ctx *Context) error {
	head, err := s.repo.Head()
	if err != nil {
		return err
	}
	ctx.RangeEnd = head

	failures := Verify(s.repo.WorkDir)
	if hard := LogFailures(failures); hard > 0 {
		log.Error("fork identity needs attention after this merge", "hard_failures", hard)
	}
	return nil
}
