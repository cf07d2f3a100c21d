package syncer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfeng/zensync/internal/git"
)

// guardResponses covers the precondition stage for a clean repo on main.
func guardResponses() map[string][]string {
	return map[string][]string{
		"rev-parse --is-inside-work-tree": {"true\n"},
		"remote":                          {"origin\nupstream\n"},
		"status --porcelain":              {""},
		"rev-parse --abbrev-ref HEAD":     {"main\n"},
	}
}

// writeIdentityFiles lays down a working tree that satisfies every fork
// invariant.
func writeIdentityFiles(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		PatchModule:      "import logging\n",
		ServerEntryPoint: "import martin_patches\n",
		"pyproject.toml": "[project]\nname = \"martin-zen-mcp-server\"\nversion = \"9.8.2\"\n",
		"config.py":      "__version__ = \"9.8.2\"\n__updated__ = \"2025-08-29\"\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func newTestSyncer(t *testing.T, fake *fakeGit, opts Options) *Syncer {
	t.Helper()
	dir := t.TempDir()
	writeIdentityFiles(t, dir)
	return New(git.NewWithRunner(dir, fake), opts)
}

func TestRunUpToDateIsNoOp(t *testing.T) {
	responses := guardResponses()
	responses["fetch upstream"] = []string{""}
	responses["rev-list --count HEAD..upstream/main"] = []string{"0\n"}
	fake := &fakeGit{responses: responses}

	s := newTestSyncer(t, fake, Options{AssumeYes: true})
	ctx, err := s.Run()

	require.NoError(t, err)
	assert.Equal(t, StatusUpToDate, ctx.Status)
	for _, call := range fake.calls {
		assert.False(t, strings.HasPrefix(call, "merge"), "unexpected mutation: %s", call)
		assert.False(t, strings.HasPrefix(call, "add"), "unexpected mutation: %s", call)
		assert.False(t, strings.HasPrefix(call, "commit"), "unexpected mutation: %s", call)
	}
}

func TestRunDeclinedConfirmationCancels(t *testing.T) {
	responses := guardResponses()
	responses["fetch upstream"] = []string{""}
	responses["rev-list --count HEAD..upstream/main"] = []string{"3\n"}
	responses["log --oneline -n 5 HEAD..upstream/main"] = []string{"abc1234 bump version\n"}
	fake := &fakeGit{responses: responses}

	declined := func(pending int, shortLog []string) (bool, error) {
		assert.Equal(t, 3, pending)
		assert.Equal(t, []string{"abc1234 bump version"}, shortLog)
		return false, nil
	}
	s := newTestSyncer(t, fake, Options{Confirm: declined})
	ctx, err := s.Run()

	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, ctx.Status)
	assert.False(t, fake.called("merge --no-edit upstream/main"))
}

func TestRunCleanMerge(t *testing.T) {
	responses := guardResponses()
	responses["fetch upstream"] = []string{""}
	responses["rev-list --count HEAD..upstream/main"] = []string{"2\n"}
	responses["rev-parse --short HEAD"] = []string{"abc1234\n", "def5678\n"}
	responses["merge --no-edit upstream/main"] = []string{"Merge made by the 'ort' strategy.\n"}
	fake := &fakeGit{responses: responses}

	s := newTestSyncer(t, fake, Options{AssumeYes: true})
	ctx, err := s.Run()

	require.NoError(t, err)
	assert.Equal(t, StatusClean, ctx.Status)
	assert.Equal(t, "abc1234", ctx.RangeStart)
	assert.Equal(t, "def5678", ctx.RangeEnd)
}

func TestRunChangelogConflictAutoResolved(t *testing.T) {
	responses := guardResponses()
	responses["fetch upstream"] = []string{""}
	responses["rev-list --count HEAD..upstream/main"] = []string{"1\n"}
	responses["rev-parse --short HEAD"] = []string{"abc1234\n", "def5678\n"}
	responses["diff --name-only --diff-filter=U"] = []string{"CHANGELOG.md\n"}
	responses["checkout --theirs -- CHANGELOG.md"] = []string{""}
	responses["add -- CHANGELOG.md"] = []string{""}
	responses["commit --no-edit"] = []string{""}
	fake := &fakeGit{
		responses: responses,
		errs:      map[string]error{"merge --no-edit upstream/main": errors.New("exit status 1")},
	}

	s := newTestSyncer(t, fake, Options{AssumeYes: true})
	ctx, err := s.Run()

	require.NoError(t, err)
	assert.Equal(t, StatusResolved, ctx.Status)
	assert.Equal(t, []string{"CHANGELOG.md"}, ctx.Resolved)
	assert.Empty(t, ctx.Manual)
	assert.True(t, fake.called("commit --no-edit"))
}

func TestRunUnknownConflictLeavesMergeOpen(t *testing.T) {
	responses := guardResponses()
	responses["fetch upstream"] = []string{""}
	responses["rev-list --count HEAD..upstream/main"] = []string{"1\n"}
	responses["rev-parse --short HEAD"] = []string{"abc1234\n"}
	responses["diff --name-only --diff-filter=U"] = []string{"providers/openai.py\n"}
	fake := &fakeGit{
		responses: responses,
		errs:      map[string]error{"merge --no-edit upstream/main": errors.New("exit status 1")},
	}

	s := newTestSyncer(t, fake, Options{AssumeYes: true})
	ctx, err := s.Run()

	assert.ErrorIs(t, err, ErrUnresolvedConflicts)
	assert.Equal(t, StatusManual, ctx.Status)
	assert.Equal(t, []string{"providers/openai.py"}, ctx.Manual)
	assert.False(t, fake.called("commit --no-edit"))
}

func TestRunWriteFailureAbortsResolution(t *testing.T) {
	responses := guardResponses()
	responses["fetch upstream"] = []string{""}
	responses["rev-list --count HEAD..upstream/main"] = []string{"1\n"}
	responses["rev-parse --short HEAD"] = []string{"abc1234\n"}
	responses["diff --name-only --diff-filter=U"] = []string{"CHANGELOG.md\nscripts/bump.py\n"}
	responses["checkout --theirs -- CHANGELOG.md"] = []string{""}
	responses["add -- CHANGELOG.md"] = []string{""}
	stageErr := errors.New("exit status 128")
	fake := &fakeGit{
		responses: responses,
		errs: map[string]error{
			"merge --no-edit upstream/main":        errors.New("exit status 1"),
			"checkout --theirs -- scripts/bump.py": stageErr,
		},
	}

	s := newTestSyncer(t, fake, Options{AssumeYes: true})
	ctx, err := s.Run()

	assert.ErrorIs(t, err, stageErr)
	// Earlier paths stay staged; that partial progress is accepted.
	assert.Equal(t, []string{"CHANGELOG.md"}, ctx.Resolved)
	assert.False(t, fake.called("commit --no-edit"))
}

func TestGuardFailures(t *testing.T) {
	tests := []struct {
		name      string
		responses map[string][]string
		want      error
	}{
		{
			name:      "not a repository",
			responses: map[string][]string{},
			want:      ErrNotARepository,
		},
		{
			name: "remote missing",
			responses: map[string][]string{
				"rev-parse --is-inside-work-tree": {"true\n"},
				"remote":                          {"origin\n"},
			},
			want: ErrNoUpstreamRemote,
		},
		{
			name: "merge already open",
			responses: map[string][]string{
				"rev-parse --is-inside-work-tree":  {"true\n"},
				"remote":                           {"upstream\n"},
				"rev-parse -q --verify MERGE_HEAD": {"f00dcafe\n"},
			},
			want: ErrMergeInProgress,
		},
		{
			name: "dirty working tree",
			responses: map[string][]string{
				"rev-parse --is-inside-work-tree": {"true\n"},
				"remote":                          {"upstream\n"},
				"status --porcelain":              {" M server.py\n"},
			},
			want: ErrDirtyWorkingTree,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeGit{responses: tt.responses}
			s := New(git.NewWithRunner(t.TempDir(), fake), Options{AssumeYes: true})

			_, err := s.Run()
			assert.ErrorIs(t, err, tt.want)
			assert.False(t, fake.called("fetch upstream"), "guard must run before any network call")
		})
	}
}

func TestRunFetchFailure(t *testing.T) {
	responses := guardResponses()
	fetchErr := errors.New("could not resolve host")
	fake := &fakeGit{
		responses: responses,
		errs:      map[string]error{"fetch upstream": fetchErr},
	}

	s := newTestSyncer(t, fake, Options{AssumeYes: true})
	_, err := s.Run()
	assert.ErrorIs(t, err, ErrRemoteUnreachable)
}
