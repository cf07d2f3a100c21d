package git

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a git command inside a directory and returns its stdout.
// The indirection lets tests substitute the git binary entirely.
type Runner interface {
	Run(dir string, args ...string) (string, error)
}

type execRunner struct{}

func (execRunner) Run(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		return stdout.String(), formatCommandError(args[0], err, stdout, stderr)
	}
	return stdout.String(), nil
}

func formatCommandError(operation string, err error, stdout, stderr bytes.Buffer) error {
	return fmt.Errorf("git %s failed: %v\nStdout: %s\nStderr: %s",
		operation, err, stdout.String(), stderr.String())
}

type Repo struct {
	WorkDir string

	runner Runner
}

func New(workDir string) *Repo {
	return &Repo{WorkDir: workDir, runner: execRunner{}}
}

// NewWithRunner builds a repo backed by a custom runner. Used by tests.
func NewWithRunner(workDir string, runner Runner) *Repo {
	return &Repo{WorkDir: workDir, runner: runner}
}

func (repo *Repo) run(args ...string) (string, error) {
	return repo.runner.Run(repo.WorkDir, args...)
}

func (repo *Repo) IsRepository() bool {
	output, err := repo.run("rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(output) == "true"
}

func (repo *Repo) HasRemote(name string) bool {
	output, err := repo.run("remote")
	if err != nil {
		return false
	}
	for _, remote := range strings.Fields(output) {
		if remote == name {
			return true
		}
	}
	return false
}

// MergeInProgress reports whether a previous merge is still open.
func (repo *Repo) MergeInProgress() bool {
	_, err := repo.run("rev-parse", "-q", "--verify", "MERGE_HEAD")
	return err == nil
}

func (repo *Repo) IsClean() (bool, error) {
	output, err := repo.run("status", "--porcelain")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(output) == "", nil
}

func (repo *Repo) CurrentBranch() (string, error) {
	output, err := repo.run("rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", fmt.Errorf("failed to get current branch: %w", err)
	}
	return strings.TrimSpace(output), nil
}

func (repo *Repo) Head() (string, error) {
	output, err := repo.run("rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(output), nil
}
