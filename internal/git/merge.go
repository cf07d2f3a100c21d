package git

import "strings"

// Merge runs a single automatic merge of ref into the current branch with an
// auto-generated commit message. A conflicted merge is not an error: the
// unmerged paths are returned and the merge is left in progress. Any other
// merge failure is returned as-is.
func (repo *Repo) Merge(ref string) ([]string, error) {
	_, mergeErr := repo.run("merge", "--no-edit", ref)
	if mergeErr == nil {
		return nil, nil
	}

	paths, err := repo.UnmergedPaths()
	if err != nil || len(paths) == 0 {
		return nil, mergeErr
	}
	return paths, nil
}

func (repo *Repo) UnmergedPaths() ([]string, error) {
	output, err := repo.run("diff", "--name-only", "--diff-filter=U")
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			paths = append(paths, line)
		}
	}
	return paths, nil
}

func (repo *Repo) CheckoutOurs(path string) error {
	_, err := repo.run("checkout", "--ours", "--", path)
	return err
}

func (repo *Repo) CheckoutTheirs(path string) error {
	_, err := repo.run("checkout", "--theirs", "--", path)
	return err
}

// Show returns the content of path at rev. rev may be a branch ref like
// "upstream/main" or an index stage like ":2".
func (repo *Repo) Show(rev, path string) (string, error) {
	return repo.run("show", rev+":"+path)
}

// Ours and Theirs read the two competing index stages of a conflicted path.
func (repo *Repo) Ours(path string) (string, error) {
	return repo.Show(":2", path)
}

func (repo *Repo) Theirs(path string) (string, error) {
	return repo.Show(":3", path)
}

func (repo *Repo) Stage(path string) error {
	_, err := repo.run("add", "--", path)
	return err
}

// CommitMerge concludes an in-progress merge using the message git prepared.
func (repo *Repo) CommitMerge() error {
	_, err := repo.run("commit", "--no-edit")
	return err
}
