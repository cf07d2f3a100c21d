package git

import (
	"strconv"
	"strings"
)

func (repo *Repo) Fetch(remote string) error {
	_, err := repo.run("fetch", remote)
	return err
}

// AheadCount reports how many commits ref carries that HEAD does not.
func (repo *Repo) AheadCount(ref string) (int, error) {
	output, err := repo.run("rev-list", "--count", "HEAD.."+ref)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(strings.TrimSpace(output))
}

// ShortLog returns up to n one-line summaries of the newest commits on ref
// that are not yet on HEAD.
func (repo *Repo) ShortLog(ref string, n int) ([]string, error) {
	output, err := repo.run("log", "--oneline", "-n", strconv.Itoa(n), "HEAD.."+ref)
	if err != nil {
		return nil, err
	}

	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
