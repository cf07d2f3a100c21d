package syncer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// InvariantRule is a post-merge check: path must exist, and if Substring is
// set, must contain it. Hard rules demand the operator's attention; soft
// rules are advisory. Neither fails the process once the merge is committed.
type InvariantRule struct {
	Path      string
	Substring string
	Hard      bool
	Detail    string
}

var invariants = []InvariantRule{
	{Path: PatchModule, Hard: true,
		Detail: "the runtime patch module must survive every merge"},
	{Path: ServerEntryPoint, Substring: PatchImport, Hard: true,
		Detail: "the server entry point must still load the patch module"},
	{Path: "pyproject.toml", Substring: `name = "` + ForkPackageName + `"`,
		Detail: "the manifest must keep the fork's package name"},
	{Path: "config.py", Substring: "__version__",
		Detail: "the version module must keep its version field"},
}

// InvariantFailure pairs a failed rule with what went wrong.
type InvariantFailure struct {
	Rule   InvariantRule
	Reason string
}

// Verify checks every fork-identity invariant against the working tree at
// root. It reports failures but never returns an error: by the time it runs
// the merge is already committed, so the findings are warnings.
func Verify(root string) []InvariantFailure {
	var failures []InvariantFailure
	for _, rule := range invariants {
		content, err := os.ReadFile(filepath.Join(root, rule.Path))
		if err != nil {
			failures = append(failures, InvariantFailure{rule, fmt.Sprintf("%s is missing", rule.Path)})
			continue
		}
		if rule.Substring != "" && !strings.Contains(string(content), rule.Substring) {
			failures = append(failures, InvariantFailure{rule, fmt.Sprintf("%s does not contain %q", rule.Path, rule.Substring)})
		}
	}
	return failures
}

// LogFailures writes each failure at a severity matching its rule and
// returns the number of hard failures.
func LogFailures(failures []InvariantFailure) int {
	hard := 0
	for _, f := range failures {
		if f.Rule.Hard {
			hard++
			log.Error("fork invariant violated", "reason", f.Reason, "detail", f.Rule.Detail)
		} else {
			log.Warn("fork invariant weakened", "reason", f.Reason, "detail", f.Rule.Detail)
		}
	}
	return hard
}
