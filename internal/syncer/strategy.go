package syncer

import (
	"path/filepath"
	"strings"
)

// Strategy names how a conflicted path gets resolved.
type Strategy int

const (
	// KeepOurs keeps the fork's revision verbatim.
	KeepOurs Strategy = iota
	// KeepTheirs keeps the upstream revision verbatim.
	KeepTheirs
	// ManifestIdentity keeps ours, then adopts upstream's version field and
	// restores the fork's package name.
	ManifestIdentity
	// VersionModule keeps ours, then adopts upstream's version and
	// update-date fields.
	VersionModule
	// ReadmeBadge keeps ours, then rewrites version badge substrings to
	// upstream's version.
	ReadmeBadge
	// TestFixture keeps theirs, then substitutes the upstream package name
	// with the fork's.
	TestFixture
	// Manual flags the path for human resolution.
	Manual
)

func (s Strategy) String() string {
	switch s {
	case KeepOurs:
		return "keep ours"
	case KeepTheirs:
		return "keep theirs"
	case ManifestIdentity:
		return "keep ours + upstream version + fork name"
	case VersionModule:
		return "keep ours + upstream version fields"
	case ReadmeBadge:
		return "keep ours + upstream badge version"
	case TestFixture:
		return "keep theirs + fork package name"
	default:
		return "manual"
	}
}

// Rule maps a path pattern to a resolution strategy. Pattern is either an
// exact repo-relative path or a single-segment glob per filepath.Match.
type Rule struct {
	Pattern  string
	Strategy Strategy
	Reason   string
}

// The strategy table. Order matters within each pattern class; exact rules
// always win over glob rules.
var rules = []Rule{
	{"pyproject.toml", ManifestIdentity, "adopt upstream's version bump, keep the fork's identity"},
	{"config.py", VersionModule, "adopt upstream's version and update date"},
	{"CHANGELOG.md", KeepTheirs, "upstream is authoritative for its own release notes"},
	{"README.md", ReadmeBadge, "fork keeps its narrative, badge shows upstream's version"},
	{"README-FORK.md", ReadmeBadge, "fork keeps its narrative, badge shows upstream's version"},
	{"run-server.sh", KeepTheirs, "upstream maintains this script"},
	{"run-server.ps1", KeepTheirs, "upstream maintains this script"},
	{"tests/*", TestFixture, "adopt upstream test logic, keep identity assertions"},
	{"scripts/*", KeepTheirs, "fork does not diverge in upstream scripts"},
}

func isGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// Match finds the resolution rule for a conflicted path. Exact filename rules
// beat glob rules; within each class the first match wins. Unmatched paths
// get the Manual strategy.
func Match(path string) Rule {
	for _, rule := range rules {
		if !isGlob(rule.Pattern) && rule.Pattern == path {
			return rule
		}
	}
	for _, rule := range rules {
		if !isGlob(rule.Pattern) {
			continue
		}
		if ok, err := filepath.Match(rule.Pattern, path); err == nil && ok {
			return rule
		}
	}
	return Rule{Pattern: path, Strategy: Manual, Reason: "unknown conflicts are never silently guessed"}
}
