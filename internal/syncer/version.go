package syncer

import (
	"fmt"
	"regexp"
)

// Line-anchored field patterns. Each must match exactly one single-line,
// fixed-format token; anything fancier belongs in a real parser, which these
// files do not need.
var (
	manifestVersionPattern = regexp.MustCompile(`(?m)^version = "([^"]+)"$`)
	manifestNamePattern    = regexp.MustCompile(`(?m)^name = "([^"]+)"$`)
	moduleVersionPattern   = regexp.MustCompile(`(?m)^__version__ = "([^"]+)"$`)
	moduleUpdatedPattern   = regexp.MustCompile(`(?m)^__updated__ = "([^"]+)"$`)
	badgePattern           = regexp.MustCompile(`v\d+\.\d+\.\d+`)
)

// extractToken pulls the captured field value out of content, typically a
// historical revision of a reference file.
func extractToken(content string, pattern *regexp.Regexp) (string, error) {
	match := pattern.FindStringSubmatch(content)
	if match == nil {
		return "", fmt.Errorf("%q: %w", pattern.String(), ErrPatternNotFound)
	}
	return match[1], nil
}

// substituteToken replaces only the captured field value in content, leaving
// the rest of the line and file untouched.
func substituteToken(content string, pattern *regexp.Regexp, token string) (string, error) {
	loc := pattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return "", fmt.Errorf("%q: %w", pattern.String(), ErrPatternNotFound)
	}
	return content[:loc[2]] + token + content[loc[3]:], nil
}
