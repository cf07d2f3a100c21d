package syncer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		path string
		want Strategy
	}{
		{"pyproject.toml", ManifestIdentity},
		{"config.py", VersionModule},
		{"CHANGELOG.md", KeepTheirs},
		{"README.md", ReadmeBadge},
		{"README-FORK.md", ReadmeBadge},
		{"run-server.sh", KeepTheirs},
		{"run-server.ps1", KeepTheirs},
		{"tests/test_server.py", TestFixture},
		{"scripts/bump_version.py", KeepTheirs},
		{"utils/helpers.py", Manual},
		{"providers/openai.py", Manual},
		// globs must not cross directory separators
		{"tests/fixtures/data.json", Manual},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Match(tt.path).Strategy)
		})
	}
}

func TestMatchExactBeatsGlob(t *testing.T) {
	// An exact rule for a path inside a glob-covered directory must win even
	// when the glob rule appears earlier in the table.
	saved := rules
	defer func() { rules = saved }()

	rules = []Rule{
		{"tests/*", TestFixture, ""},
		{"tests/test_identity.py", KeepOurs, ""},
	}

	assert.Equal(t, KeepOurs, Match("tests/test_identity.py").Strategy)
	assert.Equal(t, TestFixture, Match("tests/test_other.py").Strategy)
}
