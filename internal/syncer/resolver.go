package syncer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/mfeng/zensync/internal/git"
)

// Resolver applies the strategy table to conflicted paths one at a time.
// Substitution strategies compute the full final content before touching the
// working tree, so a failed extraction leaves the path in its conflicted
// form rather than half-rewritten.
type Resolver struct {
	repo        *git.Repo
	upstreamRef string
}

func NewResolver(repo *git.Repo, upstreamRef string) *Resolver {
	return &Resolver{repo: repo, upstreamRef: upstreamRef}
}

// Resolve applies the matched strategy to path and stages the result.
// A Manual match or ErrPatternNotFound is reported through the returned
// error; callers treat those as expected outcomes, anything else as a write
// failure that aborts the run.
func (r *Resolver) Resolve(path string) error {
	rule := Match(path)
	log.Debug("dispatching conflict", "path", path, "strategy", rule.Strategy.String())

	switch rule.Strategy {
	case KeepOurs:
		if err := r.repo.CheckoutOurs(path); err != nil {
			return err
		}
	case KeepTheirs:
		if err := r.repo.CheckoutTheirs(path); err != nil {
			return err
		}
	case ManifestIdentity:
		content, err := r.manifestIdentity(path)
		if err != nil {
			return err
		}
		if err := r.write(path, content); err != nil {
			return err
		}
	case VersionModule:
		content, err := r.versionModule(path)
		if err != nil {
			return err
		}
		if err := r.write(path, content); err != nil {
			return err
		}
	case ReadmeBadge:
		content, err := r.readmeBadge(path)
		if err != nil {
			return err
		}
		if err := r.write(path, content); err != nil {
			return err
		}
	case TestFixture:
		content, err := r.testFixture(path)
		if err != nil {
			return err
		}
		if err := r.write(path, content); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%s: %w", path, ErrNoStrategy)
	}

	return r.repo.Stage(path)
}

// manifestIdentity keeps our manifest, splices in upstream's version field
// and forces the package name back to the fork's.
func (r *Resolver) manifestIdentity(path string) (string, error) {
	ours, err := r.repo.Ours(path)
	if err != nil {
		return "", err
	}
	upstream, err := r.repo.Show(r.upstreamRef, path)
	if err != nil {
		return "", err
	}

	version, err := extractToken(upstream, manifestVersionPattern)
	if err != nil {
		return "", fmt.Errorf("%s: upstream version: %w", path, err)
	}

	content, err := substituteToken(ours, manifestVersionPattern, version)
	if err != nil {
		return "", fmt.Errorf("%s: fork version field: %w", path, err)
	}
	content, err = substituteToken(content, manifestNamePattern, ForkPackageName)
	if err != nil {
		return "", fmt.Errorf("%s: fork name field: %w", path, err)
	}
	return content, nil
}

// versionModule keeps our version module and adopts upstream's version and
// update-date values.
func (r *Resolver) versionModule(path string) (string, error) {
	ours, err := r.repo.Ours(path)
	if err != nil {
		return "", err
	}
	upstream, err := r.repo.Show(r.upstreamRef, path)
	if err != nil {
		return "", err
	}

	version, err := extractToken(upstream, moduleVersionPattern)
	if err != nil {
		return "", fmt.Errorf("%s: upstream version: %w", path, err)
	}
	updated, err := extractToken(upstream, moduleUpdatedPattern)
	if err != nil {
		return "", fmt.Errorf("%s: upstream update date: %w", path, err)
	}

	content, err := substituteToken(ours, moduleVersionPattern, version)
	if err != nil {
		return "", fmt.Errorf("%s: fork version field: %w", path, err)
	}
	content, err = substituteToken(content, moduleUpdatedPattern, updated)
	if err != nil {
		return "", fmt.Errorf("%s: fork update-date field: %w", path, err)
	}
	return content, nil
}

// readmeBadge keeps our readme and rewrites every version badge substring to
// upstream's current version, taken from the upstream manifest.
func (r *Resolver) readmeBadge(path string) (string, error) {
	ours, err := r.repo.Ours(path)
	if err != nil {
		return "", err
	}
	manifest, err := r.repo.Show(r.upstreamRef, "pyproject.toml")
	if err != nil {
		return "", err
	}

	version, err := extractToken(manifest, manifestVersionPattern)
	if err != nil {
		return "", fmt.Errorf("%s: upstream version: %w", path, err)
	}
	return badgePattern.ReplaceAllString(ours, "v"+version), nil
}

// testFixture adopts upstream's test content, substituting the upstream
// package name with the fork's so identity assertions keep passing.
func (r *Resolver) testFixture(path string) (string, error) {
	theirs, err := r.repo.Theirs(path)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(theirs, UpstreamPackageName, ForkPackageName), nil
}

func (r *Resolver) write(path, content string) error {
	return os.WriteFile(filepath.Join(r.repo.WorkDir, path), []byte(content), 0o644)
}
