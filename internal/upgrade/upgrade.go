// Package upgrade replaces the running bowerbridge binary with a newer
// GitHub release.
//
// The release repository defaults to DefaultRepository and can be pointed
// at a fork or mirror with the updateRepo config key.
package upgrade

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/creativeprojects/go-selfupdate"
)

// DefaultRepository is the "owner/name" slug bowerbridge releases come from.
const DefaultRepository = "sungur/bowerbridge"

// Release is a published version newer than the running one.
type Release struct {
	Version string
	Notes   string
	release *selfupdate.Release
}

// Updater checks one repository for releases and applies them.
type Updater struct {
	repository string
	slug       selfupdate.RepositorySlug
	updater    *selfupdate.Updater
}

// ParseRepository splits an "owner/name" slug.
func ParseRepository(repository string) (owner, name string, err error) {
	owner, name, ok := strings.Cut(strings.TrimSpace(repository), "/")
	if !ok || owner == "" || name == "" || strings.Contains(name, "/") {
		return "", "", fmt.Errorf("invalid release repository %q: want owner/name", repository)
	}
	return owner, name, nil
}

// New creates an Updater for repository ("" = DefaultRepository).
func New(repository string) (*Updater, error) {
	if repository == "" {
		repository = DefaultRepository
	}
	owner, name, err := ParseRepository(repository)
	if err != nil {
		return nil, err
	}

	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("failed to create GitHub source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("failed to create updater: %w", err)
	}

	return &Updater{
		repository: owner + "/" + name,
		slug:       selfupdate.NewRepositorySlug(owner, name),
		updater:    updater,
	}, nil
}

// Repository returns the "owner/name" slug being checked.
func (u *Updater) Repository() string {
	return u.repository
}

// Latest returns the newest release when it is newer than current, or nil.
func (u *Updater) Latest(ctx context.Context, current string) (*Release, error) {
	latest, found, err := u.updater.DetectLatest(ctx, u.slug)
	if err != nil {
		return nil, fmt.Errorf("failed to detect latest version of %s: %w", u.repository, err)
	}
	if !found || !Outdated(current, latest.GreaterThan) {
		return nil, nil
	}
	return &Release{
		Version: latest.Version(),
		Notes:   latest.ReleaseNotes,
		release: latest,
	}, nil
}

// Apply replaces the running executable with rel.
func (u *Updater) Apply(ctx context.Context, rel *Release) error {
	if err := checkRelease(rel); err != nil {
		return err
	}
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to determine executable path: %w", err)
	}
	if err := u.updater.UpdateTo(ctx, rel.release, exe); err != nil {
		return fmt.Errorf("failed to apply update: %w", err)
	}
	return nil
}

var errNoRelease = errors.New("no release to apply")

func checkRelease(rel *Release) error {
	if rel == nil || rel.release == nil {
		return errNoRelease
	}
	return nil
}

// Outdated reports whether current should be replaced. Development builds
// ("dev" or empty) always are; newerThan compares against the release.
func Outdated(current string, newerThan func(string) bool) bool {
	current = strings.TrimPrefix(current, "v")
	if current == "" || current == "dev" {
		return true
	}
	return newerThan(current)
}

// BuildInfo is the version metadata stamped in at build time.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// String renders the --version banner, e.g.
// "bowerbridge 1.2.0 (0123456, built 2026-01-02) linux/amd64".
func (b BuildInfo) String() string {
	var details []string
	if b.Commit != "" {
		details = append(details, b.shortCommit())
	}
	if b.Date != "" {
		details = append(details, "built "+b.Date)
	}

	s := "bowerbridge " + b.Version
	if len(details) > 0 {
		s += " (" + strings.Join(details, ", ") + ")"
	}
	return s + " " + runtime.GOOS + "/" + runtime.GOARCH
}

func (b BuildInfo) shortCommit() string {
	if len(b.Commit) > 7 {
		return b.Commit[:7]
	}
	return b.Commit
}
