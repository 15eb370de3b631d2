// Package update checks the project's release feed for a newer passmgr.
//
// The check only runs when the user asks for it (`passmgr update`); nothing
// in the vault path touches the network.
package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	perrors "github.com/PolarWolf314/passmgr/internal/errors"

	"github.com/Masterminds/semver/v3"
	"github.com/hashicorp/go-retryablehttp"
)

// DefaultBaseURL is the GitHub REST API root.
const DefaultBaseURL = "https://api.github.com"

// Release is the subset of the GitHub release payload passmgr reads.
type Release struct {
	TagName     string `json:"tag_name"`
	HTMLURL     string `json:"html_url"`
	PublishedAt string `json:"published_at"`
}

// Result describes the outcome of a check.
type Result struct {
	Current         string
	Latest          string
	URL             string
	PublishedAt     string
	UpdateAvailable bool
}

// Checker queries the latest release of Owner/Repo.
type Checker struct {
	BaseURL string
	Owner   string
	Repo    string

	client *retryablehttp.Client
}

// NewChecker returns a checker against the public GitHub API with a short
// timeout and a couple of retries for transient failures.
func NewChecker(owner, repo string) *Checker {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.RetryWaitMin = 200 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = 10 * time.Second
	client.Logger = nil

	return &Checker{
		BaseURL: DefaultBaseURL,
		Owner:   owner,
		Repo:    repo,
		client:  client,
	}
}

// Latest fetches the most recent published release.
func (c *Checker) Latest(ctx context.Context) (*Release, error) {
	if c.Owner == "" || c.Repo == "" {
		return nil, fmt.Errorf("%w: release repository is not configured", perrors.ErrUpdateCheckFailed)
	}

	apiURL := fmt.Sprintf("%s/repos/%s/%s/releases/latest", strings.TrimRight(c.BaseURL, "/"), c.Owner, c.Repo)

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perrors.ErrUpdateCheckFailed, err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "passmgr")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", perrors.ErrUpdateCheckFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s returned %s", perrors.ErrUpdateCheckFailed, apiURL, resp.Status)
	}

	var release Release
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("%w: decoding release: %v", perrors.ErrUpdateCheckFailed, err)
	}
	if release.TagName == "" {
		return nil, fmt.Errorf("%w: release has no tag", perrors.ErrUpdateCheckFailed)
	}
	return &release, nil
}

// Check compares current against the latest release.
//
// Both versions must be semantic versions; a leading "v" is accepted.
func (c *Checker) Check(ctx context.Context, current string) (*Result, error) {
	currentVersion, err := semver.NewVersion(current)
	if err != nil {
		return nil, fmt.Errorf("%w: running version %q is not a release build", perrors.ErrUpdateCheckFailed, current)
	}

	release, err := c.Latest(ctx)
	if err != nil {
		return nil, err
	}

	latestVersion, err := semver.NewVersion(release.TagName)
	if err != nil {
		return nil, fmt.Errorf("%w: release tag %q is not a version", perrors.ErrUpdateCheckFailed, release.TagName)
	}

	result := &Result{
		Current:         currentVersion.String(),
		Latest:          latestVersion.String(),
		URL:             release.HTMLURL,
		UpdateAvailable: latestVersion.GreaterThan(currentVersion),
	}
	if published, err := time.Parse(time.RFC3339, release.PublishedAt); err == nil {
		result.PublishedAt = published.UTC().Format("2006-01-02")
	}
	return result, nil
}
