// Package releasecheck compares the running build against the latest
// GitHub release.
package releasecheck

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/mod/semver"
)

const (
	defaultBaseURL = "https://api.github.com"
	defaultRepo    = "abhisek/fitcheck"
	defaultTimeout = 10 * time.Second
)

// ErrNoRelease is returned when the repository has no published release.
var ErrNoRelease = errors.New("no published release")

// Result describes how the current build relates to the latest release.
type Result struct {
	CurrentVersion string
	LatestVersion  string
	URL            string

	// Comparable is false for development builds and other versions that
	// are not valid semver. UpdateAvailable is always false then.
	Comparable      bool
	UpdateAvailable bool
}

// Checker queries the GitHub releases API.
type Checker struct {
	client  *http.Client
	baseURL string
	repo    string
}

// Option configures a Checker.
type Option func(*Checker)

// WithBaseURL points the checker at a different API root.
func WithBaseURL(u string) Option {
	return func(c *Checker) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithRepo sets the owner/name repository.
func WithRepo(repo string) Option {
	return func(c *Checker) { c.repo = repo }
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Checker) { c.client.Timeout = d }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Checker) { c.client = hc }
}

// NewChecker creates a Checker for the fitcheck repository on github.com.
func NewChecker(opts ...Option) *Checker {
	c := &Checker{
		client:  &http.Client{Timeout: defaultTimeout},
		baseURL: defaultBaseURL,
		repo:    defaultRepo,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release and compares it with current.
func (c *Checker) Check(ctx context.Context, current string) (*Result, error) {
	rel, err := c.latest(ctx)
	if err != nil {
		return nil, err
	}

	res := &Result{
		CurrentVersion: current,
		LatestVersion:  rel.TagName,
		URL:            rel.HTMLURL,
	}

	cur, latest := canonical(current), canonical(rel.TagName)
	if cur == "" || latest == "" {
		return res, nil
	}
	res.Comparable = true
	res.UpdateAvailable = semver.Compare(cur, latest) < 0
	return res, nil
}

func (c *Checker) latest(ctx context.Context) (*releaseResponse, error) {
	url := fmt.Sprintf("%s/repos/%s/releases/latest", c.baseURL, c.repo)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch latest release: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, ErrNoRelease
	default:
		return nil, fmt.Errorf("fetch latest release: HTTP %d", resp.StatusCode)
	}

	var rel releaseResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&rel); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}
	if rel.TagName == "" {
		return nil, ErrNoRelease
	}
	return &rel, nil
}

// canonical returns the semver form of v ("1.2" becomes "v1.2.0") or ""
// when v is not a release version.
func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}
