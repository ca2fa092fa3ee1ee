package releases

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/bpybuild/manage/internal/versions"
)

const githubAPIBase = "https://api.github.com"

// tag is one entry of the GitHub tags listing.
type tag struct {
	Name string `json:"name"`
}

// Client fetches Blender release tags.
type Client struct {
	repo       string // "owner/repo", e.g. "blender/blender"
	cacheDir   string // directory for the on-disk tag cache
	httpClient *http.Client
	apiBase    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

// WithAPIBase overrides the GitHub API base URL (useful for testing).
func WithAPIBase(base string) Option {
	return func(cl *Client) {
		cl.apiBase = base
	}
}

// NewClient creates a Client for the given repository, caching under cacheDir.
func NewClient(repo, cacheDir string, opts ...Option) *Client {
	c := &Client{
		repo:       repo,
		cacheDir:   cacheDir,
		httpClient: http.DefaultClient,
		apiBase:    githubAPIBase,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// List returns release versions, newest first, without the "v" prefix.
// A fresh cache is served directly; otherwise the API is queried and the
// cache refreshed. If the query fails and a stale cache exists, the stale
// list is returned.
func (c *Client) List() ([]string, error) {
	cache, err := LoadCache(c.cacheDir)
	if err == nil && !IsCacheStale(cache, DefaultCacheMaxAge) {
		return cache.Versions, nil
	}

	fetched, fetchErr := c.fetch()
	if fetchErr != nil {
		if cache != nil {
			return cache.Versions, nil
		}
		return nil, fetchErr
	}

	_ = SaveCache(c.cacheDir, &TagCache{Versions: fetched, CheckedAt: time.Now()})
	return fetched, nil
}

// fetch queries the GitHub tags API and returns release versions sorted
// newest first. Tags that do not parse as versions (release candidates use
// plain tags like "v3.5.1", but the repo also carries historic oddities)
// are skipped.
func (c *Client) fetch() ([]string, error) {
	url := fmt.Sprintf("%s/repos/%s/tags?per_page=100", c.apiBase, c.repo)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "bpybuild-manage")

	// Support optional GitHub token for higher rate limits.
	if token := os.Getenv("GITHUB_TOKEN"); token != "" {
		req.Header.Set("Authorization", "token "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching tags: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return nil, fmt.Errorf("GitHub API rate limit exceeded. Set GITHUB_TOKEN for higher limits")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	var tags []tag
	if err := json.Unmarshal(body, &tags); err != nil {
		return nil, fmt.Errorf("parsing tags JSON: %w", err)
	}

	var vers []string
	for _, t := range tags {
		name := strings.TrimPrefix(t.Name, "v")
		if _, err := versions.ParseBlender(name); err != nil {
			continue
		}
		vers = append(vers, name)
	}

	sort.SliceStable(vers, func(i, j int) bool {
		cmp, err := versions.Compare(vers[i], vers[j])
		if err != nil {
			return false
		}
		return cmp > 0
	})
	return vers, nil
}
