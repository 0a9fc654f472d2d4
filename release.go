package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/AsaiYusuke/jsonpath"
)

// Release is one entry of the project's release list as returned by the
// GitLab v4 API. Releases are fetched fresh on every run and never
// persisted.
type Release struct {
	TagName    string    `json:"tag_name"`
	ReleasedAt time.Time `json:"released_at"`
	Assets     struct {
		Links []AssetLink `json:"links"`
	} `json:"assets"`
}

// AssetLink is a named, URL-addressable file attached to a release.
type AssetLink struct {
	Name           string `json:"name"`
	URL            string `json:"url"`
	DirectAssetURL string `json:"direct_asset_url"`
}

// downloadURL prefers the direct asset URL, which resolves straight to the
// provider's object storage, over the permalink.
func (l AssetLink) downloadURL() string {
	if l.DirectAssetURL != "" {
		return l.DirectAssetURL
	}
	return l.URL
}

type releaseClient struct {
	base   string
	client *http.Client
}

func newReleaseClient(base string) *releaseClient {
	return &releaseClient{
		base:   strings.TrimSuffix(base, "/"),
		client: newHTTPClient(),
	}
}

// releasesURL builds the v4 releases endpoint for the project. The project
// identifier is a namespaced path and must travel as one encoded segment.
func (c *releaseClient) releasesURL(project string) string {
	return fmt.Sprintf("%s/api/v4/projects/%s/releases", c.base, encodePathSegment(project))
}

// CheckReachable probes the releases endpoint with a header-only request
// and requires a 200. On any other status it issues a single follow-up GET
// to recover the API's error message for the diagnostic, since a HEAD
// response carries no payload.
func (c *releaseClient) CheckReachable(ctx context.Context, project string) error {
	url := c.releasesURL(project)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return &ReleaseFetchError{URL: url, Err: err}
	}
	_ = resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}
	return &ReleaseFetchError{
		URL:     url,
		Status:  resp.StatusCode,
		Message: c.fetchErrorMessage(ctx, url),
	}
}

// FetchReleases retrieves the project's release list as received, one GET,
// no pagination, no retries.
func (c *releaseClient) FetchReleases(ctx context.Context, project string) ([]Release, error) {
	body, err := c.get(ctx, c.releasesURL(project))
	if err != nil {
		return nil, err
	}

	var releases []Release
	if err := json.Unmarshal(body, &releases); err != nil {
		return nil, fmt.Errorf("unmarshal release list: %w", err)
	}
	return releases, nil
}

// FetchChecksumManifest locates the asset link named exactly `name` within
// the release and returns the manifest's text content.
func (c *releaseClient) FetchChecksumManifest(ctx context.Context, rel Release, name string) (string, error) {
	asset, err := selectAsset(rel, name, func(l AssetLink) bool { return l.Name == name })
	if err != nil {
		return "", &ManifestNotFoundError{Tag: rel.TagName, Name: name}
	}

	body, err := c.get(ctx, asset.downloadURL())
	if err != nil {
		return "", fmt.Errorf("download checksum manifest: %w", err)
	}
	return string(body), nil
}

func (c *releaseClient) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ReleaseFetchError{URL: url, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &ReleaseFetchError{
			URL:     url,
			Status:  resp.StatusCode,
			Message: apiErrorMessage(body),
		}
	}
	return body, nil
}

func (c *releaseClient) fetchErrorMessage(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return ""
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return ""
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return ""
	}
	return apiErrorMessage(body)
}

// apiErrorMessage extracts the `message` field from a GitLab error payload,
// e.g. {"message":"404 Project Not Found"}. Returns "" if the body is not
// JSON or carries no string message.
func apiErrorMessage(body []byte) string {
	var src any
	if err := json.Unmarshal(body, &src); err != nil {
		return ""
	}
	results, err := jsonpath.Retrieve("$.message", src)
	if err != nil || len(results) == 0 {
		return ""
	}
	msg, _ := results[0].(string)
	return msg
}
