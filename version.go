package main

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/AsaiYusuke/jsonpath"
	"github.com/Masterminds/semver/v3"
)

// ListTags queries the release API and extracts the tag names with a
// JSONPath expression, preserving the API's order.
func (c *releaseClient) ListTags(ctx context.Context, project string) ([]string, error) {
	body, err := c.get(ctx, c.releasesURL(project))
	if err != nil {
		return nil, err
	}

	var src any
	if err := json.Unmarshal(body, &src); err != nil {
		return nil, fmt.Errorf("unmarshal response body: %w", err)
	}

	results, err := jsonpath.Retrieve("$[*].tag_name", src)
	if err != nil {
		return nil, fmt.Errorf("retrieve tag names: %w", err)
	}

	var tags []string
	for _, result := range results {
		tag, ok := result.(string)
		if !ok || tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	return tags, nil
}

// filterTags returns the tags satisfying the given constraints expression,
// newest first. Tags that do not parse as semantic versions are dropped.
// An empty or "latest" expression matches everything.
func filterTags(tags []string, constraint string) ([]string, error) {
	if constraint == "" || constraint == "latest" {
		constraint = "*"
	}
	constraints, err := semver.NewConstraint(constraint)
	if err != nil {
		return nil, fmt.Errorf("parse constraint: %w", err)
	}

	type tagged struct {
		tag     string
		version *semver.Version
	}
	matched := make([]tagged, 0, len(tags))
	for _, tag := range tags {
		v, err := semver.NewVersion(strings.TrimPrefix(tag, "v"))
		if err != nil {
			continue
		}
		if !constraints.Check(v) {
			continue
		}
		matched = append(matched, tagged{tag: tag, version: v})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[j].version.LessThan(matched[i].version)
	})

	result := make([]string, 0, len(matched))
	for _, m := range matched {
		result = append(result, m.tag)
	}
	return result, nil
}
