package main

import (
	"fmt"
	"slices"
	"sort"

	"github.com/Masterminds/semver/v3"
)

// latestRelease returns the most recently released entry. Releases are
// ordered by released-at timestamp; entries released at the same instant
// are ordered by comparing their tags as semantic versions, so the result
// does not depend on the order the API returned them in. If either tied
// tag does not parse as a version, input order decides (the sort is
// stable).
func latestRelease(releases []Release) (Release, error) {
	if len(releases) == 0 {
		return Release{}, fmt.Errorf("project has no releases")
	}

	sorted := slices.Clone(releases)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !a.ReleasedAt.Equal(b.ReleasedAt) {
			return a.ReleasedAt.Before(b.ReleasedAt)
		}
		va, errA := semver.NewVersion(a.TagName)
		vb, errB := semver.NewVersion(b.TagName)
		if errA != nil || errB != nil {
			return false
		}
		return va.LessThan(vb)
	})
	return sorted[len(sorted)-1], nil
}

// releaseByTag returns the release with the given tag name.
func releaseByTag(releases []Release, tag string) (Release, error) {
	for _, rel := range releases {
		if rel.TagName == tag {
			return rel, nil
		}
	}
	return Release{}, fmt.Errorf("no release tagged %s", tag)
}

// selectAsset returns the first asset link of the release that satisfies
// match. `want` names what was looked for and ends up in the error.
func selectAsset(rel Release, want string, match func(AssetLink) bool) (AssetLink, error) {
	for _, link := range rel.Assets.Links {
		if match(link) {
			return link, nil
		}
	}
	return AssetLink{}, &AssetNotFoundError{Tag: rel.TagName, Want: want}
}
