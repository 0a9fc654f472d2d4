package main

import (
	"fmt"
	"net/http"
	"strings"
)

// Every failure mode of an installer run is terminal, but they are not all
// alike: each gets its own error type so callers and tests can tell them
// apart with errors.As and so diagnostics can carry the values that matter
// (expected vs got digests, the missing tool names, the API's own message).

// ConfigError indicates an unusable configuration value, currently always
// an install directory the invoking user cannot write to.
type ConfigError struct {
	Dir string
	Err error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf(
		"install directory %s is not writable: %v (run with elevated privileges or set GLINSTALL_INSTALL_DIR to a writable location)",
		e.Dir, e.Err,
	)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// UnsupportedPlatformError indicates the detected operating system is not in
// the supported set.
type UnsupportedPlatformError struct {
	OS        string
	Supported []string
}

func (e *UnsupportedPlatformError) Error() string {
	return fmt.Sprintf("operating system %q is not supported (supported: %s)", e.OS, strings.Join(e.Supported, ", "))
}

// MissingDependencyError lists all required external tools that could not be
// found on the search path.
type MissingDependencyError struct {
	Tools []string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("required tools not found on PATH: %s", strings.Join(e.Tools, ", "))
}

// ReleaseFetchError indicates the release API could not be reached or
// answered with a non-200 status. Message, when present, is the error
// message from the API's own payload.
type ReleaseFetchError struct {
	URL     string
	Status  int
	Message string
	Err     error
}

func (e *ReleaseFetchError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("release API unreachable: %v", e.Err)
	case e.Message != "":
		return fmt.Sprintf("release API returned %d - %s: %s", e.Status, http.StatusText(e.Status), e.Message)
	default:
		return fmt.Sprintf("release API returned %d - %s", e.Status, http.StatusText(e.Status))
	}
}

func (e *ReleaseFetchError) Unwrap() error { return e.Err }

// ManifestNotFoundError indicates a release carries no checksum manifest
// asset under the expected name.
type ManifestNotFoundError struct {
	Tag  string
	Name string
}

func (e *ManifestNotFoundError) Error() string {
	return fmt.Sprintf("release %s has no %s asset", e.Tag, e.Name)
}

// AssetNotFoundError indicates no asset link of a release matched the
// wanted name or pattern.
type AssetNotFoundError struct {
	Tag  string
	Want string
}

func (e *AssetNotFoundError) Error() string {
	return fmt.Sprintf("release %s has no asset matching %s", e.Tag, e.Want)
}

// ChecksumMismatchError reports both the digest the manifest promised and
// the one actually computed from the downloaded file.
type ChecksumMismatchError struct {
	File     string
	Expected string
	Got      string
}

func (e *ChecksumMismatchError) Error() string {
	return fmt.Sprintf("checksum mismatch for %s: expected %s, got %s", e.File, e.Expected, e.Got)
}
