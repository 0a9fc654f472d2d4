package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// parseChecksumManifest parses the published manifest into a filename ->
// digest map. Each well-formed line holds two whitespace-delimited fields,
// digest first. Malformed lines are skipped, with a debug log so format
// violations stay diagnosable.
func parseChecksumManifest(text string) map[string]string {
	sums := make(map[string]string)
	for _, line := range strings.Split(text, "\n") {
		fields := strings.Fields(line)
		if len(fields) != 2 {
			if strings.TrimSpace(line) != "" {
				slog.Debug("skipping malformed checksum manifest line", "line", line)
			}
			continue
		}
		sums[fields[1]] = strings.ToLower(fields[0])
	}
	return sums
}

// verifyChecksum computes the file's SHA-256 digest and compares it, as
// lowercase hex, to the expected value. This must run before extraction;
// the orchestration never unpacks an unverified archive.
func verifyChecksum(expected string, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open file for verification: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	hash := sha256.New()
	if _, err := io.Copy(hash, file); err != nil {
		return fmt.Errorf("hash file: %w", err)
	}

	got := hex.EncodeToString(hash.Sum(nil))
	if got != strings.ToLower(expected) {
		return &ChecksumMismatchError{
			File:     filepath.Base(path),
			Expected: expected,
			Got:      got,
		}
	}
	return nil
}
