package main

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
)

// acquireWorkspace creates the staging directory for one run and returns it
// together with its release func. Exactly one workspace exists per run; the
// caller defers the release immediately after acquisition so removal runs
// on every exit path. The release func is idempotent.
func acquireWorkspace() (string, func(), error) {
	dir, err := os.MkdirTemp("", "glinstall-*")
	if err != nil {
		return "", nil, fmt.Errorf("create workspace: %w", err)
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			if err := os.RemoveAll(dir); err != nil {
				slog.Error("failed to remove workspace", "dir", dir, "error", err)
			}
		})
	}
	return dir, release, nil
}
