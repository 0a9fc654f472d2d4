package main

import (
	"os"
	"os/exec"
	"runtime"
	"slices"
)

// preflight verifies the environment before any network traffic: the
// destination must be writable, the operating system supported, and all
// required external tools present.
func preflight(cfg Config) error {
	if err := checkDestWritable(cfg.InstallDir); err != nil {
		return err
	}
	if err := checkOSSupported(runtime.GOOS, cfg.SupportedOS); err != nil {
		return err
	}
	if err := checkToolsAvailable(cfg.RequiredTools...); err != nil {
		return err
	}
	return nil
}

// checkDestWritable probes the directory by creating and removing a
// throwaway file, which also covers mount options and ACLs that a
// permission-bit check would miss.
func checkDestWritable(dir string) error {
	probe, err := os.CreateTemp(dir, ".glinstall-probe-*")
	if err != nil {
		return &ConfigError{Dir: dir, Err: err}
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	return nil
}

func checkOSSupported(goos string, supported []string) error {
	if slices.Contains(supported, goos) {
		return nil
	}
	return &UnsupportedPlatformError{OS: goos, Supported: supported}
}

// checkToolsAvailable looks up every named executable on the search path
// and reports all missing ones together, not just the first.
func checkToolsAvailable(names ...string) error {
	var missing []string
	for _, name := range names {
		if _, err := exec.LookPath(name); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return &MissingDependencyError{Tools: missing}
	}
	return nil
}
