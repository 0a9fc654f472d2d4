package main

import "fmt"

// archLabel maps a Go architecture string to the uname-style label used in
// released artifact names.
func archLabel(goarch string) string {
	switch goarch {
	case "amd64":
		return "x86_64"
	case "386":
		return "i386"
	case "arm64":
		return "aarch64"
	case "arm":
		return "armv7"
	}
	return goarch
}

// artifactName composes the archive filename suffix for the given OS family
// and Go architecture, e.g. ("Linux", "amd64") -> "Linux_x86_64.tar.gz".
// Release assets are matched by containing this string.
func artifactName(osFamily string, goarch string) string {
	return fmt.Sprintf("%s_%s.tar.gz", osFamily, archLabel(goarch))
}
