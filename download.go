package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// downloadAsset retrieves the release asset into the given directory and
// returns the local path. The file is named after the asset, not the URL
// path, since object storage URLs do not always end in the filename.
func downloadAsset(ctx context.Context, client *http.Client, link AssetLink, dir string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link.downloadURL(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", link.Name, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: %d - %s", link.Name, resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	file, err := os.Create(filepath.Join(dir, link.Name))
	if err != nil {
		return "", fmt.Errorf("create output file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	if _, err := io.Copy(file, resp.Body); err != nil {
		return "", fmt.Errorf("write output file: %w", err)
	}

	return file.Name(), nil
}
