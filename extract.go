package main

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// extractArchive unpacks a gzip-compressed tar archive into dir. Regular
// files and directories are materialized; other entry types are skipped.
// Entry names must stay local to dir.
func extractArchive(archive string, dir string) error {
	name := filepath.Base(archive)
	if !strings.HasSuffix(name, ".tar.gz") && !strings.HasSuffix(name, ".tgz") {
		return fmt.Errorf("unsupported archive: %s", name)
	}

	in, err := os.Open(archive)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	gzReader, err := gzip.NewReader(in)
	if err != nil {
		return fmt.Errorf("read gzip header: %w", err)
	}
	defer func() {
		_ = gzReader.Close()
	}()

	tarReader := tar.NewReader(gzReader)
	for {
		header, err := tarReader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read archive: %w", err)
		}

		if !filepath.IsLocal(header.Name) {
			return fmt.Errorf("archive entry escapes extraction directory: %s", header.Name)
		}
		dst := filepath.Join(dir, header.Name)

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(dst, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
				return err
			}
			if err := writeRegularFile(dst, tarReader, header.FileInfo().Mode()); err != nil {
				return err
			}
		default:
			slog.Debug("skipping archive entry", "name", header.Name, "type", header.Typeflag)
		}
	}
	return nil
}

func writeRegularFile(dst string, r io.Reader, mode os.FileMode) error {
	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	_, err = io.Copy(out, r)
	return err
}
