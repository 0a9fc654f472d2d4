package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// installBinary copies the extracted binary to its destination with mode
// `rwxr-xr-x`. The copy is staged as a hidden sibling and renamed into
// place, so an existing binary is replaced atomically rather than
// truncated while possibly running.
func installBinary(src string, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	staged := filepath.Join(filepath.Dir(dst), fmt.Sprintf(".%s.new", filepath.Base(dst)))
	out, err := os.OpenFile(staged, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o755)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(staged)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(staged)
		return err
	}

	if err := os.Rename(staged, dst); err != nil {
		_ = os.Remove(staged)
		return err
	}
	return nil
}
