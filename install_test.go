package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInstallBinary(t *testing.T) {
	srcDir := t.TempDir()
	dstDir := t.TempDir()

	src := filepath.Join(srcDir, "fldctl")
	if err := os.WriteFile(src, []byte("v2"), 0o644); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(dstDir, "fldctl")

	t.Run("fresh install", func(t *testing.T) {
		if err := installBinary(src, dst); err != nil {
			t.Fatalf("installBinary() failed: %v", err)
		}

		data, err := os.ReadFile(dst)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "v2" {
			t.Errorf("installed content = %q, want %q", data, "v2")
		}

		info, err := os.Stat(dst)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0o755 {
			t.Errorf("installed mode = %v, want 0755", info.Mode().Perm())
		}
	})

	t.Run("replace existing", func(t *testing.T) {
		if err := os.WriteFile(dst, []byte("v1"), 0o755); err != nil {
			t.Fatal(err)
		}

		if err := installBinary(src, dst); err != nil {
			t.Fatalf("installBinary() failed: %v", err)
		}

		data, err := os.ReadFile(dst)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "v2" {
			t.Errorf("installed content = %q, want %q", data, "v2")
		}

		// no staging leftovers
		entries, err := os.ReadDir(dstDir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 || entries[0].Name() != "fldctl" {
			t.Errorf("destination dir entries = %v, want just the binary", entries)
		}
	})

	t.Run("missing source", func(t *testing.T) {
		if err := installBinary(filepath.Join(srcDir, "nope"), dst); err == nil {
			t.Error("installBinary() succeeded unexpectedly")
		}
	})
}
