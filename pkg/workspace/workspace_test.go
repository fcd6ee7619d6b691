package workspace

import (
	"path/filepath"
	"testing"
)

func TestDefaultSSHDir(t *testing.T) {
	t.Setenv("SUDO_USER", "")

	dir, err := DefaultSSHDir()
	if err != nil {
		t.Fatalf("DefaultSSHDir: %v", err)
	}
	if filepath.Base(dir) != ".ssh" {
		t.Fatalf("DefaultSSHDir = %q, want a path ending in .ssh", dir)
	}
	if !filepath.IsAbs(dir) {
		t.Fatalf("DefaultSSHDir = %q, want absolute path", dir)
	}
}
