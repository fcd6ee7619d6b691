package workspace

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
)

const sshDirName = ".ssh"

// DefaultSSHDir resolves the invoking user's canonical SSH directory.
// The directory itself is not created here; the convergence engine owns
// creation so a dry run can preview it.
func DefaultSSHDir() (string, error) {
	home, err := effectiveHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, sshDirName), nil
}

// effectiveHomeDir returns the home directory of the real (non-root) user.
// Under sudo, os.UserHomeDir() returns /root; this resolves SUDO_USER
// instead so the tool fixes the user's keys, not root's.
func effectiveHomeDir() (string, error) {
	if name := os.Getenv("SUDO_USER"); name != "" {
		if u, err := user.Lookup(name); err == nil {
			return u.HomeDir, nil
		}
	}
	if u, err := user.Current(); err == nil {
		return u.HomeDir, nil
	}
	return os.UserHomeDir()
}
