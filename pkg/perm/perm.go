// Package perm holds the mode-bit arithmetic and best-effort ownership
// handling shared by the convergence engine and the auditor.
//
// Ownership correction is advisory: on platforms where the invoking
// identity cannot chown (non-root runs, some network filesystems, WSL
// mounts), the failure is reported upward as a warning and never blocks
// mode correction.
package perm

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/user"
	"strconv"
	"syscall"

	"github.com/spf13/afero"
)

// Excess returns the group/other bits perm grants beyond target. A zero
// result means the file is at or below its policy exposure.
func Excess(perm, target fs.FileMode) fs.FileMode {
	return perm.Perm() &^ target.Perm() & 0o077
}

// GroupOther returns the group/other bits of perm.
func GroupOther(perm fs.FileMode) fs.FileMode {
	return perm.Perm() & 0o077
}

// Owner identifies the uid/gid that credential files should belong to.
type Owner struct {
	UID int
	GID int
}

// InvokingOwner resolves the owner to normalize toward. Under sudo the
// real user is resolved via SUDO_USER; otherwise the effective uid/gid of
// the process is used.
func InvokingOwner() (Owner, error) {
	if name := os.Getenv("SUDO_USER"); name != "" {
		u, err := user.Lookup(name)
		if err == nil {
			return ownerFromUser(u)
		}
	}
	return Owner{UID: os.Getuid(), GID: os.Getgid()}, nil
}

func ownerFromUser(u *user.User) (Owner, error) {
	uid, err := strconv.Atoi(u.Uid)
	if err != nil {
		return Owner{}, fmt.Errorf("parse uid %s: %w", u.Uid, err)
	}
	gid, err := strconv.Atoi(u.Gid)
	if err != nil {
		return Owner{}, fmt.Errorf("parse gid %s: %w", u.Gid, err)
	}
	return Owner{UID: uid, GID: gid}, nil
}

// Chown sets the owner of path through fsys. Callers downgrade failures to
// warnings; Denied distinguishes the expected permission refusals.
func Chown(fsys afero.Fs, path string, o Owner) error {
	if err := fsys.Chown(path, o.UID, o.GID); err != nil {
		return fmt.Errorf("chown %s: %w", path, err)
	}
	return nil
}

// Denied reports whether err is the platform refusing the operation
// outright, as opposed to a missing file or unsupported filesystem.
func Denied(err error) bool {
	return errors.Is(err, syscall.EPERM) || errors.Is(err, fs.ErrPermission)
}
