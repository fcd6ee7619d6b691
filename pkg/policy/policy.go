// Package policy is the single source of truth for target permission modes
// in a credential directory. The table is compiled in and deliberately not
// user-configurable.
//
// Expected permission matrix:
//
//	Category          Mode   Rationale
//	────────────────  ────   ──────────────────────────────────────────────
//	private_key       0600   secret material, owner only
//	public_key        0644   carries no secret, conventionally world-readable
//	authorized_keys   0600   sensitive sshd input
//	client_config     0600   may reference keys, proxies, identities
//	known_hosts       0644   host-trust ledger, no secret
//	directory         0700   owner rwx only
//
// Note: some sshd configurations tolerate group-readable config and
// authorized_keys; this table keeps the stricter owner-only mode.
package policy

import (
	"io/fs"

	"github.com/sambigeara/sshtidy/pkg/classify"
)

const dirMode fs.FileMode = 0o700

var fileModes = map[classify.Category]fs.FileMode{
	classify.PrivateKey:     0o600,
	classify.PublicKey:      0o644,
	classify.AuthorizedKeys: 0o600,
	classify.ClientConfig:   0o600,
	classify.KnownHosts:     0o644,
}

// Mode returns the target mode for a category. ok is false for
// Unclassified, which has no target and is never modified.
func Mode(cat classify.Category) (mode fs.FileMode, ok bool) {
	mode, ok = fileModes[cat]
	return mode, ok
}

// DirMode returns the target mode for the credential directory itself.
func DirMode() fs.FileMode { return dirMode }
