// Package classify maps credential file names to their role. Classification
// is purely name based and never inspects file contents: a file named like a
// private key is treated as one, matching how the SSH ecosystem itself keys
// behavior off naming convention.
package classify

import "strings"

// Category is the inferred role of a file in a credential directory.
type Category string

const (
	PrivateKey     Category = "private_key"
	PublicKey      Category = "public_key"
	AuthorizedKeys Category = "authorized_keys"
	ClientConfig   Category = "client_config"
	KnownHosts     Category = "known_hosts"
	Unclassified   Category = "unclassified"
)

const pubSuffix = ".pub"

// keyPrefixes covers the id_* family names ssh-keygen produces by default.
var keyPrefixes = []string{
	"id_rsa",
	"id_dsa",
	"id_ecdsa_sk",
	"id_ecdsa",
	"id_ed25519_sk",
	"id_ed25519",
}

// Classify returns the category for a file name. It is total: every name
// maps to exactly one category, with Unclassified as the catch-all. Rules
// apply in order, first match wins.
func Classify(name string) Category {
	switch {
	case isKeyName(name) && !strings.HasSuffix(name, pubSuffix):
		return PrivateKey
	case strings.HasSuffix(name, pubSuffix):
		return PublicKey
	case strings.HasPrefix(name, "authorized_keys"):
		return AuthorizedKeys
	case strings.HasPrefix(name, "config"):
		return ClientConfig
	case name == "known_hosts" || strings.HasPrefix(name, "known_hosts."):
		return KnownHosts
	default:
		return Unclassified
	}
}

// Private reports whether files of this category carry secret or otherwise
// sensitive input that must never be group- or other-accessible.
func (c Category) Private() bool {
	switch c {
	case PrivateKey, AuthorizedKeys, ClientConfig:
		return true
	default:
		return false
	}
}

func isKeyName(name string) bool {
	for _, p := range keyPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}
