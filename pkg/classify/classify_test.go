package classify

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		want Category
	}{
		{"id_rsa", PrivateKey},
		{"id_dsa", PrivateKey},
		{"id_ecdsa", PrivateKey},
		{"id_ed25519", PrivateKey},
		{"id_ed25519_sk", PrivateKey},
		{"id_rsa_old", PrivateKey},
		{"id_rsa.pub", PublicKey},
		{"id_ed25519.pub", PublicKey},
		{"anything.pub", PublicKey},
		{"authorized_keys", AuthorizedKeys},
		{"authorized_keys2", AuthorizedKeys},
		{"config", ClientConfig},
		{"config.d", ClientConfig},
		{"known_hosts", KnownHosts},
		{"known_hosts.old", KnownHosts},
		{"known_hostsfoo", Unclassified},
		{"agent.sock", Unclassified},
		{"environment", Unclassified},
		{"", Unclassified},
		{".hidden", Unclassified},
	}
	for _, tc := range cases {
		if got := Classify(tc.name); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.name, got, tc.want)
		}
	}
}

func TestPublicSuffixWinsOverKeyPrefix(t *testing.T) {
	// The private-key rule explicitly excludes .pub so a key pair never
	// collapses into one category.
	if got := Classify("id_ecdsa_sk.pub"); got != PublicKey {
		t.Fatalf("Classify(id_ecdsa_sk.pub) = %s, want %s", got, PublicKey)
	}
}

func TestPrivate(t *testing.T) {
	private := []Category{PrivateKey, AuthorizedKeys, ClientConfig}
	public := []Category{PublicKey, KnownHosts, Unclassified}
	for _, c := range private {
		if !c.Private() {
			t.Errorf("%s.Private() = false, want true", c)
		}
	}
	for _, c := range public {
		if c.Private() {
			t.Errorf("%s.Private() = true, want false", c)
		}
	}
}
