package policy

import (
	"io/fs"
	"testing"

	"github.com/sambigeara/sshtidy/pkg/classify"
)

func TestModeCoverage(t *testing.T) {
	want := map[classify.Category]fs.FileMode{
		classify.PrivateKey:     0o600,
		classify.PublicKey:      0o644,
		classify.AuthorizedKeys: 0o600,
		classify.ClientConfig:   0o600,
		classify.KnownHosts:     0o644,
	}
	for cat, mode := range want {
		got, ok := Mode(cat)
		if !ok {
			t.Errorf("Mode(%s): no entry", cat)
			continue
		}
		if got != mode {
			t.Errorf("Mode(%s) = %04o, want %04o", cat, got, mode)
		}
	}
}

func TestUnclassifiedHasNoTarget(t *testing.T) {
	if mode, ok := Mode(classify.Unclassified); ok {
		t.Fatalf("Mode(unclassified) = %04o, want no entry", mode)
	}
}

func TestPrivateCategoriesExcludeGroupOther(t *testing.T) {
	for cat := range fileModes {
		mode, _ := Mode(cat)
		if cat.Private() && mode&0o077 != 0 {
			t.Errorf("%s target %04o leaks group/other bits", cat, mode)
		}
	}
	if DirMode()&0o077 != 0 {
		t.Errorf("dir target %04o leaks group/other bits", DirMode())
	}
}
