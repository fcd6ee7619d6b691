package platform

import "testing"

func TestDetectWithWSLMarker(t *testing.T) {
	for _, key := range wslEnvMarkers {
		t.Run(key, func(t *testing.T) {
			clearWSLMarkers(t)
			t.Setenv(key, "Ubuntu-24.04")
			if !Detect().OwnershipUnreliable() {
				t.Fatalf("Detect() with %s set: OwnershipUnreliable = false, want true", key)
			}
		})
	}
}

func TestKernelLooksWSL(t *testing.T) {
	cases := []struct {
		version string
		want    bool
	}{
		{"5.15.167.4-microsoft-standard-WSL2", true},
		{"4.4.0-19041-Microsoft", true},
		{"6.8.0-45-generic", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := kernelLooksWSL(tc.version); got != tc.want {
			t.Errorf("kernelLooksWSL(%q) = %v, want %v", tc.version, got, tc.want)
		}
	}
}

func TestFixed(t *testing.T) {
	if Fixed(true).OwnershipUnreliable() != true || Fixed(false).OwnershipUnreliable() != false {
		t.Fatal("Fixed probe does not report its configured answer")
	}
}

func clearWSLMarkers(t *testing.T) {
	t.Helper()
	for _, key := range wslEnvMarkers {
		t.Setenv(key, "")
	}
}
