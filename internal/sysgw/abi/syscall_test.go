package abi

import "testing"

func TestNumberKnownPlatforms(t *testing.T) {
	tests := []struct {
		goos, goarch string
		sc           Syscall
		want         int64
	}{
		{"linux", "amd64", WRITE, 1},
		{"linux", "amd64", SOCKET, 41},
		{"linux", "arm64", WRITE, 64},
		{"linux", "arm64", ACCEPT, 242},
		{"darwin", "amd64", SOCKET, 97},
		{"darwin", "arm64", SOCKET, 97},
	}
	for _, tt := range tests {
		got, err := Number(tt.goos, tt.goarch, tt.sc)
		if err != nil {
			t.Fatalf("%s/%s %s: %v", tt.goos, tt.goarch, tt.sc, err)
		}
		if got != tt.want {
			t.Errorf("%s/%s %s = %d, want %d", tt.goos, tt.goarch, tt.sc, got, tt.want)
		}
	}
}

func TestNumberUnsupportedPlatform(t *testing.T) {
	if _, err := Number("plan9", "amd64", READ); err == nil {
		t.Fatalf("expected error for unsupported platform")
	}
}

func TestReverseIsInverseOfTable(t *testing.T) {
	for _, sc := range All {
		n, err := Number("linux", "amd64", sc)
		if err != nil {
			t.Fatalf("Number(%s): %v", sc, err)
		}
		rev, err := Reverse("linux", "amd64")
		if err != nil {
			t.Fatalf("Reverse: %v", err)
		}
		got, ok := rev[n]
		if !ok || got != sc {
			t.Errorf("Reverse()[%d] = %v, %v; want %v, true", n, got, ok, sc)
		}
	}
}
