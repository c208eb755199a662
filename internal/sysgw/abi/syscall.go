// Package abi supplies the symbolic syscall set the gateway recognizes
// and the per-platform numeric tables backing it. It mirrors
// the shape of tinyrange-cc's internal/linux/syscallnum.Number: a small
// symbolic enum resolved to a host-native number through an
// architecture-keyed map, so the gateway's dispatch logic never hardcodes a
// platform's numbering.
package abi

import "fmt"

// Syscall is the small fixed set of syscall numbers the gateway recognizes,
// keyed by symbolic name rather than raw number.
type Syscall int

const (
	READ Syscall = iota
	WRITE
	SOCKET
	BIND
	LISTEN
	ACCEPT
	CLOSE
)

func (s Syscall) String() string {
	switch s {
	case READ:
		return "READ"
	case WRITE:
		return "WRITE"
	case SOCKET:
		return "SOCKET"
	case BIND:
		return "BIND"
	case LISTEN:
		return "LISTEN"
	case ACCEPT:
		return "ACCEPT"
	case CLOSE:
		return "CLOSE"
	default:
		return fmt.Sprintf("Syscall(%d)", int(s))
	}
}

// All is every symbolic syscall the gateway's dispatch table knows about.
var All = []Syscall{READ, WRITE, SOCKET, BIND, LISTEN, ACCEPT, CLOSE}

// Number returns the host-native syscall number for sc on the given
// GOOS/GOARCH pair. Callers normally pass runtime.GOOS/runtime.GOARCH; the
// parameters are explicit so platform tables are testable without build
// tags forcing a specific GOOS.
func Number(goos, goarch string, sc Syscall) (int64, error) {
	table, err := Table(goos, goarch)
	if err != nil {
		return 0, err
	}
	n, ok := table[sc]
	if !ok {
		return 0, fmt.Errorf("abi: %s has no number on %s/%s", sc, goos, goarch)
	}
	return n, nil
}

// Table returns the full symbolic-to-numeric map for goos/goarch.
func Table(goos, goarch string) (map[Syscall]int64, error) {
	switch goos {
	case "linux":
		switch goarch {
		case "amd64":
			return linuxAMD64, nil
		case "arm64":
			return linuxARM64, nil
		default:
			return nil, fmt.Errorf("abi: unsupported linux architecture %q", goarch)
		}
	case "darwin":
		switch goarch {
		case "amd64":
			return darwinAMD64, nil
		case "arm64":
			return darwinARM64, nil
		default:
			return nil, fmt.Errorf("abi: unsupported darwin architecture %q", goarch)
		}
	default:
		return nil, fmt.Errorf("abi: unsupported platform %q", goos)
	}
}

// Reverse builds the numeric-to-symbolic inverse of Table(goos, goarch), for
// the gateway to classify an incoming raw syscall number from cell 7.
func Reverse(goos, goarch string) (map[int64]Syscall, error) {
	table, err := Table(goos, goarch)
	if err != nil {
		return nil, err
	}
	rev := make(map[int64]Syscall, len(table))
	for sc, n := range table {
		rev[n] = sc
	}
	return rev, nil
}
