// Package sysgw implements the syscall gateway:
// it reads the syscall number and arguments out of the tape's reserved
// cells, validates buffer ranges, performs the host call, and writes the
// numeric result back. It is grounded on
// original_source/src/bf.rs's execute_bfa/validate_syscall for the exact ABI
// and per-call checks, and on tinyrange-cc's internal/linux/syscallnum for
// the symbolic-enum-over-platform-table dispatch shape (internal/sysgw/abi).
//
// File descriptors returned by SOCKET/ACCEPT are not tracked by the gateway;
// their lifecycle is the caller's
// responsibility, identified only by the numeric value a SIL program stores
// in a cell.
package sysgw

import (
	"fmt"
	"unsafe"

	"github.com/tinyrange/bfx/internal/bf"
	"github.com/tinyrange/bfx/internal/sysgw/abi"
	"golang.org/x/sys/unix"
)

// Gateway is a bf.SyscallGateway backed by the host kernel via
// golang.org/x/sys/unix raw syscalls.
type Gateway struct {
	rev      map[int64]abi.Syscall
	testMode bool
}

// Option configures a Gateway at construction.
type Option func(*Gateway)

// TestMode denies all socket-class syscalls (SOCKET, BIND, LISTEN, ACCEPT,
// CLOSE) before touching the kernel. READ and WRITE remain
// permitted.
func TestMode() Option {
	return func(g *Gateway) { g.testMode = true }
}

// New constructs a Gateway for the given platform's numbering. goos/goarch
// are normally runtime.GOOS/runtime.GOARCH; they are explicit parameters so
// a gateway can be built (and denied in TestMode) without depending on the
// process's actual platform.
func New(goos, goarch string, opts ...Option) (*Gateway, error) {
	rev, err := abi.Reverse(goos, goarch)
	if err != nil {
		return nil, err
	}
	g := &Gateway{rev: rev}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

var _ bf.SyscallGateway = (*Gateway)(nil)

func isSocketClass(sc abi.Syscall) bool {
	switch sc {
	case abi.SOCKET, abi.BIND, abi.LISTEN, abi.ACCEPT, abi.CLOSE:
		return true
	default:
		return false
	}
}

// Dispatch implements bf.SyscallGateway.
func (g *Gateway) Dispatch(tape bf.Tape, num uint32, args [6]uint32) (uint32, error) {
	sc, ok := g.rev[int64(num)]
	if !ok {
		return 0, fmt.Errorf("%w: unsupported syscall number %d", bf.ErrInvalidSyscall, num)
	}

	if g.testMode && isSocketClass(sc) {
		return 0, fmt.Errorf("%w: permission denied: %s not allowed in test mode", bf.ErrInvalidSyscall, sc)
	}

	if err := validate(tape, sc, args); err != nil {
		return 0, err
	}

	switch sc {
	case abi.READ:
		return g.read(tape, int64(num), args)
	case abi.WRITE:
		return g.write(tape, int64(num), args)
	case abi.SOCKET:
		return g.socket(int64(num), args)
	case abi.BIND:
		return g.bind(tape, int64(num), args)
	case abi.LISTEN:
		return g.listen(int64(num), args)
	case abi.ACCEPT:
		return g.accept(tape, int64(num), args)
	case abi.CLOSE:
		return g.close(int64(num), args)
	default:
		return 0, fmt.Errorf("%w: unhandled syscall %s", bf.ErrInvalidSyscall, sc)
	}
}

// validate applies the per-call pre-checks the gateway's ABI table defines,
// against tape.Len() rather than a fixed cell count.
func validate(tape bf.Tape, sc abi.Syscall, args [6]uint32) error {
	maxAddr := int64(tape.Len())
	switch sc {
	case abi.READ, abi.WRITE:
		buf, count := int64(args[1]), int64(args[2])
		if buf+count > maxAddr {
			return fmt.Errorf("%w: buffer access out of bounds for %s", bf.ErrInvalidSyscall, sc)
		}
	case abi.BIND:
		addr, length := int64(args[1]), int64(args[2])
		if addr+length > maxAddr {
			return fmt.Errorf("%w: sockaddr access out of bounds for bind", bf.ErrInvalidSyscall)
		}
	case abi.ACCEPT:
		addr, lenIdx := int64(args[1]), int64(args[2])
		if addr >= maxAddr || lenIdx >= maxAddr {
			return fmt.Errorf("%w: pointer argument out of bounds for accept", bf.ErrInvalidSyscall)
		}
	case abi.SOCKET, abi.LISTEN, abi.CLOSE:
		// No buffer arguments to validate.
	}
	return nil
}

func readRange(tape bf.Tape, start, n int) ([]byte, error) {
	buf := make([]byte, n)
	for i := 0; i < n; i++ {
		b, err := tape.ReadByte(start + i)
		if err != nil {
			return nil, err
		}
		buf[i] = b
	}
	return buf, nil
}

func writeRange(tape bf.Tape, start int, buf []byte) error {
	for i, b := range buf {
		if err := tape.WriteByte(start+i, b); err != nil {
			return err
		}
	}
	return nil
}

func bufPtr(buf []byte) uintptr {
	if len(buf) == 0 {
		return 0
	}
	return uintptr(unsafe.Pointer(&buf[0]))
}

func syscallFailed(num int64, err error) error {
	return fmt.Errorf("%w: syscall %d: %v", bf.ErrSyscallFailed, num, err)
}

func (g *Gateway) read(tape bf.Tape, num int64, args [6]uint32) (uint32, error) {
	fd, start, count := args[0], int(args[1]), int(args[2])
	buf := make([]byte, count)
	r1, _, errno := unix.Syscall(uintptr(num), uintptr(fd), bufPtr(buf), uintptr(count))
	if errno != 0 {
		return 0, syscallFailed(num, errno)
	}
	n := int(r1)
	if err := writeRange(tape, start, buf[:n]); err != nil {
		return 0, err
	}
	return uint32(r1), nil
}

func (g *Gateway) write(tape bf.Tape, num int64, args [6]uint32) (uint32, error) {
	fd, start, count := args[0], int(args[1]), int(args[2])
	buf, err := readRange(tape, start, count)
	if err != nil {
		return 0, err
	}
	r1, _, errno := unix.Syscall(uintptr(num), uintptr(fd), bufPtr(buf), uintptr(count))
	if errno != 0 {
		return 0, syscallFailed(num, errno)
	}
	return uint32(r1), nil
}

func (g *Gateway) socket(num int64, args [6]uint32) (uint32, error) {
	domain, typ, proto := args[0], args[1], args[2]
	r1, _, errno := unix.Syscall(uintptr(num), uintptr(domain), uintptr(typ), uintptr(proto))
	if errno != 0 {
		return 0, syscallFailed(num, errno)
	}
	return uint32(r1), nil
}

func (g *Gateway) bind(tape bf.Tape, num int64, args [6]uint32) (uint32, error) {
	fd, start, length := args[0], int(args[1]), int(args[2])
	buf, err := readRange(tape, start, length)
	if err != nil {
		return 0, err
	}
	r1, _, errno := unix.Syscall(uintptr(num), uintptr(fd), bufPtr(buf), uintptr(length))
	if errno != 0 {
		return 0, syscallFailed(num, errno)
	}
	return uint32(r1), nil
}

func (g *Gateway) listen(num int64, args [6]uint32) (uint32, error) {
	fd, backlog := args[0], args[1]
	r1, _, errno := unix.Syscall(uintptr(num), uintptr(fd), uintptr(backlog), 0)
	if errno != 0 {
		return 0, syscallFailed(num, errno)
	}
	return uint32(r1), nil
}

func (g *Gateway) accept(tape bf.Tape, num int64, args [6]uint32) (uint32, error) {
	fd, sockaddrIdx, lenIdx := args[0], int(args[1]), int(args[2])
	length, err := tape.ReadCell(lenIdx)
	if err != nil {
		return 0, err
	}
	buf := make([]byte, length)
	addrlen := length

	// The fourth argument is ignored by the classic 3-arg accept(2) and
	// used as the flags argument by accept4(2) (Linux arm64's generic
	// syscall table has no bare accept); passing 0 is correct either way.
	r1, _, errno := unix.Syscall6(uintptr(num), uintptr(fd), bufPtr(buf), uintptr(unsafe.Pointer(&addrlen)), 0, 0, 0)
	if errno != 0 {
		return 0, syscallFailed(num, errno)
	}

	n := int(addrlen)
	if n > len(buf) {
		n = len(buf)
	}
	if err := writeRange(tape, sockaddrIdx, buf[:n]); err != nil {
		return 0, err
	}
	if err := tape.WriteCell(lenIdx, addrlen); err != nil {
		return 0, err
	}
	return uint32(r1), nil
}

func (g *Gateway) close(num int64, args [6]uint32) (uint32, error) {
	r1, _, errno := unix.Syscall(uintptr(num), uintptr(args[0]), 0, 0)
	if errno != 0 {
		return 0, syscallFailed(num, errno)
	}
	return uint32(r1), nil
}
