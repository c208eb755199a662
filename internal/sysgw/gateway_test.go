package sysgw

import (
	"errors"
	"os"
	"testing"

	"github.com/tinyrange/bfx/internal/bf"
	"github.com/tinyrange/bfx/internal/sysgw/abi"
)

// fakeTape is a minimal bf.Tape backed by a plain slice, for gateway tests
// that don't need a running interpreter.
type fakeTape struct {
	cells []uint32
}

func newFakeTape(n int) *fakeTape { return &fakeTape{cells: make([]uint32, n)} }

func (f *fakeTape) Len() int { return len(f.cells) }

func (f *fakeTape) ReadByte(i int) (byte, error) {
	if i < 0 || i >= len(f.cells) {
		return 0, errors.New("out of range")
	}
	return byte(f.cells[i]), nil
}

func (f *fakeTape) WriteByte(i int, b byte) error {
	if i < 0 || i >= len(f.cells) {
		return errors.New("out of range")
	}
	f.cells[i] = uint32(b)
	return nil
}

func (f *fakeTape) ReadCell(i int) (uint32, error) {
	if i < 0 || i >= len(f.cells) {
		return 0, errors.New("out of range")
	}
	return f.cells[i], nil
}

func (f *fakeTape) WriteCell(i int, v uint32) error {
	if i < 0 || i >= len(f.cells) {
		return errors.New("out of range")
	}
	f.cells[i] = v
	return nil
}

func mustNumber(t *testing.T, sc abi.Syscall) uint32 {
	t.Helper()
	n, err := abi.Number("linux", "amd64", sc)
	if err != nil {
		t.Fatalf("abi.Number(%s): %v", sc, err)
	}
	return uint32(n)
}

func TestWriteSyscallWritesExactBytes(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	tape := newFakeTape(16)
	msg := []byte("hi\n")
	for i, b := range msg {
		_ = tape.WriteByte(8+i, b)
	}

	g, err := New("linux", "amd64")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	args := [6]uint32{uint32(w.Fd()), 8, uint32(len(msg)), 0, 0, 0}
	result, err := g.Dispatch(tape, mustNumber(t, abi.WRITE), args)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if result != uint32(len(msg)) {
		t.Fatalf("result = %d, want %d", result, len(msg))
	}
	w.Close()

	got := make([]byte, 16)
	n, _ := r.Read(got)
	if string(got[:n]) != "hi\n" {
		t.Fatalf("pipe received %q, want %q", got[:n], "hi\n")
	}
}

func TestUnknownSyscallNumberIsInvalid(t *testing.T) {
	g, err := New("linux", "amd64")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tape := newFakeTape(16)
	_, err = g.Dispatch(tape, 999999, [6]uint32{})
	if !errors.Is(err, bf.ErrInvalidSyscall) {
		t.Fatalf("expected ErrInvalidSyscall, got %v", err)
	}
}

func TestTestModeDeniesSocketClassSyscalls(t *testing.T) {
	g, err := New("linux", "amd64", TestMode())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tape := newFakeTape(16)

	for _, sc := range []abi.Syscall{abi.SOCKET, abi.BIND, abi.LISTEN, abi.ACCEPT, abi.CLOSE} {
		_, err := g.Dispatch(tape, mustNumber(t, sc), [6]uint32{2, 1, 0, 0, 0, 0})
		if !errors.Is(err, bf.ErrInvalidSyscall) {
			t.Errorf("%s: expected ErrInvalidSyscall in test mode, got %v", sc, err)
		}
	}
}

func TestTestModePermitsReadAndWrite(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()

	g, err := New("linux", "amd64", TestMode())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tape := newFakeTape(16)
	tape.WriteByte(8, 'x')
	args := [6]uint32{uint32(w.Fd()), 8, 1, 0, 0, 0}
	if _, err := g.Dispatch(tape, mustNumber(t, abi.WRITE), args); err != nil {
		t.Fatalf("WRITE should be permitted in test mode: %v", err)
	}
}

func TestWriteRejectsOutOfBoundsBuffer(t *testing.T) {
	g, err := New("linux", "amd64")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tape := newFakeTape(4)
	args := [6]uint32{1, 2, 10, 0, 0, 0} // 2+10 > tape length 4
	_, err = g.Dispatch(tape, mustNumber(t, abi.WRITE), args)
	if !errors.Is(err, bf.ErrInvalidSyscall) {
		t.Fatalf("expected ErrInvalidSyscall for out-of-bounds buffer, got %v", err)
	}
}
