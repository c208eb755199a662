package abi

// linuxARM64 holds the arm64 Linux syscall numbers for the symbols this
// gateway recognizes. arm64 uses Linux's "generic" syscall table, which
// dropped several legacy duplicate syscalls present on amd64; there is no
// bare "accept" in the generic table, so ACCEPT here is accept4 (called with
// a zero flags argument, which the gateway always passes).
var linuxARM64 = map[Syscall]int64{
	READ:   63,
	WRITE:  64,
	CLOSE:  57,
	SOCKET: 198,
	BIND:   200,
	LISTEN: 201,
	ACCEPT: 242, // accept4
}
