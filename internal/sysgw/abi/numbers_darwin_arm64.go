package abi

// darwinARM64 reuses the same BSD syscall numbers as darwinAMD64: unlike
// Linux, Darwin's syscall numbering is defined by the shared XNU BSD syscall
// table and does not vary by architecture.
var darwinARM64 = map[Syscall]int64{
	READ:   darwinAMD64[READ],
	WRITE:  darwinAMD64[WRITE],
	CLOSE:  darwinAMD64[CLOSE],
	SOCKET: darwinAMD64[SOCKET],
	BIND:   darwinAMD64[BIND],
	LISTEN: darwinAMD64[LISTEN],
	ACCEPT: darwinAMD64[ACCEPT],
}
