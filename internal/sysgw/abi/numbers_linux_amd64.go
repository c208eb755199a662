package abi

// linuxAMD64 holds the x86-64 Linux syscall numbers for the symbols this
// gateway recognizes, grounded on original_source/src/syscall_consts.rs's
// #[cfg(target_os = "linux")] constants.
var linuxAMD64 = map[Syscall]int64{
	READ:   0,
	WRITE:  1,
	CLOSE:  3,
	SOCKET: 41,
	BIND:   49,
	LISTEN: 50,
	ACCEPT: 43,
}
