package abi

// darwinAMD64 holds the macOS syscall numbers for the symbols this gateway
// recognizes, grounded on original_source/src/syscall_consts.rs's
// #[cfg(target_os = "macos")] constants.
var darwinAMD64 = map[Syscall]int64{
	READ:   3,
	WRITE:  4,
	CLOSE:  6,
	SOCKET: 97,
	BIND:   104,
	LISTEN: 106,
	ACCEPT: 30,
}
