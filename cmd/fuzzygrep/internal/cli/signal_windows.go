//go:build windows

package cli

// ignoreSigpipe is a no-op on windows, which has no SIGPIPE, mirroring the
// teacher's util_windows.go/util_unix.go split for platform-specific
// syscalls.
func ignoreSigpipe() {}
