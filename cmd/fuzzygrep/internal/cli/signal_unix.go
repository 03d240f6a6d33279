//go:build !windows

package cli

import (
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// ignoreSigpipe stops the process from dying when a downstream reader (head,
// less, a closed pipe) hangs up early, the same concern the teacher's
// tmux_unix.go/proxy_unix.go address by reaching for golang.org/x/sys/unix
// directly instead of the bare syscall package.
func ignoreSigpipe() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, unix.SIGPIPE)
	go func() {
		for range c {
		}
	}()
}
