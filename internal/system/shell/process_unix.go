// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package shell

import (
	"golang.org/x/sys/unix"
)

// Commands run in their own process group.
func sysProcAttr() *unix.SysProcAttr {
	return &unix.SysProcAttr{Setpgid: true}
}
