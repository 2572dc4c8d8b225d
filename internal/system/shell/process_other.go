// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package shell

import (
	"syscall"
)

func sysProcAttr() *syscall.SysProcAttr {
	return nil
}
