// Released under an MIT license. See LICENSE.

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package history

import "os"

// Name is the history file's name in the user's home directory.
const Name = ".knight_history"

func home() (string, error) {
	dir := os.Getenv("HOME")
	if dir == "" {
		return "", ErrNoHome
	}

	return dir, nil
}
