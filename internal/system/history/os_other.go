// Released under an MIT license. See LICENSE.

//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris)

package history

import (
	"fmt"
	"os"
)

// Name is the history file's name in the user's home directory.
const Name = "knight_history"

func home() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoHome, err)
	}

	return dir, nil
}
