// Released under an MIT license. See LICENSE.

// Package history loads and saves the REPL's line history.
package history

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNoHome is returned when there is no home directory to keep history in.
var ErrNoHome = errors.New("no home directory for history")

// Path returns the location of the history file.
func Path() (string, error) {
	dir, err := home()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, Name), nil
}

// Load calls read with the contents of the history file.
// A history file that does not exist yet is not an error.
func Load(read func(r io.Reader) (int, error)) error {
	p, err := Path()
	if err != nil {
		return err
	}

	f, err := os.Open(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	} else if err != nil {
		return err
	}

	_, err = read(f)

	return errors.Join(err, f.Close())
}

// Save calls write with a freshly truncated history file, readable only
// by its owner.
func Save(write func(w io.Writer) (int, error)) error {
	p, err := Path()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}

	_, err = write(f)

	return errors.Join(err, f.Close())
}
