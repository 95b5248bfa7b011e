// Package media manages the flat uploads directory and the image
// optimization pipeline in front of it.
package media

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// Store is the flat directory holding every uploaded image. Stored names
// never contain path separators.
type Store struct {
	Dir string
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Ensure creates the uploads directory if it does not exist yet.
func (s *Store) Ensure() error {
	if err := os.MkdirAll(s.Dir, 0o750); err != nil {
		return errors.Wrap(err, "failed to create uploads directory")
	}

	return nil
}

// ValidName reports whether name is a plain file name without any path
// component. The uploads directory is flat, nested paths are invalid.
func (s *Store) ValidName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}

	if strings.ContainsAny(name, `/\`) {
		return false
	}

	return true
}

// Path returns the on-disk path for a stored name.
func (s *Store) Path(name string) string {
	return filepath.Join(s.Dir, name)
}

// Save writes data under name.
func (s *Store) Save(name string, data []byte) error {
	if !s.ValidName(name) {
		return errors.Wrapf(ErrInvalidName, "%q", name)
	}

	if err := os.WriteFile(s.Path(name), data, 0o640); err != nil {
		return errors.Wrapf(err, "failed to store %q", name)
	}

	return nil
}

// Exists reports whether a stored name is present.
func (s *Store) Exists(name string) bool {
	if !s.ValidName(name) {
		return false
	}

	_, err := os.Stat(s.Path(name))

	return err == nil
}

// Remove deletes a stored file. A missing file is fine and any other
// failure is logged but never fatal, content records outlive stray files.
func (s *Store) Remove(name string) {
	if !s.ValidName(name) {
		return
	}

	if err := os.Remove(s.Path(name)); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("file", name).Msg("could not remove stored file")
	}
}
