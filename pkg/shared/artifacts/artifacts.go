// Package artifacts manages the temporary files one propagation session
// shares with the external engine. Every session owns a uniquely named
// directory holding exactly four files; release removes all of them exactly
// once, whatever the session's outcome.
package artifacts

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/abhcs/bap-taint/pkg/shared/errors"
)

// Kind names one of the four per-session files.
type Kind string

const (
	// GeneratedScript is where the engine writes the coloring script.
	GeneratedScript Kind = "script"
	// ColorScheme is where the session writes the term-to-color rules.
	ColorScheme Kind = "scheme"
	// StdinChannel backs the engine's <stdin> symbolic channel.
	StdinChannel Kind = "stdin"
	// StdoutChannel backs the engine's <stdout> symbolic channel.
	StdoutChannel Kind = "stdout"
)

// fileNames keeps the extensions the engine toolchain expects.
var fileNames = map[Kind]string{
	GeneratedScript: "script.py",
	ColorScheme:     "scheme.scm",
	StdinChannel:    "stdin",
	StdoutChannel:   "stdout",
}

// Set is the scoped collection of one session's temporary files.
type Set struct {
	dir      string
	paths    map[Kind]string
	released bool
	mu       sync.Mutex
	logger   hclog.Logger
}

// NewSet allocates the four artifact files under a fresh uniquely named
// directory inside tempDir (os.TempDir when empty). On any failure it cleans
// up whatever it managed to create and returns an ArtifactError naming the
// file that could not be prepared.
func NewSet(tempDir string, logger hclog.Logger) (*Set, error) {
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	dir := filepath.Join(tempDir, fmt.Sprintf("bap-taint-%s", uuid.NewString()))
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.NewArtifactError("session-dir", err)
	}

	s := &Set{
		dir:    dir,
		paths:  make(map[Kind]string, len(fileNames)),
		logger: logger,
	}

	for kind, name := range fileNames {
		path := filepath.Join(dir, name)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o600)
		if err != nil {
			s.Release()
			return nil, errors.NewArtifactError(string(kind), err)
		}
		f.Close()
		s.paths[kind] = path
	}

	logger.Debug("session artifacts allocated", "dir", dir)
	return s, nil
}

// Dir returns the session's private artifact directory.
func (s *Set) Dir() string {
	return s.dir
}

// Path returns the file path backing the given artifact kind. It stays valid
// until Release.
func (s *Set) Path(kind Kind) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paths[kind]
}

// Held reports how many artifact files this set still owns.
func (s *Set) Held() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return 0
	}
	return len(s.paths)
}

// Release removes every artifact and the session directory. Calling it more
// than once is a no-op. Removal failures are logged, never returned: a
// leftover temp file must not fail the session it belonged to.
func (s *Set) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.released {
		return
	}
	s.released = true

	if err := os.RemoveAll(s.dir); err != nil {
		s.logger.Warn("failed to remove session artifacts", "dir", s.dir, "error", err)
		return
	}
	s.logger.Debug("session artifacts released", "dir", s.dir)
}
