package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Write materializes rendered files under modulePath as one logical unit.
//
// The module directory itself is created with os.Mkdir, which doubles as
// the collision guard: an existing directory refuses with ErrAlreadyExists
// (unless force removes it first), and two generations racing for the same
// path cannot both win the Mkdir. Any failure after the directory exists
// rolls the whole directory back so the filesystem never observes a
// half-generated module.
func Write(modulePath string, files []RenderedFile, force bool) error {
	parent := filepath.Dir(modulePath)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return fmt.Errorf("%w: failed to create output directory: %v", ErrWriteFailure, err)
	}

	if force {
		if err := os.RemoveAll(modulePath); err != nil {
			return fmt.Errorf("%w: failed to remove existing module: %v", ErrWriteFailure, err)
		}
	}

	if err := os.Mkdir(modulePath, 0o755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrAlreadyExists, modulePath)
		}
		return fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}

	if err := writeAll(modulePath, files); err != nil {
		// Roll back: remove the directory this invocation created.
		_ = os.RemoveAll(modulePath)
		return err
	}

	return nil
}

func writeAll(modulePath string, files []RenderedFile) error {
	for _, f := range files {
		dest := filepath.Join(modulePath, filepath.FromSlash(f.RelPath))

		if dir := filepath.Dir(dest); dir != modulePath {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("%w: failed to create %s: %v", ErrWriteFailure, dir, err)
			}
		}

		if err := os.WriteFile(dest, f.Content, 0o644); err != nil {
			return fmt.Errorf("%w: failed to write %s: %v", ErrWriteFailure, f.RelPath, err)
		}
	}
	return nil
}
