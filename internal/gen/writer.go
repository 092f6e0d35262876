package gen

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// WriteOutput writes content to the file at path, creating its directory
// if needed. With an empty path content goes to w instead.
func WriteOutput(w io.Writer, path, content string) error {
	if path == "" {
		if _, err := io.WriteString(w, content); err != nil {
			return fmt.Errorf("writing output: %w", err)
		}

		return nil
	}

	err := os.MkdirAll(filepath.Dir(path), dirPerm)
	if err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	err = os.WriteFile(path, []byte(content), filePerm)
	if err != nil {
		return fmt.Errorf("writing file %s: %w", path, err)
	}

	return nil
}
