package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Permissions of the written report and of directories created for it.
const (
	filePerm = 0o644
	dirPerm  = 0o750
)

// WriteFile writes doc to path as UTF-8, replacing any existing file.
//
// The document is written to a temporary file in the same directory and
// renamed into place, so path holds either the previous content or the
// complete new document.
func WriteFile(path, doc string) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()           //nolint:errcheck // already failing
			_ = os.Remove(tmp.Name()) //nolint:errcheck // best-effort cleanup
		}
	}()

	if err := encodeUTF8(tmp, doc); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close report: %w", err)
	}
	if err := os.Chmod(tmp.Name(), filePerm); err != nil {
		return fmt.Errorf("failed to set report permissions: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move report into place: %w", err)
	}
	return nil
}

// encodeUTF8 writes doc through a UTF-8 encoder, which replaces invalid
// byte sequences with U+FFFD.
func encodeUTF8(w io.Writer, doc string) error {
	tw := transform.NewWriter(w, unicode.UTF8.NewEncoder())
	if _, err := io.WriteString(tw, doc); err != nil {
		return err
	}
	return tw.Close()
}
