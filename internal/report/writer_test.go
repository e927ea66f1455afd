package report

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "docs", "contest", "README.rst")
		doc := Banner("問題一覧")

		if err := WriteFile(path, doc); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		got, err := os.ReadFile(path) //nolint:gosec // test path
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(doc, string(got)); diff != "" {
			t.Errorf("content mismatch (-want +got):\n%s", diff)
		}
		assertNoTempFiles(t, filepath.Dir(path))
	})

	t.Run("replaces existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "README.rst")
		if err := os.WriteFile(path, []byte("old content that is longer than the new one"), 0o600); err != nil {
			t.Fatal(err)
		}

		if err := WriteFile(path, "new\n"); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		got, err := os.ReadFile(path) //nolint:gosec // test path
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "new\n" {
			t.Errorf("content = %q, want %q", got, "new\n")
		}
		if runtime.GOOS != "windows" {
			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if info.Mode().Perm() != filePerm {
				t.Errorf("mode = %v, want %v", info.Mode().Perm(), os.FileMode(filePerm))
			}
		}
	})

	t.Run("invalid UTF-8 is replaced", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "README.rst")
		if err := WriteFile(path, "a\xffb"); err != nil {
			t.Fatalf("WriteFile() error = %v", err)
		}

		got, err := os.ReadFile(path) //nolint:gosec // test path
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "a\uFFFDb" {
			t.Errorf("content = %q, want %q", got, "a\uFFFDb")
		}
	})

	t.Run("failure leaves no partial file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		// A directory occupies the target path, so the final rename fails.
		path := filepath.Join(dir, "README.rst")
		if err := os.Mkdir(path, 0o750); err != nil {
			t.Fatal(err)
		}

		if err := WriteFile(path, "doc\n"); err == nil {
			t.Fatal("WriteFile() error = nil, want error")
		}
		assertNoTempFiles(t, dir)
	})
}

func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, ".*.tmp"))
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("temporary files left behind: %v", matches)
	}
}
