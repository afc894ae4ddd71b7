// Package discover walks an input root and lists the transcript files in it.
package discover

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrPathNotFound means the input root does not exist.
	ErrPathNotFound = errors.New("input root does not exist")
	// ErrNotADirectory means the input root exists but is not a directory.
	ErrNotADirectory = errors.New("input root is not a directory")
)

// File is one transcript found under the input root. RelPath is relative to
// the root so the output tree can mirror the input tree.
type File struct {
	Path    string
	RelPath string
}

// Transcripts walks root recursively and returns every .txt file, sorted by
// relative path. Hidden files are skipped. Each call re-walks the tree.
func Transcripts(root string) ([]File, error) {
	info, err := os.Stat(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", root, ErrPathNotFound)
		}
		return nil, fmt.Errorf("stat input root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s: %w", root, ErrNotADirectory)
	}

	var files []File
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if strings.ToLower(filepath.Ext(d.Name())) != ".txt" {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return err
		}

		files = append(files, File{Path: abs, RelPath: rel})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelPath < files[j].RelPath })
	return files, nil
}
