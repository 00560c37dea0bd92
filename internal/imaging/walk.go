package imaging

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// ImageExt is the extension, compared case-insensitively, that FindImages matches.
const ImageExt = ".png"

// WalkError records an entry that could not be visited during FindImages.
type WalkError struct {
	Path string
	Err  error
}

// WalkResult holds everything FindImages saw under a root.
type WalkResult struct {
	// Paths lists matching files in traversal order (lexical per directory).
	Paths []string

	// Skipped lists entries that failed during traversal. A directory that cannot
	// be read appears once and its contents are not visited.
	Skipped []WalkError
}

// FindImages recursively collects every non-directory entry under root whose
// extension matches ImageExt.
//
// Traversal errors never abort the walk; they are collected in Skipped so that
// callers can report them. Symbolic links are not followed into directories. The
// result is fully materialized before FindImages returns.
func FindImages(root string) *WalkResult {
	result := &WalkResult{}

	// The callback only returns nil or fs.SkipDir, so WalkDir always returns nil.
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			result.Skipped = append(result.Skipped, WalkError{Path: path, Err: err})
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if strings.EqualFold(filepath.Ext(path), ImageExt) {
			result.Paths = append(result.Paths, path)
		}
		return nil
	})

	return result
}
