package bundle

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cdragos/merge-codebase-to-xml/pkg/ignore"

	"go.uber.org/zap"
)

// ScanDirectory walks root recursively and returns the resolved paths of
// every entry whose extension is in the merge set. The root itself is never
// included. Entries are kept regardless of whether they are regular files; a
// directory named like a source file is collected too and surfaces later as
// an embedded read error. Inaccessible entries are logged and skipped, never
// fatal.
//
// When matcher is non-nil, matching directories are pruned and matching
// files skipped. When maxFileSizeKB is positive, regular files larger than
// the limit are skipped.
func ScanDirectory(root string, matcher ignore.Matcher, maxFileSizeKB int, logger *zap.Logger) ([]string, error) {
	var found []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("Error accessing path during scan", zap.String("path", path), zap.Error(err))
			return nil
		}
		if path == root {
			return nil
		}

		if matcher != nil {
			relPath, relErr := filepath.Rel(root, path)
			if relErr == nil && matcher.Matches(filepath.ToSlash(relPath)) {
				if d.IsDir() {
					logger.Debug("Skipping excluded directory", zap.String("path", path))
					return filepath.SkipDir
				}
				logger.Debug("Skipping excluded file", zap.String("path", path))
				return nil
			}
		}

		if !hasMatchingExtension(path) {
			return nil
		}

		if maxFileSizeKB > 0 && d.Type().IsRegular() {
			info, infoErr := d.Info()
			if infoErr != nil {
				logger.Warn("Failed to stat file during scan", zap.String("path", path), zap.Error(infoErr))
				return nil
			}
			if info.Size() > int64(maxFileSizeKB)*1024 {
				logger.Debug("Skipping file over size limit",
					zap.String("path", path),
					zap.Int64("sizeBytes", info.Size()),
					zap.Int("maxFileSizeKB", maxFileSizeKB))
				return nil
			}
		}

		found = append(found, resolvePath(path))
		return nil
	})

	return found, err
}

// FilterFiles keeps the explicitly listed entries whose extension is in the
// merge set and which point at regular files, resolved to absolute form.
// Entries with a matching extension that are missing or not regular files
// are dropped with a warning; entries with a non-matching extension are
// dropped silently.
func FilterFiles(files []string, logger *zap.Logger) []string {
	var kept []string

	for _, file := range files {
		if !hasMatchingExtension(file) {
			continue
		}

		info, err := os.Stat(file)
		if err != nil {
			logger.Warn("Skipping path that is not a regular file", zap.String("path", file), zap.Error(err))
			continue
		}
		if !info.Mode().IsRegular() {
			logger.Warn("Skipping path that is not a regular file", zap.String("path", file))
			continue
		}

		kept = append(kept, resolvePath(file))
	}

	return kept
}

// resolvePath returns the absolute form of path with symbolic links
// evaluated. Resolution failures fall back to the cleaned absolute form so
// that a dangling link still yields a usable deduplication key.
func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
