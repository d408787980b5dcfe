// File: pkg/bundle/tree.go
package bundle

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cdragos/merge-codebase-to-xml/pkg/ignore"

	"go.uber.org/zap"
)

// GenerateTree renders an ASCII listing of the given paths: directories are
// expanded recursively with box-drawing connectors, individual files appear
// as single lines. Excluded paths are omitted when matcher is non-nil.
// Inaccessible paths are logged and skipped.
func GenerateTree(paths []string, matcher ignore.Matcher, logger *zap.Logger) string {
	var treeBuilder strings.Builder

	for _, path := range paths {
		absPath, err := filepath.Abs(path)
		if err != nil {
			logger.Warn("Failed to resolve path for tree listing", zap.String("path", path), zap.Error(err))
			continue
		}

		info, err := os.Stat(absPath)
		if err != nil {
			logger.Warn("Cannot stat path for tree listing", zap.String("path", absPath), zap.Error(err))
			continue
		}

		if info.IsDir() {
			treeBuilder.WriteString(absPath + "/\n")
			subtree, err := renderTreeLevel(absPath, absPath, matcher, "", logger)
			if err != nil {
				logger.Warn("Failed to render subtree", zap.String("directory", absPath), zap.Error(err))
				continue
			}
			if subtree != "" {
				treeBuilder.WriteString(subtree)
				treeBuilder.WriteString("\n")
			}
		} else {
			treeBuilder.WriteString(filepath.Base(absPath) + "\n")
		}
	}

	return treeBuilder.String()
}

// renderTreeLevel builds one directory level of the tree, recursing into
// subdirectories.
func renderTreeLevel(directory, root string, matcher ignore.Matcher, prefix string, logger *zap.Logger) (string, error) {
	entries, err := os.ReadDir(directory)
	if err != nil {
		return "", fmt.Errorf("failed to read directory %s: %w", directory, err)
	}

	// Drop excluded entries before assigning connectors so the last visible
	// entry always gets the closing connector.
	var visible []fs.DirEntry
	for _, entry := range entries {
		if matcher != nil {
			relPath, relErr := filepath.Rel(root, filepath.Join(directory, entry.Name()))
			if relErr == nil && matcher.Matches(filepath.ToSlash(relPath)) {
				continue
			}
		}
		visible = append(visible, entry)
	}

	// Sort entries: directories first, then files, alphabetically
	sort.Slice(visible, func(i, j int) bool {
		if visible[i].IsDir() != visible[j].IsDir() {
			return visible[i].IsDir()
		}
		return strings.ToLower(visible[i].Name()) < strings.ToLower(visible[j].Name())
	})

	var output []string
	for i, entry := range visible {
		connector := "├── "
		childPrefix := prefix + "│   "
		if i == len(visible)-1 {
			connector = "└── "
			childPrefix = prefix + "    "
		}

		entryPath := filepath.Join(directory, entry.Name())
		if entry.IsDir() {
			output = append(output, prefix+connector+entry.Name()+"/")
			subtree, err := renderTreeLevel(entryPath, root, matcher, childPrefix, logger)
			if err != nil {
				logger.Warn("Failed to render subtree", zap.String("directory", entryPath), zap.Error(err))
				continue
			}
			if subtree != "" {
				output = append(output, subtree)
			}
		} else {
			output = append(output, prefix+connector+entry.Name())
		}
	}

	return strings.Join(output, "\n"), nil
}

// WriteTree writes the rendered tree listing to treePath, creating missing
// parent directories first.
func WriteTree(treePath, tree string, logger *zap.Logger) error {
	if err := ensureDirectory(filepath.Dir(treePath), logger); err != nil {
		return fmt.Errorf("failed to create tree output directory: %w", err)
	}

	if err := os.WriteFile(treePath, []byte(tree), 0644); err != nil {
		logger.Error("Failed to write tree file", zap.String("path", treePath), zap.Error(err))
		return fmt.Errorf("failed to write tree file: %w", err)
	}

	return nil
}
