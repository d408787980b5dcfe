// Package bundle implements the merge pipeline: collecting source files by
// directory scan and explicit listing, building the codebase document, and
// writing it out as pretty-printed XML.
package bundle

import (
	"path/filepath"
	"sort"
	"strings"
)

// Config holds the settings for a single merge run.
type Config struct {
	InputDir          string   // Directory to scan recursively; empty disables the scan.
	Files             []string // Explicitly listed candidate files, in command-line order.
	OutputFile        string   // Destination path for the XML document.
	TreeFile          string   // Optional destination for an ASCII directory tree; empty disables it.
	ExcludePatterns   []string // Exclusion patterns applied to the directory scan.
	GlobalExcludeFile string   // Optional pattern file applied to the directory scan.
	MaxFileSizeKB     int      // Scan skips regular files larger than this (in KB); 0 disables the limit.
}

// Extensions is the fixed set of source-code extensions selected for merging.
var Extensions = map[string]bool{
	".py":  true,
	".ts":  true,
	".jsx": true,
	".js":  true,
	".tsx": true,
}

// ExtensionList returns the extension set as a sorted slice, for logging.
func ExtensionList() []string {
	exts := make([]string, 0, len(Extensions))
	for ext := range Extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// hasMatchingExtension reports whether the path's extension is in the merge
// set. Matching is case-insensitive. A dotfile like ".py" has no extension,
// only a hidden name, and never matches.
func hasMatchingExtension(path string) bool {
	ext := filepath.Ext(path)
	if ext == "" || ext == filepath.Base(path) {
		return false
	}
	return Extensions[strings.ToLower(ext)]
}
