// File: pkg/bundle/execute.go
package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cdragos/merge-codebase-to-xml/pkg/ignore"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
)

// globalExcludeEnv names the environment variable consulted for a global
// exclusion file when no --global-exclude-file flag is given.
const globalExcludeEnv = "MERGEXML_GLOBAL_EXCLUDE"

// Run executes the merge pipeline described by cfg: collect the candidate
// files, build the XML document, and write it to the configured output path.
// Per-file problems (unreadable entries, non-UTF-8 data) are logged and
// embedded in the document rather than failing the run; only structural
// failures such as bad exclusion files or an unwritable output are returned
// as errors. A run that collects no files logs a warning and succeeds
// without writing anything.
func Run(cfg Config, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	startTime := time.Now()

	matcher, err := loadExcludes(cfg, logger)
	if err != nil {
		logger.Error("Failed to load exclusion patterns", zap.Error(err))
		return fmt.Errorf("failed to load exclusion patterns: %w", err)
	}

	unique := make(map[string]struct{})

	if cfg.InputDir != "" {
		logger.Info("Scanning directory for source files",
			zap.String("dir", cfg.InputDir),
			zap.Strings("extensions", ExtensionList()))
		scanned, scanErr := ScanDirectory(cfg.InputDir, matcher, cfg.MaxFileSizeKB, logger)
		if scanErr != nil {
			logger.Warn("Directory scan ended early", zap.String("dir", cfg.InputDir), zap.Error(scanErr))
		}
		logger.Info("Found files in directory", zap.Int("count", len(scanned)))
		for _, path := range scanned {
			unique[path] = struct{}{}
		}
	}

	if len(cfg.Files) > 0 {
		listed := FilterFiles(cfg.Files, logger)
		logger.Info("Adding individual files", zap.Int("count", len(listed)))
		for _, path := range listed {
			unique[path] = struct{}{}
		}
	}

	paths := make([]string, 0, len(unique))
	for path := range unique {
		paths = append(paths, path)
	}
	sort.Strings(paths)

	logger.Info("Total unique files to process", zap.Int("count", len(paths)))
	if len(paths) == 0 {
		logger.Warn("No files to process")
		return nil
	}

	logger.Info("Creating XML structure")
	doc := BuildDocument(paths, logger)

	rendered, err := RenderDocument(doc)
	if err != nil {
		logger.Error("Failed to render document", zap.Error(err))
		return err
	}

	if cfg.TreeFile != "" {
		tree := GenerateTree(treeInputs(cfg), matcher, logger)
		if err := WriteTree(cfg.TreeFile, tree, logger); err != nil {
			return err
		}
		logger.Info("Wrote tree listing", zap.String("treeFile", cfg.TreeFile))
	}

	logger.Info("Writing output file", zap.String("path", cfg.OutputFile))
	if err := WriteDocument(cfg.OutputFile, rendered, logger); err != nil {
		return err
	}

	logger.Info("XML file creation complete",
		zap.String("outputFile", cfg.OutputFile),
		zap.Int("totalFiles", len(paths)),
		zap.Duration("elapsed", time.Since(startTime)))

	return nil
}

// treeInputs lists the paths the tree artifact covers: the scanned directory
// when one is configured, followed by the individually listed files.
func treeInputs(cfg Config) []string {
	var inputs []string
	if cfg.InputDir != "" {
		inputs = append(inputs, cfg.InputDir)
	}
	return append(inputs, cfg.Files...)
}

// loadExcludes compiles the run's exclusion patterns. The global exclusion
// file is taken from the config, then from the MERGEXML_GLOBAL_EXCLUDE
// environment variable, then from the user's XDG config directory. It
// returns a nil Matcher when no pattern source is configured, which
// disables exclusion entirely.
func loadExcludes(cfg Config, logger *zap.Logger) (ignore.Matcher, error) {
	globalFile := cfg.GlobalExcludeFile
	if globalFile == "" {
		globalFile = os.Getenv(globalExcludeEnv)
	}
	if globalFile == "" {
		if found, err := xdg.SearchConfigFile(filepath.Join("merge-codebase-to-xml", "exclude")); err == nil {
			globalFile = found
		}
	}

	if globalFile == "" && len(cfg.ExcludePatterns) == 0 {
		return nil, nil
	}

	set := ignore.NewSet(logger)
	if globalFile != "" {
		if err := set.CompileFile(globalFile); err != nil {
			return nil, err
		}
		logger.Debug("Loaded global exclusion file",
			zap.String("path", globalFile),
			zap.Int("totalPatterns", set.Len()))
	}
	set.CompileLines(cfg.ExcludePatterns...)

	return set, nil
}
