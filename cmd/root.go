package cmd

import (
	"github.com/cdragos/merge-codebase-to-xml/pkg/bundle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootLogger is the logger handed to Execute; the merge pipeline logs
// through it.
var rootLogger *zap.Logger

// Command-line flag values for the root command.
var (
	inputDir          string
	files             []string
	outputFile        string
	treeFile          string
	excludePatterns   []string
	globalExcludeFile string
	maxFileSizeKB     int
)

// RootCmd is the base command; it runs the merge itself.
var RootCmd = &cobra.Command{
	Use:   "merge-codebase-to-xml",
	Short: "Merge codebase source files into a single XML document",
	Long: `merge-codebase-to-xml collects source files (.py, .ts, .jsx, .js, .tsx)
from a recursive directory scan, an explicit file list, or both, and merges
their contents into one pretty-printed XML document with a <file> element
per source file.

Files that cannot be read are still listed in the document, with the error
message embedded in place of their contents.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := bundle.Config{
			InputDir:          inputDir,
			Files:             files,
			OutputFile:        outputFile,
			TreeFile:          treeFile,
			ExcludePatterns:   excludePatterns,
			GlobalExcludeFile: globalExcludeFile,
			MaxFileSizeKB:     maxFileSizeKB,
		}
		return bundle.Run(cfg, rootLogger)
	},
}

func init() {
	RootCmd.Flags().StringVar(&inputDir, "input-dir", "", "Directory to scan recursively for source files")
	RootCmd.Flags().StringArrayVar(&files, "file", nil, "Individual file to include (repeatable)")
	RootCmd.Flags().StringVar(&outputFile, "output-file", "", "Path of the XML document to write")
	RootCmd.Flags().StringVar(&treeFile, "tree-file", "", "Optional path for an ASCII tree listing of the merged inputs")
	RootCmd.Flags().StringArrayVar(&excludePatterns, "exclude", nil, "Gitignore-style pattern excluded from the directory scan (repeatable)")
	RootCmd.Flags().StringVar(&globalExcludeFile, "global-exclude-file", "", "Pattern file applied to the directory scan")
	RootCmd.Flags().IntVar(&maxFileSizeKB, "max-file-size-kb", 0, "Skip scanned files larger than this size in KB (0 = no limit)")

	_ = RootCmd.MarkFlagRequired("output-file")
	RootCmd.MarkFlagsOneRequired("input-dir", "file")
}

// Execute runs the root command with the given logger and returns its error.
func Execute(logger *zap.Logger) error {
	rootLogger = logger
	return RootCmd.Execute()
}
