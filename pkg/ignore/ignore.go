// Package ignore implements gitignore-style exclusion patterns used to
// restrict which paths the directory scan picks up.
package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// Matcher reports whether a slash-separated relative path is excluded.
type Matcher interface {
	Matches(path string) bool
	Match(path string) (bool, *Pattern)
}

// Pattern encapsulates a compiled regular expression, a negation flag, and
// metadata about the pattern's origin.
type Pattern struct {
	Regexp *regexp.Regexp // Compiled regular expression for the pattern.
	Negate bool           // Indicates if the pattern is a negation (starts with '!').
	Line   string         // Original pattern line.
	LineNo int            // Line number in the source (1-based).
}

// Set is an ordered collection of exclusion patterns. Patterns are evaluated
// in order and the last match wins, so a negation can re-include a path that
// an earlier pattern excluded.
type Set struct {
	patterns []*Pattern
	logger   *zap.Logger
}

// NewSet initializes an empty Set with an optional logger.
func NewSet(logger *zap.Logger) *Set {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Set{logger: logger}
}

// CompileLines compiles pattern lines and appends them to the set.
// Blank lines and '#' comments are skipped.
func (s *Set) CompileLines(lines ...string) {
	for i, line := range lines {
		compiled, negate := parsePatternLine(line, i+1, s.logger)
		if compiled == nil {
			continue
		}
		p := &Pattern{
			Regexp: compiled,
			Negate: negate,
			Line:   line,
			LineNo: i + 1,
		}
		s.patterns = append(s.patterns, p)
		s.logger.Debug("Compiled exclusion pattern",
			zap.Int("lineNo", p.LineNo),
			zap.String("pattern", p.Line),
			zap.Bool("negate", p.Negate))
	}
}

// CompileFile reads an exclusion file and compiles its pattern lines into
// the set. An unreadable file is an error; the caller decides how forgiving
// to be about it.
func (s *Set) CompileFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read exclude file %s: %w", path, err)
	}
	s.CompileLines(strings.Split(string(content), "\n")...)
	s.logger.Debug("Compiled exclusion file", zap.String("path", path), zap.Int("totalPatterns", len(s.patterns)))
	return nil
}

// Len returns the number of compiled patterns in the set.
func (s *Set) Len() int {
	return len(s.patterns)
}

// Matches checks if the given path matches any of the exclusion patterns.
func (s *Set) Matches(path string) bool {
	matched, _ := s.Match(path)
	return matched
}

// Match reports whether path is excluded and returns the deciding pattern.
func (s *Set) Match(path string) (bool, *Pattern) {
	normalized := filepath.ToSlash(path)

	matched := false
	var deciding *Pattern

	for _, p := range s.patterns {
		if p.Regexp.MatchString(normalized) {
			matched = !p.Negate
			deciding = p
		}
	}

	return matched, deciding
}

// parsePatternLine processes a single pattern line and returns a compiled
// regular expression and a negation flag. Returns nil for comments, blank
// lines, and lines that reduce to nothing.
func parsePatternLine(line string, lineNo int, logger *zap.Logger) (*regexp.Regexp, bool) {
	trimmed := strings.TrimSpace(line)

	// Ignore empty lines and comments
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, false
	}

	// Handle negation
	negate := false
	if strings.HasPrefix(trimmed, "!") {
		negate = true
		trimmed = strings.TrimPrefix(trimmed, "!")
	}

	// Handle escaped leading '#' and '!'
	if strings.HasPrefix(trimmed, `\#`) || strings.HasPrefix(trimmed, `\!`) {
		trimmed = trimmed[1:]
	}

	// A leading slash anchors the pattern to the scan root; a trailing slash
	// marks a directory pattern. Both are stripped before regex conversion:
	// matching is purely path-based, and the scan prunes matched directories
	// either way.
	rooted := strings.HasPrefix(trimmed, "/")
	trimmed = strings.TrimPrefix(trimmed, "/")
	trimmed = strings.TrimSuffix(trimmed, "/")

	if trimmed == "" {
		return nil, false
	}

	escaped := escapeSpecialChars(trimmed)
	escaped = handleDoubleStarPatterns(escaped)
	escaped = wildcardToRegex(escaped)
	escaped = expandDoubleStarTokens(escaped)
	anchored := anchorPattern(escaped, rooted)

	compiled, err := regexp.Compile(anchored)
	if err != nil {
		logger.Error("Invalid exclusion pattern",
			zap.String("pattern", line),
			zap.Int("lineNo", lineNo),
			zap.Error(err))
		return nil, false
	}

	return compiled, negate
}
