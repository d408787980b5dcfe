// File: pkg/ignore/patterns.go
package ignore

import (
	"regexp"
	"strings"
)

// Precompiled regular expressions used in pattern parsing.
var (
	doubleStarMiddlePattern   = regexp.MustCompile(`/\*\*/`)
	doubleStarTrailingPattern = regexp.MustCompile(`/\*\*$`)
	doubleStarLeadingPattern  = regexp.MustCompile(`^\*\*/`)
	singleStarPattern         = regexp.MustCompile(`\*`)
)

// Placeholder tokens for '**' segments. They keep the double-star regex
// expansions out of reach of the single-star conversion, which would
// otherwise rewrite the '*' characters inside them.
const (
	doubleStarMiddleToken   = "\x00dsm\x00"
	doubleStarTrailingToken = "\x00dst\x00"
	doubleStarLeadingToken  = "\x00dsl\x00"
)

// escapeSpecialChars escapes regex special characters except for '*', '?', and '/'.
func escapeSpecialChars(pattern string) string {
	const specialChars = `.+()|^$[]{}`
	for _, char := range specialChars {
		pattern = strings.ReplaceAll(pattern, string(char), `\`+string(char))
	}
	return pattern
}

// handleDoubleStarPatterns replaces '**' segments with placeholder tokens.
func handleDoubleStarPatterns(pattern string) string {
	pattern = doubleStarMiddlePattern.ReplaceAllString(pattern, doubleStarMiddleToken)
	pattern = doubleStarTrailingPattern.ReplaceAllString(pattern, doubleStarTrailingToken)
	pattern = doubleStarLeadingPattern.ReplaceAllString(pattern, doubleStarLeadingToken)
	return pattern
}

// wildcardToRegex converts wildcard patterns '*' and '?' to regex equivalents.
func wildcardToRegex(pattern string) string {
	pattern = singleStarPattern.ReplaceAllString(pattern, `[^/]*`)
	return strings.ReplaceAll(pattern, "?", ".")
}

// expandDoubleStarTokens substitutes the placeholder tokens with their regex
// expansions.
func expandDoubleStarTokens(pattern string) string {
	pattern = strings.ReplaceAll(pattern, doubleStarMiddleToken, `(/|/.+/)`)
	pattern = strings.ReplaceAll(pattern, doubleStarTrailingToken, `(/.*)?`)
	pattern = strings.ReplaceAll(pattern, doubleStarLeadingToken, `(.*/)?`)
	return pattern
}

// anchorPattern anchors the regex to match the whole path. Every pattern also
// matches everything beneath the paths it names; unrooted patterns match at
// any depth.
func anchorPattern(pattern string, rooted bool) string {
	pattern += `(/.*)?$`
	if rooted {
		return "^" + pattern
	}
	return `^(|.*/)` + pattern
}
