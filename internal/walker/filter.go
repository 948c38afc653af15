package walker

import (
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are directory names skipped when an argument is a directory.
var DefaultExcludes = []string{
	".git",
	"node_modules",
	"vendor",
	".venv",
	".idea",
	".vscode",
	".DS_Store",
}

// EmailExtensions are the file extensions picked up from a directory argument.
// Files named explicitly or matched by a glob are taken regardless.
var EmailExtensions = []string{".txt", ".eml", ".md", ".text"}

func shouldExcludeDir(name string) bool {
	for _, excl := range DefaultExcludes {
		if strings.EqualFold(name, excl) {
			return true
		}
	}
	return false
}

func isEmailFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range EmailExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// IsPattern reports whether arg contains glob metacharacters.
func IsPattern(arg string) bool {
	return strings.ContainsAny(arg, "*?[{")
}

// MatchesExclude returns true if the given path matches any of the exclude
// patterns. If patterns is empty, nothing is excluded.
func MatchesExclude(path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}
	return matchesAny(path, patterns)
}

// matchesAny checks the path, then its base name, against each pattern.
func matchesAny(path string, patterns []string) bool {
	normalized := filepath.ToSlash(path)

	for _, pattern := range patterns {
		pattern = filepath.ToSlash(pattern)

		if matched, err := doublestar.Match(pattern, normalized); err == nil && matched {
			return true
		}

		base := filepath.Base(normalized)
		if matched, err := doublestar.Match(pattern, base); err == nil && matched {
			return true
		}
	}
	return false
}
