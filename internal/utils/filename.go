package utils

import (
	"path/filepath" // Strip any client-supplied directory part
	"regexp"        // Character whitelist
	"strings"       // String manipulation
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`) // Anything outside the whitelist

// SanitizeFilename reduces a client-supplied filename to a safe basename:
// directory components are dropped and disallowed characters collapse to
// underscores. Returns "" if nothing usable remains.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)                     // Drop any path component
	name = unsafeChars.ReplaceAllString(name, "_") // Replace unsafe characters
	name = strings.Trim(name, "._")                // No hidden or dangling-dot names
	return name
}
