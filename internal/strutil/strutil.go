// Package strutil provides shared string helpers.
package strutil

// MaxValueSize is the default cap for rendering a single argument value in
// error messages and debug logs.
const MaxValueSize = 256

// Truncate truncates a string to maxSize bytes, appending "...(truncated)"
// if truncated. If maxSize <= 0, uses MaxValueSize.
func Truncate(s string, maxSize int) string {
	if maxSize <= 0 {
		maxSize = MaxValueSize
	}
	if len(s) > maxSize {
		return s[:maxSize] + "...(truncated)"
	}
	return s
}
