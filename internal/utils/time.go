package utils

import "time"

// TimestampLayout is the canonical UTC timestamp format used in CSV rows,
// frontmatter, and artifact file names. Colons are replaced by dashes so
// the value is safe inside a file name on every platform.
const TimestampLayout = "2006-01-02T15-04-05.000000Z"

// NowUTC returns the current UTC time in TimestampLayout.
func NowUTC() string {
	return time.Now().UTC().Format(TimestampLayout)
}
