package jupdate

import "strings"

// Path joins field names into a dot-notation path: Path("a", "b") is "a.b".
// Empty segments are skipped.
func Path(parts ...string) string {
	var b strings.Builder
	for _, p := range parts {
		if p == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(p)
	}
	return b.String()
}

// Positional returns the path of the first array element matched by the query
// of the update: Positional("grades") is "grades.$".
func Positional(field string) string {
	return Path(field, OpPositional)
}
