package buffmt

import "fmt"

// Format renders format and args into buf, truncating when the rendering
// does not fit, and returns the byte length of the complete rendering.
// A return value larger than len(buf) means buf holds a truncated prefix.
func Format(buf []byte, format string, args ...interface{}) int {
	s := fmt.Sprintf(format, args...)
	copy(buf, s)
	return len(s)
}
