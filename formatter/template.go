package formatter

import (
	"strconv"
	"strings"

	"github.com/ulogproject/ulog/alloc"
	"github.com/ulogproject/ulog/buffmt"
	"github.com/ulogproject/ulog/core"
)

// MaxFormatLen is the maximum length of a format template in bytes; longer
// templates are truncated.
const MaxFormatLen = 2047

// maxLineNumberDigits bounds the rendered line number; longer values are
// truncated to their leading digits.
const maxLineNumberDigits = 9

// DefaultFormat is the template installed when no output format is
// configured.
const DefaultFormat = "[{severity}] [{name}]: {message} ({function_name}() at {file_name}:{line_number})"

// Template is a parsed-by-scanning output format. The zero value expands
// every record to an empty line; use New or Default.
type Template struct {
	raw string
}

// New returns a Template for the given format string, truncated to
// MaxFormatLen bytes.
func New(raw string) Template {
	if len(raw) > MaxFormatLen {
		raw = raw[:MaxFormatLen]
	}
	return Template{raw: raw}
}

// Default returns the Template for DefaultFormat.
func Default() Template {
	return New(DefaultFormat)
}

// String returns the template's format string.
func (t Template) String() string {
	return t.raw
}

// Expand renders rec through the template into a buffer grown through a.
// The caller must Release the returned buffer. On allocation failure the
// buffer is already released and an error is returned; nothing partial is
// usable.
func (t Template) Expand(rec *core.Record, a alloc.Allocator) (*alloc.Buffer, error) {
	out := alloc.NewBuffer(a)
	raw := t.raw
	i := 0
	for i < len(raw) {
		open := strings.IndexByte(raw[i:], '{')
		if open < 0 {
			break
		}
		open += i
		if err := out.WriteString(raw[i:open]); err != nil {
			out.Release()
			return nil, err
		}
		end := strings.IndexByte(raw[open:], '}')
		if end < 0 {
			// Unterminated token: the rest of the template is literal.
			i = open
			break
		}
		end += open
		if expansion, ok := expandToken(raw[open+1:end], rec); ok {
			if err := out.WriteString(expansion); err != nil {
				out.Release()
				return nil, err
			}
			i = end + 1
			continue
		}
		// Not a token: emit the '{' and rescan from the next character.
		if err := out.WriteByte('{'); err != nil {
			out.Release()
			return nil, err
		}
		i = open + 1
	}
	if err := out.WriteString(raw[i:]); err != nil {
		out.Release()
		return nil, err
	}
	return out, nil
}

func expandToken(token string, rec *core.Record) (string, bool) {
	switch token {
	case "severity":
		return rec.Severity.String(), true
	case "name":
		return rec.Name, true
	case "message":
		return rec.Message, true
	case "function_name":
		if rec.Location == nil {
			return "", true
		}
		return rec.Location.FunctionName, true
	case "file_name":
		if rec.Location == nil {
			return "", true
		}
		return rec.Location.FileName, true
	case "line_number":
		if rec.Location == nil {
			return "0", true
		}
		var digits [maxLineNumberDigits]byte
		n := buffmt.Format(digits[:], "%d", rec.Location.LineNumber)
		if n > maxLineNumberDigits {
			n = maxLineNumberDigits
		}
		return string(digits[:n]), true
	case "time":
		var frac [16]byte
		n := buffmt.Format(frac[:], "%09d", rec.Time.Nanosecond())
		if n > 9 {
			n = 9
		}
		return strconv.FormatInt(rec.Time.Unix(), 10) + "." + string(frac[:n]), true
	case "time_as_nanoseconds":
		return strconv.FormatInt(rec.Time.UnixNano(), 10), true
	}
	return "", false
}
