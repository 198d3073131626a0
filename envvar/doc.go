// Package envvar reads environment variables as byte strings.
package envvar
