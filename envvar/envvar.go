package envvar

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Get returns the value of the named environment variable. An unset
// variable yields the empty string and no error; distinguishing unset from
// empty is not supported.
func Get(name string) (string, error) {
	if name == "" {
		return "", errors.New("environment variable name cannot be empty")
	}
	if strings.ContainsRune(name, '=') {
		return "", errors.Errorf("environment variable name %q contains '='", name)
	}
	return os.Getenv(name), nil
}
