package shader

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidIdentifier reports a logical name that cannot form a valid C++
// identifier for the generated symbols.
var ErrInvalidIdentifier = errors.New("invalid identifier")

// Identity holds the symbol names derived from a logical shader name.
// The data and size constants use Name verbatim ("<name>_data", "<name>_size");
// Guard is the include-guard token.
type Identity struct {
	Name  string
	Guard string
}

// DeriveIdentity validates name and derives the generated symbol names.
// The guard token is "SHADER_" + uppercase(name) + "_H".
//
// A valid name consists of ASCII letters, digits and underscores, does not
// start with a digit, and is not empty. Anything else would produce a header
// that fails to compile, so it is rejected here with [ErrInvalidIdentifier]
// rather than silently emitted.
func DeriveIdentity(name string) (Identity, error) {
	if name == "" {
		return Identity{}, fmt.Errorf("%w: name is empty", ErrInvalidIdentifier)
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return Identity{}, fmt.Errorf("%w: %q starts with a digit", ErrInvalidIdentifier, name)
			}
		default:
			return Identity{}, fmt.Errorf("%w: %q contains %q", ErrInvalidIdentifier, name, r)
		}
	}
	return Identity{
		Name:  name,
		Guard: "SHADER_" + strings.ToUpper(name) + "_H",
	}, nil
}
