package safety

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxNameLength is the longest keep-list entry accepted, in characters.
const MaxNameLength = 255

// reservedNameChars are never legal in a filesystem entry name.
const reservedNameChars = `<>:"/\|?*`

var (
	ErrEmptyName    = errors.New("name is empty")
	ErrNameTooLong  = errors.New("name is longer than 255 characters")
	ErrReservedChar = errors.New("name contains a reserved character")
)

// ValidateName checks that name is a legal filesystem entry name for
// use in the keep list. It validates a name, not a path, and never
// touches the filesystem.
func ValidateName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	if i := strings.IndexAny(name, reservedNameChars); i >= 0 {
		return fmt.Errorf("%q: %w", name[i:i+1], ErrReservedChar)
	}
	return nil
}
