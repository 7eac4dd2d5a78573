package util

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Default returns value unless it is the zero value, in which case it
// returns defaultValue.
func Default[T comparable](value, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}

func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
