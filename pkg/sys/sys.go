// Package sys wraps the operating system facilities the console host needs.
package sys

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsATTY determines whether the given file is a terminal.
func IsATTY(file *os.File) bool {
	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}
