//go:build windows

package device

import (
	"os"

	"golang.org/x/sys/windows"
)

// Conhost flickers with synchronized output; Windows Terminal ignores it.
const supportsSyncOutput = false

// prepareConsole enables VT escape processing so ANSI sequences render
// instead of printing literally on legacy consoles.
func prepareConsole() error {
	handle := windows.Handle(os.Stdout.Fd())
	var mode uint32
	if err := windows.GetConsoleMode(handle, &mode); err != nil {
		return err
	}
	mode |= windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING
	return windows.SetConsoleMode(handle, mode)
}
