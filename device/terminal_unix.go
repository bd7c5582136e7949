//go:build !windows

package device

const supportsSyncOutput = true

func prepareConsole() error {
	return nil
}
