package helper

import (
	"os"
)

// EnsureDirectoryExists creates dirPath (and parents) if it does not
// already exist.
func EnsureDirectoryExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return err
		}
	}
	return nil
}
