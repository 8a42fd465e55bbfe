package common

import (
	"os"
)

// These are variables rather than plain functions so that tests can swap
// them out for stubs without touching a real filesystem.
var (
	FileExists = func(path string) bool {
		_, err := os.Stat(path)
		if err == nil {
			return true
		}

		return false
	}

	IsDir = func(path string) bool {
		stat, _ := os.Stat(path)
		return stat != nil && stat.IsDir()
	}

	IsFile = func(path string) bool {
		stat, _ := os.Stat(path)
		return stat != nil && stat.Mode().IsRegular()
	}
)
