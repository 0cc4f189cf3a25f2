package utils

import (
	"os"
	"path"
)

// EnsureDir creates dir and any missing parents, it is a no-op when dir exists
func EnsureDir(dir string) error {
	if IsDir(dir) {
		return nil
	}
	return os.MkdirAll(dir, os.FileMode(0755))
}

// ReadyDir ...
func ReadyDir(filename string) error {
	return EnsureDir(path.Dir(filename))
}

// SaveFile writes data to filename, replacing any existing content
func SaveFile(filename string, data []byte) error {
	if err := ReadyDir(filename); err != nil {
		return err
	}
	return os.WriteFile(filename, data, os.FileMode(0644))
}

// Exists returns true if a file exists
func Exists(fpath string) bool {
	_, err := os.Stat(fpath)
	return !os.IsNotExist(err)
}

// IsDir ...
func IsDir(fpath string) bool {
	fi, err := os.Stat(fpath)
	return err == nil && fi.Mode().IsDir()
}
