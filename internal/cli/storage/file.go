package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

const (
	configDirName = "stocktake"
	prefsFileName = "preferences.json"
)

// File is a Store backed by a JSON file of string pairs under the user's
// config directory (~/.config/stocktake/preferences.json). Used for
// non-secret state such as the theme preference.
type File struct {
	path string
}

// NewFile creates a file-backed store at the default preferences path.
func NewFile() (*File, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}
	return &File{path: filepath.Join(homeDir, ".config", configDirName, prefsFileName)}, nil
}

// NewFileAt creates a file-backed store at an explicit path.
func NewFileAt(path string) *File {
	return &File{path: path}
}

func (f *File) load() (map[string]string, error) {
	if _, err := os.Stat(f.path); os.IsNotExist(err) {
		return map[string]string{}, nil
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read preferences file: %w", err)
	}

	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse preferences file: %w", err)
	}

	return values, nil
}

func (f *File) save(values map[string]string) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	if err := os.WriteFile(f.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}

	return nil
}

func (f *File) Get(key string) (string, error) {
	values, err := f.load()
	if err != nil {
		return "", err
	}
	value, ok := values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (f *File) Set(key, value string) error {
	values, err := f.load()
	if err != nil {
		return err
	}
	values[key] = value
	return f.save(values)
}

func (f *File) Delete(key string) error {
	values, err := f.load()
	if err != nil {
		return err
	}
	delete(values, key)
	return f.save(values)
}
