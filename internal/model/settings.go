package model

import "fmt"

// StorageBackend is where the tasks are persisted.
type StorageBackend string

const (
	StorageBackendSQLite StorageBackend = "sqlite"
	StorageBackendFile   StorageBackend = "file"
	StorageBackendMemory StorageBackend = "memory"
)

// IsValid returns true for the known storage backends.
func (s StorageBackend) IsValid() bool {
	switch s {
	case StorageBackendSQLite, StorageBackendFile, StorageBackendMemory:
		return true
	}
	return false
}

// Settings are the user settings that can be loaded from a config file.
// Empty fields mean "not set".
type Settings struct {
	Storage           StorageBackend
	DBPath            string
	DataDir           string
	ReportTitle       string
	ReportProductName string
	ReportOutput      string
	ListFormat        string
}

// Validate checks the settings are usable.
func (s Settings) Validate() error {
	if s.Storage != "" && !s.Storage.IsValid() {
		return fmt.Errorf("unknown storage backend %q: %w", s.Storage, ErrNotValid)
	}
	return nil
}
