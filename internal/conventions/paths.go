package conventions

import "path/filepath"

const (
	// DefaultAppDir is the default tasktracker directory name (relative to home).
	DefaultAppDir = ".tasktracker"
	// DBFile is the SQLite database filename.
	DBFile = "tasks.db"
	// DataDir is the subdirectory used by the file storage backend.
	DataDir = "data"
	// ReportFile is the default report output filename.
	ReportFile = "task-report.pdf"
)

// AppDir returns the tasktracker directory inside home.
func AppDir(home string) string {
	return filepath.Join(home, DefaultAppDir)
}

// DBPath returns the default SQLite database path inside home.
func DBPath(home string) string {
	return filepath.Join(AppDir(home), DBFile)
}

// FileDataDir returns the default file storage backend directory inside home.
func FileDataDir(home string) string {
	return filepath.Join(AppDir(home), DataDir)
}
