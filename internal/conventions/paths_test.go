package conventions_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gurama/tasktracker/internal/conventions"
)

func TestPaths(t *testing.T) {
	assert.Equal(t, "/home/user/.tasktracker", conventions.AppDir("/home/user"))
	assert.Equal(t, "/home/user/.tasktracker/tasks.db", conventions.DBPath("/home/user"))
	assert.Equal(t, "/home/user/.tasktracker/data", conventions.FileDataDir("/home/user"))
	assert.Equal(t, "task-report.pdf", conventions.ReportFile)
}
