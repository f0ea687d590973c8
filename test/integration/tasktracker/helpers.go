package tasktracker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gurama/tasktracker/test/integration/testutils"
)

// Config holds integration test configuration loaded from environment variables.
type Config struct {
	Binary string
}

func (c *Config) defaults() error {
	if c.Binary == "" {
		return fmt.Errorf("tasktracker binary path is required (TASKTRACKER_INTEGRATION_BINARY)")
	}

	// go test changes the CWD to the test package directory, relative paths
	// would point to the wrong place.
	if !filepath.IsAbs(c.Binary) {
		return fmt.Errorf("TASKTRACKER_INTEGRATION_BINARY must be an absolute path, got %q", c.Binary)
	}
	if _, err := os.Stat(c.Binary); err != nil {
		return fmt.Errorf("tasktracker binary not found at %q: %w", c.Binary, err)
	}

	return nil
}

// NewConfig loads integration test configuration from environment variables.
// If the config is invalid or the activation env var is not set, the test is skipped.
func NewConfig(t *testing.T) Config {
	t.Helper()

	const (
		envActivation = "TASKTRACKER_INTEGRATION"
		envBinary     = "TASKTRACKER_INTEGRATION_BINARY"
	)

	if os.Getenv(envActivation) != "true" {
		t.Skipf("Skipping integration test: %s is not set to 'true'", envActivation)
	}

	c := Config{Binary: os.Getenv(envBinary)}
	if err := c.defaults(); err != nil {
		t.Skipf("Skipping due to invalid config: %s", err)
	}

	return c
}

// RunCmd runs a tasktracker command against a specific db path with logging disabled.
func RunCmd(ctx context.Context, config Config, dbPath string, args ...string) (stdout, stderr []byte, err error) {
	args = append([]string{"--db-path", dbPath}, args...)
	return testutils.RunTaskTracker(ctx, nil, config.Binary, args, true)
}
