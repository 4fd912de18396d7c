//go:build integration
// +build integration

package integration

import (
	"fmt"
	"os"
	"testing"
	"time"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Endpoint string
	Email    string
	Password string
	Verbose  bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Endpoint: os.Getenv("TASKHUB_ENDPOINT"),
		Email:    os.Getenv("TASKHUB_EMAIL"),
		Password: os.Getenv("TASKHUB_PASSWORD"),
		Verbose:  os.Getenv("TASKHUB_VERBOSE") == "true",
	}
}

// SkipIfMissingConfig skips the test when no live API is configured
func (c *TestConfig) SkipIfMissingConfig(t *testing.T) {
	if c.Endpoint == "" {
		t.Skip("TASKHUB_ENDPOINT not set; skipping integration test")
	}
}

// GenerateTestName creates a unique name for test resources
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// GenerateTestEmail creates a unique email for test accounts
func GenerateTestEmail() string {
	return fmt.Sprintf("it-%d@taskhub.test", time.Now().UnixNano())
}
