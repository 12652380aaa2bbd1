package config

import (
	"os"
	"testing"
)

func TestGetenv(t *testing.T) {
	// Test with empty environment variable
	os.Unsetenv("TEST_GETENV")
	result := getenv("TEST_GETENV", "default")
	if result != "default" {
		t.Errorf("Expected default value 'default', got '%s'", result)
	}

	// Test with set environment variable
	os.Setenv("TEST_GETENV", "test-value")
	result = getenv("TEST_GETENV", "default")
	if result != "test-value" {
		t.Errorf("Expected 'test-value', got '%s'", result)
	}

	// Clean up
	os.Unsetenv("TEST_GETENV")
}

func TestGetenvInt(t *testing.T) {
	// Test with empty environment variable
	os.Unsetenv("TEST_GETENV_INT")
	result := getenvInt("TEST_GETENV_INT", 42)
	if result != 42 {
		t.Errorf("Expected default value 42, got %d", result)
	}

	// Test with valid integer
	os.Setenv("TEST_GETENV_INT", "100")
	result = getenvInt("TEST_GETENV_INT", 42)
	if result != 100 {
		t.Errorf("Expected 100, got %d", result)
	}

	// Test with invalid integer
	os.Setenv("TEST_GETENV_INT", "not-an-int")
	result = getenvInt("TEST_GETENV_INT", 42)
	if result != 42 {
		t.Errorf("Expected default value 42, got %d", result)
	}

	// Clean up
	os.Unsetenv("TEST_GETENV_INT")
}

func TestGetenvFloat(t *testing.T) {
	// Test with empty environment variable
	os.Unsetenv("TEST_GETENV_FLOAT")
	result := getenvFloat("TEST_GETENV_FLOAT", 2.5)
	if result != 2.5 {
		t.Errorf("Expected default value 2.5, got %v", result)
	}

	// Test with valid float
	os.Setenv("TEST_GETENV_FLOAT", "10")
	result = getenvFloat("TEST_GETENV_FLOAT", 2.5)
	if result != 10 {
		t.Errorf("Expected 10, got %v", result)
	}

	// Test with invalid float
	os.Setenv("TEST_GETENV_FLOAT", "not-a-float")
	result = getenvFloat("TEST_GETENV_FLOAT", 2.5)
	if result != 2.5 {
		t.Errorf("Expected default value 2.5, got %v", result)
	}

	// Clean up
	os.Unsetenv("TEST_GETENV_FLOAT")
}

func TestGetenvBool(t *testing.T) {
	// Test with empty environment variable
	os.Unsetenv("TEST_GETENV_BOOL")
	result := getenvBool("TEST_GETENV_BOOL", true)
	if result != true {
		t.Errorf("Expected default value true, got %v", result)
	}

	// Test with valid boolean (true)
	os.Setenv("TEST_GETENV_BOOL", "true")
	result = getenvBool("TEST_GETENV_BOOL", false)
	if result != true {
		t.Errorf("Expected true, got %v", result)
	}

	// Test with valid boolean (false)
	os.Setenv("TEST_GETENV_BOOL", "false")
	result = getenvBool("TEST_GETENV_BOOL", true)
	if result != false {
		t.Errorf("Expected false, got %v", result)
	}

	// Test with invalid boolean
	os.Setenv("TEST_GETENV_BOOL", "not-a-bool")
	result = getenvBool("TEST_GETENV_BOOL", true)
	if result != true {
		t.Errorf("Expected default value true, got %v", result)
	}

	// Clean up
	os.Unsetenv("TEST_GETENV_BOOL")
}

func TestLoad(t *testing.T) {
	// Save original environment
	origEnv := make(map[string]string)
	envVars := []string{
		"SKILLJAR_API_KEY", "SKILLJAR_BASE_URL", "FETCH_PAGE_SIZE",
		"FETCH_OUTPUT_DIR", "FETCH_RATE_LIMIT_RPS", "FETCH_INSECURE_SKIP_VERIFY",
		"SFTP_HOST", "SFTP_PORT", "SFTP_USER",
		"SFTP_PASS", "SFTP_DIR", "SFTP_INSECURE_IGNORE_HOSTKEY",
	}

	for _, env := range envVars {
		origEnv[env] = os.Getenv(env)
		os.Unsetenv(env)
	}

	// Set test environment variables
	os.Setenv("SKILLJAR_API_KEY", "test-key")
	os.Setenv("SKILLJAR_BASE_URL", "https://skilljar.test")
	os.Setenv("FETCH_PAGE_SIZE", "50")
	os.Setenv("FETCH_OUTPUT_DIR", "out")
	os.Setenv("FETCH_RATE_LIMIT_RPS", "2.5")
	os.Setenv("FETCH_INSECURE_SKIP_VERIFY", "true")
	os.Setenv("SFTP_HOST", "sftp.test")
	os.Setenv("SFTP_PORT", "2222")
	os.Setenv("SFTP_USER", "sftp-user")
	os.Setenv("SFTP_PASS", "sftp-pass")
	os.Setenv("SFTP_DIR", "/test-upload")
	os.Setenv("SFTP_INSECURE_IGNORE_HOSTKEY", "false")

	// Test Load function
	cfg := Load()

	// Verify loaded values
	if cfg.APIKey != "test-key" {
		t.Errorf("Expected APIKey to be 'test-key', got '%s'", cfg.APIKey)
	}
	if cfg.BaseURL != "https://skilljar.test" {
		t.Errorf("Expected BaseURL to be 'https://skilljar.test', got '%s'", cfg.BaseURL)
	}
	if cfg.PageSize != 50 {
		t.Errorf("Expected PageSize to be 50, got %d", cfg.PageSize)
	}
	if cfg.RateLimitRPS != 2.5 {
		t.Errorf("Expected RateLimitRPS to be 2.5, got %v", cfg.RateLimitRPS)
	}
	if !cfg.InsecureSkipVerify {
		t.Error("Expected InsecureSkipVerify to be true")
	}
	if cfg.SFTPPort != 2222 {
		t.Errorf("Expected SFTPPort to be 2222, got %d", cfg.SFTPPort)
	}
	if cfg.SFTPInsecureIgnoreHostKey != false {
		t.Errorf("Expected SFTPInsecureIgnoreHostKey to be false, got %v", cfg.SFTPInsecureIgnoreHostKey)
	}

	// Test default values
	os.Unsetenv("SKILLJAR_BASE_URL")
	os.Unsetenv("FETCH_PAGE_SIZE")
	os.Unsetenv("FETCH_OUTPUT_DIR")
	os.Unsetenv("FETCH_RATE_LIMIT_RPS")
	os.Unsetenv("FETCH_INSECURE_SKIP_VERIFY")
	os.Unsetenv("SFTP_PORT")
	os.Unsetenv("SFTP_DIR")

	cfg = Load()
	if cfg.BaseURL != "https://api.skilljar.com" {
		t.Errorf("Expected default BaseURL to be 'https://api.skilljar.com', got '%s'", cfg.BaseURL)
	}
	if cfg.PageSize != 100 {
		t.Errorf("Expected default PageSize to be 100, got %d", cfg.PageSize)
	}
	if cfg.OutputDir != "downloads" {
		t.Errorf("Expected default OutputDir to be 'downloads', got '%s'", cfg.OutputDir)
	}
	if cfg.RateLimitRPS != 5 {
		t.Errorf("Expected default RateLimitRPS to be 5, got %v", cfg.RateLimitRPS)
	}
	if cfg.InsecureSkipVerify {
		t.Error("Expected default InsecureSkipVerify to be false")
	}
	if cfg.SFTPPort != 22 {
		t.Errorf("Expected default SFTPPort to be 22, got %d", cfg.SFTPPort)
	}
	if cfg.SFTPDir != "/" {
		t.Errorf("Expected default SFTPDir to be '/', got '%s'", cfg.SFTPDir)
	}

	// Restore original environment
	for env, val := range origEnv {
		if val != "" {
			os.Setenv(env, val)
		} else {
			os.Unsetenv(env)
		}
	}
}
