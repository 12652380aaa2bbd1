package config

import (
	"os"
	"strconv"
)

type Config struct {
	// Skilljar API
	APIKey   string
	BaseURL  string
	PageSize int

	// Fetch behavior
	OutputDir          string
	RateLimitRPS       float64
	InsecureSkipVerify bool

	// SFTP mirror
	SFTPHost                  string
	SFTPPort                  int
	SFTPUser                  string
	SFTPPass                  string
	SFTPDir                   string
	SFTPInsecureIgnoreHostKey bool
}

func Load() Config {
	return Config{
		// Skilljar
		APIKey:   os.Getenv("SKILLJAR_API_KEY"),
		BaseURL:  getenv("SKILLJAR_BASE_URL", "https://api.skilljar.com"),
		PageSize: getenvInt("FETCH_PAGE_SIZE", 100),

		// Fetch
		OutputDir:          getenv("FETCH_OUTPUT_DIR", "downloads"),
		RateLimitRPS:       getenvFloat("FETCH_RATE_LIMIT_RPS", 5),
		InsecureSkipVerify: getenvBool("FETCH_INSECURE_SKIP_VERIFY", false),

		// SFTP
		SFTPHost:                  os.Getenv("SFTP_HOST"),
		SFTPPort:                  getenvInt("SFTP_PORT", 22),
		SFTPUser:                  os.Getenv("SFTP_USER"),
		SFTPPass:                  os.Getenv("SFTP_PASS"),
		SFTPDir:                   getenv("SFTP_DIR", "/"),
		SFTPInsecureIgnoreHostKey: getenvBool("SFTP_INSECURE_IGNORE_HOSTKEY", false),
	}
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getenvBool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}
