package config

import (
	"crypto/rand"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration settings for the application.
type Config struct {
	// Server settings
	ListenAddress string
	ListenPort    string

	// Storage settings
	DataDir      string // Directory holding products.json, profile.json, admin.json
	UploadsDir   string // Directory for uploaded images, served under /uploads
	EnableBackup bool   // Keep a .bak of each data file before overwriting

	// Authentication settings
	JwtSecret     string // The actual secret key
	JwtSecretFile string // Path to the file containing the secret
	TokenLifetime time.Duration
	BcryptCost    int

	// Upload settings
	MaxUploadBytes int64
}

const (
	defaultAddress       = "0.0.0.0"
	defaultPort          = "3000"
	defaultDataDir       = "."
	defaultUploadsDir    = "./uploads"
	defaultEnableBackup  = true
	defaultJwtSecretFile = ""
	defaultJwtKeyFile    = "./ayurveda.key" // Created if we generate a key
	defaultTokenLifetime = 24 * time.Hour
	defaultBcryptCost    = 12
	defaultMaxUpload     = 5 * 1024 * 1024 // 5 MB, same cap as the upload endpoint advertises
)

// ProductsFile returns the path of the products catalog file.
func (c *Config) ProductsFile() string { return filepath.Join(c.DataDir, "products.json") }

// ProfileFile returns the path of the singleton profile file.
func (c *Config) ProfileFile() string { return filepath.Join(c.DataDir, "profile.json") }

// CredentialsFile returns the path of the admin credential file.
func (c *Config) CredentialsFile() string { return filepath.Join(c.DataDir, "admin.json") }

// LoadConfig loads configuration from defaults, a .env file, environment
// variables, and command-line flags. Flags take precedence over environment
// variables, which take precedence over defaults.
func LoadConfig() (*Config, error) {
	// A .env file is optional; ignore the error when it is absent.
	_ = godotenv.Load()

	cfg := &Config{}

	flag.StringVar(&cfg.ListenAddress, "address", getEnv("AYURVEDA_LISTEN_ADDRESS", defaultAddress), "Server listen address (Env: AYURVEDA_LISTEN_ADDRESS)")
	// Define flag with the ultimate default. Env vars (PORT per deployment
	// convention, then AYURVEDA_LISTEN_PORT) are checked after parsing.
	flag.StringVar(&cfg.ListenPort, "port", defaultPort, "Server listen port (Env: PORT or AYURVEDA_LISTEN_PORT)")
	flag.StringVar(&cfg.DataDir, "data-dir", getEnv("AYURVEDA_DATA_DIR", defaultDataDir), "Directory for JSON data files (Env: AYURVEDA_DATA_DIR)")
	flag.StringVar(&cfg.UploadsDir, "uploads-dir", getEnv("AYURVEDA_UPLOADS_DIR", defaultUploadsDir), "Directory for uploaded images (Env: AYURVEDA_UPLOADS_DIR)")
	flag.BoolVar(&cfg.EnableBackup, "enable-backup", getEnvBool("AYURVEDA_ENABLE_BACKUP", defaultEnableBackup), "Keep .bak copies of data files before overwriting (Env: AYURVEDA_ENABLE_BACKUP)")
	flag.StringVar(&cfg.JwtSecretFile, "jwt-secret-file", getEnv("AYURVEDA_JWT_SECRET_FILE", defaultJwtSecretFile), "Path to file containing JWT secret key (overrides AYURVEDA_JWT_SECRET env var) (Env: AYURVEDA_JWT_SECRET_FILE)")

	// Non-configurable defaults
	cfg.TokenLifetime = defaultTokenLifetime
	cfg.BcryptCost = defaultBcryptCost
	cfg.MaxUploadBytes = defaultMaxUpload

	flag.Parse()

	// --- Post-Flag Parsing Adjustments ---
	// Allow env vars to override defaults when the flag was not provided.
	if cfg.ListenPort == defaultPort {
		if envPort := getEnv("PORT", ""); envPort != "" {
			cfg.ListenPort = envPort
		} else if envPort := getEnv("AYURVEDA_LISTEN_PORT", ""); envPort != "" {
			cfg.ListenPort = envPort
		}
	}

	if envDataDir := getEnv("AYURVEDA_DATA_DIR", ""); cfg.DataDir == defaultDataDir && envDataDir != "" {
		cfg.DataDir = envDataDir
	}
	if envUploadsDir := getEnv("AYURVEDA_UPLOADS_DIR", ""); cfg.UploadsDir == defaultUploadsDir && envUploadsDir != "" {
		cfg.UploadsDir = envUploadsDir
	}
	if envJwtSecretFile := getEnv("AYURVEDA_JWT_SECRET_FILE", ""); cfg.JwtSecretFile == defaultJwtSecretFile && envJwtSecretFile != "" {
		cfg.JwtSecretFile = envJwtSecretFile
	}

	// --- JWT Secret Handling ---
	// Priority: File (CLI/Env) > Env Var > Default Key File > Generate
	var secretSource string

	// 1. Check explicit file path (from flag or AYURVEDA_JWT_SECRET_FILE env)
	if cfg.JwtSecretFile != "" {
		secretBytes, err := os.ReadFile(cfg.JwtSecretFile)
		if err == nil {
			cfg.JwtSecret = strings.TrimSpace(string(secretBytes))
			if cfg.JwtSecret != "" {
				log.Printf("INFO: Loaded JWT secret from specified file: %s", cfg.JwtSecretFile)
				secretSource = fmt.Sprintf("File (%s)", cfg.JwtSecretFile)
			} else {
				log.Printf("WARN: Specified JWT secret file '%s' is empty or contains only whitespace. Ignoring.", cfg.JwtSecretFile)
			}
		} else {
			log.Printf("WARN: Failed to read specified JWT secret file '%s': %v. Checking other sources.", cfg.JwtSecretFile, err)
		}
	}

	// 2. Check environment variable (AYURVEDA_JWT_SECRET) if not loaded from file
	if cfg.JwtSecret == "" {
		cfg.JwtSecret = strings.TrimSpace(getEnv("AYURVEDA_JWT_SECRET", ""))
		if cfg.JwtSecret != "" {
			log.Printf("INFO: Loaded JWT secret from AYURVEDA_JWT_SECRET environment variable.")
			secretSource = "Environment Variable (AYURVEDA_JWT_SECRET)"
		}
	}

	// 3. Check default key file if still no secret
	if cfg.JwtSecret == "" {
		secretBytes, err := os.ReadFile(defaultJwtKeyFile)
		if err == nil {
			cfg.JwtSecret = strings.TrimSpace(string(secretBytes))
			if cfg.JwtSecret != "" {
				log.Printf("INFO: Loaded JWT secret from default key file: %s", defaultJwtKeyFile)
				secretSource = fmt.Sprintf("Default Key File (%s)", defaultJwtKeyFile)
			} else {
				log.Printf("WARN: Default JWT key file '%s' is empty or contains only whitespace. Will attempt generation.", defaultJwtKeyFile)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("WARN: Failed to read default JWT key file '%s': %v. Will attempt generation.", defaultJwtKeyFile, err)
		}
	}

	// 4. Generate secret if still not found and save to default file
	if cfg.JwtSecret == "" {
		log.Printf("INFO: JWT secret not found via file, environment variable, or default key file. Generating a new secret...")
		newSecret, err := generateRandomKey(32)
		if err != nil {
			return nil, fmt.Errorf("failed to generate JWT secret: %w", err)
		}
		cfg.JwtSecret = newSecret

		if err := os.WriteFile(defaultJwtKeyFile, []byte(newSecret), 0600); err != nil {
			log.Printf("WARN: Failed to save generated JWT secret to '%s': %v. The server will use the generated key for this session only.", defaultJwtKeyFile, err)
			secretSource = "Generated (In Memory)"
		} else {
			log.Printf("INFO: Successfully generated and saved new JWT secret to: %s", defaultJwtKeyFile)
			secretSource = fmt.Sprintf("Generated & Saved (%s)", defaultJwtKeyFile)
		}
	}

	if cfg.JwtSecret == "" {
		return nil, fmt.Errorf("failed to obtain a valid JWT secret after checking all sources and attempting generation")
	}

	// --- Path Validation ---
	absDataDir, err := filepath.Abs(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("could not determine absolute path for data-dir '%s': %w", cfg.DataDir, err)
	}
	cfg.DataDir = absDataDir

	absUploadsDir, err := filepath.Abs(cfg.UploadsDir)
	if err != nil {
		return nil, fmt.Errorf("could not determine absolute path for uploads-dir '%s': %w", cfg.UploadsDir, err)
	}
	cfg.UploadsDir = absUploadsDir

	if fileInfo, err := os.Stat(cfg.DataDir); err == nil && !fileInfo.IsDir() {
		return nil, fmt.Errorf("data directory '%s' points to a file, not a directory", cfg.DataDir)
	}
	// A missing data dir is fine; the store creates it on first run.

	logConfiguration(cfg, secretSource)

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvBool retrieves a boolean environment variable or returns a default value.
// Recognizes "true", "1", "yes" (case-insensitive) as true.
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		switch strings.ToLower(value) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
		log.Printf("WARN: Invalid boolean value for environment variable %s: '%s'. Using default: %t", key, value, fallback)
	}
	return fallback
}

// logConfiguration prints the loaded configuration settings.
func logConfiguration(cfg *Config, secretSource string) {
	log.Println("--- Configuration ---")
	log.Printf("Server Address: %s", cfg.ListenAddress)
	log.Printf("Server Port: %s", cfg.ListenPort)
	log.Printf("Data Directory: %s", cfg.DataDir)
	log.Printf("Uploads Directory: %s", cfg.UploadsDir)
	log.Printf("Data File Backups Enabled: %t", cfg.EnableBackup)
	log.Printf("JWT Secret Source: %s", secretSource)
	log.Printf("JWT Token Lifetime: %s", cfg.TokenLifetime)
	log.Printf("Bcrypt Cost: %d", cfg.BcryptCost)
	log.Printf("Max Upload Size: %d bytes", cfg.MaxUploadBytes)
	log.Println("---------------------")
}

// generateRandomKey generates a cryptographically secure random key of the
// specified byte length and returns it as a hex-encoded string.
func generateRandomKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
