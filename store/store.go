// Package store persists the catalog in flat JSON files, one file per
// entity: products.json (array), profile.json (object), admin.json
// (credential record). Nothing is cached between requests; every operation
// round-trips through the filesystem. A per-file mutex serialises each
// read-modify-write so concurrent mutations cannot lose updates, and writes
// go through a temp file rename so a crash never leaves a half-written file.
package store

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/mohit-bt/ayurveda-website/config"
)

// ErrProductNotFound is returned when no product matches the requested id.
var ErrProductNotFound = errors.New("product not found")

// DefaultAdminPassword seeds admin.json on first start.
const DefaultAdminPassword = "admin123"

// Store owns the on-disk data files. Clients never touch the files directly.
type Store struct {
	config *config.Config

	productsMu sync.RWMutex
	profileMu  sync.RWMutex
	credMu     sync.RWMutex

	// Revoked session token IDs, kept in memory until their expiry.
	// Logout is best-effort by design; a restart forgets revocations.
	revokedMu sync.Mutex
	revoked   map[string]time.Time
}

// Open prepares the data and uploads directories and seeds any missing data
// files with their defaults. It never overwrites existing files.
func Open(cfg *config.Config) (*Store, error) {
	s := &Store{
		config:  cfg,
		revoked: make(map[string]time.Time),
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Printf("ERROR: Failed to create data directory '%s': %v", cfg.DataDir, err)
		return nil, err
	}
	if err := os.MkdirAll(cfg.UploadsDir, 0755); err != nil {
		log.Printf("ERROR: Failed to create uploads directory '%s': %v", cfg.UploadsDir, err)
		return nil, err
	}

	if err := s.seedProducts(); err != nil {
		return nil, err
	}
	if err := s.seedProfile(); err != nil {
		return nil, err
	}
	if err := s.seedCredentials(); err != nil {
		return nil, err
	}

	return s, nil
}

// writeJSONFile marshals v pretty-printed and writes it atomically:
// temp file first, optional .bak of the previous contents, then rename.
// Callers must hold the write lock for the file in question.
func (s *Store) writeJSONFile(path string, v any) error {
	jsonData, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Printf("ERROR: Failed to marshal data for '%s': %v", path, err)
		return err
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, jsonData, 0644); err != nil {
		log.Printf("ERROR: Failed to write temporary file '%s': %v", tempPath, err)
		return err
	}

	if s.config.EnableBackup {
		if _, err := os.Stat(path); err == nil {
			backupPath := path + ".bak"
			if err := os.Rename(path, backupPath); err != nil {
				// Not fatal; proceed with the save.
				log.Printf("WARN: Failed to rename '%s' to '%s' for backup: %v. Proceeding with save.", path, backupPath, err)
			}
		} else if !os.IsNotExist(err) {
			log.Printf("WARN: Error checking status of '%s' before backup: %v", path, err)
		}
	}

	if err := os.Rename(tempPath, path); err != nil {
		log.Printf("ERROR: Failed to rename temporary file '%s' to '%s': %v", tempPath, path, err)
		_ = os.Remove(tempPath)
		return err
	}

	return nil
}

// fileExists reports whether path names an existing file.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
