package store

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/mohit-bt/ayurveda-website/models"
	"github.com/mohit-bt/ayurveda-website/utils"
)

// ErrWrongPassword is returned when a presented password does not match the
// stored admin credential.
var ErrWrongPassword = errors.New("wrong password")

// seedCredentials bootstraps admin.json with the default password hash on
// first start. The default is announced on the console, as the site always
// has done, so a fresh install can be logged into.
func (s *Store) seedCredentials() error {
	path := s.config.CredentialsFile()
	if fileExists(path) {
		return nil
	}

	hash, err := utils.HashPassword(DefaultAdminPassword, s.config.BcryptCost)
	if err != nil {
		return err
	}

	s.credMu.Lock()
	defer s.credMu.Unlock()
	creds := models.Credentials{
		PasswordHash:      hash,
		PasswordChangedAt: time.Now().UTC(),
	}
	if err := s.writeJSONFile(path, creds); err != nil {
		return err
	}
	log.Printf("INFO: Created admin credentials file: %s", path)
	log.Printf("INFO: Default admin password: %s", DefaultAdminPassword)
	return nil
}

// readCredentials parses admin.json. Callers must hold at least a read lock.
// Unlike products and profile there is no usable default to fall back to, so
// read errors propagate.
func (s *Store) readCredentials() (models.Credentials, error) {
	path := s.config.CredentialsFile()
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("ERROR: Failed to read credentials file '%s': %v", path, err)
		return models.Credentials{}, err
	}
	var creds models.Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		log.Printf("ERROR: Failed to parse credentials file '%s': %v", path, err)
		return models.Credentials{}, err
	}
	return creds, nil
}

// CheckAdminPassword verifies a plaintext password against the stored hash.
// Returns ErrWrongPassword on mismatch.
func (s *Store) CheckAdminPassword(password string) error {
	s.credMu.RLock()
	defer s.credMu.RUnlock()

	creds, err := s.readCredentials()
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(password, creds.PasswordHash) {
		return ErrWrongPassword
	}
	return nil
}

// UpdateAdminPassword replaces the stored hash after verifying the current
// password, and stamps PasswordChangedAt so previously issued tokens stop
// validating. Policy checks (length, confirmation) belong to the handler.
func (s *Store) UpdateAdminPassword(currentPassword, newPassword string) error {
	s.credMu.Lock()
	defer s.credMu.Unlock()

	creds, err := s.readCredentials()
	if err != nil {
		return err
	}
	if !utils.CheckPasswordHash(currentPassword, creds.PasswordHash) {
		return ErrWrongPassword
	}

	hash, err := utils.HashPassword(newPassword, s.config.BcryptCost)
	if err != nil {
		return err
	}

	creds.PasswordHash = hash
	creds.PasswordChangedAt = time.Now().UTC()
	if err := s.writeJSONFile(s.config.CredentialsFile(), creds); err != nil {
		return err
	}

	log.Printf("INFO: Admin password updated")
	return nil
}

// PasswordChangedAt returns the timestamp of the most recent password
// change, or the zero time when the credential file cannot be read.
func (s *Store) PasswordChangedAt() time.Time {
	s.credMu.RLock()
	defer s.credMu.RUnlock()

	creds, err := s.readCredentials()
	if err != nil {
		return time.Time{}
	}
	return creds.PasswordChangedAt
}

// --- Token revocation (logout) ---

// RevokeToken marks a session token ID as logged out until its expiry.
func (s *Store) RevokeToken(tokenID string, expiry time.Time) {
	if tokenID == "" {
		return
	}
	s.revokedMu.Lock()
	defer s.revokedMu.Unlock()

	// Drop entries for tokens that have expired on their own.
	now := time.Now()
	for id, exp := range s.revoked {
		if now.After(exp) {
			delete(s.revoked, id)
		}
	}

	s.revoked[tokenID] = expiry
	log.Printf("INFO: Revoked session token %s", tokenID)
}

// IsTokenRevoked reports whether a session token ID was logged out.
func (s *Store) IsTokenRevoked(tokenID string) bool {
	s.revokedMu.Lock()
	defer s.revokedMu.Unlock()

	exp, found := s.revoked[tokenID]
	if !found {
		return false
	}
	if time.Now().After(exp) {
		delete(s.revoked, tokenID)
		return false
	}
	return true
}
