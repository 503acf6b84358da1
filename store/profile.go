package store

import (
	"encoding/json"
	"log"
	"os"

	"github.com/mohit-bt/ayurveda-website/models"
)

// seedProfile writes the default profile on first start.
func (s *Store) seedProfile() error {
	path := s.config.ProfileFile()
	if fileExists(path) {
		return nil
	}
	s.profileMu.Lock()
	defer s.profileMu.Unlock()
	if err := s.writeJSONFile(path, models.DefaultProfile()); err != nil {
		return err
	}
	log.Printf("INFO: Created default profile file: %s", path)
	return nil
}

// GetProfile returns the singleton profile, or the hardcoded default when
// the file is missing or unreadable.
func (s *Store) GetProfile() (models.Profile, error) {
	s.profileMu.RLock()
	defer s.profileMu.RUnlock()

	path := s.config.ProfileFile()
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("ERROR: Failed to read profile file '%s': %v. Serving default.", path, err)
		}
		return models.DefaultProfile(), nil
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		log.Printf("ERROR: Failed to parse profile file '%s': %v. Serving default.", path, err)
		return models.DefaultProfile(), nil
	}
	return profile, nil
}

// ReplaceProfile overwrites the stored profile wholesale. There is no merge:
// fields absent from the given profile end up zero-valued in the file.
func (s *Store) ReplaceProfile(profile models.Profile) error {
	s.profileMu.Lock()
	defer s.profileMu.Unlock()

	if err := s.writeJSONFile(s.config.ProfileFile(), profile); err != nil {
		return err
	}
	log.Printf("INFO: Updated profile for company: %s", profile.CompanyName)
	return nil
}
