package models

import "time"

// Product is a single catalog entry. IDs are Unix-millisecond timestamps
// assigned at creation time by the store.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       string  `json:"price"` // Display string, currency symbol included (e.g. "₹450")
	Details     Details `json:"details"`
	Image       *string `json:"image"` // Data URI or /uploads path; null when unset
}

// Profile is the singleton business/doctor record shown on the catalog site.
// There is exactly one instance; PUT replaces it wholesale.
type Profile struct {
	CompanyName     string  `json:"companyName"`
	DoctorName      string  `json:"doctorName"`
	Tagline         string  `json:"tagline"`
	Phone           string  `json:"phone"`
	Email           string  `json:"email"`
	Address         string  `json:"address"`
	AboutParagraph1 string  `json:"aboutParagraph1"`
	AboutParagraph2 string  `json:"aboutParagraph2"`
	Image           *string `json:"image"`
}

// Credentials is the single admin login record persisted in admin.json.
// PasswordChangedAt lets the auth middleware reject tokens issued before the
// most recent password change.
type Credentials struct {
	PasswordHash      string    `json:"password_hash"`
	PasswordChangedAt time.Time `json:"password_changed_at"` // UTC
}
