package model

import (
	"strings"
	"time"
)

// Profile is a user's health profile. The PII fields (DateOfBirth,
// Conditions, Medications, Allergies) are encrypted at rest by the data
// layer; values on this struct are always plaintext.
type Profile struct {
	ID          string    `db:"id"           json:"id"`
	UserID      string    `db:"user_id"      json:"userId"`
	DisplayName string    `db:"display_name" json:"displayName"`
	DateOfBirth string    `db:"date_of_birth" json:"dateOfBirth,omitempty"`
	Sex         string    `db:"sex"          json:"sex,omitempty"`
	HeightCm    int       `db:"height_cm"    json:"heightCm,omitempty"`
	WeightKg    float64   `db:"weight_kg"    json:"weightKg,omitempty"`
	Conditions  []string  `db:"conditions"   json:"conditions"`
	Medications []string  `db:"medications"  json:"medications"`
	Allergies   []string  `db:"allergies"    json:"allergies"`
	CreatedAt   time.Time `db:"created_at"   json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at"   json:"updatedAt"`
}

// UpsertProfileRequest carries the writable profile fields.
type UpsertProfileRequest struct {
	DisplayName string   `json:"displayName"`
	DateOfBirth string   `json:"dateOfBirth"`
	Sex         string   `json:"sex"`
	HeightCm    int      `json:"heightCm"`
	WeightKg    float64  `json:"weightKg"`
	Conditions  []string `json:"conditions"`
	Medications []string `json:"medications"`
	Allergies   []string `json:"allergies"`
}

// Summary renders a compact plaintext description of the profile for use in
// tip-generation prompts. Empty fields are omitted.
func (p Profile) Summary() string {
	var parts []string
	if p.Sex != "" {
		parts = append(parts, "sex: "+p.Sex)
	}
	if p.DateOfBirth != "" {
		parts = append(parts, "date of birth: "+p.DateOfBirth)
	}
	if len(p.Conditions) > 0 {
		parts = append(parts, "conditions: "+strings.Join(p.Conditions, ", "))
	}
	if len(p.Medications) > 0 {
		parts = append(parts, "medications: "+strings.Join(p.Medications, ", "))
	}
	if len(p.Allergies) > 0 {
		parts = append(parts, "allergies: "+strings.Join(p.Allergies, ", "))
	}
	return strings.Join(parts, "; ")
}
