package model

import "time"

// Tip is an AI-generated actionable health suggestion.
type Tip struct {
	Text        string    `json:"text"`
	GeneratedAt time.Time `json:"generatedAt"`
	// Cached reports whether the tip was served from the Redis cache rather
	// than a fresh model call.
	Cached bool `json:"cached"`
}
