package model

// Resource is a normalized health-information result aggregated from
// third-party APIs. Source identifies the upstream provider.
type Resource struct {
	Source  string `json:"source"`
	Title   string `json:"title"`
	URL     string `json:"url"`
	Snippet string `json:"snippet,omitempty"`
}

// Resource source identifiers.
const (
	SourceMedlinePlus  = "medlineplus"
	SourceHealthFinder = "healthfinder"
)
