package web

// SectionInfo describes one document in the sections listing.
type SectionInfo struct {
	Section   string `json:"section" example:"modules"`
	File      string `json:"file" example:"education_modules.json"`
	Singleton bool   `json:"singleton"`
	Checksum  string `json:"checksum,omitempty" example:"abc123..."`
	Empty     bool   `json:"empty"`
}

// SectionPayload carries one typed document with its checksum.
type SectionPayload struct {
	Section  string `json:"section" example:"modules"`
	Checksum string `json:"checksum" example:"abc123..."`
	Data     any    `json:"data"`
}

// SectionListResponse wraps the sections listing.
type SectionListResponse struct {
	Sections []SectionInfo `json:"sections" validate:"required"`
}

// PublishRequest is the request body for publishing the site.
type PublishRequest struct {
	Message string `json:"message,omitempty" example:"Update portfolio content"`
}

// PublishResponse is returned after a successful publish.
type PublishResponse struct {
	Output string `json:"output"`
}
