package dto

import (
	"time"

	"github.com/hunterjackson/todoer-sub000/infrastructure/api/jsonapi"
)

// SectionAttributes represents section attributes in JSON:API format.
type SectionAttributes struct {
	Name      string    `json:"name"`
	ProjectID string    `json:"project_id"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SectionData represents a section in JSON:API format.
type SectionData struct {
	Type       string            `json:"type"`
	ID         string            `json:"id"`
	Attributes SectionAttributes `json:"attributes"`
}

// SectionResponse represents a single section in JSON:API format.
type SectionResponse struct {
	Data SectionData `json:"data"`
}

// SectionListResponse represents a list of sections in JSON:API format.
type SectionListResponse struct {
	Data  []SectionData  `json:"data"`
	Meta  *jsonapi.Meta  `json:"meta,omitempty"`
	Links *jsonapi.Links `json:"links,omitempty"`
}

// SectionCreateAttributes represents the attributes for creating a section.
type SectionCreateAttributes struct {
	Name      string `json:"name"`
	ProjectID string `json:"project_id"`
	Position  int    `json:"position,omitempty"`
}

// SectionCreateData represents the data for creating a section.
type SectionCreateData struct {
	Type       string                  `json:"type"`
	Attributes SectionCreateAttributes `json:"attributes"`
}

// SectionCreateRequest represents a JSON:API request to create a section.
type SectionCreateRequest struct {
	Data SectionCreateData `json:"data"`
}

// SectionUpdateAttributes represents the attributes that can be updated.
type SectionUpdateAttributes struct {
	Name     *string `json:"name,omitempty"`
	Position *int    `json:"position,omitempty"`
}

// SectionUpdateData represents the data for updating a section.
type SectionUpdateData struct {
	Type       string                  `json:"type"`
	Attributes SectionUpdateAttributes `json:"attributes"`
}

// SectionUpdateRequest represents a JSON:API request to update a section.
type SectionUpdateRequest struct {
	Data SectionUpdateData `json:"data"`
}
