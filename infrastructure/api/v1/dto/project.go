package dto

import (
	"time"

	"github.com/hunterjackson/todoer-sub000/infrastructure/api/jsonapi"
)

// ProjectAttributes represents project attributes in JSON:API format.
type ProjectAttributes struct {
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	Position  int       `json:"position"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ProjectData represents a project in JSON:API format.
type ProjectData struct {
	Type       string            `json:"type"`
	ID         string            `json:"id"`
	Attributes ProjectAttributes `json:"attributes"`
}

// ProjectResponse represents a single project in JSON:API format.
type ProjectResponse struct {
	Data ProjectData `json:"data"`
}

// ProjectListResponse represents a list of projects in JSON:API format.
type ProjectListResponse struct {
	Data  []ProjectData  `json:"data"`
	Meta  *jsonapi.Meta  `json:"meta,omitempty"`
	Links *jsonapi.Links `json:"links,omitempty"`
}

// ProjectCreateAttributes represents the attributes for creating a project.
type ProjectCreateAttributes struct {
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	Position int    `json:"position,omitempty"`
}

// ProjectCreateData represents the data for creating a project.
type ProjectCreateData struct {
	Type       string                  `json:"type"`
	Attributes ProjectCreateAttributes `json:"attributes"`
}

// ProjectCreateRequest represents a JSON:API request to create a project.
type ProjectCreateRequest struct {
	Data ProjectCreateData `json:"data"`
}

// ProjectUpdateAttributes represents the attributes that can be updated.
type ProjectUpdateAttributes struct {
	Name     *string `json:"name,omitempty"`
	Color    *string `json:"color,omitempty"`
	Position *int    `json:"position,omitempty"`
}

// ProjectUpdateData represents the data for updating a project.
type ProjectUpdateData struct {
	Type       string                  `json:"type"`
	Attributes ProjectUpdateAttributes `json:"attributes"`
}

// ProjectUpdateRequest represents a JSON:API request to update a project.
type ProjectUpdateRequest struct {
	Data ProjectUpdateData `json:"data"`
}
