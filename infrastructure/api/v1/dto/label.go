package dto

import (
	"time"

	"github.com/hunterjackson/todoer-sub000/infrastructure/api/jsonapi"
)

// LabelAttributes represents label attributes in JSON:API format.
type LabelAttributes struct {
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LabelData represents a label in JSON:API format.
type LabelData struct {
	Type       string          `json:"type"`
	ID         string          `json:"id"`
	Attributes LabelAttributes `json:"attributes"`
}

// LabelResponse represents a single label in JSON:API format.
type LabelResponse struct {
	Data LabelData `json:"data"`
}

// LabelListResponse represents a list of labels in JSON:API format.
type LabelListResponse struct {
	Data  []LabelData    `json:"data"`
	Meta  *jsonapi.Meta  `json:"meta,omitempty"`
	Links *jsonapi.Links `json:"links,omitempty"`
}

// LabelCreateAttributes represents the attributes for creating a label.
type LabelCreateAttributes struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// LabelCreateData represents the data for creating a label.
type LabelCreateData struct {
	Type       string                `json:"type"`
	Attributes LabelCreateAttributes `json:"attributes"`
}

// LabelCreateRequest represents a JSON:API request to create a label.
type LabelCreateRequest struct {
	Data LabelCreateData `json:"data"`
}

// LabelUpdateAttributes represents the attributes that can be updated.
type LabelUpdateAttributes struct {
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
}

// LabelUpdateData represents the data for updating a label.
type LabelUpdateData struct {
	Type       string                `json:"type"`
	Attributes LabelUpdateAttributes `json:"attributes"`
}

// LabelUpdateRequest represents a JSON:API request to update a label.
type LabelUpdateRequest struct {
	Data LabelUpdateData `json:"data"`
}
