// Package dto contains request and response shapes for the v1 API.
package dto

import (
	"time"

	"github.com/hunterjackson/todoer-sub000/infrastructure/api/jsonapi"
)

// TaskAttributes represents task attributes in JSON:API format.
type TaskAttributes struct {
	Content     string     `json:"content"`
	Description string     `json:"description,omitempty"`
	ProjectID   string     `json:"project_id,omitempty"`
	SectionID   string     `json:"section_id,omitempty"`
	Labels      []string   `json:"labels,omitempty"`
	Priority    int        `json:"priority"`
	Completed   bool       `json:"completed"`
	Deleted     bool       `json:"deleted,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Duration    int        `json:"duration,omitempty"`
	Recurrence  string     `json:"recurrence,omitempty"`
	DelegatedTo string     `json:"delegated_to,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TaskData represents a task in JSON:API format.
type TaskData struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	Attributes TaskAttributes `json:"attributes"`
}

// TaskResponse represents a single task in JSON:API format.
type TaskResponse struct {
	Data TaskData `json:"data"`
}

// TaskListResponse represents a list of tasks in JSON:API format.
type TaskListResponse struct {
	Data  []TaskData     `json:"data"`
	Meta  *jsonapi.Meta  `json:"meta,omitempty"`
	Links *jsonapi.Links `json:"links,omitempty"`
}

// TaskCreateAttributes represents the attributes for creating a task.
type TaskCreateAttributes struct {
	Content     string     `json:"content"`
	Description string     `json:"description,omitempty"`
	ProjectID   string     `json:"project_id,omitempty"`
	SectionID   string     `json:"section_id,omitempty"`
	LabelIDs    []string   `json:"label_ids,omitempty"`
	Priority    int        `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Duration    int        `json:"duration,omitempty"`
	Recurrence  string     `json:"recurrence,omitempty"`
	DelegatedTo string     `json:"delegated_to,omitempty"`
}

// TaskCreateData represents the data for creating a task.
type TaskCreateData struct {
	Type       string               `json:"type"`
	Attributes TaskCreateAttributes `json:"attributes"`
}

// TaskCreateRequest represents a JSON:API request to create a task.
type TaskCreateRequest struct {
	Data TaskCreateData `json:"data"`
}

// TaskUpdateAttributes represents the attributes that can be updated.
// Absent fields are left unchanged.
type TaskUpdateAttributes struct {
	Content     *string    `json:"content,omitempty"`
	Description *string    `json:"description,omitempty"`
	ProjectID   *string    `json:"project_id,omitempty"`
	SectionID   *string    `json:"section_id,omitempty"`
	LabelIDs    *[]string  `json:"label_ids,omitempty"`
	Priority    *int       `json:"priority,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Deadline    *time.Time `json:"deadline,omitempty"`
	Duration    *int       `json:"duration,omitempty"`
	Recurrence  *string    `json:"recurrence,omitempty"`
	DelegatedTo *string    `json:"delegated_to,omitempty"`
}

// TaskUpdateData represents the data for updating a task.
type TaskUpdateData struct {
	Type       string               `json:"type"`
	Attributes TaskUpdateAttributes `json:"attributes"`
}

// TaskUpdateRequest represents a JSON:API request to update a task.
type TaskUpdateRequest struct {
	Data TaskUpdateData `json:"data"`
}
