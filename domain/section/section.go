// Package section provides the section entity.
package section

import "time"

// Section is a named slice of a project's task list. Section names are
// not unique, even within a project.
type Section struct {
	id        string
	name      string
	projectID string
	position  int
	createdAt time.Time
	updatedAt time.Time
}

// NewSection creates a Section with the given name inside a project.
func NewSection(name, projectID string) Section {
	return Section{name: name, projectID: projectID}
}

// ReconstructSection rebuilds a Section from persistence.
func ReconstructSection(id, name, projectID string, position int, createdAt, updatedAt time.Time) Section {
	return Section{
		id:        id,
		name:      name,
		projectID: projectID,
		position:  position,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the section identifier.
func (s Section) ID() string { return s.id }

// Name returns the section name.
func (s Section) Name() string { return s.name }

// ProjectID returns the owning project id.
func (s Section) ProjectID() string { return s.projectID }

// Position returns the manual sort position.
func (s Section) Position() int { return s.position }

// CreatedAt returns when the section was created.
func (s Section) CreatedAt() time.Time { return s.createdAt }

// UpdatedAt returns when the section was last updated.
func (s Section) UpdatedAt() time.Time { return s.updatedAt }

// WithID returns a copy with the given id.
func (s Section) WithID(id string) Section {
	s.id = id
	return s
}

// WithName returns a copy with the given name.
func (s Section) WithName(name string) Section {
	s.name = name
	return s
}

// WithPosition returns a copy with the given sort position.
func (s Section) WithPosition(position int) Section {
	s.position = position
	return s
}

// WithTimestamps returns a copy with the given timestamps.
func (s Section) WithTimestamps(createdAt, updatedAt time.Time) Section {
	s.createdAt = createdAt
	s.updatedAt = updatedAt
	return s
}
