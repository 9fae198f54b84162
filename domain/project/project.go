// Package project provides the project entity.
package project

import "time"

// Project groups tasks. Project names are not unique.
type Project struct {
	id        string
	name      string
	color     string
	position  int
	createdAt time.Time
	updatedAt time.Time
}

// NewProject creates a Project with the given name.
func NewProject(name string) Project {
	return Project{name: name}
}

// ReconstructProject rebuilds a Project from persistence.
func ReconstructProject(id, name, color string, position int, createdAt, updatedAt time.Time) Project {
	return Project{
		id:        id,
		name:      name,
		color:     color,
		position:  position,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the project identifier.
func (p Project) ID() string { return p.id }

// Name returns the project name.
func (p Project) Name() string { return p.name }

// Color returns the display color.
func (p Project) Color() string { return p.color }

// Position returns the manual sort position.
func (p Project) Position() int { return p.position }

// CreatedAt returns when the project was created.
func (p Project) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns when the project was last updated.
func (p Project) UpdatedAt() time.Time { return p.updatedAt }

// WithID returns a copy with the given id.
func (p Project) WithID(id string) Project {
	p.id = id
	return p
}

// WithName returns a copy with the given name.
func (p Project) WithName(name string) Project {
	p.name = name
	return p
}

// WithColor returns a copy with the given color.
func (p Project) WithColor(color string) Project {
	p.color = color
	return p
}

// WithPosition returns a copy with the given sort position.
func (p Project) WithPosition(position int) Project {
	p.position = position
	return p
}

// WithTimestamps returns a copy with the given timestamps.
func (p Project) WithTimestamps(createdAt, updatedAt time.Time) Project {
	p.createdAt = createdAt
	p.updatedAt = updatedAt
	return p
}
