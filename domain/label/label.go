// Package label provides the label entity.
package label

import "time"

// Label is a cross-project tag. Label names are not unique.
type Label struct {
	id        string
	name      string
	color     string
	createdAt time.Time
	updatedAt time.Time
}

// NewLabel creates a Label with the given name.
func NewLabel(name string) Label {
	return Label{name: name}
}

// ReconstructLabel rebuilds a Label from persistence.
func ReconstructLabel(id, name, color string, createdAt, updatedAt time.Time) Label {
	return Label{
		id:        id,
		name:      name,
		color:     color,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// ID returns the label identifier.
func (l Label) ID() string { return l.id }

// Name returns the label name.
func (l Label) Name() string { return l.name }

// Color returns the display color.
func (l Label) Color() string { return l.color }

// CreatedAt returns when the label was created.
func (l Label) CreatedAt() time.Time { return l.createdAt }

// UpdatedAt returns when the label was last updated.
func (l Label) UpdatedAt() time.Time { return l.updatedAt }

// WithID returns a copy with the given id.
func (l Label) WithID(id string) Label {
	l.id = id
	return l
}

// WithName returns a copy with the given name.
func (l Label) WithName(name string) Label {
	l.name = name
	return l
}

// WithColor returns a copy with the given color.
func (l Label) WithColor(color string) Label {
	l.color = color
	return l
}

// WithTimestamps returns a copy with the given timestamps.
func (l Label) WithTimestamps(createdAt, updatedAt time.Time) Label {
	l.createdAt = createdAt
	l.updatedAt = updatedAt
	return l
}
