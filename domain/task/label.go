package task

// Label is a named tag attached to a task. Label names are not unique;
// the id disambiguates.
type Label struct {
	id   string
	name string
}

// NewLabel creates a Label.
func NewLabel(id, name string) Label {
	return Label{id: id, name: name}
}

// ID returns the label identifier.
func (l Label) ID() string { return l.id }

// Name returns the label name.
func (l Label) Name() string { return l.name }
