package storage

// WithID filters by the "id" column.
func WithID(id string) Option {
	return WithCondition("id", id)
}

// WithIDIn filters by the "id" column using IN.
func WithIDIn(ids []string) Option {
	return WithConditionIn("id", ids)
}

// WithName filters by the "name" column.
func WithName(name string) Option {
	return WithCondition("name", name)
}

// WithProjectID filters by the "project_id" column.
func WithProjectID(id string) Option {
	return WithCondition("project_id", id)
}

// WithSectionID filters by the "section_id" column.
func WithSectionID(id string) Option {
	return WithCondition("section_id", id)
}

// WithCompleted filters by the "completed" column.
func WithCompleted(completed bool) Option {
	return WithCondition("completed", completed)
}

// WithPriority filters by the "priority" column.
func WithPriority(priority int) Option {
	return WithCondition("priority", priority)
}
