package persistence

import "time"

// TaskModel represents a task in the database.
//
// DeletedAt is a plain nullable timestamp, not a GORM soft-delete column:
// deleted tasks must stay visible to queries so the filter engine can
// decide whether to include them.
type TaskModel struct {
	ID             string     `gorm:"column:id;primaryKey;size:36"`
	Content        string     `gorm:"column:content;type:text"`
	Description    string     `gorm:"column:description;type:text"`
	ProjectID      string     `gorm:"column:project_id;index;size:36"`
	SectionID      string     `gorm:"column:section_id;index;size:36"`
	Priority       int        `gorm:"column:priority;index;default:4"`
	Completed      bool       `gorm:"column:completed;index;default:false"`
	DeletedAt      *time.Time `gorm:"column:deleted_at;index"`
	DueDate        *time.Time `gorm:"column:due_date;index"`
	Deadline       *time.Time `gorm:"column:deadline"`
	Duration       int        `gorm:"column:duration;default:0"`
	RecurrenceRule string     `gorm:"column:recurrence_rule;size:255"`
	DelegatedTo    string     `gorm:"column:delegated_to;index;size:255"`
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (TaskModel) TableName() string {
	return "tasks"
}

// ProjectModel represents a project in the database.
type ProjectModel struct {
	ID        string    `gorm:"column:id;primaryKey;size:36"`
	Name      string    `gorm:"column:name;index;size:255"`
	Color     string    `gorm:"column:color;size:32"`
	Position  int       `gorm:"column:position;default:0"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (ProjectModel) TableName() string {
	return "projects"
}

// LabelModel represents a label in the database.
type LabelModel struct {
	ID        string    `gorm:"column:id;primaryKey;size:36"`
	Name      string    `gorm:"column:name;index;size:255"`
	Color     string    `gorm:"column:color;size:32"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (LabelModel) TableName() string {
	return "labels"
}

// SectionModel represents a section within a project in the database.
type SectionModel struct {
	ID        string    `gorm:"column:id;primaryKey;size:36"`
	Name      string    `gorm:"column:name;index;size:255"`
	ProjectID string    `gorm:"column:project_id;index;size:36"`
	Position  int       `gorm:"column:position;default:0"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

// TableName returns the table name.
func (SectionModel) TableName() string {
	return "sections"
}

// TaskLabelModel links tasks to labels.
type TaskLabelModel struct {
	TaskID    string    `gorm:"column:task_id;primaryKey;index;size:36"`
	LabelID   string    `gorm:"column:label_id;primaryKey;index;size:36"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName returns the table name.
func (TaskLabelModel) TableName() string {
	return "task_labels"
}
