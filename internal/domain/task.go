package domain

import "errors"

// Common validation errors for Task
var (
	ErrMissingTaskProject = errors.New("task project ID cannot be zero")
)

// Task represents a single scheduling task belonging to exactly one Project.
// Every persisted Task references an existing project row; the pairing is
// enforced by writing the project and its tasks in one transaction.
type Task struct {
	ID           int64  `json:"id"`
	ProjectID    int64  `json:"project_id"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Responsible  string `json:"responsible"`
	Dependencies string `json:"dependencies"`
}

// NewTask creates a Task bound to the given project from a transient
// planned task. Every text field keeps its empty-string default: plans
// come from a lenient normalization pass that fills gaps with "", and a
// defaulted field must persist as-is rather than fail the save.
func NewTask(projectID int64, planned PlannedTask) (*Task, error) {
	task := &Task{
		ProjectID:    projectID,
		Name:         planned.Name,
		Category:     planned.Category,
		Start:        planned.Start,
		End:          planned.End,
		Responsible:  planned.Responsible,
		Dependencies: planned.Dependencies,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data. Only the project binding
// is required; all text fields, the name included, may be empty.
func (t *Task) Validate() error {
	if t.ProjectID == 0 {
		return ErrMissingTaskProject
	}

	return nil
}
