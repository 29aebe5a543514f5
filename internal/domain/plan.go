package domain

// PlannedTask is the transient task shape produced by the generation
// pipeline before a project exists to own it. All fields are free text;
// absent fields default to the empty string, never to null.
type PlannedTask struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Responsible  string `json:"responsible"`
	Dependencies string `json:"dependencies,omitempty"`
}

// TaskPlan is the structured result of extracting a generator response:
// an ordered sequence of planned tasks plus the category labels the
// generator proposed. It is never persisted as its own entity; it is
// either returned to the caller or converted into Task rows during save.
type TaskPlan struct {
	Tasks      []PlannedTask `json:"tasks"`
	Categories []string      `json:"categories"`
}
