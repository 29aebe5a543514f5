package domain

import (
	"errors"
	"time"
)

// DefaultOfficeStatus is the office-status label applied to projects
// that do not specify one.
const DefaultOfficeStatus = "Off Office"

// Common validation errors for Project
var (
	ErrEmptyProjectKunde = errors.New("project client name cannot be empty")
	ErrEmptyProjectTitel = errors.New("project title cannot be empty")
	ErrEmptyProjectDatum = errors.New("project date cannot be empty")
)

// Project represents a planning project submitted by a client.
// The ID is assigned by the store on insert and is zero until then.
type Project struct {
	ID        int64  `json:"id"`
	Kunde     string `json:"kunde"`
	Titel     string `json:"titel"`
	Datum     string `json:"datum"`
	OffOffice string `json:"offOffice"`
	Notizen   string `json:"notizen"`

	CreatedAt time.Time `json:"created_at"`
}

// NewProject creates a new Project with the given client name, title and date.
// The office-status label defaults to DefaultOfficeStatus when empty and
// notes default to the empty string. Returns an error if validation fails.
func NewProject(kunde, titel, datum, offOffice, notizen string) (*Project, error) {
	if offOffice == "" {
		offOffice = DefaultOfficeStatus
	}

	project := &Project{
		Kunde:     kunde,
		Titel:     titel,
		Datum:     datum,
		OffOffice: offOffice,
		Notizen:   notizen,
		CreatedAt: time.Now().UTC(),
	}

	if err := project.Validate(); err != nil {
		return nil, err
	}

	return project, nil
}

// Validate checks if the Project has valid data.
// Returns an error if any required field is missing.
func (p *Project) Validate() error {
	if p.Kunde == "" {
		return ErrEmptyProjectKunde
	}

	if p.Titel == "" {
		return ErrEmptyProjectTitel
	}

	if p.Datum == "" {
		return ErrEmptyProjectDatum
	}

	return nil
}
