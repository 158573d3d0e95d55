package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("project not found")

// DefaultDescription fills in for project records written without one.
const DefaultDescription = "No description provided"

// UnknownCreatedAt is the rendering of a missing creation timestamp.
const UnknownCreatedAt = "unknown"

// Project is a project document. The same record is written twice with the
// same id: once into the global AllProjects registry and once into the
// owner's users/{uid}/projects registry. Field names match the documents the
// web client already wrote.
type Project struct {
	ID          string    `firestore:"id" json:"id"`
	Name        string    `firestore:"name" json:"name"`
	Description string    `firestore:"description" json:"description"`
	CreatedAt   time.Time `firestore:"createdAt" json:"createdAt"`
	OwnerID     string    `firestore:"userId" json:"userId"`
	OwnerEmail  string    `firestore:"userEmail" json:"userEmail"`
	TaskIDs     []string  `firestore:"tasks" json:"tasks"`
}

// Owner identifies the account a new project is created under.
type Owner struct {
	UID   string
	Email string
}

// ApplyReadDefaults fills optional fields that older records may lack.
// A read never fails over a missing description or timestamp.
func (p *Project) ApplyReadDefaults() {
	if p.Description == "" {
		p.Description = DefaultDescription
	}
	if p.TaskIDs == nil {
		p.TaskIDs = []string{}
	}
}

// CreatedAtLabel renders the creation time, or the unknown marker for
// records written without one.
func (p *Project) CreatedAtLabel() string {
	if p.CreatedAt.IsZero() {
		return UnknownCreatedAt
	}
	return p.CreatedAt.UTC().Format(time.RFC3339)
}
