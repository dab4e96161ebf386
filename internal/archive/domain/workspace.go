package domain

import "time"

type Workspace struct {
	ID          string
	Name        string
	Slug        string
	Description string
	AuthorID    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
