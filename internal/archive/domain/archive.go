package domain

import "time"

// Archive is a stored document record. The uploaded artifact itself lives on
// disk under the uploads directory; Archive only tracks metadata.
type Archive struct {
	ID          string
	Title       string // unique
	Description string
	AuthorID    string // foreign key to users, empty when the author is gone
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
