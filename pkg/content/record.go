// Package content stores content records and resolves the summary fields
// (title, public link, edit link, icon) shown in the admin sidebar.
package content

import "time"

// Status of a record.
type Status string

const (
	StatusPublished Status = "published"
	StatusDraft     Status = "draft"
	StatusHeld      Status = "held"
)

// Record is one stored content item.
type Record struct {
	ID          int64     `yaml:"-" json:"id"`
	ContentType string    `yaml:"contenttype" json:"contenttype"`
	Title       string    `yaml:"title" json:"title"`
	Slug        string    `yaml:"slug" json:"slug"`
	Icon        string    `yaml:"icon" json:"icon,omitempty"`
	Status      Status    `yaml:"status" json:"status"`
	ModifiedAt  time.Time `yaml:"modified_at" json:"modified_at"`
}
