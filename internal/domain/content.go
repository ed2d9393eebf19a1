package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category groups subjects on the learning home page.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
	CoverPath   *string
	SortOrder   int
	IsPublished bool
	CreatedAt   time.Time
}

// Subject is a course inside a category.
type Subject struct {
	ID          uuid.UUID
	CategoryID  uuid.UUID
	Title       string
	Description string
	CoverPath   *string
	SortOrder   int
	IsPublished bool
	CreatedAt   time.Time
}

// Episode is a single lesson of a subject. Points are awarded on completion.
type Episode struct {
	ID              uuid.UUID
	SubjectID       uuid.UUID
	Title           string
	Description     string
	VideoURL        string
	DurationSeconds int
	Points          int
	SortOrder       int
	IsPublished     bool
	CreatedAt       time.Time
}
