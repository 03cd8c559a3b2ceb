// Package model defines the core domain types shared across the application.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Category is the display bucket a task belongs to. Every task is in
// exactly one bucket at any point in time.
type Category string

// Task categories.
const (
	CategoryUrgent    Category = "urgent"
	CategoryLater     Category = "later"
	CategoryCompleted Category = "completed"
)

// Valid reports whether c is one of the three enumerated categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryUrgent, CategoryLater, CategoryCompleted:
		return true
	}
	return false
}

// Priority is the user-adjustable urgency of a task. It is independent
// of the category bucket and never affects grouping.
type Priority string

// Task priorities.
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the three enumerated priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// Task represents a single actionable item extracted from a voice memo.
type Task struct {
	CreatedAt time.Time
	DueDate   *time.Time
	ID        string
	Text      string
	Category  Category
	Priority  Priority
}

// NewTask creates a task in the given bucket. Urgent tasks start at
// high priority, everything else at medium.
func NewTask(text string, category Category) Task {
	priority := PriorityMedium
	if category == CategoryUrgent {
		priority = PriorityHigh
	}

	return Task{
		ID:        uuid.NewString(),
		Text:      text,
		Category:  category,
		Priority:  priority,
		CreatedAt: time.Now(),
	}
}
