package model

import "time"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Label() string {
	switch p {
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	default:
		return "Low"
	}
}

type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusHold       Status = "hold"
)

func (s Status) Label() string {
	switch s {
	case StatusCompleted:
		return "Completed"
	case StatusInProgress:
		return "In progress"
	case StatusHold:
		return "On hold"
	default:
		return "Pending"
	}
}

// KnownStatus reports whether s is one of the defined lifecycle stages.
func KnownStatus(s Status) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusHold:
		return true
	}
	return false
}

type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Position string `json:"position"`
	// RoleDescription is free text; responsibility items are separated by
	// commas or newlines.
	RoleDescription string `json:"role_description"`
}

type Task struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	AssigneeID string     `json:"assignee_id,omitempty"`
	DueDate    *time.Time `json:"due_date,omitempty"`
	Priority   Priority   `json:"priority"`
	Status     Status     `json:"status"`
	// RequesterName is the person who asked for the task; not a User reference.
	RequesterName string `json:"requester_name,omitempty"`
	Description   string `json:"description,omitempty"`
}

type Comment struct {
	ID     string `json:"id"`
	Author string `json:"author,omitempty"`
	// Content is append-only; comments are never edited, only deleted.
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
