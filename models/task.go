package models

import (
	"errors"
	"strings"
)

type TaskPriority string
type TaskStatus string

const (
	TaskPriorityHigh   TaskPriority = "High"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityLow    TaskPriority = "Low"

	TaskStatusTodo       TaskStatus = "Todo"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusDone       TaskStatus = "Done"
)

// Unassigned is reported for tasks without an assignee.
const Unassigned = "Unassigned"

// Task is a Kanban card. The assignee is stored as a reference to a team member
// and tags live in task_tags; both are flattened back to names by Hydrate.
type Task struct {
	ID           uint         `gorm:"primaryKey" json:"id"`
	Title        string       `gorm:"not null" json:"title"`
	Description  string       `gorm:"type:text" json:"description"`
	AssigneeID   *uint        `gorm:"index" json:"-"`
	AssigneeUser *User        `gorm:"foreignKey:AssigneeID;constraint:OnDelete:SET NULL" json:"-"`
	Assignee     string       `gorm:"-" json:"assignee"`
	Priority     TaskPriority `gorm:"type:VARCHAR(10)" json:"priority"`
	TagRows      []TaskTag    `gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE" json:"-"`
	Tags         []string     `gorm:"-" json:"tags"`
	DueDate      string       `gorm:"type:VARCHAR(32);index" json:"dueDate"`
	Status       TaskStatus   `gorm:"type:VARCHAR(20)" json:"status"`
}

// TaskTag keeps one tag of a task; Position preserves the order it was given in.
type TaskTag struct {
	ID       uint   `gorm:"primaryKey"`
	TaskID   uint   `gorm:"index;not null"`
	Position int    `gorm:"not null"`
	Name     string `gorm:"not null"`
}

// Hydrate fills Assignee and Tags from the loaded associations.
func (t *Task) Hydrate() {
	t.Assignee = Unassigned
	if t.AssigneeUser != nil {
		t.Assignee = t.AssigneeUser.Name
	}
	t.Tags = make([]string, 0, len(t.TagRows))
	for _, tag := range t.TagRows {
		t.Tags = append(t.Tags, tag.Name)
	}
}

// BuildTagRows turns an ordered tag list into rows, dropping blanks.
func BuildTagRows(tags []string) []TaskTag {
	rows := make([]TaskTag, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		rows = append(rows, TaskTag{Position: len(rows), Name: tag})
	}
	return rows
}

// ParseTaskPriority maps user input onto a TaskPriority. Empty input yields Medium.
func ParseTaskPriority(s string) (TaskPriority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "medium":
		return TaskPriorityMedium, nil
	case "high":
		return TaskPriorityHigh, nil
	case "low":
		return TaskPriorityLow, nil
	default:
		return "", errors.New("invalid task priority")
	}
}

// ParseTaskStatus maps user input onto a TaskStatus. Empty input yields Todo.
func ParseTaskStatus(s string) (TaskStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "todo":
		return TaskStatusTodo, nil
	case "in progress":
		return TaskStatusInProgress, nil
	case "done":
		return TaskStatusDone, nil
	default:
		return "", errors.New("invalid task status")
	}
}
