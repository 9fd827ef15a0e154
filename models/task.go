package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus represents task completion state
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Task represents a project-scoped work item
type Task struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid"`
	OrgID       string         `json:"orgId" gorm:"type:uuid;not null;index"`
	ProjectID   string         `json:"projectId" gorm:"type:uuid;not null;index"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"default:null"`
	Status      TaskStatus     `json:"status" gorm:"type:varchar(12);not null;default:'todo'"`
	AssigneeID  *string        `json:"assigneeId" gorm:"type:uuid;default:null"`
	DueDate     *time.Time     `json:"dueDate" gorm:"default:null"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Assignee *Contact `json:"assignee,omitempty" gorm:"foreignKey:AssigneeID"`
}

func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
