package domain

import (
	"math"
	"time"
)

type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "Pending"
	TaskStatusInProgress TaskStatus = "In Progress"
	TaskStatusCompleted  TaskStatus = "Completed"
)

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "Low"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityHigh   TaskPriority = "High"
)

type TodoItem struct {
	Text      string
	Completed bool
}

type Task struct {
	ID            string
	Title         string
	Description   *string
	Priority      TaskPriority
	Status        TaskStatus
	DueDate       time.Time
	AssignedTo    []string
	CreatedBy     string
	Attachments   []string
	TodoChecklist []TodoItem
	Progress      int
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Resolved at read time, in AssignedTo order. Never persisted.
	Assignees []AssigneeRef
}

// AssigneeRef is the projection of an assigned user embedded in task reads.
type AssigneeRef struct {
	ID              string
	Name            string
	Email           string
	ProfileImageURL *string
}

type CreateTaskInput struct {
	Title         string
	Description   *string
	Priority      TaskPriority
	DueDate       time.Time
	AssignedTo    []string
	CreatedBy     string
	Attachments   []string
	TodoChecklist []TodoItem
}

type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Priority       *TaskPriority
	DueDate        *time.Time
	AssignedTo     []string
	AssignedToSet  bool
	Attachments    []string
	AttachmentsSet bool
	TodoChecklist  []TodoItem
	ChecklistSet   bool
}

// TaskFilter scopes list and count queries. A nil Status means no status
// filter; an empty AssignedTo means no assignee scoping.
type TaskFilter struct {
	Status     *TaskStatus
	AssignedTo string
}

// StatusSummary carries the four dashboard counts. Each count is an
// independent query, not part of an atomic snapshot.
type StatusSummary struct {
	All             int64
	PendingTasks    int64
	InProgressTasks int64
	CompletedTasks  int64
}

// IsAssignedTo reports whether userID appears in the task's assignee list.
// Both sides are canonical hex strings, so this is a plain string compare.
func (t *Task) IsAssignedTo(userID string) bool {
	for _, id := range t.AssignedTo {
		if id == userID {
			return true
		}
	}
	return false
}

// CompletedTodoCount counts checked checklist items.
func (t *Task) CompletedTodoCount() int {
	count := 0
	for _, item := range t.TodoChecklist {
		if item.Completed {
			count++
		}
	}
	return count
}

// ReplaceChecklist swaps in a new checklist and derives progress and status
// from it. The derived status overwrites any previously set status.
func (t *Task) ReplaceChecklist(items []TodoItem) {
	t.TodoChecklist = items
	t.Progress = ProgressForChecklist(items)
	t.Status = StatusForProgress(t.Progress)
}

// ApplyStatus sets the status directly. Moving to Completed forces every
// checklist item to completed and progress to 100; moving away from
// Completed leaves the checklist and progress untouched.
func (t *Task) ApplyStatus(status TaskStatus) {
	t.Status = status
	if t.Status != TaskStatusCompleted {
		return
	}
	for i := range t.TodoChecklist {
		t.TodoChecklist[i].Completed = true
	}
	t.Progress = 100
}

// ProgressForChecklist computes round(100 * completed / total), 0 for an
// empty checklist.
func ProgressForChecklist(items []TodoItem) int {
	if len(items) == 0 {
		return 0
	}
	completed := 0
	for _, item := range items {
		if item.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(items)) * 100))
}

// StatusForProgress derives the coarse status from a progress value.
func StatusForProgress(progress int) TaskStatus {
	switch {
	case progress == 100:
		return TaskStatusCompleted
	case progress > 0:
		return TaskStatusInProgress
	default:
		return TaskStatusPending
	}
}
