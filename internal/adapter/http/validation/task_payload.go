package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/dto"
	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
)

var (
	ErrInvalidTaskPayload = errors.New("invalid task payload")
	ErrAssignedToNotArray = errors.New("assignedTo must be an array of user IDs")
)

// BuildCreateTaskInput turns a bound create request into a domain input.
// The raw message map is the same body the request was bound from; it is
// used to tell a field that is absent from one that is present but of the
// wrong shape.
func BuildCreateTaskInput(req dto.CreateTaskRequest, raw map[string]json.RawMessage) (domain.CreateTaskInput, error) {
	if !isJSONArray(raw["assignedTo"]) {
		return domain.CreateTaskInput{}, ErrAssignedToNotArray
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	dueDate, err := time.Parse("2006-01-02", req.DueDate)
	if err != nil {
		return domain.CreateTaskInput{}, ErrInvalidTaskPayload
	}

	priority := domain.TaskPriorityMedium
	if req.Priority != nil {
		priority = domain.TaskPriority(*req.Priority)
	}

	return domain.CreateTaskInput{
		Title:         title,
		Description:   req.Description,
		Priority:      priority,
		DueDate:       dueDate,
		AssignedTo:    req.AssignedTo,
		Attachments:   req.Attachments,
		TodoChecklist: toDomainTodoItems(req.TodoChecklist),
	}, nil
}

// BuildUpdateTaskInput turns a bound full-edit request into a domain input
// with explicit per-field presence. A field absent from the body keeps its
// stored value; a field present in the body is applied, even when its value
// is empty. JSON null on a nullable field clears it.
func BuildUpdateTaskInput(req dto.UpdateTaskRequest, raw map[string]json.RawMessage) (domain.UpdateTaskInput, error) {
	if !hasTaskUpdateFields(raw) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var title *string
	if hasJSONField(raw, "title") {
		if req.Title == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := strings.TrimSpace(*req.Title)
		if value == "" {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		title = &value
	}

	descriptionSet := hasJSONField(raw, "description")
	if descriptionSet && !isJSONNull(raw["description"]) && req.Description == nil {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	var priority *domain.TaskPriority
	if hasJSONField(raw, "priority") {
		if req.Priority == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		value := domain.TaskPriority(*req.Priority)
		priority = &value
	}

	var dueDate *time.Time
	if hasJSONField(raw, "dueDate") {
		if req.DueDate == nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		parsedDueDate, err := time.Parse("2006-01-02", *req.DueDate)
		if err != nil {
			return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
		}
		dueDate = &parsedDueDate
	}

	assignedToSet := hasJSONField(raw, "assignedTo")
	if assignedToSet && !isJSONArray(raw["assignedTo"]) {
		return domain.UpdateTaskInput{}, ErrAssignedToNotArray
	}

	attachmentsSet := hasJSONField(raw, "attachments")
	if attachmentsSet && !isJSONArray(raw["attachments"]) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	checklistSet := hasJSONField(raw, "todoChecklist")
	if checklistSet && !isJSONArray(raw["todoChecklist"]) {
		return domain.UpdateTaskInput{}, ErrInvalidTaskPayload
	}

	return domain.UpdateTaskInput{
		Title:          title,
		Description:    req.Description,
		DescriptionSet: descriptionSet,
		Priority:       priority,
		DueDate:        dueDate,
		AssignedTo:     emptyIfNil(req.AssignedTo, assignedToSet),
		AssignedToSet:  assignedToSet,
		Attachments:    emptyIfNil(req.Attachments, attachmentsSet),
		AttachmentsSet: attachmentsSet,
		TodoChecklist:  toDomainTodoItems(req.TodoChecklist),
		ChecklistSet:   checklistSet,
	}, nil
}

// HasField reports whether the body carried the field at all, including
// with a null value.
func HasField(raw map[string]json.RawMessage, field string) bool {
	return hasJSONField(raw, field)
}

// IsArrayField reports whether the field is present and is a JSON array.
// Callers use it before struct binding so a wrong-shaped assignedTo gets a
// specific error instead of a generic unmarshal failure.
func IsArrayField(raw map[string]json.RawMessage, field string) bool {
	return isJSONArray(raw[field])
}

func hasTaskUpdateFields(raw map[string]json.RawMessage) bool {
	return hasJSONField(raw, "title") ||
		hasJSONField(raw, "description") ||
		hasJSONField(raw, "priority") ||
		hasJSONField(raw, "dueDate") ||
		hasJSONField(raw, "assignedTo") ||
		hasJSONField(raw, "attachments") ||
		hasJSONField(raw, "todoChecklist")
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}

func isJSONArray(value json.RawMessage) bool {
	trimmed := bytes.TrimSpace(value)
	return len(trimmed) > 0 && trimmed[0] == '['
}

func emptyIfNil(values []string, set bool) []string {
	if set && values == nil {
		return []string{}
	}
	return values
}

func toDomainTodoItems(items []dto.TodoItem) []domain.TodoItem {
	todos := make([]domain.TodoItem, 0, len(items))
	for _, item := range items {
		todos = append(todos, domain.TodoItem{Text: item.Text, Completed: item.Completed})
	}
	return todos
}
