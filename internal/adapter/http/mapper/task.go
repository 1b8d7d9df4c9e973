package mapper

import (
	"time"

	"github.com/alipouryousefi/task-manager-back/internal/adapter/http/dto"
	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
)

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:                 task.ID,
		Title:              task.Title,
		Priority:           string(task.Priority),
		Status:             string(task.Status),
		DueDate:            task.DueDate.Format("2006-01-02"),
		CreatedBy:          task.CreatedBy,
		Attachments:        task.Attachments,
		Progress:           task.Progress,
		CompletedTodoCount: task.CompletedTodoCount(),
		CreatedAt:          task.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          task.UpdatedAt.Format(time.RFC3339),
	}

	if task.Description != nil {
		value := *task.Description
		item.Description = &value
	}

	if item.Attachments == nil {
		item.Attachments = []string{}
	}

	item.TodoChecklist = make([]dto.TodoItem, 0, len(task.TodoChecklist))
	for _, todo := range task.TodoChecklist {
		item.TodoChecklist = append(item.TodoChecklist, dto.TodoItem{Text: todo.Text, Completed: todo.Completed})
	}

	item.AssignedTo = make([]dto.AssigneeItem, 0, len(task.Assignees))
	for _, assignee := range task.Assignees {
		item.AssignedTo = append(item.AssignedTo, dto.AssigneeItem{
			ID:              assignee.ID,
			Name:            assignee.Name,
			Email:           assignee.Email,
			ProfileImageURL: assignee.ProfileImageURL,
		})
	}

	return item
}

func ToStatusSummaryItem(summary domain.StatusSummary) dto.StatusSummaryItem {
	return dto.StatusSummaryItem{
		All:             summary.All,
		PendingTasks:    summary.PendingTasks,
		InProgressTasks: summary.InProgressTasks,
		CompletedTasks:  summary.CompletedTasks,
	}
}

func ToTaskListResponse(tasks []domain.Task, summary domain.StatusSummary) dto.TaskListResponse {
	return dto.TaskListResponse{
		Tasks:         ToTaskItems(tasks),
		StatusSummary: ToStatusSummaryItem(summary),
	}
}
