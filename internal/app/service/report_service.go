package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/alipouryousefi/task-manager-back/internal/core/domain"
	"github.com/alipouryousefi/task-manager-back/internal/core/ports"
)

const (
	tasksReportSheet = "Tasks Report"
	usersReportSheet = "User Task Report"
	unassignedLabel  = "Unassigned"
)

type ReportService struct {
	taskRepository ports.TaskRepository
	userRepository ports.UserRepository
}

var _ ports.ReportService = (*ReportService)(nil)

func NewReportService(taskRepository ports.TaskRepository, userRepository ports.UserRepository) *ReportService {
	return &ReportService{taskRepository: taskRepository, userRepository: userRepository}
}

// ExportTasksReport writes an xlsx workbook with one row per task. The
// column header texts are a compatibility surface for downstream tooling.
func (s *ReportService) ExportTasksReport(ctx context.Context, w io.Writer) error {
	tasks, err := s.taskRepository.List(ctx, domain.TaskFilter{})
	if err != nil {
		return err
	}

	usersByID, err := s.assigneesByID(ctx, tasks)
	if err != nil {
		return err
	}

	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName(file.GetSheetName(0), tasksReportSheet); err != nil {
		return err
	}

	headers := []interface{}{"Task ID", "Title", "Description", "Priority", "Status", "Due Date", "Assigned To"}
	if err := file.SetSheetRow(tasksReportSheet, "A1", &headers); err != nil {
		return err
	}

	for i, task := range tasks {
		description := ""
		if task.Description != nil {
			description = *task.Description
		}

		row := []interface{}{
			task.ID,
			task.Title,
			description,
			string(task.Priority),
			string(task.Status),
			task.DueDate.Format("2006-01-02"),
			assignedToLabel(task, usersByID),
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(tasksReportSheet, cell, &row); err != nil {
			return err
		}
	}

	return file.Write(w)
}

// ExportUsersReport writes an xlsx workbook with one row per user carrying
// their assigned task counts, aggregated by scanning every task's assignee
// list.
func (s *ReportService) ExportUsersReport(ctx context.Context, w io.Writer) error {
	users, err := s.userRepository.List(ctx)
	if err != nil {
		return err
	}

	tasks, err := s.taskRepository.List(ctx, domain.TaskFilter{})
	if err != nil {
		return err
	}

	statsByID := make(map[string]*domain.UserTaskStats, len(users))
	for _, user := range users {
		statsByID[user.ID] = &domain.UserTaskStats{Name: user.Name, Email: user.Email}
	}

	for _, task := range tasks {
		for _, assigneeID := range task.AssignedTo {
			stats, ok := statsByID[assigneeID]
			if !ok {
				// Dangling reference to a user no longer present.
				continue
			}
			stats.TaskCount++
			switch task.Status {
			case domain.TaskStatusPending:
				stats.PendingTasks++
			case domain.TaskStatusInProgress:
				stats.InProgressTasks++
			case domain.TaskStatusCompleted:
				stats.CompletedTasks++
			}
		}
	}

	file := excelize.NewFile()
	defer func() { _ = file.Close() }()

	if err := file.SetSheetName(file.GetSheetName(0), usersReportSheet); err != nil {
		return err
	}

	headers := []interface{}{"User name", "Email", "Total Assigned Tasks", "Pending Tasks", "In Progress Tasks", "Completed Tasks"}
	if err := file.SetSheetRow(usersReportSheet, "A1", &headers); err != nil {
		return err
	}

	// Rows follow the user list order so exports are deterministic.
	for i, user := range users {
		stats := statsByID[user.ID]
		row := []interface{}{
			stats.Name,
			stats.Email,
			stats.TaskCount,
			stats.PendingTasks,
			stats.InProgressTasks,
			stats.CompletedTasks,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(usersReportSheet, cell, &row); err != nil {
			return err
		}
	}

	return file.Write(w)
}

func (s *ReportService) assigneesByID(ctx context.Context, tasks []domain.Task) (map[string]domain.User, error) {
	idSet := make(map[string]struct{})
	for _, task := range tasks {
		for _, id := range task.AssignedTo {
			idSet[id] = struct{}{}
		}
	}
	if len(idSet) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	users, err := s.userRepository.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.User, len(users))
	for _, user := range users {
		byID[user.ID] = user
	}
	return byID, nil
}

func assignedToLabel(task domain.Task, usersByID map[string]domain.User) string {
	labels := make([]string, 0, len(task.AssignedTo))
	for _, id := range task.AssignedTo {
		user, ok := usersByID[id]
		if !ok {
			continue
		}
		labels = append(labels, fmt.Sprintf("%s (%s)", user.Name, user.Email))
	}
	if len(labels) == 0 {
		return unassignedLabel
	}
	return strings.Join(labels, ", ")
}
